// Package contract is the read-only adapter over the TodoList ledger
// contract. The server never submits transactions; task creation, completion
// and deletion are signed and sent by the user's own wallet. This client only
// reads the resulting on-chain state.
package contract

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/ethclient"
	"golang.org/x/sync/errgroup"
)

// ErrLedgerUnavailable wraps transport and provider failures so callers can
// distinguish "the chain said no such task" from "we could not ask the chain".
var ErrLedgerUnavailable = errors.New("ledger unavailable")

// Task is the on-chain task record. CreatedAt and CompletedAt are unix
// seconds (EVM block time).
type Task struct {
	ID          string `json:"id"`
	Owner       string `json:"owner"`
	IsCompleted bool   `json:"isCompleted"`
	IsDeleted   bool   `json:"isDeleted"`
	CreatedAt   int64  `json:"createdAt"`
	CompletedAt int64  `json:"completedAt"`
}

// Exists reports whether the record was actually written on-chain. The
// contract's task mapping returns a zeroed struct for unknown hashes, so a
// zero owner address is the not-found sentinel.
func (t *Task) Exists() bool {
	return t != nil && common.HexToAddress(t.Owner) != (common.Address{})
}

// Config is the contract binding information wallet clients need to submit
// their own transactions.
type Config struct {
	Address string          `json:"address"`
	ABI     json.RawMessage `json:"abi"`
}

// Client is an explicitly constructed handle to the TodoList contract.
// Construct it once in main and inject it; there is no package-level state.
type Client struct {
	eth     *ethclient.Client
	bound   *bind.BoundContract
	address common.Address
}

// NewClient dials the RPC endpoint and binds the TodoList contract at the
// given address.
func NewClient(rpcURL, contractAddress string) (*Client, error) {
	if !common.IsHexAddress(contractAddress) {
		return nil, fmt.Errorf("invalid contract address: %q", contractAddress)
	}

	parsed, err := abi.JSON(strings.NewReader(todoListABI))
	if err != nil {
		return nil, fmt.Errorf("failed to parse contract ABI: %w", err)
	}

	eth, err := ethclient.Dial(rpcURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to RPC endpoint: %w", err)
	}

	address := common.HexToAddress(contractAddress)
	return &Client{
		eth:     eth,
		bound:   bind.NewBoundContract(address, parsed, eth, eth, eth),
		address: address,
	}, nil
}

// Close releases the underlying RPC connection.
func (c *Client) Close() {
	c.eth.Close()
}

// Config returns the contract address and ABI for wallet-side binding.
func (c *Client) Config() Config {
	return Config{
		Address: c.address.Hex(),
		ABI:     json.RawMessage(todoListABI),
	}
}

// GetTask fetches a single task record by hash. The returned record may be
// zeroed; callers decide whether a missing record is an error (see Exists).
func (c *Client) GetTask(ctx context.Context, taskHash string) (*Task, error) {
	var out []interface{}
	err := c.bound.Call(&bind.CallOpts{Context: ctx}, &out, "getTask", common.HexToHash(taskHash))
	if err != nil {
		return nil, fmt.Errorf("%w: getTask %s: %v", ErrLedgerUnavailable, taskHash, err)
	}

	return &Task{
		ID:          taskHash,
		Owner:       out[0].(common.Address).Hex(),
		IsCompleted: out[1].(bool),
		IsDeleted:   out[2].(bool),
		CreatedAt:   out[3].(*big.Int).Int64(),
		CompletedAt: out[4].(*big.Int).Int64(),
	}, nil
}

// GetFilteredTasks lists the hashes the contract holds for an address and
// resolves each to a full record. The per-hash reads are independent and
// read-only, so they run concurrently; any single failure fails the whole
// call rather than returning a partial listing.
func (c *Client) GetFilteredTasks(ctx context.Context, userAddress string, includeCompleted, includeDeleted bool) ([]*Task, error) {
	if !common.IsHexAddress(userAddress) {
		return nil, fmt.Errorf("invalid user address: %q", userAddress)
	}

	var out []interface{}
	err := c.bound.Call(&bind.CallOpts{Context: ctx}, &out, "getFilteredTasks",
		common.HexToAddress(userAddress), includeCompleted, includeDeleted)
	if err != nil {
		return nil, fmt.Errorf("%w: getFilteredTasks %s: %v", ErrLedgerUnavailable, userAddress, err)
	}

	hashes := out[0].([][32]byte)
	tasks := make([]*Task, len(hashes))

	g, ctx := errgroup.WithContext(ctx)
	for i, h := range hashes {
		g.Go(func() error {
			task, err := c.GetTask(ctx, common.Hash(h).Hex())
			if err != nil {
				return err
			}
			tasks[i] = task
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return tasks, nil
}
