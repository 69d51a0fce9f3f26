package usecase

import (
	"context"

	"chaintasks-backend/internal/task/domain"
	"chaintasks-backend/internal/task/dto"
	"chaintasks-backend/pkg/contract"
)

// ContractReader is the slice of the ledger client this usecase needs.
// Tests substitute a fake.
type ContractReader interface {
	GetTask(ctx context.Context, taskHash string) (*contract.Task, error)
	GetFilteredTasks(ctx context.Context, userAddress string, includeCompleted, includeDeleted bool) ([]*contract.Task, error)
}

// TaskUsecase reconciles the off-chain task store with on-chain truth. It
// holds no state of its own; every method is an independent coordination of
// the hash deriver, the ledger reader and the repository.
type TaskUsecase interface {
	// ServerTimestamp returns the server clock in unix milliseconds. Clients
	// must use this value as the third hash input so both sides derive the
	// same task identity.
	ServerTimestamp() int64

	// CreateTask validates the client-computed hash and inserts the
	// off-chain row. The ledger write happens out of band from the user's
	// wallet.
	CreateTask(userID string, req *dto.CreateTaskRequest) (*domain.Task, error)

	// VerifyTaskUpdate checks a claimed completion/deletion against the
	// ledger and, when confirmed, reconciles the off-chain row.
	VerifyTaskUpdate(ctx context.Context, userID string, req *dto.VerifyTaskUpdateRequest) (*domain.Task, error)

	// GetUserTasks lists a page of the user's tasks, reconciling each row
	// with its on-chain state before returning it.
	GetUserTasks(ctx context.Context, userID string, status *domain.TaskStatus, page, limit int) ([]*domain.Task, int64, error)

	// VerifyUserOwnership checks off-chain existence, off-chain ownership
	// and on-chain existence, failing at the first check that does not hold.
	VerifyUserOwnership(ctx context.Context, userID, taskHash string) (*domain.Task, error)

	// GetOnChainTasks returns the raw ledger view for a wallet address.
	GetOnChainTasks(ctx context.Context, walletAddress string, includeCompleted, includeDeleted bool) ([]*contract.Task, error)
}
