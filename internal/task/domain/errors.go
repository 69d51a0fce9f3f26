package domain

import "errors"

// Reconciliation failure modes. Each one is surfaced to the caller as a
// distinct, actionable error; only the read-path sweep self-heals silently.
var (
	// ErrInvalidTaskHash means the submitted hash does not match the
	// server-side recomputation. Creation fails closed on it.
	ErrInvalidTaskHash = errors.New("invalid task hash")

	// ErrTaskNotFoundOnChain means the ledger holds no record for the hash
	// (zero owner address).
	ErrTaskNotFoundOnChain = errors.New("task not found on blockchain")

	// ErrTaskNotFoundOffChain means no database row exists for the hash.
	ErrTaskNotFoundOffChain = errors.New("task not found in database")

	// ErrNotAuthorized means the caller is not the off-chain owner.
	ErrNotAuthorized = errors.New("not authorized to access this task")

	// ErrStateMismatch means the client asserted a transition the ledger
	// does not yet reflect, typically an unconfirmed transaction.
	ErrStateMismatch = errors.New("task status mismatch with blockchain")
)
