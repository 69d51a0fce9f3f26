package dto

import (
	"time"

	"chaintasks-backend/internal/task/domain"
)

// CreateTaskRequest carries the client-computed hash together with the
// inputs it was derived from, so the server can recompute and compare.
type CreateTaskRequest struct {
	Title       string     `json:"title" binding:"required"`
	TaskHash    string     `json:"task_hash" binding:"required"`
	UserAddress string     `json:"user_address" binding:"required,eth_addr"`
	Timestamp   int64      `json:"timestamp" binding:"required"`
	Priority    *int       `json:"priority" binding:"omitempty,min=0,max=5"`
	DueDate     *time.Time `json:"due_date"`
}

// VerifyTaskUpdateRequest asserts state transitions the client believes are
// confirmed on-chain. Nil flags are not checked.
type VerifyTaskUpdateRequest struct {
	TaskHash    string `json:"task_hash" binding:"required"`
	IsCompleted *bool  `json:"isCompleted"`
	IsDeleted   *bool  `json:"isDeleted"`
}

// TimestampResponse is the server-authoritative clock value (unix
// milliseconds) both sides must feed into the hash derivation.
type TimestampResponse struct {
	Timestamp int64 `json:"timestamp"`
}

type ListTasksResponse struct {
	Tasks []*domain.Task `json:"tasks"`
	Total int64          `json:"total"`
}
