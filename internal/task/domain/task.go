package domain

import "time"

// TaskStatus represents the off-chain lifecycle state of a task
type TaskStatus string

const (
	TaskStatusInProgress TaskStatus = "IN_PROGRESS"
	TaskStatusCompleted  TaskStatus = "COMPLETED"
	TaskStatusArchived   TaskStatus = "ARCHIVED"
)

// Valid reports whether s is one of the known statuses
func (s TaskStatus) Valid() bool {
	switch s {
	case TaskStatusInProgress, TaskStatusCompleted, TaskStatusArchived:
		return true
	}
	return false
}

// Task is the off-chain record of a ledger-anchored task. TaskHash is the
// natural key shared with the on-chain record; the ledger is authoritative
// for completion and deletion, and this row is reconciled toward it on read.
// Rows are never physically deleted: deletion archives the row and stamps
// deleted_at.
type Task struct {
	ID          string     `json:"id" gorm:"primaryKey"`
	Title       string     `json:"title" gorm:"not null"`
	TaskHash    string     `json:"task_hash" gorm:"uniqueIndex;not null"`
	UserID      string     `json:"user_id" gorm:"index;not null"`
	Status      TaskStatus `json:"status" gorm:"default:IN_PROGRESS"`
	Priority    *int       `json:"priority,omitempty"`
	DueDate     *time.Time `json:"due_date,omitempty"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	DeletedAt   *time.Time `json:"deleted_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}
