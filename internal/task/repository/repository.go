package repository

import "chaintasks-backend/internal/task/domain"

// TaskRepository defines the interface for off-chain task data access
type TaskRepository interface {
	// Create inserts a new task row
	Create(task *domain.Task) error

	// FindByID finds a task by its internal ID
	FindByID(id string) (*domain.Task, error)

	// FindByHash finds a task by its blockchain hash
	FindByHash(taskHash string) (*domain.Task, error)

	// Update applies a partial update by ID and returns the updated row
	Update(id string, updates map[string]interface{}) (*domain.Task, error)

	// UpdateByHash applies a partial update by blockchain hash and returns
	// the updated row
	UpdateByHash(taskHash string, updates map[string]interface{}) (*domain.Task, error)

	// FindAllByUser finds a page of a user's tasks with an optional status
	// filter. Archived rows (deleted_at set) are excluded. Ordered by
	// priority desc, then due date asc, then created_at desc.
	FindAllByUser(userID string, status *domain.TaskStatus, offset, limit int) ([]*domain.Task, int64, error)
}
