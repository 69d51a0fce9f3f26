package repository

import (
	"errors"
	"time"

	"chaintasks-backend/internal/task/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// gormTaskRepository implements TaskRepository using GORM
type gormTaskRepository struct {
	db *gorm.DB
}

// NewGormTaskRepository creates a new GORM-based TaskRepository
func NewGormTaskRepository(db *gorm.DB) TaskRepository {
	return &gormTaskRepository{db: db}
}

func (r *gormTaskRepository) Create(task *domain.Task) error {
	if task.ID == "" {
		task.ID = uuid.New().String()
	}
	if task.Status == "" {
		task.Status = domain.TaskStatusInProgress
	}
	task.CreatedAt = time.Now()
	task.UpdatedAt = time.Now()
	return r.db.Create(task).Error
}

func (r *gormTaskRepository) FindByID(id string) (*domain.Task, error) {
	var task domain.Task
	err := r.db.Where("id = ?", id).First(&task).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &task, nil
}

func (r *gormTaskRepository) FindByHash(taskHash string) (*domain.Task, error) {
	var task domain.Task
	err := r.db.Where("task_hash = ?", taskHash).First(&task).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &task, nil
}

func (r *gormTaskRepository) Update(id string, updates map[string]interface{}) (*domain.Task, error) {
	updates["updated_at"] = time.Now()
	if err := r.db.Model(&domain.Task{}).Where("id = ?", id).Updates(updates).Error; err != nil {
		return nil, err
	}
	return r.FindByID(id)
}

func (r *gormTaskRepository) UpdateByHash(taskHash string, updates map[string]interface{}) (*domain.Task, error) {
	updates["updated_at"] = time.Now()
	if err := r.db.Model(&domain.Task{}).Where("task_hash = ?", taskHash).Updates(updates).Error; err != nil {
		return nil, err
	}
	return r.FindByHash(taskHash)
}

func (r *gormTaskRepository) FindAllByUser(userID string, status *domain.TaskStatus, offset, limit int) ([]*domain.Task, int64, error) {
	var tasks []*domain.Task
	var total int64

	query := r.db.Model(&domain.Task{}).Where("user_id = ? AND deleted_at IS NULL", userID)

	if status != nil {
		query = query.Where("status = ?", *status)
	}

	// Count total
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	// Triage ordering: highest priority first, then soonest deadline, then
	// newest. The CASE expressions keep NULLs last on both postgres and
	// sqlite.
	err := query.
		Order("CASE WHEN priority IS NULL THEN 1 ELSE 0 END, priority DESC").
		Order("CASE WHEN due_date IS NULL THEN 1 ELSE 0 END, due_date ASC").
		Order("created_at DESC").
		Limit(limit).Offset(offset).Find(&tasks).Error

	return tasks, total, err
}
