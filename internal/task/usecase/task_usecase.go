package usecase

import (
	"context"
	"log"
	"time"

	"chaintasks-backend/internal/task/domain"
	"chaintasks-backend/internal/task/dto"
	"chaintasks-backend/internal/task/repository"
	"chaintasks-backend/pkg/contract"
	"chaintasks-backend/pkg/taskhash"

	"golang.org/x/sync/errgroup"
)

// taskUsecase implements TaskUsecase
type taskUsecase struct {
	taskRepo repository.TaskRepository
	ledger   ContractReader
}

// NewTaskUsecase creates a new instance of taskUsecase
func NewTaskUsecase(taskRepo repository.TaskRepository, ledger ContractReader) TaskUsecase {
	return &taskUsecase{
		taskRepo: taskRepo,
		ledger:   ledger,
	}
}

func (u *taskUsecase) ServerTimestamp() int64 {
	return time.Now().UnixMilli()
}

func (u *taskUsecase) CreateTask(userID string, req *dto.CreateTaskRequest) (*domain.Task, error) {
	computed, err := taskhash.Derive(req.Title, req.UserAddress, req.Timestamp)
	if err != nil {
		log.Printf("[WARN] hash derivation failed for user %s: %v", userID, err)
		return nil, domain.ErrInvalidTaskHash
	}

	// The submitted hash must be exactly the one the server derives from the
	// same inputs. Anything else means the client is registering a row for a
	// task identity it did not legitimately derive.
	if computed != req.TaskHash {
		log.Printf("[WARN] task hash mismatch for user %s: submitted %s", userID, req.TaskHash)
		return nil, domain.ErrInvalidTaskHash
	}

	task := &domain.Task{
		Title:    req.Title,
		TaskHash: req.TaskHash,
		UserID:   userID,
		Status:   domain.TaskStatusInProgress,
		Priority: req.Priority,
		DueDate:  req.DueDate,
	}
	if err := u.taskRepo.Create(task); err != nil {
		return nil, err
	}
	return task, nil
}

func (u *taskUsecase) VerifyTaskUpdate(ctx context.Context, userID string, req *dto.VerifyTaskUpdateRequest) (*domain.Task, error) {
	onChain, err := u.ledger.GetTask(ctx, req.TaskHash)
	if err != nil {
		return nil, err
	}
	if !onChain.Exists() {
		return nil, domain.ErrTaskNotFoundOnChain
	}

	// Every claimed flag must already be reflected on-chain. A mismatch
	// usually means the wallet transaction has not confirmed yet; the caller
	// retries once it has.
	if (req.IsCompleted != nil && onChain.IsCompleted != *req.IsCompleted) ||
		(req.IsDeleted != nil && onChain.IsDeleted != *req.IsDeleted) {
		return nil, domain.ErrStateMismatch
	}

	task, err := u.taskRepo.FindByHash(req.TaskHash)
	if err != nil {
		return nil, err
	}
	if task == nil {
		return nil, domain.ErrTaskNotFoundOffChain
	}
	if task.UserID != userID {
		return nil, domain.ErrNotAuthorized
	}

	updates := map[string]interface{}{}
	if req.IsCompleted != nil && *req.IsCompleted {
		updates["status"] = domain.TaskStatusCompleted
		updates["completed_at"] = time.Unix(onChain.CompletedAt, 0)
	}
	if req.IsDeleted != nil && *req.IsDeleted {
		// Applied after the completion update: archive wins when both flags
		// are set. The ledger exposes no deletion timestamp, so deleted_at is
		// the reconciliation time.
		updates["status"] = domain.TaskStatusArchived
		updates["deleted_at"] = time.Now()
	}
	if len(updates) == 0 {
		return task, nil
	}

	return u.taskRepo.UpdateByHash(req.TaskHash, updates)
}

func (u *taskUsecase) GetUserTasks(ctx context.Context, userID string, status *domain.TaskStatus, page, limit int) ([]*domain.Task, int64, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}

	tasks, total, err := u.taskRepo.FindAllByUser(userID, status, (page-1)*limit, limit)
	if err != nil {
		return nil, 0, err
	}

	// One ledger read per row. The reads are independent and commute, so
	// they run concurrently; each reconciliation write only copies on-chain
	// truth forward, so re-applying it is harmless.
	g, ctx := errgroup.WithContext(ctx)
	for i, task := range tasks {
		g.Go(func() error {
			onChain, err := u.ledger.GetTask(ctx, task.TaskHash)
			if err != nil {
				return err
			}
			if !onChain.Exists() {
				// Nothing on-chain to reconcile against. Not an error on the
				// read path; the row is returned as-is.
				return nil
			}

			if onChain.IsCompleted && task.Status != domain.TaskStatusCompleted {
				updated, err := u.taskRepo.Update(task.ID, map[string]interface{}{
					"status":       domain.TaskStatusCompleted,
					"completed_at": time.Unix(onChain.CompletedAt, 0),
				})
				if err != nil {
					return err
				}
				tasks[i] = updated
				return nil
			}

			if onChain.IsDeleted && task.Status != domain.TaskStatusArchived {
				updated, err := u.taskRepo.Update(task.ID, map[string]interface{}{
					"status":     domain.TaskStatusArchived,
					"deleted_at": time.Now(),
				})
				if err != nil {
					return err
				}
				tasks[i] = updated
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, 0, err
	}

	return tasks, total, nil
}

func (u *taskUsecase) VerifyUserOwnership(ctx context.Context, userID, taskHash string) (*domain.Task, error) {
	task, err := u.taskRepo.FindByHash(taskHash)
	if err != nil {
		return nil, err
	}
	if task == nil {
		return nil, domain.ErrTaskNotFoundOffChain
	}
	if task.UserID != userID {
		return nil, domain.ErrNotAuthorized
	}

	onChain, err := u.ledger.GetTask(ctx, taskHash)
	if err != nil {
		return nil, err
	}
	if !onChain.Exists() {
		return nil, domain.ErrTaskNotFoundOnChain
	}

	return task, nil
}

func (u *taskUsecase) GetOnChainTasks(ctx context.Context, walletAddress string, includeCompleted, includeDeleted bool) ([]*contract.Task, error) {
	return u.ledger.GetFilteredTasks(ctx, walletAddress, includeCompleted, includeDeleted)
}
