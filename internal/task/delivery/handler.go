package delivery

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	authdomain "chaintasks-backend/internal/auth/domain"
	"chaintasks-backend/internal/task/domain"
	"chaintasks-backend/internal/task/dto"
	"chaintasks-backend/internal/task/usecase"
	"chaintasks-backend/pkg/contract"

	"github.com/gin-gonic/gin"
)

// TaskHandler handles task-related HTTP requests
type TaskHandler struct {
	taskUsecase usecase.TaskUsecase
}

// NewTaskHandler creates a new TaskHandler
func NewTaskHandler(taskUsecase usecase.TaskUsecase) *TaskHandler {
	return &TaskHandler{
		taskUsecase: taskUsecase,
	}
}

// GetServerTimestamp returns the server clock for hash generation
// GET /api/tasks/timestamp
func (h *TaskHandler) GetServerTimestamp(c *gin.Context) {
	c.JSON(http.StatusOK, dto.TimestampResponse{Timestamp: h.taskUsecase.ServerTimestamp()})
}

// CreateTask creates the off-chain row after validating the task hash
// POST /api/tasks
func (h *TaskHandler) CreateTask(c *gin.Context) {
	user := currentUser(c)

	var req dto.CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	task, err := h.taskUsecase.CreateTask(user.ID, &req)
	if err != nil {
		respondTaskError(c, "create task", req.TaskHash, err)
		return
	}

	c.JSON(http.StatusCreated, task)
}

// VerifyTaskUpdate verifies a claimed transition against the ledger and
// reconciles the off-chain row
// POST /api/tasks/verify-update
func (h *TaskHandler) VerifyTaskUpdate(c *gin.Context) {
	user := currentUser(c)

	var req dto.VerifyTaskUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	task, err := h.taskUsecase.VerifyTaskUpdate(c.Request.Context(), user.ID, &req)
	if err != nil {
		respondTaskError(c, "verify task update", req.TaskHash, err)
		return
	}

	c.JSON(http.StatusOK, task)
}

// VerifyOwnership confirms the caller owns the task off-chain and the task
// exists on-chain
// GET /api/tasks/verify-ownership/:taskHash
func (h *TaskHandler) VerifyOwnership(c *gin.Context) {
	user := currentUser(c)
	taskHash := c.Param("taskHash")

	task, err := h.taskUsecase.VerifyUserOwnership(c.Request.Context(), user.ID, taskHash)
	if err != nil {
		respondTaskError(c, "verify ownership", taskHash, err)
		return
	}

	c.JSON(http.StatusOK, task)
}

// GetTasks returns a reconciled page of the user's tasks
// GET /api/tasks?status=IN_PROGRESS&page=1&limit=10
func (h *TaskHandler) GetTasks(c *gin.Context) {
	user := currentUser(c)

	var statusFilter *domain.TaskStatus
	if s := c.Query("status"); s != "" {
		status := domain.TaskStatus(s)
		if !status.Valid() {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid status filter"})
			return
		}
		statusFilter = &status
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))

	tasks, total, err := h.taskUsecase.GetUserTasks(c.Request.Context(), user.ID, statusFilter, page, limit)
	if err != nil {
		respondTaskError(c, "list tasks", "", err)
		return
	}
	if tasks == nil {
		tasks = []*domain.Task{}
	}

	c.JSON(http.StatusOK, dto.ListTasksResponse{Tasks: tasks, Total: total})
}

// GetOnChainTasks returns the raw ledger view for the caller's wallet
// GET /api/tasks/on-chain?includeCompleted=true&includeDeleted=false
func (h *TaskHandler) GetOnChainTasks(c *gin.Context) {
	user := currentUser(c)

	includeCompleted := c.DefaultQuery("includeCompleted", "false") == "true"
	includeDeleted := c.DefaultQuery("includeDeleted", "false") == "true"

	tasks, err := h.taskUsecase.GetOnChainTasks(c.Request.Context(), user.WalletAddress, includeCompleted, includeDeleted)
	if err != nil {
		respondTaskError(c, "list on-chain tasks", user.WalletAddress, err)
		return
	}
	if tasks == nil {
		tasks = []*contract.Task{}
	}

	c.JSON(http.StatusOK, gin.H{"tasks": tasks})
}

func currentUser(c *gin.Context) *authdomain.User {
	return c.MustGet("user").(*authdomain.User)
}

func respondTaskError(c *gin.Context, op, ref string, err error) {
	switch {
	case errors.Is(err, domain.ErrInvalidTaskHash), errors.Is(err, domain.ErrStateMismatch):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, domain.ErrTaskNotFoundOnChain), errors.Is(err, domain.ErrTaskNotFoundOffChain):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, domain.ErrNotAuthorized):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	case errors.Is(err, contract.ErrLedgerUnavailable):
		log.Printf("[ERROR] %s (%s): %v", op, ref, err)
		c.JSON(http.StatusBadGateway, gin.H{"error": "blockchain provider unavailable"})
	default:
		log.Printf("[ERROR] %s (%s): %v", op, ref, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}
