package delivery

import (
	"net/http"
	"strconv"

	authdomain "chaintasks-backend/internal/auth/domain"
	"chaintasks-backend/internal/suggestion/usecase"
	taskdomain "chaintasks-backend/internal/task/domain"

	"github.com/gin-gonic/gin"
)

// SuggestionHandler handles AI suggestion HTTP requests
type SuggestionHandler struct {
	suggestionUsecase usecase.SuggestionUsecase
}

// NewSuggestionHandler creates a new SuggestionHandler
func NewSuggestionHandler(suggestionUsecase usecase.SuggestionUsecase) *SuggestionHandler {
	return &SuggestionHandler{
		suggestionUsecase: suggestionUsecase,
	}
}

type tasksRequest struct {
	Tasks []*taskdomain.Task `json:"tasks" binding:"required"`
}

// SuggestPriorities asks the model for 0-5 priorities for the given tasks
// POST /api/suggestion/suggest-priorities
func (h *SuggestionHandler) SuggestPriorities(c *gin.Context) {
	var req tasksRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.suggestionUsecase.SuggestPriorities(c.Request.Context(), req.Tasks)
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "AI service is temporarily unavailable."})
		return
	}

	c.JSON(http.StatusOK, result)
}

// ProductivityTip generates a tip from completion counts
// GET /api/suggestion/productivity-tip?completedTasks=3&totalTasks=10
func (h *SuggestionHandler) ProductivityTip(c *gin.Context) {
	completed, _ := strconv.Atoi(c.DefaultQuery("completedTasks", "0"))
	total, _ := strconv.Atoi(c.DefaultQuery("totalTasks", "0"))

	result, err := h.suggestionUsecase.ProductivityTip(c.Request.Context(), completed, total)
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "AI service is temporarily unavailable."})
		return
	}

	c.JSON(http.StatusOK, result)
}

// GenerateReminders writes reminders for the caller's overdue tasks
// POST /api/suggestion/generate-reminders
func (h *SuggestionHandler) GenerateReminders(c *gin.Context) {
	user := c.MustGet("user").(*authdomain.User)

	var req tasksRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.suggestionUsecase.GenerateReminders(c.Request.Context(), req.Tasks, user)
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "AI service is temporarily unavailable."})
		return
	}
	if result == "" {
		c.JSON(http.StatusOK, nil)
		return
	}

	c.JSON(http.StatusOK, result)
}
