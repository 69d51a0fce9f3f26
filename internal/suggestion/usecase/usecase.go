package usecase

import (
	"context"

	authdomain "chaintasks-backend/internal/auth/domain"
	taskdomain "chaintasks-backend/internal/task/domain"
)

// TextGenerator is the slice of the inference client this usecase needs
type TextGenerator interface {
	Generate(ctx context.Context, prompt string, maxNewTokens int) (string, error)
}

// SuggestionUsecase builds prompts from the caller's tasks and proxies them
// to the text-generation service. It holds no state of its own.
type SuggestionUsecase interface {
	// SuggestPriorities asks for 0-5 priority suggestions for the tasks that
	// are not yet completed
	SuggestPriorities(ctx context.Context, tasks []*taskdomain.Task) (string, error)

	// ProductivityTip generates a motivational tip from completion counts
	ProductivityTip(ctx context.Context, completedTasks, totalTasks int) (string, error)

	// GenerateReminders writes reminders for the user's overdue tasks;
	// returns empty output when nothing is overdue
	GenerateReminders(ctx context.Context, tasks []*taskdomain.Task, user *authdomain.User) (string, error)
}
