package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	authdomain "chaintasks-backend/internal/auth/domain"
	taskdomain "chaintasks-backend/internal/task/domain"
)

// suggestionUsecase implements SuggestionUsecase
type suggestionUsecase struct {
	generator TextGenerator
}

// NewSuggestionUsecase creates a new instance of suggestionUsecase
func NewSuggestionUsecase(generator TextGenerator) SuggestionUsecase {
	return &suggestionUsecase{
		generator: generator,
	}
}

func (u *suggestionUsecase) SuggestPriorities(ctx context.Context, tasks []*taskdomain.Task) (string, error) {
	var open []*taskdomain.Task
	for _, task := range tasks {
		if task.Status != taskdomain.TaskStatusCompleted {
			open = append(open, task)
		}
	}

	var b strings.Builder
	b.WriteString("Analyze and prioritize these tasks from 0 to 5 based on their deadlines and importance:\n")
	for _, task := range open {
		b.WriteString(fmt.Sprintf("- Title: %s\n  Due Date: %s\n  Current Priority: %s\n",
			task.Title, formatDueDate(task.DueDate), formatPriority(task.Priority)))
	}
	b.WriteString("Suggest priority levels with reasoning for each task.")

	return u.generator.Generate(ctx, b.String(), 100)
}

func (u *suggestionUsecase) ProductivityTip(ctx context.Context, completedTasks, totalTasks int) (string, error) {
	prompt := fmt.Sprintf("Give a motivational tip for someone who has completed %d out of %d tasks.",
		completedTasks, totalTasks)
	return u.generator.Generate(ctx, prompt, 50)
}

func (u *suggestionUsecase) GenerateReminders(ctx context.Context, tasks []*taskdomain.Task, user *authdomain.User) (string, error) {
	now := time.Now()
	var overdue []*taskdomain.Task
	for _, task := range tasks {
		if task.DueDate != nil && task.DueDate.Before(now) && task.Status != taskdomain.TaskStatusCompleted {
			overdue = append(overdue, task)
		}
	}
	if len(overdue) == 0 {
		return "", nil
	}

	var b strings.Builder
	b.WriteString(fmt.Sprintf("Create reminders for the following overdue tasks for user %s %s:\n",
		user.FirstName, user.LastName))
	for _, task := range overdue {
		b.WriteString(fmt.Sprintf("- %s (Due: %s)\n", task.Title, task.DueDate.Format("2006-01-02")))
	}
	b.WriteString("Each reminder should be friendly, motivational, and specific.")

	return u.generator.Generate(ctx, b.String(), 100)
}

func formatDueDate(due *time.Time) string {
	if due == nil {
		return "No due date"
	}
	return due.Format("2006-01-02")
}

func formatPriority(priority *int) string {
	if priority == nil {
		return "none"
	}
	return fmt.Sprintf("%d", *priority)
}
