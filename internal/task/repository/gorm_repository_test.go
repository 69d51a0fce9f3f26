package repository

import (
	"testing"
	"time"

	"chaintasks-backend/internal/task/domain"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestRepo(t *testing.T) TaskRepository {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open sqlite: %v", err)
	}
	// an in-memory sqlite database exists per connection
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to get sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	if err := db.AutoMigrate(&domain.Task{}); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}
	return NewGormTaskRepository(db)
}

func intPtr(v int) *int { return &v }

func timePtr(v time.Time) *time.Time { return &v }

func TestCreateAndFindByHash(t *testing.T) {
	repo := newTestRepo(t)

	task := &domain.Task{
		Title:    "Pay rent",
		TaskHash: "0xaaa1",
		UserID:   "user-1",
	}
	if err := repo.Create(task); err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if task.ID == "" {
		t.Error("expected Create to assign an ID")
	}
	if task.Status != domain.TaskStatusInProgress {
		t.Errorf("expected status IN_PROGRESS, got %s", task.Status)
	}

	found, err := repo.FindByHash("0xaaa1")
	if err != nil {
		t.Fatalf("FindByHash failed: %v", err)
	}
	if found == nil || found.ID != task.ID {
		t.Fatalf("expected to find created task, got %+v", found)
	}

	missing, err := repo.FindByHash("0xdead")
	if err != nil {
		t.Fatalf("FindByHash failed: %v", err)
	}
	if missing != nil {
		t.Errorf("expected nil for unknown hash, got %+v", missing)
	}
}

func TestUpdateByHashPartial(t *testing.T) {
	repo := newTestRepo(t)

	task := &domain.Task{Title: "Write report", TaskHash: "0xbbb2", UserID: "user-1"}
	if err := repo.Create(task); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	completedAt := time.Unix(1700000000, 0)
	updated, err := repo.UpdateByHash("0xbbb2", map[string]interface{}{
		"status":       domain.TaskStatusCompleted,
		"completed_at": completedAt,
	})
	if err != nil {
		t.Fatalf("UpdateByHash failed: %v", err)
	}
	if updated.Status != domain.TaskStatusCompleted {
		t.Errorf("expected status COMPLETED, got %s", updated.Status)
	}
	if updated.CompletedAt == nil || updated.CompletedAt.Unix() != completedAt.Unix() {
		t.Errorf("expected completed_at %v, got %v", completedAt, updated.CompletedAt)
	}
	if updated.Title != "Write report" {
		t.Errorf("partial update must not touch title, got %q", updated.Title)
	}
}

func TestFindAllByUserOrdering(t *testing.T) {
	repo := newTestRepo(t)

	base := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	soon := base.AddDate(0, 0, 1)
	later := base.AddDate(0, 0, 7)

	fixtures := []*domain.Task{
		{Title: "low", TaskHash: "0x01", UserID: "user-1", Priority: intPtr(1)},
		{Title: "high", TaskHash: "0x02", UserID: "user-1", Priority: intPtr(5)},
		{Title: "mid due later", TaskHash: "0x03", UserID: "user-1", Priority: intPtr(3), DueDate: timePtr(later)},
		{Title: "mid due soon", TaskHash: "0x04", UserID: "user-1", Priority: intPtr(3), DueDate: timePtr(soon)},
		{Title: "other user", TaskHash: "0x05", UserID: "user-2", Priority: intPtr(5)},
	}
	for _, f := range fixtures {
		if err := repo.Create(f); err != nil {
			t.Fatalf("Create failed: %v", err)
		}
	}

	tasks, total, err := repo.FindAllByUser("user-1", nil, 0, 10)
	if err != nil {
		t.Fatalf("FindAllByUser failed: %v", err)
	}
	if total != 4 {
		t.Errorf("expected total 4, got %d", total)
	}

	var titles []string
	for _, task := range tasks {
		titles = append(titles, task.Title)
	}
	// priority desc, then due date asc breaks the tie between the two
	// priority-3 tasks
	want := []string{"high", "mid due soon", "mid due later", "low"}
	for i, w := range want {
		if i >= len(titles) || titles[i] != w {
			t.Fatalf("expected order %v, got %v", want, titles)
		}
	}
}

func TestFindAllByUserExcludesArchivedAndFilters(t *testing.T) {
	repo := newTestRepo(t)

	now := time.Now()
	fixtures := []*domain.Task{
		{Title: "open", TaskHash: "0x11", UserID: "user-1"},
		{Title: "done", TaskHash: "0x12", UserID: "user-1", Status: domain.TaskStatusCompleted},
		{Title: "archived", TaskHash: "0x13", UserID: "user-1", Status: domain.TaskStatusArchived, DeletedAt: timePtr(now)},
	}
	for _, f := range fixtures {
		if err := repo.Create(f); err != nil {
			t.Fatalf("Create failed: %v", err)
		}
	}

	tasks, total, err := repo.FindAllByUser("user-1", nil, 0, 10)
	if err != nil {
		t.Fatalf("FindAllByUser failed: %v", err)
	}
	if total != 2 {
		t.Errorf("expected soft-deleted rows excluded, total 2, got %d", total)
	}
	for _, task := range tasks {
		if task.Title == "archived" {
			t.Error("archived task must not be listed")
		}
	}

	status := domain.TaskStatusCompleted
	tasks, total, err = repo.FindAllByUser("user-1", &status, 0, 10)
	if err != nil {
		t.Fatalf("FindAllByUser failed: %v", err)
	}
	if total != 1 || len(tasks) != 1 || tasks[0].Title != "done" {
		t.Errorf("expected only the completed task, got total=%d tasks=%v", total, tasks)
	}
}

func TestFindAllByUserPagination(t *testing.T) {
	repo := newTestRepo(t)

	for i := 0; i < 5; i++ {
		task := &domain.Task{
			Title:    "task",
			TaskHash: string(rune('a'+i)) + "-hash",
			UserID:   "user-1",
			Priority: intPtr(i),
		}
		if err := repo.Create(task); err != nil {
			t.Fatalf("Create failed: %v", err)
		}
	}

	tasks, total, err := repo.FindAllByUser("user-1", nil, 2, 2)
	if err != nil {
		t.Fatalf("FindAllByUser failed: %v", err)
	}
	if total != 5 {
		t.Errorf("expected total 5 regardless of page, got %d", total)
	}
	if len(tasks) != 2 {
		t.Errorf("expected page of 2, got %d", len(tasks))
	}
}
