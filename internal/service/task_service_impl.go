package service

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/lifetrack/internal/analytics"
	"github.com/alexanderramin/lifetrack/internal/app"
	"github.com/alexanderramin/lifetrack/internal/db"
	"github.com/alexanderramin/lifetrack/internal/domain"
	"github.com/alexanderramin/lifetrack/internal/repository"
	"github.com/google/uuid"
)

type taskService struct {
	tasks    repository.TaskRepo
	uow      db.UnitOfWork
	observer UseCaseObserver
}

func NewTaskService(tasks repository.TaskRepo, uow db.UnitOfWork, observers ...UseCaseObserver) TaskService {
	return &taskService{
		tasks:    tasks,
		uow:      uow,
		observer: useCaseObserverOrNoop(observers),
	}
}

func (s *taskService) Add(ctx context.Context, ownerID string, req app.AddTaskRequest) (task *domain.Task, err error) {
	fields := map[string]any{"daily": req.IsDaily}
	defer observe(ctx, s.observer, "add-task", time.Now(), fields, &err)

	now := app.ResolveNow(req.Now)
	date := req.Date
	if date == "" {
		date = analytics.DateKey(now)
	}
	task, err = domain.NewTask(ownerID, req.Title, req.Priority, date, req.IsDaily, now.UTC())
	if err != nil {
		return nil, err
	}
	task.ID = uuid.New().String()
	if err = s.tasks.Create(ctx, task); err != nil {
		return nil, err
	}
	fields["task_id"] = task.ID
	return task, nil
}

func (s *taskService) Get(ctx context.Context, ownerID, id string) (*domain.Task, error) {
	return s.tasks.GetByID(ctx, ownerID, id)
}

func (s *taskService) List(ctx context.Context, ownerID string, filter app.TaskFilter) (tasks []*domain.Task, err error) {
	fields := map[string]any{"month": filter.Month, "status": string(filter.Status)}
	defer observe(ctx, s.observer, "list-tasks", time.Now(), fields, &err)

	if filter.Month != "" {
		if err = domain.ValidateMonth("month", filter.Month); err != nil {
			return nil, err
		}
	}
	if filter.Status != "" && !domain.ValidTaskStatuses[string(filter.Status)] {
		err = &domain.ValidationError{Field: "status", Message: fmt.Sprintf("must be pending or completed (got %q)", filter.Status)}
		return nil, err
	}

	all, err := s.tasks.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	if filter.DailyOnly {
		all, _ = analytics.SplitRituals(all)
	}
	tasks = analytics.FilterTasks(all, filter.Month, filter.Status)
	fields["count"] = len(tasks)
	return tasks, nil
}

// Toggle flips a task's completion state and returns the updated task.
func (s *taskService) Toggle(ctx context.Context, ownerID, id string) (task *domain.Task, err error) {
	fields := map[string]any{"task_id": id}
	defer observe(ctx, s.observer, "toggle-task", time.Now(), fields, &err)

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txTasks := repository.NewSQLiteTaskRepo(tx)

		t, err := txTasks.GetByID(ctx, ownerID, id)
		if err != nil {
			return err
		}
		t.Toggle()
		if err := txTasks.UpdateStatus(ctx, ownerID, id, t.Status); err != nil {
			return err
		}
		task = t
		return nil
	})
	if err != nil {
		return nil, err
	}
	fields["status"] = string(task.Status)
	return task, nil
}

func (s *taskService) Delete(ctx context.Context, ownerID, id string) (err error) {
	defer observe(ctx, s.observer, "delete-task", time.Now(), map[string]any{"task_id": id}, &err)
	return s.tasks.Delete(ctx, ownerID, id)
}
