package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/WillianDSilveira/Gerenciador-Tarefas-Com-IA/internal/domain"
	"github.com/WillianDSilveira/Gerenciador-Tarefas-Com-IA/internal/generation"
	"github.com/WillianDSilveira/Gerenciador-Tarefas-Com-IA/internal/store"
)

// TaskService defines the task workflow operations exposed to the API layer.
type TaskService interface {
	// CreateTask derives a title for the description and persists the task.
	// Title generation failures are absorbed with a fallback title;
	// persistence failures propagate to the caller.
	CreateTask(ctx context.Context, description string, dueDate *time.Time) (*domain.Task, error)

	// ListTasks returns every persisted task, most recently created first.
	ListTasks(ctx context.Context) ([]domain.Task, error)
}

// taskService is the production implementation of TaskService.
type taskService struct {
	taskStore store.TaskStore
	generator generation.TitleGenerator
	logger    *slog.Logger
}

// NewTaskService creates a new TaskService with the given dependencies.
func NewTaskService(
	taskStore store.TaskStore,
	generator generation.TitleGenerator,
	logger *slog.Logger,
) (TaskService, error) {
	if taskStore == nil {
		return nil, errors.New("taskStore cannot be nil")
	}
	if generator == nil {
		return nil, errors.New("generator cannot be nil")
	}
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}

	return &taskService{
		taskStore: taskStore,
		generator: generator,
		logger:    logger,
	}, nil
}

// CreateTask validates the description, generates a title and inserts the
// task. The steps run in strict sequence with no fan-out.
//
// Generation gets exactly one attempt. This is the single boundary where
// a generation failure is converted into the fallback title; the error is
// logged and never surfaces to the caller.
func (s *taskService) CreateTask(
	ctx context.Context,
	description string,
	dueDate *time.Time,
) (*domain.Task, error) {
	task, err := domain.NewTask(description, dueDate)
	if err != nil {
		return nil, err
	}

	title, err := s.generator.GenerateTitle(ctx, description)
	if err != nil {
		s.logger.ErrorContext(ctx, "title generation failed, using fallback title",
			"error", err)
		title = domain.FallbackTaskTitle
	}
	task.Title = title

	if err := s.taskStore.Insert(ctx, task); err != nil {
		return nil, fmt.Errorf("failed to create task: %w", err)
	}

	return task, nil
}

// ListTasks returns all tasks ordered by descending ID.
func (s *taskService) ListTasks(ctx context.Context) ([]domain.Task, error) {
	tasks, err := s.taskStore.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}

	return tasks, nil
}
