package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/NBFYayI/Todo/internal/models"
	"github.com/NBFYayI/Todo/internal/repository"
	"gorm.io/gorm"
)

var (
	ErrTaskNotFound  = errors.New("task not found")
	ErrTaskForbidden = errors.New("unauthorized access")
	ErrNoTasks       = errors.New("no tasks found")
)

// TaskService handles task business logic. Every operation on an existing
// task verifies that the caller owns it.
type TaskService struct {
	taskRepo repository.TaskRepository
}

// NewTaskService creates a new TaskService
func NewTaskService(taskRepo repository.TaskRepository) *TaskService {
	return &TaskService{
		taskRepo: taskRepo,
	}
}

// CreateTaskInput represents input for creating a task
type CreateTaskInput struct {
	Title       string
	Description string
	DueDate     *time.Time
}

// UpdateTaskInput represents input for updating a task. Nil fields are left
// unchanged; ClearDueDate distinguishes an explicit null due date from an
// absent one.
type UpdateTaskInput struct {
	Title        *string
	Description  *string
	DueDate      *time.Time
	ClearDueDate bool
	Completed    *bool
}

// List returns the caller's tasks in insertion order. An empty result is an
// error, not an empty success.
func (s *TaskService) List(callerID uint64, skip, limit int) ([]models.Task, error) {
	tasks, err := s.taskRepo.ListByOwner(callerID, skip, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}
	if len(tasks) == 0 {
		return nil, ErrNoTasks
	}
	return tasks, nil
}

// Get fetches a task the caller is entitled to see. Existence is checked
// before ownership, so probing a nonexistent ID never reveals whether it
// would have been forbidden.
func (s *TaskService) Get(callerID, taskID uint64) (*models.Task, error) {
	task, err := s.taskRepo.FindByID(taskID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTaskNotFound
		}
		return nil, fmt.Errorf("failed to find task: %w", err)
	}

	if Authorize(callerID, task.UserID) != Allow {
		return nil, ErrTaskForbidden
	}

	return task, nil
}

// Create persists a new task owned by the caller.
func (s *TaskService) Create(callerID uint64, input CreateTaskInput) (*models.Task, error) {
	task := &models.Task{
		UserID:      callerID,
		Title:       input.Title,
		Description: input.Description,
		DueDate:     input.DueDate,
	}

	if err := s.taskRepo.Create(task); err != nil {
		return nil, fmt.Errorf("failed to create task: %w", err)
	}

	return task, nil
}

// Update applies a partial update to a task after re-running the ownership
// check. Only the fields present in the input change; the updated timestamp
// is always refreshed.
func (s *TaskService) Update(callerID, taskID uint64, input UpdateTaskInput) (*models.Task, error) {
	task, err := s.Get(callerID, taskID)
	if err != nil {
		return nil, err
	}

	if input.Title != nil {
		task.Title = *input.Title
	}
	if input.Description != nil {
		task.Description = *input.Description
	}
	if input.ClearDueDate {
		task.DueDate = nil
	} else if input.DueDate != nil {
		task.DueDate = input.DueDate
	}
	if input.Completed != nil {
		task.Completed = *input.Completed
	}

	if err := s.taskRepo.Update(task); err != nil {
		return nil, fmt.Errorf("failed to update task: %w", err)
	}

	return task, nil
}

// Delete removes a task after re-running the ownership check.
func (s *TaskService) Delete(callerID, taskID uint64) error {
	task, err := s.Get(callerID, taskID)
	if err != nil {
		return err
	}

	if err := s.taskRepo.Delete(task.ID); err != nil {
		return fmt.Errorf("failed to delete task: %w", err)
	}

	return nil
}
