package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/taskcrew/backend/internal/models"
	"go.uber.org/zap"
)

// TaskRepository is the interface that wraps methods for tasks table data access
type TaskRepository interface {
	// Method Create inserts a new task into the database.
	Create(ctx context.Context, task *models.Task) error
	// Method List retrieves tasks matching the filter, ordered by title.
	List(ctx context.Context, filter models.TaskFilter) ([]models.Task, error)
	// Method UpdateStatus updates the status of a task by ID.
	//
	// If no task with such ID exists, apperrors.ErrTaskNotFound will be returned.
	UpdateStatus(ctx context.Context, taskID string, status models.TaskStatus) error
	// Method ListEmployeesWithoutPending returns employees with no open task,
	// together with their count of done tasks.
	ListEmployeesWithoutPending(ctx context.Context) ([]models.EmployeeReportItem, error)
}

// taskService implements task business logic
type taskService struct {
	taskRepo TaskRepository
	userRepo UserRepository
	logger   *zap.Logger
}

// NewTaskService creates a new task service
func NewTaskService(taskRepo TaskRepository, userRepo UserRepository, logger *zap.Logger) *taskService {
	return &taskService{
		taskRepo: taskRepo,
		userRepo: userRepo,
		logger:   logger,
	}
}

// Create creates a new task. The creator is recorded by email, looked up from
// the authenticated user's ID so clients cannot spoof it.
func (s *taskService) Create(ctx context.Context, creatorID string, req *models.CreateTaskRequest) (*models.Task, error) {
	title := strings.TrimSpace(req.Title)
	assignee := strings.TrimSpace(req.Assignee)
	if title == "" || assignee == "" || req.Status == "" {
		return nil, fmt.Errorf("title, status and assignee are required")
	}

	if !req.Status.Valid() {
		return nil, fmt.Errorf("invalid task status %q", req.Status)
	}

	creator, err := s.userRepo.GetByID(ctx, creatorID)
	if err != nil {
		return nil, err
	}

	task := &models.Task{
		ID:        uuid.NewString(),
		Title:     title,
		Status:    req.Status,
		Assignee:  assignee,
		CreatedBy: creator.Email,
	}

	if err := s.taskRepo.Create(ctx, task); err != nil {
		return nil, err
	}

	s.logger.Info("task created",
		zap.String("task_id", task.ID),
		zap.String("assignee", task.Assignee),
		zap.String("created_by", task.CreatedBy),
	)

	return task, nil
}

// List returns tasks matching the filter
func (s *taskService) List(ctx context.Context, filter models.TaskFilter) ([]models.Task, error) {
	return s.taskRepo.List(ctx, filter)
}

// UpdateStatus changes a task's status
func (s *taskService) UpdateStatus(ctx context.Context, taskID string, status models.TaskStatus) error {
	if status == "" {
		return fmt.Errorf("status is required")
	}
	if !status.Valid() {
		return fmt.Errorf("invalid task status %q", status)
	}

	return s.taskRepo.UpdateStatus(ctx, taskID, status)
}

// EmployeesWithoutPending returns the report of employees with no open tasks
func (s *taskService) EmployeesWithoutPending(ctx context.Context) ([]models.EmployeeReportItem, error) {
	return s.taskRepo.ListEmployeesWithoutPending(ctx)
}
