package repositories

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/taskcrew/backend/internal/apperrors"
	"github.com/taskcrew/backend/internal/models"
	"go.uber.org/zap"
)

// taskRepository provides data access to the tasks table
type taskRepository struct {
	db     *sql.DB
	logger *zap.Logger
}

// NewTaskRepository creates a new task repository
func NewTaskRepository(db *sql.DB, logger *zap.Logger) *taskRepository {
	return &taskRepository{
		db:     db,
		logger: logger,
	}
}

// Create inserts a new task
func (r *taskRepository) Create(ctx context.Context, task *models.Task) error {
	query := `
		INSERT INTO tasks (id, title, status, assignee, created_by)
		VALUES (?, ?, ?, ?, ?)
	`

	_, err := r.db.ExecContext(ctx, query, task.ID, task.Title, task.Status, task.Assignee, task.CreatedBy)
	if err != nil {
		r.logger.Error("failed to create task", zap.Error(err))
		return fmt.Errorf("failed to create task: %w", err)
	}

	return nil
}

// List retrieves tasks matching the filter, ordered by title
func (r *taskRepository) List(ctx context.Context, filter models.TaskFilter) ([]models.Task, error) {
	var whereConditions []string
	var args []any

	if filter.Assignee != "" {
		whereConditions = append(whereConditions, "assignee = ?")
		args = append(args, filter.Assignee)
	}

	if filter.CreatedBy != "" {
		whereConditions = append(whereConditions, "created_by = ?")
		args = append(args, filter.CreatedBy)
	}

	switch filter.Completion {
	case models.TaskCompletionOpen:
		whereConditions = append(whereConditions, "status != ?")
		args = append(args, models.TaskStatusDone)
	case models.TaskCompletionDone:
		whereConditions = append(whereConditions, "status = ?")
		args = append(args, models.TaskStatusDone)
	}

	query := `
		SELECT id, title, status, assignee, created_by, created_at
		FROM tasks
	`
	if len(whereConditions) > 0 {
		query += " WHERE " + strings.Join(whereConditions, " AND ")
	}
	query += " ORDER BY title"

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.logger.Error("failed to list tasks", zap.Error(err))
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}
	defer rows.Close()

	tasks := []models.Task{}
	for rows.Next() {
		var task models.Task
		if err := rows.Scan(
			&task.ID,
			&task.Title,
			&task.Status,
			&task.Assignee,
			&task.CreatedBy,
			&task.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan task row: %w", err)
		}
		tasks = append(tasks, task)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate task rows: %w", err)
	}

	return tasks, nil
}

// UpdateStatus updates the status of a task by ID
func (r *taskRepository) UpdateStatus(ctx context.Context, taskID string, status models.TaskStatus) error {
	query := `UPDATE tasks SET status = ? WHERE id = ?`

	result, err := r.db.ExecContext(ctx, query, status, taskID)
	if err != nil {
		r.logger.Error("failed to update task status", zap.Error(err), zap.String("task_id", taskID))
		return fmt.Errorf("failed to update task status: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows: %w", err)
	}
	if affected == 0 {
		return apperrors.ErrTaskNotFound
	}

	return nil
}

// ListEmployeesWithoutPending returns employees that have no task in an open
// status, together with their count of done tasks
func (r *taskRepository) ListEmployeesWithoutPending(ctx context.Context) ([]models.EmployeeReportItem, error) {
	query := `
		SELECT u.id, u.email,
		       COALESCE(SUM(CASE WHEN t.status = ? THEN 1 ELSE 0 END), 0) AS done_tasks
		FROM users u
		LEFT JOIN tasks t ON t.assignee = u.email
		WHERE u.access_level = ?
		  AND u.email NOT IN (
		      SELECT assignee FROM tasks WHERE status IN (?, ?)
		  )
		GROUP BY u.id, u.email
		ORDER BY u.email
	`

	rows, err := r.db.QueryContext(ctx, query,
		models.TaskStatusDone,
		models.AccessLevelEmployee,
		models.TaskStatusPending,
		models.TaskStatusInProgress,
	)
	if err != nil {
		r.logger.Error("failed to list employees without pending tasks", zap.Error(err))
		return nil, fmt.Errorf("failed to list employees without pending tasks: %w", err)
	}
	defer rows.Close()

	items := []models.EmployeeReportItem{}
	for rows.Next() {
		var item models.EmployeeReportItem
		if err := rows.Scan(&item.ID, &item.Email, &item.DoneTasks); err != nil {
			return nil, fmt.Errorf("failed to scan report row: %w", err)
		}
		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate report rows: %w", err)
	}

	return items, nil
}
