package repositories

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/taskcrew/backend/internal/apperrors"
	"github.com/taskcrew/backend/internal/models"
	"go.uber.org/zap"
)

// setupTaskTestRepository creates a task repository with a mock database
func setupTaskTestRepository(t *testing.T) (*taskRepository, sqlmock.Sqlmock, func()) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	repo := NewTaskRepository(db, zap.NewNop())

	cleanup := func() {
		db.Close()
	}

	return repo, mock, cleanup
}

func taskColumns() []string {
	return []string{"id", "title", "status", "assignee", "created_by", "created_at"}
}

func TestTaskRepository_Create(t *testing.T) {
	task := &models.Task{
		ID:        "task-1",
		Title:     "Prepare report",
		Status:    models.TaskStatusPending,
		Assignee:  "alice@example.com",
		CreatedBy: "carol@example.com",
	}

	tests := []struct {
		name          string
		setupMock     func(sqlmock.Sqlmock)
		expectedError bool
	}{
		{
			name: "success",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(`INSERT INTO tasks`).
					WithArgs("task-1", "Prepare report", models.TaskStatusPending, "alice@example.com", "carol@example.com").
					WillReturnResult(sqlmock.NewResult(0, 1))
			},
		},
		{
			name: "database error",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(`INSERT INTO tasks`).
					WithArgs("task-1", "Prepare report", models.TaskStatusPending, "alice@example.com", "carol@example.com").
					WillReturnError(errors.New("database error"))
			},
			expectedError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock, cleanup := setupTaskTestRepository(t)
			defer cleanup()

			tt.setupMock(mock)

			err := repo.Create(context.Background(), task)

			if tt.expectedError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}

			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestTaskRepository_List(t *testing.T) {
	createdAt := time.Date(2026, 2, 1, 9, 0, 0, 0, time.UTC)

	tests := []struct {
		name        string
		filter      models.TaskFilter
		setupMock   func(sqlmock.Sqlmock)
		expectedLen int
	}{
		{
			name:   "no filter lists everything",
			filter: models.TaskFilter{},
			setupMock: func(mock sqlmock.Sqlmock) {
				rows := sqlmock.NewRows(taskColumns()).
					AddRow("task-1", "Prepare report", "pending", "alice@example.com", "carol@example.com", createdAt).
					AddRow("task-2", "Review code", "done", "bob@example.com", "carol@example.com", createdAt)
				mock.ExpectQuery(`SELECT (.+) FROM tasks`).WillReturnRows(rows)
			},
			expectedLen: 2,
		},
		{
			name:   "by assignee",
			filter: models.TaskFilter{Assignee: "alice@example.com"},
			setupMock: func(mock sqlmock.Sqlmock) {
				rows := sqlmock.NewRows(taskColumns()).
					AddRow("task-1", "Prepare report", "pending", "alice@example.com", "carol@example.com", createdAt)
				mock.ExpectQuery(`SELECT (.+) FROM tasks WHERE assignee = \?`).
					WithArgs("alice@example.com").
					WillReturnRows(rows)
			},
			expectedLen: 1,
		},
		{
			name:   "by creator",
			filter: models.TaskFilter{CreatedBy: "carol@example.com"},
			setupMock: func(mock sqlmock.Sqlmock) {
				rows := sqlmock.NewRows(taskColumns()).
					AddRow("task-1", "Prepare report", "pending", "alice@example.com", "carol@example.com", createdAt)
				mock.ExpectQuery(`SELECT (.+) FROM tasks WHERE created_by = \?`).
					WithArgs("carol@example.com").
					WillReturnRows(rows)
			},
			expectedLen: 1,
		},
		{
			name:   "open tasks exclude done",
			filter: models.TaskFilter{Completion: models.TaskCompletionOpen},
			setupMock: func(mock sqlmock.Sqlmock) {
				rows := sqlmock.NewRows(taskColumns()).
					AddRow("task-1", "Prepare report", "in_progress", "alice@example.com", "carol@example.com", createdAt)
				mock.ExpectQuery(`SELECT (.+) FROM tasks WHERE status != \?`).
					WithArgs(models.TaskStatusDone).
					WillReturnRows(rows)
			},
			expectedLen: 1,
		},
		{
			name: "assignee and done combined",
			filter: models.TaskFilter{
				Assignee:   "alice@example.com",
				Completion: models.TaskCompletionDone,
			},
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`SELECT (.+) FROM tasks WHERE assignee = \? AND status = \?`).
					WithArgs("alice@example.com", models.TaskStatusDone).
					WillReturnRows(sqlmock.NewRows(taskColumns()))
			},
			expectedLen: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock, cleanup := setupTaskTestRepository(t)
			defer cleanup()

			tt.setupMock(mock)

			tasks, err := repo.List(context.Background(), tt.filter)

			require.NoError(t, err)
			assert.NotNil(t, tasks)
			assert.Len(t, tasks, tt.expectedLen)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestTaskRepository_UpdateStatus(t *testing.T) {
	tests := []struct {
		name          string
		taskID        string
		status        models.TaskStatus
		setupMock     func(sqlmock.Sqlmock)
		expectedError error
	}{
		{
			name:   "success",
			taskID: "task-1",
			status: models.TaskStatusDone,
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(`UPDATE tasks SET status`).
					WithArgs(models.TaskStatusDone, "task-1").
					WillReturnResult(sqlmock.NewResult(0, 1))
			},
		},
		{
			name:   "unknown task maps to ErrTaskNotFound",
			taskID: "missing-task",
			status: models.TaskStatusDone,
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(`UPDATE tasks SET status`).
					WithArgs(models.TaskStatusDone, "missing-task").
					WillReturnResult(sqlmock.NewResult(0, 0))
			},
			expectedError: apperrors.ErrTaskNotFound,
		},
		{
			name:   "database error",
			taskID: "task-1",
			status: models.TaskStatusInProgress,
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(`UPDATE tasks SET status`).
					WithArgs(models.TaskStatusInProgress, "task-1").
					WillReturnError(errors.New("database error"))
			},
			expectedError: errors.New("database error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock, cleanup := setupTaskTestRepository(t)
			defer cleanup()

			tt.setupMock(mock)

			err := repo.UpdateStatus(context.Background(), tt.taskID, tt.status)

			if tt.expectedError != nil {
				assert.Error(t, err)
				if errors.Is(tt.expectedError, apperrors.ErrTaskNotFound) {
					assert.ErrorIs(t, err, apperrors.ErrTaskNotFound)
				}
			} else {
				assert.NoError(t, err)
			}

			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestTaskRepository_ListEmployeesWithoutPending(t *testing.T) {
	tests := []struct {
		name        string
		setupMock   func(sqlmock.Sqlmock)
		expected    []models.EmployeeReportItem
		expectError bool
	}{
		{
			name: "employees with counts",
			setupMock: func(mock sqlmock.Sqlmock) {
				rows := sqlmock.NewRows([]string{"id", "email", "done_tasks"}).
					AddRow("id-1", "alice@example.com", 3).
					AddRow("id-2", "bob@example.com", 0)
				mock.ExpectQuery(`SELECT u.id, u.email`).
					WithArgs(
						models.TaskStatusDone,
						models.AccessLevelEmployee,
						models.TaskStatusPending,
						models.TaskStatusInProgress,
					).
					WillReturnRows(rows)
			},
			expected: []models.EmployeeReportItem{
				{ID: "id-1", Email: "alice@example.com", DoneTasks: 3},
				{ID: "id-2", Email: "bob@example.com", DoneTasks: 0},
			},
		},
		{
			name: "no employees returns empty slice",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`SELECT u.id, u.email`).
					WithArgs(
						models.TaskStatusDone,
						models.AccessLevelEmployee,
						models.TaskStatusPending,
						models.TaskStatusInProgress,
					).
					WillReturnRows(sqlmock.NewRows([]string{"id", "email", "done_tasks"}))
			},
			expected: []models.EmployeeReportItem{},
		},
		{
			name: "database error",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`SELECT u.id, u.email`).
					WillReturnError(errors.New("database error"))
			},
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock, cleanup := setupTaskTestRepository(t)
			defer cleanup()

			tt.setupMock(mock)

			items, err := repo.ListEmployeesWithoutPending(context.Background())

			if tt.expectError {
				assert.Error(t, err)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.expected, items)
			}

			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
