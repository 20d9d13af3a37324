package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/taskcrew/backend/internal/apperrors"
	"github.com/taskcrew/backend/internal/auth"
	authMiddleware "github.com/taskcrew/backend/internal/auth/middleware"
	"github.com/taskcrew/backend/internal/models"
	"go.uber.org/zap"
)

// TaskService is the interface that wraps methods for task business logic.
type TaskService interface {
	// Method Create creates a new task on behalf of the authenticated creator.
	//
	// "creatorID" parameter is the authenticated user's ID; the creator is
	// recorded by email looked up from it.
	//
	// If the creator account no longer exists, apperrors.ErrUserNotFound will be
	// returned together with "nil" value. Validation failures return a descriptive error.
	Create(ctx context.Context, creatorID string, req *models.CreateTaskRequest) (*models.Task, error)
	// Method List retrieves tasks matching the filter, ordered by title.
	List(ctx context.Context, filter models.TaskFilter) ([]models.Task, error)
	// Method UpdateStatus changes a task's status.
	//
	// If no task with such ID exists, apperrors.ErrTaskNotFound will be returned.
	UpdateStatus(ctx context.Context, taskID string, status models.TaskStatus) error
	// Method EmployeesWithoutPending returns the report of employees with no open tasks.
	EmployeesWithoutPending(ctx context.Context) ([]models.EmployeeReportItem, error)
}

// TaskHandler handles task-related HTTP requests
type TaskHandler struct {
	BaseHandler
	taskService TaskService
}

// NewTaskHandler creates a new task handler
func NewTaskHandler(taskService TaskService, logger *zap.Logger) *TaskHandler {
	return &TaskHandler{
		BaseHandler: BaseHandler{Logger: logger},
		taskService: taskService,
	}
}

// RegisterRoutes registers all task handler routes.
// Task reads are public; creation and status updates are guarded by the policy.
func (h *TaskHandler) RegisterRoutes(r chi.Router, guard authMiddleware.Guard) {
	r.Route("/tasks", func(r chi.Router) {
		r.With(guard(auth.OpCreateTask)).Post("/", h.Create)
		r.Get("/", h.List)
		r.Get("/pending", h.ListPending)
		r.Get("/done", h.ListDone)
		r.Get("/user/{assignee}", h.ListByAssignee)
		r.Get("/user/{assignee}/pending", h.ListByAssigneePending)
		r.Get("/user/{assignee}/done", h.ListByAssigneeDone)
		r.Get("/created-by/{email}", h.ListCreatedBy)
		r.With(guard(auth.OpUpdateTaskStatus)).Patch("/{id}", h.UpdateStatus)
	})
	r.Get("/reports/employees-without-pending", h.EmployeesWithoutPending)
}

// Create handles POST /tasks
// @Summary Create a task
// @Description Create a new task assigned to an employee. Requires supervisor access. The creator is recorded from the authenticated user.
// @Tags tasks
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param request body models.CreateTaskRequest true "Task creation request"
// @Success 201 {object} models.Task "Task created"
// @Failure 400 {object} map[string]string "Missing fields or invalid status"
// @Failure 401 {object} map[string]string "Missing or invalid token"
// @Failure 403 {object} map[string]string "Insufficient access level"
// @Failure 404 {object} map[string]string "Creator account not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /tasks [post]
func (h *TaskHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.CreateTaskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	creatorID, ok := authMiddleware.GetUserID(r.Context())
	if !ok {
		h.RespondError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	task, err := h.taskService.Create(r.Context(), creatorID, &req)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			h.RespondError(w, http.StatusNotFound, "creator account not found")
			return
		}
		if strings.Contains(err.Error(), "required") || strings.Contains(err.Error(), "invalid") {
			h.RespondError(w, http.StatusBadRequest, err.Error())
			return
		}
		h.Logger.Error("failed to create task", zap.Error(err))
		h.RespondError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	h.RespondJSON(w, http.StatusCreated, task)
}

// List handles GET /tasks
// @Summary List all tasks
// @Description List all tasks ordered by title.
// @Tags tasks
// @Produce json
// @Success 200 {array} models.Task "Tasks"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /tasks [get]
func (h *TaskHandler) List(w http.ResponseWriter, r *http.Request) {
	h.respondTaskList(w, r, models.TaskFilter{})
}

// ListPending handles GET /tasks/pending
// @Summary List open tasks
// @Description List all tasks that are not done, ordered by title.
// @Tags tasks
// @Produce json
// @Success 200 {array} models.Task "Tasks"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /tasks/pending [get]
func (h *TaskHandler) ListPending(w http.ResponseWriter, r *http.Request) {
	h.respondTaskList(w, r, models.TaskFilter{Completion: models.TaskCompletionOpen})
}

// ListDone handles GET /tasks/done
// @Summary List done tasks
// @Description List all done tasks ordered by title.
// @Tags tasks
// @Produce json
// @Success 200 {array} models.Task "Tasks"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /tasks/done [get]
func (h *TaskHandler) ListDone(w http.ResponseWriter, r *http.Request) {
	h.respondTaskList(w, r, models.TaskFilter{Completion: models.TaskCompletionDone})
}

// ListByAssignee handles GET /tasks/user/{assignee}
// @Summary List tasks of an assignee
// @Description List all tasks assigned to the given employee email, ordered by title.
// @Tags tasks
// @Produce json
// @Param assignee path string true "Assignee email"
// @Success 200 {array} models.Task "Tasks"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /tasks/user/{assignee} [get]
func (h *TaskHandler) ListByAssignee(w http.ResponseWriter, r *http.Request) {
	h.respondTaskList(w, r, models.TaskFilter{Assignee: chi.URLParam(r, "assignee")})
}

// ListByAssigneePending handles GET /tasks/user/{assignee}/pending
// @Summary List open tasks of an assignee
// @Tags tasks
// @Produce json
// @Param assignee path string true "Assignee email"
// @Success 200 {array} models.Task "Tasks"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /tasks/user/{assignee}/pending [get]
func (h *TaskHandler) ListByAssigneePending(w http.ResponseWriter, r *http.Request) {
	h.respondTaskList(w, r, models.TaskFilter{
		Assignee:   chi.URLParam(r, "assignee"),
		Completion: models.TaskCompletionOpen,
	})
}

// ListByAssigneeDone handles GET /tasks/user/{assignee}/done
// @Summary List done tasks of an assignee
// @Tags tasks
// @Produce json
// @Param assignee path string true "Assignee email"
// @Success 200 {array} models.Task "Tasks"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /tasks/user/{assignee}/done [get]
func (h *TaskHandler) ListByAssigneeDone(w http.ResponseWriter, r *http.Request) {
	h.respondTaskList(w, r, models.TaskFilter{
		Assignee:   chi.URLParam(r, "assignee"),
		Completion: models.TaskCompletionDone,
	})
}

// ListCreatedBy handles GET /tasks/created-by/{email}
// @Summary List tasks created by a user
// @Description List all tasks created by the given email, ordered by title.
// @Tags tasks
// @Produce json
// @Param email path string true "Creator email"
// @Success 200 {array} models.Task "Tasks"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /tasks/created-by/{email} [get]
func (h *TaskHandler) ListCreatedBy(w http.ResponseWriter, r *http.Request) {
	h.respondTaskList(w, r, models.TaskFilter{CreatedBy: chi.URLParam(r, "email")})
}

// UpdateStatus handles PATCH /tasks/{id}
// @Summary Update a task's status
// @Description Change the status of a task. Requires supervisor or employee access.
// @Tags tasks
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Task ID"
// @Param request body models.UpdateTaskStatusRequest true "Status update request"
// @Success 200 {object} map[string]string "Task updated"
// @Failure 400 {object} map[string]string "Missing or invalid status"
// @Failure 401 {object} map[string]string "Missing or invalid token"
// @Failure 403 {object} map[string]string "Insufficient access level"
// @Failure 404 {object} map[string]string "Task not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /tasks/{id} [patch]
func (h *TaskHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	taskID := chi.URLParam(r, "id")

	var req models.UpdateTaskStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.taskService.UpdateStatus(r.Context(), taskID, req.Status); err != nil {
		if errors.Is(err, apperrors.ErrTaskNotFound) {
			h.RespondError(w, http.StatusNotFound, "task not found")
			return
		}
		if strings.Contains(err.Error(), "required") || strings.Contains(err.Error(), "invalid") {
			h.RespondError(w, http.StatusBadRequest, err.Error())
			return
		}
		h.Logger.Error("failed to update task status", zap.Error(err), zap.String("task_id", taskID))
		h.RespondError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	h.RespondJSON(w, http.StatusOK, map[string]string{"message": "task updated successfully"})
}

// EmployeesWithoutPending handles GET /reports/employees-without-pending
// @Summary Report employees without open tasks
// @Description List employees that have no pending or in-progress task, with their count of done tasks.
// @Tags reports
// @Produce json
// @Success 200 {array} models.EmployeeReportItem "Report rows"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /reports/employees-without-pending [get]
func (h *TaskHandler) EmployeesWithoutPending(w http.ResponseWriter, r *http.Request) {
	items, err := h.taskService.EmployeesWithoutPending(r.Context())
	if err != nil {
		h.Logger.Error("failed to build employee report", zap.Error(err))
		h.RespondError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	h.RespondJSON(w, http.StatusOK, items)
}

// respondTaskList runs a filtered listing and writes the result
func (h *TaskHandler) respondTaskList(w http.ResponseWriter, r *http.Request, filter models.TaskFilter) {
	tasks, err := h.taskService.List(r.Context(), filter)
	if err != nil {
		h.Logger.Error("failed to list tasks", zap.Error(err))
		h.RespondError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	h.RespondJSON(w, http.StatusOK, tasks)
}
