package models

import "time"

// TaskStatus represents the status of a task
type TaskStatus string

const (
	TaskStatusPending    TaskStatus = "pending"
	TaskStatusInProgress TaskStatus = "in_progress"
	TaskStatusDone       TaskStatus = "done"
)

// Valid reports whether the status is one of the known statuses
func (s TaskStatus) Valid() bool {
	switch s {
	case TaskStatusPending, TaskStatusInProgress, TaskStatusDone:
		return true
	}
	return false
}

// Task represents a task assigned to an employee
type Task struct {
	ID        string     `json:"id"`
	Title     string     `json:"title"`
	Status    TaskStatus `json:"status"`
	Assignee  string     `json:"assignee"`   // email of the assigned employee
	CreatedBy string     `json:"created_by"` // email of the creating supervisor
	CreatedAt time.Time  `json:"created_at"`
}

// CreateTaskRequest represents a request to create a task
type CreateTaskRequest struct {
	Title    string     `json:"title"`
	Status   TaskStatus `json:"status"`
	Assignee string     `json:"assignee"`
}

// UpdateTaskStatusRequest represents a request to update a task's status
type UpdateTaskStatusRequest struct {
	Status TaskStatus `json:"status"`
}

// TaskCompletion narrows a task listing to open or finished tasks
type TaskCompletion string

const (
	TaskCompletionAny  TaskCompletion = ""
	TaskCompletionOpen TaskCompletion = "open" // status != done
	TaskCompletionDone TaskCompletion = "done"
)

// TaskFilter holds optional filters for task listings
type TaskFilter struct {
	Assignee   string
	CreatedBy  string
	Completion TaskCompletion
}

// EmployeeReportItem is a row of the employees-without-pending-tasks report
type EmployeeReportItem struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	DoneTasks int    `json:"done_tasks"`
}
