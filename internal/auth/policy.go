// Package auth holds the declarative authorization policy: a mapping from
// protected operations to the access levels allowed to perform them.
// Keeping the policy as data makes it auditable in one place and testable
// independently of the handlers that enforce it.
package auth

import "github.com/taskcrew/backend/internal/models"

// Operation identifies a protected API operation
type Operation string

const (
	OpRegisterUser     Operation = "user.register"
	OpListUsers        Operation = "user.list"
	OpGetUser          Operation = "user.get"
	OpListSupervisors  Operation = "user.list_supervisors"
	OpCreateTask       Operation = "task.create"
	OpUpdateTaskStatus Operation = "task.update_status"
)

// policy maps each protected operation to its allowed access levels
var policy = map[Operation][]models.AccessLevel{
	OpRegisterUser:     {models.AccessLevelManager, models.AccessLevelSupervisor},
	OpListUsers:        {models.AccessLevelManager, models.AccessLevelSupervisor},
	OpGetUser:          {models.AccessLevelManager, models.AccessLevelSupervisor, models.AccessLevelEmployee},
	OpListSupervisors:  {models.AccessLevelManager},
	OpCreateTask:       {models.AccessLevelSupervisor},
	OpUpdateTaskStatus: {models.AccessLevelSupervisor, models.AccessLevelEmployee},
}

// Allowed reports whether the access level may perform the operation.
// Unknown operations allow nothing.
func Allowed(op Operation, level models.AccessLevel) bool {
	for _, allowed := range policy[op] {
		if level == allowed {
			return true
		}
	}
	return false
}

// AllowedLevels returns the access levels permitted for the operation
func AllowedLevels(op Operation) []models.AccessLevel {
	return policy[op]
}
