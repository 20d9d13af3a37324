package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/taskcrew/backend/internal/models"
)

func TestAllowed(t *testing.T) {
	tests := []struct {
		name    string
		op      Operation
		level   models.AccessLevel
		allowed bool
	}{
		{"manager can register users", OpRegisterUser, models.AccessLevelManager, true},
		{"supervisor can register users", OpRegisterUser, models.AccessLevelSupervisor, true},
		{"employee cannot register users", OpRegisterUser, models.AccessLevelEmployee, false},

		{"manager can list users", OpListUsers, models.AccessLevelManager, true},
		{"supervisor can list users", OpListUsers, models.AccessLevelSupervisor, true},
		{"employee cannot list users", OpListUsers, models.AccessLevelEmployee, false},

		{"employee can get a user", OpGetUser, models.AccessLevelEmployee, true},
		{"supervisor can get a user", OpGetUser, models.AccessLevelSupervisor, true},
		{"manager can get a user", OpGetUser, models.AccessLevelManager, true},

		{"only manager lists supervisors", OpListSupervisors, models.AccessLevelManager, true},
		{"supervisor cannot list supervisors", OpListSupervisors, models.AccessLevelSupervisor, false},
		{"employee cannot list supervisors", OpListSupervisors, models.AccessLevelEmployee, false},

		{"supervisor can create tasks", OpCreateTask, models.AccessLevelSupervisor, true},
		{"manager cannot create tasks", OpCreateTask, models.AccessLevelManager, false},
		{"employee cannot create tasks", OpCreateTask, models.AccessLevelEmployee, false},

		{"supervisor can update task status", OpUpdateTaskStatus, models.AccessLevelSupervisor, true},
		{"employee can update task status", OpUpdateTaskStatus, models.AccessLevelEmployee, true},
		{"manager cannot update task status", OpUpdateTaskStatus, models.AccessLevelManager, false},

		{"unknown operation allows nothing", Operation("task.delete"), models.AccessLevelManager, false},
		{"unknown level is never allowed", OpGetUser, models.AccessLevel("admin"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.allowed, Allowed(tt.op, tt.level))
		})
	}
}

func TestAllowedLevels(t *testing.T) {
	levels := AllowedLevels(OpCreateTask)
	assert.Equal(t, []models.AccessLevel{models.AccessLevelSupervisor}, levels)

	assert.Empty(t, AllowedLevels(Operation("unknown.op")))
}
