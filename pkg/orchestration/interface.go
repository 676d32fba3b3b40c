package orchestration

import (
	"time"

	"github.com/microsoft/durabletask-go/task"
)

// Workflow is a workflow definition: a named orchestrator function, the
// activities it calls, and the earliest time its instances may start.
// Definitions are constructed once, registered at startup, and never
// mutated afterwards.
type Workflow interface {
	// Name identifies the workflow within the task hub. It doubles as the
	// orchestrator name in the task registry.
	Name() string
	// StartAt is the earliest point an instance of this workflow may begin
	// executing. The zero value means instances start as soon as scheduled.
	StartAt() time.Time
	GetWorkflow() func(ctx *task.OrchestrationContext) (any, error)
	GetTasks() map[string]func(ctx task.ActivityContext) (any, error)
}
