package greeting

import (
	"time"

	"github.com/microsoft/durabletask-go/task"
)

const (
	// WorkflowName is the orchestrator name in the task registry.
	WorkflowName = "GreetingWorkflow"

	TaskSayHello   = "SayHello"
	TaskSayGoodbye = "SayGoodbye"
)

// startAt is the definition's start timestamp. Instances are never scheduled
// to begin before it.
var startAt = time.Date(2022, time.January, 1, 0, 0, 0, 0, time.UTC)

// GreetingWorkflow greets and then says farewell: two tasks with a single
// ordering edge, SayGoodbye runs after SayHello has completed.
type GreetingWorkflow struct {
}

func NewGreetingWorkflow() *GreetingWorkflow {
	return &GreetingWorkflow{}
}

func (g *GreetingWorkflow) Name() string {
	return WorkflowName
}

func (g *GreetingWorkflow) StartAt() time.Time {
	return startAt
}

func (g *GreetingWorkflow) GetWorkflow() func(ctx *task.OrchestrationContext) (any, error) {
	return g.greetingOrchestration
}

func (g *GreetingWorkflow) GetTasks() map[string]func(ctx task.ActivityContext) (any, error) {
	return map[string]func(ctx task.ActivityContext) (any, error){
		TaskSayHello:   g.sayHello,
		TaskSayGoodbye: g.sayGoodbye,
	}
}

// greetingOrchestration awaits SayHello before calling SayGoodbye; that await
// is the workflow's only ordering constraint.
func (g *GreetingWorkflow) greetingOrchestration(ctx *task.OrchestrationContext) (any, error) {
	var hello string
	if err := ctx.CallActivity(TaskSayHello).Await(&hello); err != nil {
		return nil, err
	}

	var goodbye string
	if err := ctx.CallActivity(TaskSayGoodbye).Await(&goodbye); err != nil {
		return nil, err
	}

	return []string{hello, goodbye}, nil
}
