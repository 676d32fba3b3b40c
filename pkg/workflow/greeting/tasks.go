package greeting

import (
	"log/slog"

	"github.com/microsoft/durabletask-go/task"
)

// sayHello takes no input and returns a fixed greeting.
func (g *GreetingWorkflow) sayHello(ctx task.ActivityContext) (any, error) {
	slog.Info("executing task", "task", TaskSayHello)
	return "Hello world!", nil
}

// sayGoodbye takes no input and returns a fixed farewell.
func (g *GreetingWorkflow) sayGoodbye(ctx task.ActivityContext) (any, error) {
	slog.Info("executing task", "task", TaskSayGoodbye)
	return "goodbye everyone", nil
}
