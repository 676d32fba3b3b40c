package greeting

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestGreetingWorkflowDefinition(t *testing.T) {
	g := NewGreetingWorkflow()

	require.Equal(t, "GreetingWorkflow", g.Name())
	require.Equal(t, time.Date(2022, time.January, 1, 0, 0, 0, 0, time.UTC), g.StartAt())
	require.NotNil(t, g.GetWorkflow())

	tasks := g.GetTasks()
	require.Len(t, tasks, 2)
	require.Contains(t, tasks, TaskSayHello)
	require.Contains(t, tasks, TaskSayGoodbye)
}
