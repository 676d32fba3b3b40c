package handler_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/microsoft/durabletask-go/backend/sqlite"
	"github.com/stretchr/testify/require"

	"github.com/tasklab/durable-greetings/pkg/handler"
	"github.com/tasklab/durable-greetings/pkg/logging"
	"github.com/tasklab/durable-greetings/pkg/orchestration"
	"github.com/tasklab/durable-greetings/pkg/workflow/greeting"
)

func newTestApp(t *testing.T) *fiber.App {
	t.Helper()
	logger := logging.New(logging.WithOutput(io.Discard))
	be := sqlite.NewSqliteBackend(sqlite.NewSqliteOptions(""), logger)
	o := orchestration.NewOrchestration(be, logger)
	require.NoError(t, o.AddWorkflow(greeting.NewGreetingWorkflow()))

	ctx := context.Background()
	require.NoError(t, o.Start(ctx))
	t.Cleanup(func() {
		_ = o.Stop(ctx)
	})

	wfHandler := handler.NewWorkflowHandler(o)
	app := fiber.New()
	app.Post("/workflow/greeting", wfHandler.ScheduleGreeting)
	app.Get("/status/orchestration/:id", wfHandler.GetStatus)
	return app
}

func TestScheduleGreetingAccepted(t *testing.T) {
	app := newTestApp(t)

	req := httptest.NewRequest(http.MethodPost, "/workflow/greeting", nil)
	resp, err := app.Test(req, 10000)
	require.NoError(t, err)
	require.Equal(t, http.StatusAccepted, resp.StatusCode)

	location := resp.Header.Get("Location")
	require.NotEmpty(t, location)

	statusReq := httptest.NewRequest(http.MethodGet, location, nil)
	statusResp, err := app.Test(statusReq, 10000)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, statusResp.StatusCode)

	var status orchestration.Status
	require.NoError(t, json.NewDecoder(statusResp.Body).Decode(&status))
	require.Equal(t, greeting.WorkflowName, status.Workflow)
	require.NotEmpty(t, status.InstanceID)
}

func TestGetStatusUnknownInstance(t *testing.T) {
	app := newTestApp(t)

	req := httptest.NewRequest(http.MethodGet, "/status/orchestration/does-not-exist", nil)
	resp, err := app.Test(req, 10000)
	require.NoError(t, err)
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
}
