package handler

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/microsoft/durabletask-go/api"
	"github.com/pkg/errors"

	"github.com/tasklab/durable-greetings/pkg/orchestration"
	"github.com/tasklab/durable-greetings/pkg/workflow/greeting"
)

type WorkflowHandler struct {
	orchestration *orchestration.Orchestration
}

func NewWorkflowHandler(o *orchestration.Orchestration) *WorkflowHandler {
	return &WorkflowHandler{
		orchestration: o,
	}
}

// ScheduleGreeting starts a new greeting workflow instance and points the
// caller at its status resource.
func (wf *WorkflowHandler) ScheduleGreeting(c *fiber.Ctx) error {
	ctx := c.Context()
	id, err := wf.orchestration.ScheduleWorkflow(ctx, greeting.WorkflowName, api.WithInstanceID(api.InstanceID(uuid.NewString())))
	if err != nil {
		slog.Error("Failed to schedule greeting workflow", slog.Any("error", err))
		return c.Status(http.StatusInternalServerError).SendString("Failed to schedule greeting workflow")
	}

	slog.Info("Greeting workflow started", "id", id)
	c.Response().Header.Set("Location", fmt.Sprintf("/status/orchestration/%s", id))
	return c.Status(http.StatusAccepted).SendString("Greeting workflow started")
}

// GetStatus reports the current state of one orchestration instance.
func (wf *WorkflowHandler) GetStatus(c *fiber.Ctx) error {
	ctx := c.Context()
	id := c.Params("id")

	status, err := wf.orchestration.GetStatus(ctx, id)
	if err != nil {
		if errors.Is(err, api.ErrInstanceNotFound) {
			return c.Status(http.StatusNotFound).SendString("No such orchestration instance")
		}
		slog.Error("Failed to get status", slog.Any("error", err))
		return c.Status(http.StatusInternalServerError).SendString("Failed to get status")
	}
	return c.JSON(status)
}
