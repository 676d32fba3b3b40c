package orchestration

import (
	"context"
	"time"

	"github.com/microsoft/durabletask-go/api"
	"github.com/microsoft/durabletask-go/backend"
	"github.com/microsoft/durabletask-go/task"
	"github.com/pkg/errors"
)

// Status is a client-facing view of one orchestration instance, flattened
// from the backend's orchestration metadata.
type Status struct {
	InstanceID    string    `json:"instance_id"`
	Workflow      string    `json:"workflow"`
	RuntimeStatus string    `json:"runtime_status"`
	CreatedAt     time.Time `json:"created_at"`
	LastUpdatedAt time.Time `json:"last_updated_at"`
	Output        string    `json:"output,omitempty"`
	Failure       string    `json:"failure,omitempty"`
}

// Orchestration owns the task registry, the task hub worker and the client
// against a single backend. All workflows must be added before Start.
type Orchestration struct {
	workflows     map[string]Workflow
	taskRegistry  *task.TaskRegistry
	be            backend.Backend
	logger        backend.Logger
	taskHubWorker backend.TaskHubWorker
	taskHubClient backend.TaskHubClient
}

func NewOrchestration(be backend.Backend, logger backend.Logger) *Orchestration {
	return &Orchestration{
		be:           be,
		taskRegistry: task.NewTaskRegistry(),
		logger:       logger,
		workflows:    make(map[string]Workflow),
	}
}

// AddWorkflow registers the workflow's orchestrator and all of its tasks
// with the task registry. The registry rejects duplicate names.
func (o *Orchestration) AddWorkflow(w Workflow) error {
	if _, ok := o.workflows[w.Name()]; ok {
		return errors.Errorf("workflow %q already registered", w.Name())
	}
	if err := o.taskRegistry.AddOrchestratorN(w.Name(), w.GetWorkflow()); err != nil {
		return errors.Wrapf(err, "registering workflow %q", w.Name())
	}
	for name, fn := range w.GetTasks() {
		if err := o.taskRegistry.AddActivityN(name, fn); err != nil {
			return errors.Wrapf(err, "registering task %q of workflow %q", name, w.Name())
		}
	}
	o.workflows[w.Name()] = w
	return nil
}

func (o *Orchestration) initTaskHub(ctx context.Context) error {
	executor := task.NewTaskExecutor(o.taskRegistry)
	orchestrationWorker := backend.NewOrchestrationWorker(o.be, executor, o.logger)
	activityWorker := backend.NewActivityTaskWorker(o.be, executor, o.logger)
	o.taskHubWorker = backend.NewTaskHubWorker(o.be, orchestrationWorker, activityWorker, o.logger)

	if err := o.taskHubWorker.Start(ctx); err != nil {
		return errors.Wrap(err, "starting task hub worker")
	}

	o.taskHubClient = backend.NewTaskHubClient(o.be)
	return nil
}

// Start brings up the task hub worker and client. Execution, retries and
// teardown of scheduled instances are owned by the backend from here on.
func (o *Orchestration) Start(ctx context.Context) error {
	return o.initTaskHub(ctx)
}

func (o *Orchestration) Stop(ctx context.Context) error {
	return o.taskHubWorker.Shutdown(ctx)
}

// ScheduleWorkflow starts a new instance of a registered workflow. If the
// definition carries a future start time, the instance is scheduled to begin
// no earlier than that.
func (o *Orchestration) ScheduleWorkflow(ctx context.Context, name string, arg ...api.NewOrchestrationOptions) (api.InstanceID, error) {
	w, ok := o.workflows[name]
	if !ok {
		return "", errors.Errorf("unknown workflow %q", name)
	}
	if startAt := w.StartAt(); startAt.After(time.Now()) {
		arg = append([]api.NewOrchestrationOptions{api.WithStartTime(startAt)}, arg...)
	}
	return o.taskHubClient.ScheduleNewOrchestration(ctx, name, arg...)
}

// WaitForCompletion blocks until the instance reaches a terminal state or
// the context is done.
func (o *Orchestration) WaitForCompletion(ctx context.Context, id api.InstanceID) (Status, error) {
	metadata, err := o.taskHubClient.WaitForOrchestrationCompletion(ctx, id)
	if err != nil {
		return Status{}, errors.Wrapf(err, "waiting for orchestration %q", id)
	}
	return toStatus(metadata), nil
}

// GetStatus fetches the current state of an instance. Backend errors such as
// api.ErrInstanceNotFound pass through unwrapped so callers can classify
// them.
func (o *Orchestration) GetStatus(ctx context.Context, id string) (Status, error) {
	metadata, err := o.taskHubClient.FetchOrchestrationMetadata(ctx, api.InstanceID(id))
	if err != nil {
		return Status{}, err
	}
	return toStatus(metadata), nil
}

func toStatus(m *api.OrchestrationMetadata) Status {
	s := Status{
		InstanceID:    string(m.InstanceID),
		Workflow:      m.Name,
		RuntimeStatus: m.RuntimeStatus.String(),
		CreatedAt:     m.CreatedAt,
		LastUpdatedAt: m.LastUpdatedAt,
		Output:        m.SerializedOutput,
	}
	if m.FailureDetails != nil {
		s.Failure = m.FailureDetails.GetErrorMessage()
	}
	return s
}
