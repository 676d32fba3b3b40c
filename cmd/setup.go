package cmd

import (
	"context"

	"github.com/microsoft/durabletask-go/backend"
	"github.com/microsoft/durabletask-go/backend/sqlite"
	"github.com/pkg/errors"

	"github.com/tasklab/durable-greetings/pkg/orchestration"
	"github.com/tasklab/durable-greetings/pkg/tracing"
	"github.com/tasklab/durable-greetings/pkg/workflow/greeting"
)

// newOrchestration builds the sqlite-backed task hub and registers the
// greeting workflow on it. The hub is not started yet.
func newOrchestration(logger backend.Logger) (*orchestration.Orchestration, error) {
	be := sqlite.NewSqliteBackend(sqlite.NewSqliteOptions(dbPath), logger)
	o := orchestration.NewOrchestration(be, logger)
	if err := o.AddWorkflow(greeting.NewGreetingWorkflow()); err != nil {
		return nil, errors.Wrap(err, "registering greeting workflow")
	}
	return o, nil
}

// configureTracing installs the zipkin exporter when an endpoint is set.
// The returned shutdown func is a no-op otherwise.
func configureTracing(ctx context.Context) (func(), error) {
	if zipkinEndpoint == "" {
		return func() {}, nil
	}
	tp, err := tracing.ConfigureZipkin(zipkinEndpoint)
	if err != nil {
		return nil, errors.Wrap(err, "configuring zipkin tracing")
	}
	return func() { _ = tp.Shutdown(ctx) }, nil
}
