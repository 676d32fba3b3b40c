/*
Copyright © 2024 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/tasklab/durable-greetings/pkg/workflow/greeting"
)

type RunCommand struct {
	runCmd  *cobra.Command
	root    *RootCommand
	timeout time.Duration
}

func NewRunCommand(root *RootCommand) *RunCommand {
	run := &RunCommand{
		root: root,
	}
	// runCmd represents the run command
	runCmd := &cobra.Command{
		Use:   "run",
		Short: "runs the greeting workflow once",
		Long:  `Schedules one instance of the greeting workflow, waits for it to complete and logs its output.`,
		RunE:  run.run,
	}
	run.runCmd = runCmd
	run.setupFlags(runCmd)
	return run
}

func (r *RunCommand) GetCommand() *cobra.Command {
	return r.runCmd
}

func (r *RunCommand) setupFlags(cmd *cobra.Command) {
	cmd.Flags().DurationVarP(&r.timeout, "timeout", "t", 30*time.Second,
		"how long to wait for the workflow to complete")
}

func (r *RunCommand) run(cmd *cobra.Command, args []string) error {
	logger := r.root.Logger()
	ctx := cmd.Context()

	shutdownTracing, err := configureTracing(ctx)
	if err != nil {
		return err
	}
	defer shutdownTracing()

	o, err := newOrchestration(logger)
	if err != nil {
		return err
	}
	if err := o.Start(ctx); err != nil {
		return err
	}
	defer o.Stop(ctx)

	id, err := o.ScheduleWorkflow(ctx, greeting.WorkflowName)
	if err != nil {
		return errors.Wrap(err, "scheduling greeting workflow")
	}
	logger.InfoS("greeting workflow scheduled", "id", id)

	waitCtx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()
	status, err := o.WaitForCompletion(waitCtx, id)
	if err != nil {
		return err
	}

	logger.InfoS("greeting workflow finished", "status", status.RuntimeStatus, "output", status.Output)
	return nil
}
