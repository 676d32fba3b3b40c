/*
Copyright © 2024 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/spf13/cobra"

	"github.com/tasklab/durable-greetings/pkg/handler"
)

type ServeCommand struct {
	serveCmd *cobra.Command
	root     *RootCommand
	port     int
}

func NewServeCommand(root *RootCommand) *ServeCommand {
	serve := &ServeCommand{
		root: root,
	}
	// serveCmd represents the serve command
	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "starts the workflow API server",
		Long:  `Starts an HTTP server for scheduling greeting workflow instances and querying their status.`,
		RunE:  serve.serve,
	}
	serve.serveCmd = serveCmd
	serve.setupFlags(serveCmd)
	return serve
}

func (s *ServeCommand) GetCommand() *cobra.Command {
	return s.serveCmd
}

func (s *ServeCommand) setupFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().IntVarP(&s.port, "port", "p", 8888, "port for the server to listen to")
}

func (s *ServeCommand) serve(cmd *cobra.Command, args []string) error {
	logger := s.root.Logger()
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

	wfHandler := handler.NewWorkflowHandler(o)
	app := fiber.New()
	app.Post("/workflow/greeting", wfHandler.ScheduleGreeting)
	app.Get("/status/orchestration/:id", wfHandler.GetStatus)

	return app.Listen(fmt.Sprintf(":%d", s.port))
}
