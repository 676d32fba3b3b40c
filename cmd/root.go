/*
Copyright © 2024 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/tasklab/durable-greetings/pkg/logging"
)

var (
	debug          bool
	dbPath         string
	zipkinEndpoint string
)

type RootCommand struct {
	rootCmd *cobra.Command
	logger  logging.Logger
}

func NewRootCommand() *RootCommand {
	// rootCmd represents the base command when called without any subcommands
	rootCmd := &cobra.Command{
		Use:   "durable-greetings",
		Short: "A greeting workflow on a durable task hub",
		Long: `durable-greetings registers the greeting workflow with a durable
task hub, then either runs it once or serves an HTTP API for scheduling it.`,
	}
	setFlags(rootCmd)
	return &RootCommand{
		rootCmd: rootCmd,
	}
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func (r *RootCommand) Execute() {
	err := r.rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func (r *RootCommand) AddCommand(cmd *cobra.Command) {
	r.rootCmd.AddCommand(cmd)
}

// Logger builds the process logger. Call it from a subcommand's Run so the
// debug flag has been parsed.
func (r *RootCommand) Logger() logging.Logger {
	logLevel := slog.LevelInfo
	if debug {
		logLevel = slog.LevelDebug
	}
	r.logger = logging.New(logging.WithLevel(logLevel))
	return r.logger
}

func setFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().BoolVarP(&debug, "debug", "d", false, "Debug mode")
	cmd.PersistentFlags().StringVar(&dbPath, "db", os.Getenv("DURABLE_GREETINGS_DB"),
		"sqlite database file backing the task hub, empty for in-memory")
	cmd.PersistentFlags().StringVar(&zipkinEndpoint, "zipkin", "",
		"zipkin collector endpoint, e.g. http://localhost:9411/api/v2/spans, empty disables tracing")
}
