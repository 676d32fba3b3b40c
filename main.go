package main

import (
	"github.com/tasklab/durable-greetings/cmd"
)

func main() {
	root := cmd.NewRootCommand()
	root.AddCommand(cmd.NewRunCommand(root).GetCommand())
	root.AddCommand(cmd.NewServeCommand(root).GetCommand())
	root.Execute()
}
