package main

import (
	"context"
	"os"

	"github.com/ritik-wo/taskmate-ai-ms-teams/pkg/cli"
)

func main() {
	if err := cli.Run(context.Background(), os.Args); err != nil {
		os.Exit(1)
	}
}
