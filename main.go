package main

import (
	"os"

	"github.com/ludwig-ai/ludwig-go/cli"
)

func main() {
	cmd := cli.RootCmd()
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
