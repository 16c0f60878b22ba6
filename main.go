package main

import (
	"os"

	"github.com/substrate-dev/sandbox-agent/cmd"
	"github.com/substrate-dev/sandbox-agent/internal/errors"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(errors.GetExitCode(err))
	}
}
