package main

import (
	"context"
	"errors"
	"log/slog"
	"os"

	"github.com/ardnew/calc/cli"
	"github.com/ardnew/calc/cli/cmd"
	"github.com/ardnew/calc/log"
)

func main() {
	err := cli.Run(context.Background(), os.Exit, os.Args[1:]...)
	if err != nil {
		// The diagnostic was already written.
		if !errors.Is(err, cmd.ErrReported) {
			log.Error(
				"run failed",
				slog.Any("error", err),
			) // slog automatically uses LogValue()
		}

		os.Exit(1)
	}
}
