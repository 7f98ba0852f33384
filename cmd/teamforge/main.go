// Package main is the entry point for the teamforge CLI.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/fatih/color"

	"github.com/thoreinstein/teamforge/cmd/teamforge/commands"
	"github.com/thoreinstein/teamforge/internal/errors"
	"github.com/thoreinstein/teamforge/internal/logging"
)

func main() {
	slog.SetDefault(logging.Default())

	err := commands.Execute()
	if err == nil {
		return
	}

	fmt.Fprintln(os.Stderr, color.RedString("Error:"), err)
	var exitErr *errors.ExitError
	if errors.As(err, &exitErr) && exitErr.Suggestion != "" {
		fmt.Fprintln(os.Stderr, color.YellowString("Hint:"), exitErr.Suggestion)
	}
	os.Exit(errors.ExitCode(err))
}
