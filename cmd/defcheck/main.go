// Package main is the entry point for the defcheck CLI.
package main

import (
	"fmt"
	"os"

	"github.com/thoreinstein/defcheck/cmd/defcheck/commands"
	"github.com/thoreinstein/defcheck/internal/errors"
)

func main() {
	err := commands.Execute()
	if err != nil {
		var exitErr *errors.ExitError
		if errors.As(err, &exitErr) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", exitErr)
			if exitErr.Suggestion != "" {
				fmt.Fprintln(os.Stderr, exitErr.Suggestion)
			}
		} else {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
	}
	os.Exit(errors.ExitCode(err))
}
