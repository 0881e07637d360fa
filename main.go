package main

import (
	"fmt"
	"os"

	"github.com/octologs/wheelpicker/cmd"
	"github.com/octologs/wheelpicker/internal/logging"
)

func main() {
	// Initialize logging (TUI output owns the terminal, logs go to a file)
	if err := logging.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialize logging: %v\n", err)
	}

	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
