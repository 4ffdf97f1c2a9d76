package main

import (
	"fmt"
	"os"

	"dirtree/internal/cmd"
)

// Entry point for the application
func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
