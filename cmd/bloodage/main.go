package main

import (
	"os"

	"github.com/wonny/bloodage/cmd/bloodage/commands"
)

// main is the entry point for the bloodage CLI
func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
