// support-agent CLI entry point.
package main

import (
	"os"

	"github.com/thoughtful-ai/support-agent/cli/cmd"
)

func main() {
	if err := cmd.RootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
