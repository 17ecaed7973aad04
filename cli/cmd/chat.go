package cmd

import (
	"github.com/spf13/cobra"

	"github.com/thoughtful-ai/support-agent/cli/repl"
)

func init() {
	cmd := &cobra.Command{
		Use:   "chat",
		Short: "Start an interactive chat session",
		RunE: func(_ *cobra.Command, _ []string) error {
			a, err := buildAgent()
			if err != nil {
				return err
			}
			return repl.New(a).Start()
		},
	}

	RootCmd.AddCommand(cmd)
}
