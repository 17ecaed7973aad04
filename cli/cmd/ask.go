package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/thoughtful-ai/support-agent/sdk/agent"
)

func init() {
	cmd := &cobra.Command{
		Use:   "ask [question]",
		Short: "Ask a single question and exit",
		Args:  cobra.MinimumNArgs(1),
		RunE:  runAsk,
	}

	RootCmd.AddCommand(cmd)
}

func runAsk(cmd *cobra.Command, args []string) error {
	a, err := buildAgent()
	if err != nil {
		return err
	}
	query := strings.Join(args, " ")

	resp, err := a.Respond(cmd.Context(), query)
	if err != nil {
		// Degraded textual response; the error is already user-facing.
		fmt.Println(agent.ErrorMessage(err))
		return nil
	}

	fmt.Println(resp.Text)
	if resp.Source == agent.SourcePredefined {
		fmt.Printf("  [source: predefined (match: %.0f%%)]\n", resp.Score)
	} else {
		fmt.Printf("  [source: %s]\n", resp.Source)
	}
	return nil
}
