// Package cmd provides the support-agent CLI command tree.
package cmd

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/thoughtful-ai/support-agent/sdk/agent"
)

var cfgPath string

// RootCmd is the top-level command.
var RootCmd = &cobra.Command{
	Use:   "support-agent",
	Short: "Customer support chat for Thoughtful AI's automation agents",
	Long: "A terminal support agent for Thoughtful AI. Questions are matched against a\n" +
		"predefined knowledge base with fuzzy similarity; anything without a close\n" +
		"enough match is escalated to an OpenAI-style model.",
}

func init() {
	RootCmd.PersistentFlags().StringVarP(&cfgPath, "config", "c", "",
		"Config file path (default: .support-agent/config.yaml)")
}

// buildAgent loads the optional .env file and the config, then constructs
// the agent. A missing API key only disables fallback; a bad knowledge
// dataset is fatal.
func buildAgent() (*agent.Agent, error) {
	_ = godotenv.Load()

	cfg, err := agent.LoadFile(cfgPath)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	a, err := cfg.Build()
	if err != nil {
		return nil, err
	}
	if !a.Configured() {
		fmt.Fprintln(os.Stderr, "warning: no API key configured (set OPENAI_API_KEY); only predefined questions will be answered")
	}
	return a, nil
}
