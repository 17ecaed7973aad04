package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func init() {
	kbCmd := &cobra.Command{
		Use:   "kb",
		Short: "Inspect the predefined knowledge base",
	}

	kbCmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List the predefined questions",
		RunE:  runKBList,
	})

	RootCmd.AddCommand(kbCmd)
}

func runKBList(_ *cobra.Command, _ []string) error {
	a, err := buildAgent()
	if err != nil {
		return err
	}

	fmt.Printf("%-4s %-55s %s\n", "#", "QUESTION", "ANSWER")
	fmt.Println(strings.Repeat("-", 100))
	for i, e := range a.KB.Entries() {
		answer := e.Answer
		if len(answer) > 40 {
			answer = answer[:37] + "..."
		}
		fmt.Printf("%-4d %-55s %s\n", i+1, e.Question, answer)
	}
	return nil
}
