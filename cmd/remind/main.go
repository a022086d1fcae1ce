// Command remind extracts reminder candidates from documents, emails, and
// free text, using a language model with a regex fallback.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pockettasks/remind/internal/config"
)

var rootCmd = &cobra.Command{
	Use:   "remind",
	Short: "Turn documents and messages into reminders",
	Long: `remind extracts actionable reminders (bills, deadlines, meetings,
appointments) from documents and free text.

Extraction runs a language model when an API key is configured and falls
back to conservative pattern matching when the model output cannot be
parsed. Candidates always need your confirmation; nothing is created
silently.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return config.Initialize()
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
