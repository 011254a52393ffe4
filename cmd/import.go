package cmd

import (
	"fmt"

	"github.com/gtahidi/chat-import/internal"
	"github.com/spf13/cobra"
)

// importCmd represents the import command
var importCmd = &cobra.Command{
	Use:   "import <file.json>",
	Short: "Import a session export into the database",
	Long: `Import a JSON export of chat sessions into the configured database.

The file must contain a top-level array of session objects, each with
sessionId, source, and a messages array. Tables are created if absent.
The whole import is one transaction: it either commits completely or
leaves the database untouched.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := internal.LoadConfig(dsn)
		if err != nil {
			return err
		}

		summary, err := internal.RunImport(cmd.Context(), args[0], cfg.DatabaseURL)
		if err != nil {
			return err
		}

		internal.PrintSuccess(fmt.Sprintf(
			"Imported %d session(s) (%d duplicate(s) skipped) and %d message(s)",
			summary.Result.SessionsInserted,
			summary.Result.SessionsSkipped,
			summary.Result.MessagesInserted,
		))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(importCmd)
}
