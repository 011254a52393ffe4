package cmd

import (
	"fmt"
	"os"

	"github.com/gtahidi/chat-import/internal"
	"github.com/spf13/cobra"
)

var (
	validateFormat string
	validateDump   bool
)

// validateCmd represents the validate command
var validateCmd = &cobra.Command{
	Use:   "validate <file.json>",
	Short: "Parse and check an export file without importing",
	Long: `Validate a JSON export: load it, run the same transformation the
import uses, and report the session and message counts. No database
connection is made. With --dump the transformed rows are printed in the
chosen format (json or yaml).`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		records, err := internal.LoadExport(args[0])
		if err != nil {
			return err
		}

		sessions, messages, err := internal.Transform(records)
		if err != nil {
			return err
		}

		if validateDump {
			encoder, err := internal.NewPreviewEncoder(validateFormat)
			if err != nil {
				return err
			}
			preview := &internal.Preview{Sessions: sessions, Messages: messages}
			if err := encoder.Encode(preview, os.Stdout); err != nil {
				return fmt.Errorf("failed to encode preview: %w", err)
			}
		}

		internal.PrintSuccess(fmt.Sprintf(
			"Valid: %d session(s), %d message(s)", len(sessions), len(messages)))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
	validateCmd.Flags().StringVarP(&validateFormat, "format", "f", "json", "Dump format (json, yaml)")
	validateCmd.Flags().BoolVar(&validateDump, "dump", false, "Print the transformed rows to stdout")
}
