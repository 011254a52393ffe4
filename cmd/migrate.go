package cmd

import (
	"github.com/gtahidi/chat-import/internal"
	"github.com/spf13/cobra"
)

// migrateCmd represents the migrate command
var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply versioned schema migrations",
	Long: `Apply the embedded schema migrations to the configured database.

This is optional: the import itself creates the tables when absent.
Migrating keeps the schema versioned in golang-migrate's
schema_migrations table, which matters once the schema grows.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := internal.LoadConfig(dsn)
		if err != nil {
			return err
		}

		if err := internal.Migrate(cfg.DatabaseURL); err != nil {
			return err
		}

		internal.PrintSuccess("Migrations applied")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(migrateCmd)
}
