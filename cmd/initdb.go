package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/paologalligit/seatrank/persistence"
)

func newInitDBCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "initdb",
		Short: "Create the seat log table in Postgres",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			pool, err := persistence.NewPostgresPool(ctx, a.cfg.DatabaseURL)
			if err != nil {
				return fmt.Errorf("error creating postgres pool: %w", err)
			}
			defer pool.Close()

			if err := persistence.InitPostgresSchema(ctx, pool, a.cfg.SchemaFile); err != nil {
				return fmt.Errorf("error initializing postgres schema: %w", err)
			}
			a.log.Info("postgres schema initialized", zap.String("schema_file", a.cfg.SchemaFile))
			fmt.Fprintln(cmd.OutOrStdout(), "Postgres schema initialized")
			return nil
		},
	}
}
