package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jhoicas/leave-tracker/internal/infrastructure/postgres"
	"github.com/jhoicas/leave-tracker/internal/infrastructure/warningsfile"
)

func newImportWarningsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "import-warnings <file.yaml>",
		Short: "Reemplaza el catálogo de avisos por país con el contenido del archivo",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			byCountry, err := warningsfile.Load(args[0])
			if err != nil {
				return err
			}
			e, err := loadEnv()
			if err != nil {
				return err
			}
			pool, err := postgres.NewPool(cmd.Context(), e.cfg.DB)
			if err != nil {
				return err
			}
			defer pool.Close()

			if err := postgres.NewWarningRepository(pool).ReplaceAll(cmd.Context(), byCountry); err != nil {
				return fmt.Errorf("import-warnings: %w", err)
			}
			e.log.Info().Int("countries", len(byCountry)).Msg("avisos importados")
			return nil
		},
	}
}
