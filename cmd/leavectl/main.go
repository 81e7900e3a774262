// leavectl tareas de operación: migraciones, alta del primer admin y carga de avisos por país.
package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/jhoicas/leave-tracker/pkg/config"
	"github.com/jhoicas/leave-tracker/pkg/logger"
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "leavectl",
		Short:         "Herramientas de operación del leave tracker",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.AddCommand(newMigrateCmd(), newCreateAdminCmd(), newImportWarningsCmd())
	return cmd
}

// env configuración y logger compartidos por los subcomandos.
type env struct {
	cfg *config.Config
	log *logger.Logger
}

func loadEnv() (*env, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel, Output: os.Stderr})
	return &env{cfg: cfg, log: log}, nil
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		logger.New(logger.Config{Env: "development", Output: os.Stderr}).Error().Err(err).Msg("leavectl")
		os.Exit(1)
	}
}
