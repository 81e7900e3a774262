package main

import (
	"github.com/spf13/cobra"

	"github.com/jhoicas/leave-tracker/internal/infrastructure/postgres"
)

func newMigrateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Aplica o revierte las migraciones embebidas",
	}
	cmd.AddCommand(
		&cobra.Command{
			Use:   "up",
			Short: "Aplica todas las migraciones pendientes",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return withMigrator(func(m *postgres.Migrator) error { return m.Up() })
			},
		},
		&cobra.Command{
			Use:   "down",
			Short: "Revierte la última migración",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return withMigrator(func(m *postgres.Migrator) error { return m.Down() })
			},
		},
	)
	return cmd
}

func withMigrator(fn func(*postgres.Migrator) error) error {
	e, err := loadEnv()
	if err != nil {
		return err
	}
	m, err := postgres.NewMigrator(e.cfg.DB.ConnectionString(), e.log.Zerolog())
	if err != nil {
		return err
	}
	defer m.Close()
	return fn(m)
}
