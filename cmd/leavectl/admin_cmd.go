package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jhoicas/leave-tracker/internal/application/auth"
	"github.com/jhoicas/leave-tracker/internal/infrastructure/postgres"
)

// newCreateAdminCmd alta del primer administrador: el registro normal exige invitación.
func newCreateAdminCmd() *cobra.Command {
	var name, email, password string

	cmd := &cobra.Command{
		Use:   "create-admin",
		Short: "Crea un usuario administrador",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := loadEnv()
			if err != nil {
				return err
			}
			pool, err := postgres.NewPool(cmd.Context(), e.cfg.DB)
			if err != nil {
				return err
			}
			defer pool.Close()

			uc := auth.NewAuthUseCase(postgres.NewUserRepository(pool), auth.JWTConfig{
				Secret: e.cfg.JWT.Secret,
				Issuer: e.cfg.JWT.Issuer,
			})
			user, err := uc.CreateAdmin(cmd.Context(), name, email, password)
			if err != nil {
				return fmt.Errorf("create-admin: %w", err)
			}
			e.log.Info().Str("user_id", user.ID).Str("email", user.Email).Msg("administrador creado")
			return nil
		},
	}
	cmd.Flags().StringVar(&name, "name", "", "nombre visible")
	cmd.Flags().StringVar(&email, "email", "", "email de acceso")
	cmd.Flags().StringVar(&password, "password", "", "contraseña (mínimo 8 caracteres)")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")
	return cmd
}
