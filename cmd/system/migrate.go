package system

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/carlosmariath/painel-clinica-sub001/config"
	"github.com/carlosmariath/painel-clinica-sub001/pkg/authorize"
	"github.com/carlosmariath/painel-clinica-sub001/pkg/database"
)

func NewMigrateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Apply schema migrations and seed default access policies",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfgPath, err := cmd.Root().PersistentFlags().GetString("config")
			if err != nil {
				return err
			}
			cfg, err := config.ReadConfig(filepath.Dir(cfgPath))
			if err != nil {
				return fmt.Errorf("read config: %w", err)
			}

			slog.Info("migrating application schema")
			client, err := database.NewEntClient(cfg.Database)
			if err != nil {
				return fmt.Errorf("create ent client: %w", err)
			}
			defer client.Close()

			timeout := time.Duration(cfg.Server.TimeoutSeconds) * time.Second
			ctx, cancel := context.WithTimeout(context.Background(), timeout)
			defer cancel()

			if err := database.MigrateEnt(ctx, client); err != nil {
				return fmt.Errorf("run migrations: %w", err)
			}

			slog.Info("migrating policy store and seeding defaults")
			enforcer, cleanup, err := authorize.NewEnforcer(
				cfg.Authorization.CasbinModelPath,
				database.NewDSN(cfg.CasbinDatabase),
				false, // one-shot command, no watcher needed
			)
			if err != nil {
				return fmt.Errorf("create enforcer: %w", err)
			}
			defer cleanup(context.Background())

			auth, err := authorize.NewAuthorization(enforcer)
			if err != nil {
				return fmt.Errorf("create authorization: %w", err)
			}

			if err := authorize.SeedDefaultPolicies(context.Background(), auth); err != nil {
				return fmt.Errorf("seed policies: %w", err)
			}

			fmt.Println("migrations applied")
			return nil
		},
	}

	return cmd
}
