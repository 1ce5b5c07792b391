package system

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/carlosmariath/painel-clinica-sub001/config"
	"github.com/carlosmariath/painel-clinica-sub001/pkg/database"
)

func NewInitCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create the application and policy databases if missing",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfgPath, err := cmd.Root().PersistentFlags().GetString("config")
			if err != nil {
				return err
			}
			cfg, err := config.ReadConfig(filepath.Dir(cfgPath))
			if err != nil {
				return fmt.Errorf("read config: %w", err)
			}

			if err := database.InitializeDatabases(cfg); err != nil {
				return fmt.Errorf("initialize databases: %w", err)
			}
			fmt.Println("databases ready")
			return nil
		},
	}

	return cmd
}
