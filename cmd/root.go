package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	httpcmd "github.com/carlosmariath/painel-clinica-sub001/cmd/http"
	systemcmd "github.com/carlosmariath/painel-clinica-sub001/cmd/system"
)

var (
	cfgFile string
)

var rootCmd = &cobra.Command{
	Use:   "painel-clinica",
	Short: "Operations console backend for a therapy clinic network.",
	Long: `Painel Clínica is the operations backend for a therapy clinic network.
It manages the clinical roster, branch schedules, availability computation
and conflict-safe appointment booking behind a single HTTP API.`,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	// Global config flag, available for all commands.
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "config.yaml", "config file path")

	// Attach top-level command trees.
	rootCmd.AddCommand(systemcmd.NewSystemCommand())
	rootCmd.AddCommand(httpcmd.NewHTTPCommand())
}
