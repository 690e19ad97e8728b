package commands

import (
	"fmt"
	"strings"

	"gestao_reparos/internal/config"

	"github.com/spf13/cobra"
)

var (
	cfg config.Config

	port    string
	backend string
	seed    bool
)

// Execute runs the CLI. Without a subcommand it serves the HTTP API.
func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "gestao-reparos",
		Short:        "Quotes, services and finances API for a repair and painting business",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			loaded, err := config.Load()
			if err != nil {
				return fmt.Errorf("config: %w", err)
			}
			if port != "" {
				loaded.HTTP.Port = port
			}
			if backend != "" {
				loaded.Store.Backend = strings.ToLower(strings.TrimSpace(backend))
			}
			if cmd.Flags().Changed("seed") {
				loaded.App.SeedDemoData = seed
			}
			cfg = loaded
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context())
		},
	}

	root.PersistentFlags().StringVar(&backend, "store", "", "store backend: memory or dynamodb (default from STORE_BACKEND)")
	root.PersistentFlags().BoolVar(&seed, "seed", false, "load the demo dataset on startup (default from SEED_DEMO_DATA)")
	root.Flags().StringVar(&port, "port", "", "HTTP port (default from HTTP_PORT)")

	root.AddCommand(serveCmd(), summaryCmd())
	return root
}
