package commands

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"gestao_reparos/internal/app"

	"github.com/spf13/cobra"
)

func serveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context())
		},
	}
	cmd.Flags().StringVar(&port, "port", "", "HTTP port (default from HTTP_PORT)")
	return cmd
}

func runServe(parent context.Context) error {
	if parent == nil {
		parent = context.Background()
	}
	ctx, stop := signal.NotifyContext(parent, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	log.Printf("config loaded env=%s store=%s, building application...", cfg.App.Env, cfg.Store.Backend)
	application, err := app.New(ctx, cfg)
	if err != nil {
		log.Printf("app init: %v", err)
		return err
	}
	defer application.Close()

	return application.Serve(ctx)
}
