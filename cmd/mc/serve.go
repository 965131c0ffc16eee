package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/zulandar/messagecraft/internal/compose"
	"github.com/zulandar/messagecraft/internal/library"
	"github.com/zulandar/messagecraft/internal/server"
	"github.com/zulandar/messagecraft/internal/store"
)

func newServeCmd() *cobra.Command {
	var (
		configPath string
		port       int
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the MessageCraft API server",
		Long:  "Launches the HTTP API for composing messages and managing the template and category library.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd, configPath, port)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", defaultConfigPath, "path to MessageCraft config file")
	cmd.Flags().IntVarP(&port, "port", "p", 0, "port to listen on (overrides config)")
	return cmd
}

func runServe(cmd *cobra.Command, configPath string, port int) error {
	cfg, kv, err := openStore(configPath)
	if err != nil {
		return err
	}
	defer kv.Close()

	completer, err := newCompleter(cfg, os.Stdout)
	if err != nil {
		return err
	}

	registry, err := buildDelivery(cfg)
	if err != nil {
		return err
	}
	defer registry.Close()

	if port == 0 {
		port = cfg.Server.Port
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		fmt.Fprintf(cmd.OutOrStdout(), "\nReceived %s, shutting down...\n", sig)
		cancel()
	}()

	return server.Start(ctx, server.StartOpts{
		Composer:   compose.New(completer, store.Messages(kv), cmd.ErrOrStderr()),
		Messages:   library.NewMessages(kv),
		Templates:  library.NewTemplates(kv),
		Categories: library.NewCategories(kv),
		Delivery:   registry,
		Port:       port,
		Out:        cmd.OutOrStdout(),
	})
}
