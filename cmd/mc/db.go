package main

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/zulandar/messagecraft/internal/store"
)

func newDBCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "db",
		Short: "Storage management commands",
	}

	cmd.AddCommand(newDBInitCmd())
	cmd.AddCommand(newDBResetCmd())
	return cmd
}

func newDBInitCmd() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize the MessageCraft store",
		Long:  "Opens the configured backend and creates its schema so the first compose does not have to.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDBInit(cmd, configPath)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", defaultConfigPath, "path to MessageCraft config file")
	return cmd
}

func runDBInit(cmd *cobra.Command, configPath string) error {
	out := cmd.OutOrStdout()

	cfg, kv, err := openStore(configPath)
	if err != nil {
		return err
	}
	defer kv.Close()

	fmt.Fprintf(out, "Opened %s backend\n", cfg.Store.Backend)

	// Touch each collection so empty blobs decode cleanly from day one.
	for _, key := range []string{store.KeyMessages, store.KeyTemplates, store.KeyCategories} {
		if _, _, err := kv.Get(key); err != nil {
			return err
		}
	}

	fmt.Fprintln(out, "\nMessageCraft store initialized successfully.")
	return nil
}

func newDBResetCmd() *cobra.Command {
	var (
		configPath string
		yes        bool
	)

	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Delete all messages, templates, and categories",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDBReset(cmd, configPath, yes)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", defaultConfigPath, "path to MessageCraft config file")
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "skip confirmation prompt")
	return cmd
}

func runDBReset(cmd *cobra.Command, configPath string, skipConfirm bool) error {
	out := cmd.OutOrStdout()

	cfg, kv, err := openStore(configPath)
	if err != nil {
		return err
	}
	defer kv.Close()

	if !skipConfirm && !confirmReset(cmd, cfg.Store.Backend) {
		fmt.Fprintln(out, "Aborted.")
		return nil
	}

	for _, key := range []string{store.KeyMessages, store.KeyTemplates, store.KeyCategories} {
		if err := kv.Delete(key); err != nil {
			return err
		}
	}

	fmt.Fprintln(out, "Store reset. All messages, templates, and categories are gone.")
	return nil
}

func confirmReset(cmd *cobra.Command, backend string) bool {
	out := cmd.OutOrStdout()
	in := cmd.InOrStdin()

	fmt.Fprintf(out, "WARNING: This will permanently delete all MessageCraft data in the %s backend.\n", backend)
	fmt.Fprintln(out, "This action cannot be undone.")
	fmt.Fprintln(out)
	fmt.Fprint(out, "Type \"yes\" to confirm: ")

	scanner := bufio.NewScanner(in)
	if scanner.Scan() {
		return strings.TrimSpace(scanner.Text()) == "yes"
	}
	return false
}
