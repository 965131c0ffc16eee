package main

import (
	"context"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/zulandar/messagecraft/internal/delivery"
	"github.com/zulandar/messagecraft/internal/library"
)

func newMessageCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "message",
		Short: "Message history commands",
	}

	cmd.AddCommand(newMessageListCmd())
	cmd.AddCommand(newMessageShowCmd())
	cmd.AddCommand(newMessageRmCmd())
	cmd.AddCommand(newMessageClearCmd())
	cmd.AddCommand(newMessageSendCmd())
	return cmd
}

func newMessageListCmd() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List saved messages, most recent first",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMessageList(cmd, configPath)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", defaultConfigPath, "path to MessageCraft config file")
	return cmd
}

func runMessageList(cmd *cobra.Command, configPath string) error {
	_, kv, err := openStore(configPath)
	if err != nil {
		return err
	}
	defer kv.Close()

	msgs, err := library.NewMessages(kv).List()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if len(msgs) == 0 {
		fmt.Fprintln(out, "No messages yet.")
		return nil
	}

	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tRECIPIENT\tTONE\tCONTEXT\tCREATED")
	for _, m := range msgs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
			m.ID, m.Recipient, m.Tone, truncate(m.Context, 40), formatDate(m.CreatedAt))
	}
	return w.Flush()
}

func newMessageShowCmd() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "show <id>",
		Short: "Print a saved message",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMessageShow(cmd, configPath, args[0])
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", defaultConfigPath, "path to MessageCraft config file")
	return cmd
}

func runMessageShow(cmd *cobra.Command, configPath, id string) error {
	_, kv, err := openStore(configPath)
	if err != nil {
		return err
	}
	defer kv.Close()

	msg, err := library.NewMessages(kv).Get(id)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "To: %s\nTone: %s\nContext: %s\n", msg.Recipient, msg.Tone, msg.Context)
	if msg.Details != "" {
		fmt.Fprintf(out, "Details: %s\n", msg.Details)
	}
	fmt.Fprintf(out, "Created: %s\n\n%s\n", formatDate(msg.CreatedAt), msg.GeneratedMessage)
	return nil
}

func newMessageRmCmd() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "rm <id>",
		Short: "Delete a saved message",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMessageRm(cmd, configPath, args[0])
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", defaultConfigPath, "path to MessageCraft config file")
	return cmd
}

func runMessageRm(cmd *cobra.Command, configPath, id string) error {
	_, kv, err := openStore(configPath)
	if err != nil {
		return err
	}
	defer kv.Close()

	if err := library.NewMessages(kv).Delete(id); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Deleted %s\n", id)
	return nil
}

func newMessageClearCmd() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Delete the whole message history",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMessageClear(cmd, configPath)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", defaultConfigPath, "path to MessageCraft config file")
	return cmd
}

func runMessageClear(cmd *cobra.Command, configPath string) error {
	_, kv, err := openStore(configPath)
	if err != nil {
		return err
	}
	defer kv.Close()

	if err := library.NewMessages(kv).Clear(); err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), "History cleared.")
	return nil
}

func newMessageSendCmd() *cobra.Command {
	var (
		configPath string
		target     string
		channel    string
	)

	cmd := &cobra.Command{
		Use:   "send <id>",
		Short: "Deliver a saved message to a chat platform",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMessageSend(cmd, configPath, args[0], target, channel)
		},
		Args: cobra.ExactArgs(1),
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", defaultConfigPath, "path to MessageCraft config file")
	cmd.Flags().StringVar(&target, "target", "", "delivery target (slack, discord)")
	cmd.Flags().StringVar(&channel, "channel", "", "override the configured channel")
	cmd.MarkFlagRequired("target")
	return cmd
}

func runMessageSend(cmd *cobra.Command, configPath, id, target, channel string) error {
	cfg, kv, err := openStore(configPath)
	if err != nil {
		return err
	}
	defer kv.Close()

	registry, err := buildDelivery(cfg)
	if err != nil {
		return err
	}
	defer registry.Close()

	adapter, err := registry.Get(target)
	if err != nil {
		return err
	}

	msg, err := library.NewMessages(kv).Get(id)
	if err != nil {
		return err
	}

	out := delivery.Outbound{Channel: channel, Text: msg.GeneratedMessage}
	if err := adapter.Send(context.Background(), out); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Sent %s via %s\n", id, target)
	return nil
}
