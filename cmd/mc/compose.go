package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/zulandar/messagecraft/internal/compose"
	"github.com/zulandar/messagecraft/internal/library"
	"github.com/zulandar/messagecraft/internal/models"
	"github.com/zulandar/messagecraft/internal/store"
)

func newComposeCmd() *cobra.Command {
	var (
		configPath string
		recipient  string
		contextArg string
		tone       string
		details    string
		templateID string
	)

	cmd := &cobra.Command{
		Use:   "compose",
		Short: "Compose a message",
		Long:  "Generates a message from recipient, context, tone, and optional details, and saves it to the history.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCompose(cmd, configPath, recipient, contextArg, tone, details, templateID)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", defaultConfigPath, "path to MessageCraft config file")
	cmd.Flags().StringVar(&recipient, "recipient", "", "who the message is for (required)")
	cmd.Flags().StringVar(&contextArg, "context", "", "context or purpose of the message")
	cmd.Flags().StringVar(&tone, "tone", "friendly", "tone (formal, informal, friendly, urgent)")
	cmd.Flags().StringVar(&details, "details", "", "extra details to include")
	cmd.Flags().StringVar(&templateID, "template", "", "template id to prefill context, tone, and details")
	cmd.MarkFlagRequired("recipient")
	return cmd
}

func runCompose(cmd *cobra.Command, configPath, recipient, contextArg, tone, details, templateID string) error {
	cfg, kv, err := openStore(configPath)
	if err != nil {
		return err
	}
	defer kv.Close()

	completer, err := newCompleter(cfg, os.Stdout)
	if err != nil {
		return err
	}

	svc := compose.New(completer, store.Messages(kv), cmd.ErrOrStderr())

	in := compose.Input{
		Recipient: recipient,
		Context:   contextArg,
		Tone:      models.Tone(tone),
		Details:   details,
	}

	// A template supplies defaults for flags the user left unset.
	if templateID != "" {
		tpl, err := library.NewTemplates(kv).Select(templateID)
		if err != nil {
			return err
		}
		prefill := svc.ApplyTemplate(*tpl)
		if in.Context == "" {
			in.Context = prefill.Context
		}
		if !cmd.Flags().Changed("tone") {
			in.Tone = prefill.Tone
		}
		if in.Details == "" {
			in.Details = prefill.Details
		}
	}

	res, err := svc.Submit(context.Background(), in)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, res.Message)
	if res.Saved {
		fmt.Fprintf(out, "\nSaved to history as %s\n", res.Record.ID)
	} else {
		fmt.Fprintln(out, "\nWarning: message was not saved to history")
	}
	return nil
}
