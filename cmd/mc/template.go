package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/zulandar/messagecraft/internal/library"
	"github.com/zulandar/messagecraft/internal/models"
)

func newTemplateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "template",
		Short: "Template management commands",
	}

	cmd.AddCommand(newTemplateListCmd())
	cmd.AddCommand(newTemplateAddCmd())
	cmd.AddCommand(newTemplateRmCmd())
	cmd.AddCommand(newTemplateSelectCmd())
	return cmd
}

func newTemplateListCmd() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List templates, most recent first",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTemplateList(cmd, configPath)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", defaultConfigPath, "path to MessageCraft config file")
	return cmd
}

func runTemplateList(cmd *cobra.Command, configPath string) error {
	_, kv, err := openStore(configPath)
	if err != nil {
		return err
	}
	defer kv.Close()

	tpls, err := library.NewTemplates(kv).List()
	if err != nil {
		return err
	}
	cats := library.NewCategories(kv)

	out := cmd.OutOrStdout()
	if len(tpls) == 0 {
		fmt.Fprintln(out, "No templates yet.")
		return nil
	}

	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tTONE\tCATEGORY\tCONTEXT")
	for _, tpl := range tpls {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
			tpl.ID, tpl.Name, tpl.Tone, cats.NameFor(tpl.CategoryID), truncate(tpl.Context, 40))
	}
	return w.Flush()
}

func newTemplateAddCmd() *cobra.Command {
	var (
		configPath string
		name       string
		contextArg string
		tone       string
		details    string
		categoryID string
	)

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create a template",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTemplateAdd(cmd, configPath, library.TemplateOpts{
				Name:       name,
				Context:    contextArg,
				Tone:       models.Tone(tone),
				Details:    details,
				CategoryID: categoryID,
			})
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", defaultConfigPath, "path to MessageCraft config file")
	cmd.Flags().StringVar(&name, "name", "", "template name (required)")
	cmd.Flags().StringVar(&contextArg, "context", "", "context or purpose (required)")
	cmd.Flags().StringVar(&tone, "tone", "friendly", "tone (formal, informal, friendly, urgent)")
	cmd.Flags().StringVar(&details, "details", "", "extra details")
	cmd.Flags().StringVar(&categoryID, "category", "", "category id")
	cmd.MarkFlagRequired("name")
	cmd.MarkFlagRequired("context")
	return cmd
}

func runTemplateAdd(cmd *cobra.Command, configPath string, opts library.TemplateOpts) error {
	_, kv, err := openStore(configPath)
	if err != nil {
		return err
	}
	defer kv.Close()

	tpl, err := library.NewTemplates(kv).Create(opts)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Created template %s\n", tpl.ID)
	return nil
}

func newTemplateRmCmd() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "rm <id>",
		Short: "Delete a template",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTemplateRm(cmd, configPath, args[0])
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", defaultConfigPath, "path to MessageCraft config file")
	return cmd
}

func runTemplateRm(cmd *cobra.Command, configPath, id string) error {
	_, kv, err := openStore(configPath)
	if err != nil {
		return err
	}
	defer kv.Close()

	if err := library.NewTemplates(kv).Delete(id); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Deleted %s\n", id)
	return nil
}

func newTemplateSelectCmd() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "select <id>",
		Short: "Show the prefill a template would apply to compose",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTemplateSelect(cmd, configPath, args[0])
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", defaultConfigPath, "path to MessageCraft config file")
	return cmd
}

func runTemplateSelect(cmd *cobra.Command, configPath, id string) error {
	_, kv, err := openStore(configPath)
	if err != nil {
		return err
	}
	defer kv.Close()

	tpl, err := library.NewTemplates(kv).Select(id)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Context: %s\nTone: %s\n", tpl.Context, tpl.Tone)
	if tpl.Details != "" {
		fmt.Fprintf(out, "Details: %s\n", tpl.Details)
	}
	fmt.Fprintf(out, "\nUse: mc compose --recipient <who> --template %s\n", tpl.ID)
	return nil
}
