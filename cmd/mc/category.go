package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/zulandar/messagecraft/internal/library"
)

func newCategoryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "category",
		Short: "Category management commands",
	}

	cmd.AddCommand(newCategoryListCmd())
	cmd.AddCommand(newCategoryAddCmd())
	cmd.AddCommand(newCategoryRmCmd())
	return cmd
}

func newCategoryListCmd() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List categories",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCategoryList(cmd, configPath)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", defaultConfigPath, "path to MessageCraft config file")
	return cmd
}

func runCategoryList(cmd *cobra.Command, configPath string) error {
	_, kv, err := openStore(configPath)
	if err != nil {
		return err
	}
	defer kv.Close()

	cats, err := library.NewCategories(kv).List()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if len(cats) == 0 {
		fmt.Fprintln(out, "No categories yet.")
		return nil
	}

	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tCOLOR\tDESCRIPTION")
	for _, cat := range cats {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", cat.ID, cat.Name, cat.Color, truncate(cat.Description, 50))
	}
	return w.Flush()
}

func newCategoryAddCmd() *cobra.Command {
	var (
		configPath  string
		name        string
		description string
		color       string
	)

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create a category",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCategoryAdd(cmd, configPath, library.CategoryOpts{
				Name:        name,
				Description: description,
				Color:       color,
			})
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", defaultConfigPath, "path to MessageCraft config file")
	cmd.Flags().StringVar(&name, "name", "", "category name (required)")
	cmd.Flags().StringVar(&description, "description", "", "category description")
	cmd.Flags().StringVar(&color, "color", "", "hex color (default #3B82F6)")
	cmd.MarkFlagRequired("name")
	return cmd
}

func runCategoryAdd(cmd *cobra.Command, configPath string, opts library.CategoryOpts) error {
	_, kv, err := openStore(configPath)
	if err != nil {
		return err
	}
	defer kv.Close()

	cat, err := library.NewCategories(kv).Create(opts)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Created category %s\n", cat.ID)
	return nil
}

func newCategoryRmCmd() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "rm <id>",
		Short: "Delete a category",
		Long:  "Deletes a category. Templates referencing it keep their reference and show as uncategorized.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCategoryRm(cmd, configPath, args[0])
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", defaultConfigPath, "path to MessageCraft config file")
	return cmd
}

func runCategoryRm(cmd *cobra.Command, configPath, id string) error {
	_, kv, err := openStore(configPath)
	if err != nil {
		return err
	}
	defer kv.Close()

	if err := library.NewCategories(kv).Delete(id); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Deleted %s\n", id)
	return nil
}
