package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/DSongManage/PanelCut/internal/model"
	"github.com/DSongManage/PanelCut/internal/project"
)

func newTemplateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "template",
		Short: "List, inspect, and apply layout templates",
	}

	cmd.AddCommand(newTemplateListCmd())
	cmd.AddCommand(newTemplateShowCmd())
	cmd.AddCommand(newTemplateApplyCmd())

	return cmd
}

func newTemplateListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List built-in and saved layout templates",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			fmt.Fprintln(out, "Built-in templates:")
			for _, t := range model.LayoutTemplates {
				fmt.Fprintf(out, "  %-14s %d lines  %s\n", t.Name, len(t.Lines), t.Description)
			}

			store, err := project.LoadDefaultTemplates()
			if err != nil {
				return err
			}
			if len(store.Templates) > 0 {
				fmt.Fprintln(out, "Saved templates:")
				for _, t := range store.Templates {
					fmt.Fprintf(out, "  %-14s %d lines  %s\n", t.Name, len(t.Lines), t.Description)
				}
			}
			return nil
		},
	}
}

func newTemplateShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <name>",
		Short: "Show the divider lines of a template",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, ok := findTemplate(args[0])
			if !ok {
				return fmt.Errorf("unknown template %q", args[0])
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s: %s\n", t.Name, t.Description)
			for _, l := range t.Lines {
				switch {
				case l.IsBezier() && l.Control1 != nil && l.Control2 != nil:
					fmt.Fprintf(out, "  bezier   (%.0f, %.0f) -> (%.0f, %.0f) via (%.0f, %.0f), (%.0f, %.0f)\n",
						l.Start.X, l.Start.Y, l.End.X, l.End.Y,
						l.Control1.X, l.Control1.Y, l.Control2.X, l.Control2.Y)
				default:
					fmt.Fprintf(out, "  straight (%.0f, %.0f) -> (%.0f, %.0f)\n",
						l.Start.X, l.Start.Y, l.End.X, l.End.Y)
				}
			}
			return nil
		},
	}
}

func newTemplateApplyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "apply <name> <project.json>",
		Short: "Replace a project's lines with a template's",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())

			t, ok := findTemplate(args[0])
			if !ok {
				return fmt.Errorf("unknown template %q", args[0])
			}

			proj, err := project.LoadProject(args[1])
			if err != nil {
				return err
			}

			t.Apply(&proj)
			if err := project.SaveProject(args[1], proj); err != nil {
				return err
			}
			logger.Info("applied template", "template", t.Name, "lines", len(proj.Lines), "path", args[1])
			return nil
		},
	}
}

// findTemplate looks a template up by name, built-ins first, then the saved
// template store.
func findTemplate(name string) (model.LayoutTemplate, bool) {
	for _, t := range model.LayoutTemplates {
		if t.Name == name {
			return t, true
		}
	}
	store, err := project.LoadDefaultTemplates()
	if err == nil {
		if t := store.FindByName(name); t != nil {
			return *t, true
		}
	}
	return model.LayoutTemplate{}, false
}
