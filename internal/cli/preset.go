package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/DSongManage/PanelCut/internal/model"
	"github.com/DSongManage/PanelCut/internal/project"
)

func newPresetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "preset",
		Short: "List the page presets used for physical exports",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List built-in and saved page presets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			fmt.Fprintln(out, "Built-in presets:")
			for _, p := range model.PagePresets {
				printPreset(out, p)
			}

			path, err := project.DefaultPresetPath()
			if err != nil {
				return err
			}
			store, err := project.LoadPresets(path)
			if err != nil {
				return err
			}
			if len(store.Presets) > 0 {
				fmt.Fprintln(out, "Saved presets:")
				for _, p := range store.Presets {
					printPreset(out, p)
				}
			}
			return nil
		},
	})

	return cmd
}

func printPreset(out io.Writer, p model.PagePreset) {
	fmt.Fprintf(out, "  %-14s %.0f x %.0f mm @ %d dpi (%d x %d px)  %s\n",
		p.Name, p.WidthMM, p.HeightMM, p.DPI, p.PixelWidth(), p.PixelHeight(), p.Description)
}
