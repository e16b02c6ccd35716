package cli

import (
	"context"
	"fmt"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// SetVersion records build metadata injected via ldflags, shown by --version.
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

// Execute runs the panelcut CLI and returns the first command error.
func Execute() error {
	var verbose bool

	root := &cobra.Command{
		Use:          "panelcut",
		Short:        "PanelCut computes comic page panels from divider lines",
		Long:         `PanelCut takes the divider lines an artist draws on a page and computes the enclosed panel regions: their shapes, reading order, and coverage. Projects are plain JSON; results export to PDF proof sheets, SVG, PNG, CSS clip paths, spreadsheets, and QR label sheets.`,
		Version:      version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			ctx := withLogger(cmd.Context(), newLogger(os.Stderr, level))
			cmd.SetContext(ctx)
		},
	}

	root.SetVersionTemplate(fmt.Sprintf("panelcut %s\ncommit: %s\nbuilt: %s\n", version, commit, date))
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(newComputeCmd())
	root.AddCommand(newImportCmd())
	root.AddCommand(newTemplateCmd())
	root.AddCommand(newPresetCmd())

	return root.ExecuteContext(context.Background())
}
