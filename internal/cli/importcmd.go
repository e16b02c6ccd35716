package cli

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/DSongManage/PanelCut/internal/importer"
	"github.com/DSongManage/PanelCut/internal/model"
	"github.com/DSongManage/PanelCut/internal/project"
)

func newImportCmd() *cobra.Command {
	var output string
	var name string

	cmd := &cobra.Command{
		Use:   "import <file.csv|file.xlsx|file.dxf>",
		Short: "Build a project from an imported divider-line list",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runImport(cmd, args[0], output, name)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "project file to write (default: input name with .json)")
	cmd.Flags().StringVar(&name, "name", "", "project name (default: input file name)")

	return cmd
}

func runImport(cmd *cobra.Command, path, output, name string) error {
	logger := loggerFromContext(cmd.Context())

	var result importer.ImportResult
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".csv", ".txt":
		result = importer.ImportCSV(path)
	case ".xlsx", ".xlsm":
		result = importer.ImportExcel(path)
	case ".dxf":
		result = importer.ImportDXF(path)
	default:
		return fmt.Errorf("unsupported import format %q (use .csv, .xlsx, or .dxf)", ext)
	}

	for _, w := range result.Warnings {
		logger.Warn(w)
	}
	for _, e := range result.Errors {
		logger.Error(e)
	}
	if len(result.Lines) == 0 {
		return fmt.Errorf("no divider lines imported from %s", path)
	}

	base := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	if name == "" {
		name = base
	}
	if output == "" {
		output = base + ".json"
	}

	proj := model.NewPageProject()
	proj.Name = name
	proj.SetLines(result.Lines)

	if config, err := project.LoadAppConfig(project.DefaultConfigPath()); err == nil {
		config.ApplyToSettings(&proj.Settings)
	}

	if err := project.SaveProject(output, proj); err != nil {
		return err
	}
	logger.Info("imported project", "lines", len(proj.Lines), "path", output)
	return nil
}
