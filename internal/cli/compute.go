package cli

import (
	"fmt"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/DSongManage/PanelCut/internal/engine"
	"github.com/DSongManage/PanelCut/internal/export"
	"github.com/DSongManage/PanelCut/internal/model"
	"github.com/DSongManage/PanelCut/internal/project"
)

// computeOpts holds the output paths requested for one compute run. Empty
// paths mean the corresponding export is skipped.
type computeOpts struct {
	pdfPath      string
	svgPath      string
	pngPath      string
	csvPath      string
	clipPath     string
	manifestPath string
	labelsPath   string
	presetName   string
	save         bool
}

func newComputeCmd() *cobra.Command {
	var opts computeOpts

	cmd := &cobra.Command{
		Use:   "compute <project.json>",
		Short: "Compute the panel regions for a project",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCompute(cmd, args[0], &opts)
		},
	}

	cmd.Flags().StringVar(&opts.pdfPath, "pdf", "", "write a PDF proof sheet to this path")
	cmd.Flags().StringVar(&opts.svgPath, "svg", "", "write an SVG rendering to this path")
	cmd.Flags().StringVar(&opts.pngPath, "png", "", "write a PNG preview to this path")
	cmd.Flags().StringVar(&opts.csvPath, "csv", "", "write a CSV panel manifest to this path")
	cmd.Flags().StringVar(&opts.clipPath, "clip", "", "write CSS clip-path rules to this path")
	cmd.Flags().StringVar(&opts.manifestPath, "manifest", "", "write an Excel panel manifest to this path")
	cmd.Flags().StringVar(&opts.labelsPath, "labels", "", "write a QR label sheet PDF to this path")
	cmd.Flags().StringVar(&opts.presetName, "preset", "", "page preset for physical exports (default from app config)")
	cmd.Flags().BoolVar(&opts.save, "save", false, "store the result back into the project file")

	return cmd
}

func runCompute(cmd *cobra.Command, path string, opts *computeOpts) error {
	logger := loggerFromContext(cmd.Context())

	proj, err := project.LoadProject(path)
	if err != nil {
		return err
	}
	logger.Debug("loaded project", "name", proj.Name, "lines", len(proj.Lines))

	result := engine.New(proj.Settings).Solve(proj.Lines, proj.PageWidth, proj.PageHeight)
	stats := model.CalculateLayoutStats(result, proj.PageWidth, proj.PageHeight, proj.Settings.ReadingBands)

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s: %d panels (%d passes)\n", proj.Name, stats.PanelCount, result.Passes)
	fmt.Fprintf(out, "coverage %.1f%%, gutters %.1f%%\n", stats.CoveragePercent, stats.GutterPercent)
	fmt.Fprintf(out, "panel area min/avg/max: %.1f / %.1f / %.1f\n",
		stats.MinPanelArea, stats.AvgPanelArea, stats.MaxPanelArea)
	for i, p := range result.Panels {
		fmt.Fprintf(out, "  %2d  %-20s centroid (%5.1f, %5.1f)  area %6.1f\n",
			i+1, p.ID, p.Centroid.X, p.Centroid.Y, p.Area)
	}

	for _, id := range result.SkippedLines {
		logger.Warn("line skipped: non-finite coordinates", "line", id)
	}
	for _, id := range result.UnusedLines {
		logger.Warn("line never split a region", "line", id)
	}
	for _, d := range result.Discarded {
		logger.Debug("sliver discarded", "area", fmt.Sprintf("%.2f", d.Area),
			"centroid", fmt.Sprintf("(%.1f, %.1f)", d.Centroid.X, d.Centroid.Y))
	}

	if err := writeExports(proj, result, opts, logger); err != nil {
		return err
	}

	if opts.save {
		proj.Result = &result
		if err := project.SaveProject(path, proj); err != nil {
			return err
		}
		logger.Info("saved result into project", "path", path)
	}
	return nil
}

// writeExports runs every export whose output path was requested.
func writeExports(proj model.PageProject, result model.RegionResult, opts *computeOpts, logger *charmlog.Logger) error {
	preset := resolvePreset(opts.presetName)

	exports := []struct {
		path string
		kind string
		run  func(string) error
	}{
		{opts.pdfPath, "pdf", func(p string) error { return export.ExportPDF(p, result, proj) }},
		{opts.svgPath, "svg", func(p string) error { return export.WriteSVGFile(p, result, proj) }},
		{opts.pngPath, "png", func(p string) error { return export.ExportPNG(p, result, proj, preset) }},
		{opts.csvPath, "csv", func(p string) error { return export.ExportManifestCSV(p, result, proj) }},
		{opts.clipPath, "clip-path css", func(p string) error { return export.WriteClipPathFile(p, result, proj) }},
		{opts.manifestPath, "manifest", func(p string) error { return export.ExportManifest(p, result, proj) }},
		{opts.labelsPath, "labels", func(p string) error { return export.ExportLabels(p, result, proj) }},
	}

	for _, e := range exports {
		if e.path == "" {
			continue
		}
		if err := e.run(e.path); err != nil {
			return fmt.Errorf("%s export failed: %w", e.kind, err)
		}
		logger.Info("wrote "+e.kind, "path", e.path)
	}
	return nil
}

// resolvePreset picks the page preset for physical exports: the explicit
// flag wins, then the app config default, then the first built-in.
func resolvePreset(name string) model.PagePreset {
	if name == "" {
		config, err := project.LoadAppConfig(project.DefaultConfigPath())
		if err == nil {
			name = config.DefaultPagePreset
		}
	}
	return model.GetPreset(name)
}
