package commands

import (
	"fmt"
	"io"

	"github.com/piwi3910/budomari/internal/engine"
	"github.com/piwi3910/budomari/internal/export"
	"github.com/piwi3910/budomari/internal/model"
	"github.com/piwi3910/budomari/internal/project"
	"github.com/piwi3910/budomari/internal/report"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var planOpts struct {
	source    demandSource
	objective string
	pdf       string
	dxf       string
	labels    string
	xlsx      string
	save      string
	name      string
}

var PlanCmd = &cobra.Command{
	Use:   "plan [cut-list]",
	Short: "Pack a cut list for best yield and for fewest cuts",
	Long: `Read a cut list (CSV, TSV, Excel or YAML), pack it once per objective
and print both layouts. The chosen objective's layout can be exported as
PDF, DXF, QR labels or an Excel cut list.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlan,
}

func init() {
	f := PlanCmd.Flags()
	f.StringVar(&planOpts.source.projectPath, "project", "", "load demands and settings from a saved project")
	f.StringVar(&planOpts.source.templateName, "template", "", "load demands and settings from a stored template")
	f.StringVar(&planOpts.source.templatePath, "templates-file", project.DefaultTemplatePath(), "template store")
	f.StringVar(&planOpts.objective, "objective", "yield", "layout to export: yield or cuts")
	f.StringVar(&planOpts.pdf, "pdf", "", "write the layout as a PDF")
	f.StringVar(&planOpts.dxf, "dxf", "", "write the layout as a DXF drawing")
	f.StringVar(&planOpts.labels, "labels", "", "write QR piece labels as a PDF")
	f.StringVar(&planOpts.xlsx, "xlsx", "", "write the cut list as an Excel workbook")
	f.StringVar(&planOpts.save, "save", "", "save demands, settings and results as a project file")
	f.StringVar(&planOpts.name, "name", "Untitled", "project name used with --save")
}

func runPlan(cmd *cobra.Command, args []string) error {
	cfg, err := runConfig()
	if err != nil {
		return err
	}
	demands, saved, err := planOpts.source.load(args)
	if err != nil {
		return err
	}
	if saved != nil {
		cfg = *saved
	}
	objective, err := model.ParseObjective(planOpts.objective)
	if err != nil {
		return err
	}

	opt := engine.New(cfg)
	opt.Logger = logger
	opt.Parallel = true

	plan, err := opt.Run(cmd.Context(), demands)
	if err != nil {
		return err
	}
	if err := report.WritePlan(cmd.OutOrStdout(), plan, cfg); err != nil {
		return err
	}

	if planOpts.save != "" {
		if err := savePlan(cmd.ErrOrStderr(), planOpts.save, planOpts.name, cfg, demands, plan); err != nil {
			return err
		}
	}

	return exportPlan(cmd, plan, objective)
}

// exportPlan writes the exports for the selected objective, then reports
// any failed run so the command exits non-zero even when exports succeed.
func exportPlan(cmd *cobra.Command, plan engine.Plan, objective model.Objective) error {
	result, err := plan.Result(objective)
	if err != nil {
		if hasExports() {
			return fmt.Errorf("nothing to export for %s: %w", objective, err)
		}
		return plan.Err()
	}
	if err := writeExports(cmd, result); err != nil {
		return err
	}
	return plan.Err()
}

func hasExports() bool {
	return planOpts.pdf != "" || planOpts.dxf != "" || planOpts.labels != "" || planOpts.xlsx != ""
}

func writeExports(cmd *cobra.Command, result model.LayoutResult) error {
	exports := []struct {
		path  string
		kind  string
		write func(string, model.LayoutResult) error
	}{
		{planOpts.pdf, "PDF layout", export.ExportPDF},
		{planOpts.dxf, "DXF drawing", export.ExportDXF},
		{planOpts.labels, "labels", export.ExportLabels},
		{planOpts.xlsx, "Excel cut list", export.ExportXLSX},
	}
	for _, e := range exports {
		if e.path == "" {
			continue
		}
		if err := e.write(e.path, result); err != nil {
			return fmt.Errorf("failed to write %s: %w", e.kind, err)
		}
		fmt.Fprintf(cmd.ErrOrStderr(), "Wrote %s to %s\n", e.kind, e.path)
	}
	return nil
}

func savePlan(out io.Writer, path, name string, cfg model.Config, demands []model.PieceDemand, plan engine.Plan) error {
	p := model.NewProject(name)
	p.Config = cfg
	p.Demands = demands
	for _, run := range plan.Runs {
		if run.Err == nil {
			p.Results = append(p.Results, run.Result)
		}
	}
	if err := project.SaveProject(path, p); err != nil {
		return err
	}

	appPath := viper.GetString("app-config")
	app, err := project.LoadAppConfig(appPath)
	if err != nil {
		logger.Warn("Cannot update recent projects", "error", err)
		return nil
	}
	app.AddRecentProject(path, 10)
	if err := project.SaveAppConfig(appPath, app); err != nil {
		logger.Warn("Cannot update recent projects", "error", err)
	}
	fmt.Fprintf(out, "Saved project %s to %s\n", p.Name, path)
	return nil
}
