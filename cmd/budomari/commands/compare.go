package commands

import (
	"fmt"

	"github.com/piwi3910/budomari/internal/engine"
	"github.com/piwi3910/budomari/internal/model"
	"github.com/piwi3910/budomari/internal/project"
	"github.com/piwi3910/budomari/internal/report"
	"github.com/spf13/cobra"
)

var compareOpts struct {
	source    demandSource
	objective string
}

var CompareCmd = &cobra.Command{
	Use:   "compare [cut-list]",
	Short: "Compare what-if scenarios for a cut list",
	Long: `Pack the cut list with the current settings and with each variation
(other strategies, half kerf, no edge margin, rotation toggled) and
report sheets, cuts and waste side by side.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := runConfig()
		if err != nil {
			return err
		}
		demands, saved, err := compareOpts.source.load(args)
		if err != nil {
			return err
		}
		if saved != nil {
			cfg = *saved
		}
		objective, err := model.ParseObjective(compareOpts.objective)
		if err != nil {
			return err
		}

		scenarios := engine.BuildDefaultScenarios(cfg)
		logger.Debug("Comparing scenarios", "count", len(scenarios), "objective", objective.String())
		results, err := engine.CompareScenarios(cmd.Context(), scenarios, demands, objective)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintln(out, titleStyle.Render(fmt.Sprintf("Scenarios (%s)", objective.Title())))
		return report.WriteComparison(out, results)
	},
}

func init() {
	f := CompareCmd.Flags()
	f.StringVar(&compareOpts.source.projectPath, "project", "", "load demands and settings from a saved project")
	f.StringVar(&compareOpts.source.templateName, "template", "", "load demands and settings from a stored template")
	f.StringVar(&compareOpts.source.templatePath, "templates-file", project.DefaultTemplatePath(), "template store")
	f.StringVar(&compareOpts.objective, "objective", "yield", "objective to compare under: yield or cuts")
}
