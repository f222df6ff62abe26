package commands

import (
	"fmt"
	"text/tabwriter"

	"github.com/piwi3910/budomari/internal/model"
	"github.com/spf13/cobra"
)

var PresetsCmd = &cobra.Command{
	Use:   "presets",
	Short: "List the standard sheet sizes",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		fmt.Fprintln(out, titleStyle.Render("Sheet presets"))

		tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
		for _, p := range model.SheetPresets {
			fmt.Fprintf(tw, "%s\t%g x %g mm\t%s\n", p.Name, p.Width, p.Height, p.Label)
		}
		return tw.Flush()
	},
}
