package commands

import (
	"fmt"
	"text/tabwriter"

	"github.com/piwi3910/budomari/internal/model"
	"github.com/piwi3910/budomari/internal/project"
	"github.com/spf13/cobra"
)

var (
	templatesFile string
	templateDesc  string
)

var TemplatesCmd = &cobra.Command{
	Use:   "templates",
	Short: "Manage reusable cut-list templates",
}

var templatesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List stored templates",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := project.LoadTemplates(templatesFile)
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		if len(store.Templates) == 0 {
			fmt.Fprintln(out, "No templates stored.")
			return nil
		}
		tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
		fmt.Fprintln(tw, "ID\tName\tPieces\tSheet\tDescription")
		for _, t := range store.Templates {
			pieces := 0
			for _, d := range t.Demands {
				pieces += d.Quantity
			}
			fmt.Fprintf(tw, "%s\t%s\t%d\t%gx%g\t%s\n", t.ID, t.Name, pieces, t.Config.SheetWidth, t.Config.SheetHeight, t.Description)
		}
		return tw.Flush()
	},
}

var templatesSaveCmd = &cobra.Command{
	Use:   "save <name> <cut-list>",
	Short: "Store a cut list and the current settings as a template",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := runConfig()
		if err != nil {
			return err
		}
		demands, _, err := importDemands(args[1])
		if err != nil {
			return err
		}
		store, err := project.LoadTemplates(templatesFile)
		if err != nil {
			return err
		}
		if existing := store.FindByName(args[0]); existing != nil {
			store.Remove(existing.ID)
		}
		store.Add(model.NewDemandTemplate(args[0], templateDesc, demands, cfg))
		if err := project.SaveTemplates(templatesFile, store); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Saved template %q (%d rows)\n", args[0], len(demands))
		return nil
	},
}

var templatesRemoveCmd = &cobra.Command{
	Use:   "remove <name>",
	Short: "Delete a stored template",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := project.LoadTemplates(templatesFile)
		if err != nil {
			return err
		}
		t := store.FindByName(args[0])
		if t == nil {
			return fmt.Errorf("no template named %q", args[0])
		}
		store.Remove(t.ID)
		return project.SaveTemplates(templatesFile, store)
	},
}

func init() {
	TemplatesCmd.PersistentFlags().StringVar(&templatesFile, "file", project.DefaultTemplatePath(), "template store")
	templatesSaveCmd.Flags().StringVar(&templateDesc, "description", "", "template description")

	TemplatesCmd.AddCommand(templatesListCmd, templatesSaveCmd, templatesRemoveCmd)
}
