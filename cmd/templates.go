package cmd

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var templatesCmd = &cobra.Command{
	Use:   "templates",
	Short: "List available sandbox templates",
	RunE:  runTemplates,
}

func init() {
	rootCmd.AddCommand(templatesCmd)
}

func runTemplates(cmd *cobra.Command, args []string) error {
	templates := getCatalog().Templates()

	if len(templates) == 0 {
		logInfo("No templates found. Add templates to catalog.toml.")
		return nil
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "TEMPLATE\tBASE IMAGE\tPACKAGES\tDESCRIPTION")
	fmt.Fprintln(w, "--------\t----------\t--------\t-----------")

	for _, t := range templates {
		packages := strings.Join(t.InstalledPackages, ",")
		if packages == "" {
			packages = "-"
		}

		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", t.ID, t.BaseImage, packages, t.Description)
	}

	return w.Flush()
}
