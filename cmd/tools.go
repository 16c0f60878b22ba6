package cmd

import (
	"fmt"
	"sort"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var toolsCmd = &cobra.Command{
	Use:   "tools",
	Short: "List the tools the agent exposes",
	RunE:  runTools,
}

func init() {
	rootCmd.AddCommand(toolsCmd)
}

func runTools(cmd *cobra.Command, args []string) error {
	specs := getAgent().Tools().Specs()

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "TOOL\tREQUIRED\tDESCRIPTION")
	fmt.Fprintln(w, "----\t--------\t-----------")

	for _, spec := range specs {
		required := make([]string, len(spec.Required))
		copy(required, spec.Required)
		sort.Strings(required)

		reqStr := strings.Join(required, ",")
		if reqStr == "" {
			reqStr = "-"
		}

		fmt.Fprintf(w, "%s\t%s\t%s\n", spec.Name, reqStr, spec.Description)
	}

	return w.Flush()
}
