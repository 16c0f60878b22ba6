package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var psCmd = &cobra.Command{
	Use:   "ps",
	Short: "List all sandboxes",
	RunE:  runPs,
}

func init() {
	rootCmd.AddCommand(psCmd)
}

func runPs(cmd *cobra.Command, args []string) error {
	sandboxes, err := getProvisioner().List(cmd.Context())
	if err != nil {
		return fmt.Errorf("failed to list sandboxes: %w", err)
	}

	if len(sandboxes) == 0 {
		logInfo("No sandboxes found. Create one with: sandbox-agent up <name> -t <template>")
		return nil
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tTEMPLATE\tSTATUS\tURL")
	fmt.Fprintln(w, "--\t----\t--------\t------\t---")

	for _, sb := range sandboxes {
		template := sb.Template
		if template == "" {
			template = "-"
		}
		url := sb.URL
		if url == "" {
			url = "-"
		}

		fmt.Fprintf(w, "%s\t%s\t%s\t%s %s\t%s\n",
			sb.ID, sb.Name, template, statusMark(sb.Status), sb.Status, url)
	}

	return w.Flush()
}
