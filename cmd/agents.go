package cmd

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var agentsCmd = &cobra.Command{
	Use:   "agents",
	Short: "List agents available for messaging",
	RunE:  runAgents,
}

func init() {
	rootCmd.AddCommand(agentsCmd)
}

func runAgents(cmd *cobra.Command, args []string) error {
	agents, err := getMessaging().Agents(cmd.Context())
	if err != nil {
		return err
	}

	if len(agents) == 0 {
		logInfo("No agents available.")
		return nil
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tVERSION\tINTERFACES\tDESCRIPTION")
	fmt.Fprintln(w, "--\t----\t-------\t----------\t-----------")

	for _, a := range agents {
		interfaces := strings.Join(a.Interfaces, ",")
		if interfaces == "" {
			interfaces = "-"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", a.ID, a.Name, a.Version, interfaces, a.Description)
	}

	return w.Flush()
}
