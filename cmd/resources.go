package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var resourcesCmd = &cobra.Command{
	Use:   "resources",
	Short: "List available resource presets",
	RunE:  runResources,
}

func init() {
	rootCmd.AddCommand(resourcesCmd)
}

func runResources(cmd *cobra.Command, args []string) error {
	cat := getCatalog()

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "SIZE\tCPU\tMEMORY\tDISK")
	fmt.Fprintln(w, "----\t---\t------\t----")

	for _, size := range cat.Sizes() {
		rc, err := cat.ResourceConfig(size)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", size, rc.CPU, rc.Memory, rc.Disk)
	}

	return w.Flush()
}
