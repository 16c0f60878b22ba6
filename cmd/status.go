package cmd

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"
)

var statusCmd = &cobra.Command{
	Use:   "status <id>",
	Short: "Show detailed status of a sandbox",
	Args:  cobra.ExactArgs(1),
	RunE:  runStatus,
}

func init() {
	rootCmd.AddCommand(statusCmd)
}

func runStatus(cmd *cobra.Command, args []string) error {
	id := args[0]

	sb, err := getProvisioner().Get(cmd.Context(), id)
	if err != nil {
		return err
	}

	fmt.Printf("Sandbox: %s\n", sb.Name)
	fmt.Printf("ID: %s\n", sb.ID)
	if sb.Template != "" {
		fmt.Printf("Template: %s\n", sb.Template)
	}
	fmt.Printf("Status: %s %s\n", statusMark(sb.Status), sb.Status)
	if sb.URL != "" {
		fmt.Printf("URL: %s\n", sb.URL)
	}

	if len(sb.Resources) > 0 {
		fmt.Println()
		fmt.Println("Resources:")
		keys := make([]string, 0, len(sb.Resources))
		for k := range sb.Resources {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			fmt.Printf("  %s: %s\n", k, sb.Resources[k])
		}
	}

	return nil
}

func statusMark(status string) string {
	switch status {
	case "running":
		return "✓"
	case "stopped":
		return "●"
	default:
		return "○"
	}
}
