package cmd

import (
	"github.com/spf13/cobra"

	"github.com/substrate-dev/sandbox-agent/internal/logging"
)

var downCmd = &cobra.Command{
	Use:   "down <id>",
	Short: "Remove a sandbox",
	Args:  cobra.ExactArgs(1),
	RunE:  runDown,
}

func init() {
	rootCmd.AddCommand(downCmd)
}

func runDown(cmd *cobra.Command, args []string) error {
	id := args[0]
	ctx := cmd.Context()

	logging.Debug("removing sandbox", "id", id)
	logInfo("Removing sandbox %s...", id)

	ack, err := getProvisioner().Delete(ctx, id)
	if err != nil {
		return err
	}

	logSuccess("%s", ack.Message)
	return nil
}
