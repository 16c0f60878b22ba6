package cmd

import (
	"github.com/spf13/cobra"

	"github.com/substrate-dev/sandbox-agent/internal/logging"
)

var startCmd = &cobra.Command{
	Use:   "start <id>",
	Short: "Start a stopped sandbox",
	Args:  cobra.ExactArgs(1),
	RunE:  runStart,
}

func init() {
	rootCmd.AddCommand(startCmd)
}

func runStart(cmd *cobra.Command, args []string) error {
	id := args[0]
	ctx := cmd.Context()

	logging.Debug("starting sandbox", "id", id)

	ack, err := getProvisioner().Start(ctx, id)
	if err != nil {
		return err
	}

	logSuccess("%s", ack.Message)
	return nil
}
