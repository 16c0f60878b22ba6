package cmd

import (
	"github.com/spf13/cobra"

	"github.com/substrate-dev/sandbox-agent/internal/logging"
)

var stopCmd = &cobra.Command{
	Use:   "stop <id>",
	Short: "Stop a running sandbox",
	Args:  cobra.ExactArgs(1),
	RunE:  runStop,
}

func init() {
	rootCmd.AddCommand(stopCmd)
}

func runStop(cmd *cobra.Command, args []string) error {
	id := args[0]
	ctx := cmd.Context()

	logging.Debug("stopping sandbox", "id", id)

	ack, err := getProvisioner().Stop(ctx, id)
	if err != nil {
		return err
	}

	logSuccess("%s", ack.Message)
	return nil
}
