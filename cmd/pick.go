package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/substrate-dev/sandbox-agent/internal/logging"
	"github.com/substrate-dev/sandbox-agent/internal/tui"
)

var pickCmd = &cobra.Command{
	Use:   "pick",
	Short: "Interactive sandbox picker",
	Long: `Opens an interactive TUI for selecting and managing sandboxes.

Use arrow keys or j/k to navigate, / to filter, Enter to start.

Actions:
  Enter/s - Start selected sandbox
  x       - Stop selected sandbox
  d       - Remove selected sandbox
  q/Esc   - Quit`,
	RunE: runPick,
}

func init() {
	rootCmd.AddCommand(pickCmd)
}

func runPick(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	logging.Debug("picker mode started")

	sandboxes, err := getProvisioner().List(ctx)
	if err != nil {
		return fmt.Errorf("failed to list sandboxes: %w", err)
	}

	if len(sandboxes) == 0 {
		logInfo("No sandboxes found. Create one with: sandbox-agent up <name> -t <template>")
		return nil
	}

	result, err := tui.RunPicker(sandboxes)
	if err != nil {
		return fmt.Errorf("picker error: %w", err)
	}

	logging.Debug("picker result", "action", result.Action)

	switch result.Action {
	case tui.ActionStart:
		if result.Sandbox != nil {
			ack, err := getProvisioner().Start(ctx, result.Sandbox.ID)
			if err != nil {
				return err
			}
			logSuccess("%s", ack.Message)
		}

	case tui.ActionStop:
		if result.Sandbox != nil {
			ack, err := getProvisioner().Stop(ctx, result.Sandbox.ID)
			if err != nil {
				return err
			}
			logSuccess("%s", ack.Message)
		}

	case tui.ActionRemove:
		if result.Sandbox != nil {
			ack, err := getProvisioner().Delete(ctx, result.Sandbox.ID)
			if err != nil {
				return err
			}
			logSuccess("%s", ack.Message)
		}

	case tui.ActionQuit:
		// Just exit cleanly
	}

	return nil
}
