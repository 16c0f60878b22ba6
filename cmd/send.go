package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/substrate-dev/sandbox-agent/internal/logging"
)

var sendCmd = &cobra.Command{
	Use:   "send <agent-id> <message>",
	Short: "Send a message to another agent",
	Args:  cobra.ExactArgs(2),
	RunE:  runSend,
}

var sendTaskID string

func init() {
	sendCmd.Flags().StringVar(&sendTaskID, "task", "", "Task id to correlate the message with (generated when empty)")
	rootCmd.AddCommand(sendCmd)
}

func runSend(cmd *cobra.Command, args []string) error {
	agentID := args[0]
	content := args[1]
	ctx := cmd.Context()

	logging.Debug("sending message", "agent", agentID, "task", sendTaskID)

	resp, err := getMessaging().Send(ctx, agentID, content, sendTaskID)
	if err != nil {
		return err
	}

	logSuccess("Message delivered to %s", agentID)
	fmt.Printf("  Task: %s\n", resp.TaskID)
	fmt.Printf("  Status: %s\n", resp.Status)
	if resp.Content != "" {
		fmt.Printf("  Reply: %s\n", resp.Content)
	}

	return nil
}
