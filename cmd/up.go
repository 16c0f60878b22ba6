package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/substrate-dev/sandbox-agent/internal/config"
	"github.com/substrate-dev/sandbox-agent/internal/logging"
	"github.com/substrate-dev/sandbox-agent/internal/provision"
)

var upCmd = &cobra.Command{
	Use:   "up <name>",
	Short: "Create a new sandbox from a template",
	Args:  cobra.ExactArgs(1),
	RunE:  runUp,
}

var (
	upTemplate string
	upSize     string
)

func init() {
	upCmd.Flags().StringVarP(&upTemplate, "template", "t", "", "Template to use (required)")
	upCmd.Flags().StringVarP(&upSize, "size", "s", "", "Resource preset (small, medium, large)")
	if err := upCmd.MarkFlagRequired("template"); err != nil {
		panic(err)
	}
	rootCmd.AddCommand(upCmd)
}

func runUp(cmd *cobra.Command, args []string) error {
	name := args[0]
	ctx := cmd.Context()

	// Validate sandbox name early
	if err := config.ValidateSandboxName(name); err != nil {
		return err
	}

	logging.Debug("starting sandbox creation", "name", name, "template", upTemplate, "size", upSize)

	record, tmpl, err := getAgent().CreateFromTemplate(name, upTemplate, upSize)
	if err != nil {
		return err
	}

	logInfo("Creating sandbox %s...", name)

	sb, err := getProvisioner().Create(ctx, provision.CreateRequest{
		Name:          name,
		Template:      tmpl.ID,
		Resources:     record.Resources,
		BaseImage:     tmpl.BaseImage,
		SetupCommands: tmpl.SetupCommands,
	})
	if err != nil {
		return err
	}

	logSuccess("Sandbox %s created", name)
	fmt.Printf("  ID: %s\n", record.ID)
	fmt.Printf("  Template: %s (%s)\n", tmpl.ID, tmpl.BaseImage)
	if sb.URL != "" {
		fmt.Printf("  URL: %s\n", sb.URL)
	} else if record.URL != "" {
		fmt.Printf("  URL: %s\n", record.URL)
	}
	fmt.Printf("  Status: %s\n", record.Status)

	return nil
}
