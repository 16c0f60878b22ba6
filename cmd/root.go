package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/substrate-dev/sandbox-agent/internal/app"
	"github.com/substrate-dev/sandbox-agent/internal/logging"
)

var (
	verbose    bool
	jsonOutput bool
	hostURL    string
	apiURL     string
	apiKey     string
)

var rootCmd = &cobra.Command{
	Use:   "sandbox-agent",
	Short: "Sandbox orchestration agent CLI",
	Long: `sandbox-agent manages ephemeral development sandboxes for coding agents.

Sandboxes are provisioned from catalog templates with:
  - A base container image per language stack
  - Pre-installed tooling packages
  - Named resource presets (small, medium, large)
  - Agent-to-agent messaging for task handoff`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logging.Setup(verbose, jsonOutput, os.Stderr)
		applyEndpointFlags()
	},
}

// applyEndpointFlags lets --host-url/--api-url/--api-key override the
// environment-derived configuration. The app is rebuilt so a provider
// client picks up the new endpoint.
func applyEndpointFlags() {
	if hostURL == "" && apiURL == "" && apiKey == "" {
		return
	}

	cfg := getConfig()
	if hostURL != "" {
		cfg.HostURL = hostURL
	}
	if apiURL != "" {
		cfg.APIURL = apiURL
	}
	if apiKey != "" {
		cfg.APIKey = apiKey
	}
	app.SetDefault(app.New(app.WithConfig(cfg)))
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output logs in JSON format")
	rootCmd.PersistentFlags().StringVar(&hostURL, "host-url", "", "Inter-agent messaging host endpoint")
	rootCmd.PersistentFlags().StringVar(&apiURL, "api-url", "", "Provisioning API endpoint")
	rootCmd.PersistentFlags().StringVar(&apiKey, "api-key", "", "Provisioning API key")
	rootCmd.CompletionOptions.DisableDefaultCmd = true
}

// Helper aliases for user-facing output (delegates to logging package)
var (
	logInfo    = logging.UserInfo
	logSuccess = logging.UserSuccess
	logWarning = logging.UserWarning
	_          = logging.UserError // reserved for future use
)
