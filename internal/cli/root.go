package cli

import (
	"os"

	"github.com/spf13/cobra"
)

var configPath string

// Execute runs the CLI.
func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	envConfig := os.Getenv("CONFIG_PATH")

	cmd := &cobra.Command{
		Use:   "quiz-bot",
		Short: "Telegram quiz bot with daily airdrops",
	}
	cmd.PersistentFlags().StringVar(&configPath, "config", envConfig, "path to YAML config")
	cmd.AddCommand(newStartCmd(&configPath))
	cmd.AddCommand(newValidateCmd(&configPath))
	return cmd
}
