package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"telegram-quiz-bot/internal/catalog"
	"telegram-quiz-bot/internal/config"
	"telegram-quiz-bot/internal/models"
)

// newValidateCmd checks the tasks file the same way startup does and prints
// per-level counts, so a broken import is caught before a deploy.
func newValidateCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "validate [tasks-file]",
		Short: "Validate the tasks JSON file",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(*configPath)
			if err != nil {
				return err
			}
			path := cfg.TasksFile
			if len(args) == 1 {
				path = args[0]
			}

			cat, err := catalog.Load(path)
			if err != nil {
				return err
			}
			total := 0
			for _, l := range models.Levels {
				n := cat.Size(l)
				total += n
				fmt.Printf("%-8s %d\n", l, n)
			}
			if total == 0 {
				return fmt.Errorf("%s: no valid tasks", path)
			}
			fmt.Printf("total    %d\n", total)
			return nil
		},
	}
}
