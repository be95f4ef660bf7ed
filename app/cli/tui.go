package cli

import (
	"studytasks/app/config"
	"studytasks/app/tui"

	"github.com/spf13/cobra"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Open the interactive task list (default)",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		return runTUI(cfg)
	},
}

// runTUI owns the terminal, so the store never logs while it runs.
func runTUI(cfg *config.Config) error {
	store, err := newStore(cfg, discardLogger())
	if err != nil {
		return err
	}
	return tui.Run(store)
}
