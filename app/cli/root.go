package cli

import (
	"fmt"
	"io"
	"log"
	"os"

	"studytasks/app/config"
	"studytasks/app/services"

	"github.com/spf13/cobra"
)

var (
	configPath string
	seedFlag   string
	verbose    bool
	rootCmd    *cobra.Command
)

func init() {
	rootCmd = &cobra.Command{
		Use:   "studytasks",
		Short: "Track homework assignments",
		Long: `studytasks keeps an in-memory list of homework tasks: add, filter,
search, reorder, complete and delete them, and watch your progress.

Nothing is saved; every run starts from the seed list.`,
		RunE:          runDefault,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to a YAML config file")
	rootCmd.PersistentFlags().StringVar(&seedFlag, "seed", "", "Initial tasks: 'default', 'none' or a YAML file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log every change to the task list")
}

// Execute runs the root command.
func Execute(version string) error {
	rootCmd.AddCommand(tuiCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(versionCmd(version))

	rootCmd.Version = version
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return err
	}
	return nil
}

func runDefault(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if cfg.Mode == config.ModeServe {
		return serve(cmd.Context(), cfg)
	}
	return runTUI(cfg)
}

// loadConfig merges the config file, environment and command-line flags.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	if cmd.Flags().Changed("seed") {
		cfg.Seed = seedFlag
	}
	if cmd.Flags().Changed("verbose") {
		cfg.Verbose = verbose
	}
	if f := cmd.Flags().Lookup("addr"); f != nil && f.Changed {
		cfg.Addr = f.Value.String()
	}
	return cfg, cfg.Validate()
}

// newStore builds the task store from the configured seed.
func newStore(cfg *config.Config, logger *log.Logger) (*services.TaskStore, error) {
	tasks, err := config.ResolveSeed(cfg.Seed, services.NewID)
	if err != nil {
		return nil, err
	}
	opts := []services.Option{services.WithTasks(tasks)}
	if cfg.Verbose {
		opts = append(opts, services.WithLogger(logger))
	}
	return services.NewTaskStore(opts...), nil
}

func discardLogger() *log.Logger {
	return log.New(io.Discard, "", 0)
}
