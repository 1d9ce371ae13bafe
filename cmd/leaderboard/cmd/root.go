// Package cmd - commandes de la CLI du classement
package cmd

import (
	"fmt"
	"strconv"

	"github.com/MassBabyGeek/advent-leaderboard/internal/app"
	"github.com/MassBabyGeek/advent-leaderboard/internal/config"
	"github.com/MassBabyGeek/advent-leaderboard/internal/logger"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	verbose bool
	noColor bool

	application *app.App
)

var rootCmd = &cobra.Command{
	Use:   "leaderboard",
	Short: "Private puzzle leaderboard - CLI",
	Long: `Private puzzle leaderboard - CLI

Commands:
    show <year>      - print the ranked leaderboard
    fetch <year>     - force an upstream fetch and refresh the cache
    history <year>   - show the latest archived snapshot
`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initApp(cmd)
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if application != nil {
			application.Close()
		}
	},
}

// Execute exécute la commande racine
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")

	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(fetchCmd)
	rootCmd.AddCommand(historyCmd)
}

func initApp(cmd *cobra.Command) error {
	if noColor {
		color.NoColor = true
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logCfg := app.LoggerConfig(cfg, "leaderboard-cli")
	if !verbose {
		logCfg.Level = "warn"
	}
	if err := logger.Init(logCfg); err != nil {
		return fmt.Errorf("init logger: %w", err)
	}

	application, err = app.New(cmd.Context(), cfg)
	return err
}

func parseYear(arg string) (int, error) {
	year, err := strconv.Atoi(arg)
	if err != nil || year < 2015 {
		return 0, fmt.Errorf("invalid year %q", arg)
	}
	return year, nil
}
