package cmd

import (
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	cfgFile string
	timeout time.Duration

	logger *zap.Logger
)

const defaultTimeout = 5 * time.Minute

var rootCmd = &cobra.Command{
	Use:              "ramlg [paths...]",
	Short:            "ramlg - modular achievement logic generator and optimizer",
	TraverseChildren: true, // Prioritize subcommands
	Run: func(cmd *cobra.Command, args []string) {
		// no subcommand
		if len(args) == 0 {
			// display help when only 'ramlg' is entered
			_ = cmd.Help()
			return
		}
		// Format: ramlg [path1 path2 ...] => behaves like the compile subcommand
		compileCmd.Run(compileCmd, args)
	},
}

func Execute() error {
	defer logger.Sync()
	return rootCmd.Execute()
}

func init() {
	logger, _ = zap.NewProduction()

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Path to the configuration file (default .ramlg.yaml when present)")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", defaultTimeout, "Set a timeout for compilation")

	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(compileCmd)
	rootCmd.AddCommand(expandCmd)
	rootCmd.AddCommand(optimizeCmd)
	rootCmd.AddCommand(watchCmd)
}
