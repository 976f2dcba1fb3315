package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/BigDonRob/RA-Modular-Logic-Generator/internal"
)

var watchCmd = &cobra.Command{
	Use:   "watch [directories...]",
	Short: "Watch directories and recompile logic files on change",
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) == 0 {
			fmt.Println("error: Please provide directories to watch")
			os.Exit(1)
		}

		config, err := loadConfig()
		if err != nil {
			logger.Fatal("Failed to load configuration", zap.Error(err))
		}

		watcher, err := internal.NewWatcher(args, config.Passes)
		if err != nil {
			logger.Fatal("Failed to create watcher", zap.Error(err))
		}
		defer watcher.Stop()

		if err := watcher.Start(); err != nil {
			logger.Fatal("Failed to start watcher", zap.Error(err))
		}

		fmt.Println("Watching for changes. Press Ctrl+C to stop.")

		sig := make(chan os.Signal, 1)
		signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
		<-sig
		fmt.Println("\nStopping watch mode.")
	},
}
