package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/BigDonRob/RA-Modular-Logic-Generator/formatter"
	"github.com/BigDonRob/RA-Modular-Logic-Generator/logic"
)

var (
	outPath        string
	copyOutput     bool
	compileJSON    bool
	skipBitPass    bool
	skipRecallPass bool
)

var compileCmd = &cobra.Command{
	Use:   "compile [paths...]",
	Short: "Compile logic files into their optimized wire form",
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) == 0 {
			fmt.Println("error: Please provide file or directory paths")
			os.Exit(1)
		}

		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		config, err := loadConfig()
		if err != nil {
			logger.Fatal("Failed to load configuration", zap.Error(err))
		}
		if skipBitPass {
			config.Passes.BitCompression = false
		}
		if skipRecallPass {
			config.Passes.RememberRecall = false
		}

		results, err := logic.ProcessFiles(ctx, logger, config, args)
		if err != nil {
			logger.Error("Error processing files", zap.Error(err))
			os.Exit(1)
		}

		emitResults(results)
	},
}

func init() {
	compileCmd.Flags().StringVarP(&outPath, "output", "o", "", "Write the generated blob(s) to a file")
	compileCmd.Flags().BoolVar(&copyOutput, "copy", false, "Copy the generated blob to the clipboard")
	compileCmd.Flags().BoolVar(&compileJSON, "json", false, "Output results in JSON format")
	compileCmd.Flags().BoolVar(&skipBitPass, "no-bits", false, "Skip the bit-compression pass")
	compileCmd.Flags().BoolVar(&skipRecallPass, "no-rr", false, "Skip the remember/recall pass")
}

// loadConfig resolves the configuration: an explicit --config path must
// exist, otherwise .ramlg.yaml is picked up when present.
func loadConfig() (logic.Config, error) {
	path := cfgFile
	if path == "" {
		if _, err := os.Stat(".ramlg.yaml"); err == nil {
			path = ".ramlg.yaml"
		}
	}
	return logic.LoadConfig(path)
}

func emitResults(results []logic.Result) {
	if compileJSON {
		d, err := json.Marshal(results)
		if err != nil {
			logger.Error("Error marshalling results to JSON", zap.Error(err))
			return
		}
		fmt.Println(string(d))
		return
	}

	var blobs []string
	for _, result := range results {
		if result.Path != "" {
			fmt.Printf("%s: %d conditions\n", result.Path, result.Conditions)
		}
		for _, stats := range result.Stats {
			fmt.Print(formatter.FormatPassReport(stats))
		}
		fmt.Print(formatter.FormatWarnings(result.Warnings))
		fmt.Println(result.Output)
		blobs = append(blobs, result.Output)
	}

	joined := strings.Join(blobs, "\n")
	if outPath != "" {
		if err := os.WriteFile(outPath, []byte(joined+"\n"), 0o644); err != nil {
			logger.Error("Error writing output file", zap.Error(err))
		}
	}
	if copyOutput {
		if err := clipboard.WriteAll(joined); err != nil {
			logger.Error("Error copying output to clipboard", zap.Error(err))
		}
	}
}
