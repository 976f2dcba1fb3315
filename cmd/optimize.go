package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/BigDonRob/RA-Modular-Logic-Generator/formatter"
	"github.com/BigDonRob/RA-Modular-Logic-Generator/internal"
)

var (
	optimizeBitsOnly bool
	optimizeRROnly   bool
	optimizeCopy     bool
)

var optimizeCmd = &cobra.Command{
	Use:   "optimize [file|blob]",
	Short: "Run the compression passes over an already-generated blob",
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) != 1 {
			fmt.Println("error: Please provide a logic file or a raw blob")
			os.Exit(1)
		}

		blob := args[0]
		if content, err := os.ReadFile(args[0]); err == nil {
			blob = strings.TrimSpace(string(content))
		}

		runBits := !optimizeRROnly
		runRR := !optimizeBitsOnly

		if runBits {
			out, stats := internal.CompressBits(blob)
			blob = out
			fmt.Print(formatter.FormatPassReport(stats))
		}
		if runRR {
			out, stats := internal.OptimizeRecall(blob)
			blob = out
			fmt.Print(formatter.FormatPassReport(stats))
		}

		fmt.Println(blob)

		if optimizeCopy {
			if err := clipboard.WriteAll(blob); err != nil {
				logger.Error("Error copying output to clipboard", zap.Error(err))
			}
		}
	},
}

func init() {
	optimizeCmd.Flags().BoolVar(&optimizeBitsOnly, "bits", false, "Run only the bit-compression pass")
	optimizeCmd.Flags().BoolVar(&optimizeRROnly, "rr", false, "Run only the remember/recall pass")
	optimizeCmd.Flags().BoolVar(&optimizeCopy, "copy", false, "Copy the optimized blob to the clipboard")
}
