package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/BigDonRob/RA-Modular-Logic-Generator/formatter"
	"github.com/BigDonRob/RA-Modular-Logic-Generator/internal/expand"
	"github.com/BigDonRob/RA-Modular-Logic-Generator/logic"
)

var (
	expandCount     int
	expandIncrement string
	expandTab       string
	expandDelta     bool
)

var expandCmd = &cobra.Command{
	Use:   "expand [file]",
	Short: "Expand every group of a logic file across N repetitions",
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) != 1 {
			fmt.Println("error: Please provide exactly one logic file")
			os.Exit(1)
		}

		tab, ok := parseTab(expandTab)
		if !ok {
			fmt.Printf("error: unknown tab %q (want left, right, or both)\n", expandTab)
			os.Exit(1)
		}

		config, err := loadConfig()
		if err != nil {
			logger.Fatal("Failed to load configuration", zap.Error(err))
		}

		content, err := os.ReadFile(args[0])
		if err != nil {
			logger.Fatal("Failed to read logic file", zap.Error(err))
		}

		engine := logic.NewEngine(config)
		engine.LoadText(string(content))
		engine.AutoLink()

		count := expandCount
		if count < 1 {
			count = config.GeneratedGroups
		}

		for _, c := range engine.Conditions() {
			if !engine.List().IsGroupLeader(c) {
				continue
			}
			cfg, ok := engine.BeginExpansion(c.LineID, count)
			if !ok {
				continue
			}
			cfg.DeltaCheck = expandDelta
			if expandIncrement != "" {
				for _, m := range engine.List().GroupLines(c.GroupID) {
					lc := cfg.Line(m.LineID)
					lc.ActiveTab = tab
					lc.Increment = expandIncrement
				}
			}
			engine.ConfirmExpansion(c.LineID)
		}

		fmt.Print(formatter.FormatWarnings(engine.Warnings()))
		fmt.Println(engine.Generate())
	},
}

func init() {
	expandCmd.Flags().IntVarP(&expandCount, "count", "n", 0, "Repetition count (default from configuration)")
	expandCmd.Flags().StringVarP(&expandIncrement, "increment", "i", "", "Per-repetition address step (hex or decimal)")
	expandCmd.Flags().StringVar(&expandTab, "tab", "left", "Which operand side the step applies to (left, right, both)")
	expandCmd.Flags().BoolVar(&expandDelta, "delta", false, "Run the delta/mem accumulator pass on each expanded group")
}

func parseTab(s string) (expand.Tab, bool) {
	switch s {
	case "left":
		return expand.TabLeft, true
	case "right":
		return expand.TabRight, true
	case "both":
		return expand.TabBoth, true
	}
	return expand.TabLeft, false
}
