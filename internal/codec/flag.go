package codec

// Flag is the single-letter combinator prefix of a condition line. It decides
// how the line combines with its neighbours when the target runtime evaluates
// the group: predicate modifiers (PauseIf, ResetIf, Trigger, ...) and operand
// accumulators (AddSource, SubSource, AddAddress, Remember).
type Flag int

const (
	FlagNone Flag = iota
	FlagPauseIf
	FlagResetIf
	FlagResetNextIf
	FlagAddSource
	FlagSubSource
	FlagAddHits
	FlagSubHits
	FlagAddAddress
	FlagAndNext
	FlagOrNext
	FlagMeasured
	FlagMeasuredPercent
	FlagMeasuredIf
	FlagTrigger
	FlagRemember
)

var flagLetters = map[Flag]string{
	FlagPauseIf:         "P",
	FlagResetIf:         "R",
	FlagResetNextIf:     "Z",
	FlagAddSource:       "A",
	FlagSubSource:       "B",
	FlagAddHits:         "C",
	FlagSubHits:         "D",
	FlagAddAddress:      "I",
	FlagAndNext:         "N",
	FlagOrNext:          "O",
	FlagMeasured:        "M",
	FlagMeasuredPercent: "G",
	FlagMeasuredIf:      "Q",
	FlagTrigger:         "T",
	FlagRemember:        "K",
}

var flagNames = map[Flag]string{
	FlagNone:            "",
	FlagPauseIf:         "Pause If",
	FlagResetIf:         "Reset If",
	FlagResetNextIf:     "Reset Next If",
	FlagAddSource:       "Add Source",
	FlagSubSource:       "Sub Source",
	FlagAddHits:         "Add Hits",
	FlagSubHits:         "Sub Hits",
	FlagAddAddress:      "Add Address",
	FlagAndNext:         "And Next",
	FlagOrNext:          "Or Next",
	FlagMeasured:        "Measured",
	FlagMeasuredPercent: "Measured %",
	FlagMeasuredIf:      "Measured If",
	FlagTrigger:         "Trigger",
	FlagRemember:        "Remember",
}

var lettersToFlag = func() map[byte]Flag {
	m := make(map[byte]Flag, len(flagLetters))
	for f, l := range flagLetters {
		m[l[0]] = f
	}
	return m
}()

// Letter returns the single-letter grammar token for the flag, without the
// trailing colon. FlagNone has no letter.
func (f Flag) Letter() string {
	return flagLetters[f]
}

func (f Flag) String() string {
	return flagNames[f]
}

// FlagFromLetter resolves an uppercase flag letter to its Flag. The second
// return value is false for unknown letters.
func FlagFromLetter(c byte) (Flag, bool) {
	f, ok := lettersToFlag[c]
	return f, ok
}

// IsOperand reports whether the flag takes an arithmetic comparator set
// (* / % + - & ^) instead of a relational one, and carries no hit target.
func (f Flag) IsOperand() bool {
	switch f {
	case FlagAddSource, FlagSubSource, FlagAddAddress, FlagRemember:
		return true
	}
	return false
}

// IsChaining reports whether the flag combines with the line below it, which
// makes its condition a candidate for automatic linking.
func (f Flag) IsChaining() bool {
	switch f {
	case FlagAddAddress, FlagAddSource, FlagSubSource, FlagAndNext, FlagOrNext:
		return true
	}
	return false
}
