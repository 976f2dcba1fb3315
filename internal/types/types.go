package types

import "fmt"

// Warning is a transient, user-facing rejection produced when a guarded
// operation refuses to run. The session reports it and keeps its previous
// state; warnings never abort the pipeline.
type Warning struct {
	Op      string
	Message string
}

func (w Warning) String() string {
	return fmt.Sprintf("%s: %s", w.Op, w.Message)
}

// PassStats reports the effect of an optimization pass on a generated blob.
type PassStats struct {
	Pass        string
	LinesBefore int
	LinesAfter  int
	BytesBefore int
	BytesAfter  int
}

// LinesSaved returns the number of lines removed by the pass.
func (s PassStats) LinesSaved() int {
	return s.LinesBefore - s.LinesAfter
}

// BytesSaved returns the number of bytes removed by the pass.
func (s PassStats) BytesSaved() int {
	return s.BytesBefore - s.BytesAfter
}

// Changed reports whether the pass rewrote anything at all.
func (s PassStats) Changed() bool {
	return s.LinesBefore != s.LinesAfter || s.BytesBefore != s.BytesAfter
}

// PassConfig holds the per-pass switches loaded from the configuration file.
type PassConfig struct {
	BitCompression bool `yaml:"bit-compression"`
	RememberRecall bool `yaml:"remember-recall"`
}
