// Package logic is the public entry surface of the generator: configuration
// loading and batch compilation of logic files into their optimized wire
// form.
package logic

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/schollz/progressbar/v3"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/BigDonRob/RA-Modular-Logic-Generator/internal"
	"github.com/BigDonRob/RA-Modular-Logic-Generator/internal/types"
)

// Config is the file-level configuration, read from .ramlg.yaml.
type Config struct {
	Name             string           `yaml:"name"`
	MaxLines         int              `yaml:"max-lines"`
	GeneratedGroups  int              `yaml:"generated-groups"`
	Passes           types.PassConfig `yaml:"passes"`
	AddAddressPolicy string           `yaml:"add-address-policy"`
}

// DefaultConfig returns the configuration used when no file is present.
func DefaultConfig() Config {
	return Config{
		Name:            "ramlg",
		MaxLines:        internal.DefaultMaxLines,
		GeneratedGroups: 1,
		Passes: types.PassConfig{
			BitCompression: true,
			RememberRecall: true,
		},
		AddAddressPolicy: "reject",
	}
}

// LoadConfig parses the configuration file. An empty path selects the
// defaults; a named but unreadable file is an error.
func LoadConfig(path string) (Config, error) {
	if path == "" {
		return DefaultConfig(), nil
	}

	config := DefaultConfig()
	f, err := os.Open(path)
	if err != nil {
		return config, err
	}
	defer f.Close()

	decoder := yaml.NewDecoder(f)
	if err := decoder.Decode(&config); err != nil {
		return config, err
	}
	return config, nil
}

// NewEngine builds a session engine honoring the configuration.
func NewEngine(config Config) *internal.Engine {
	engine := internal.NewEngine(config.MaxLines)
	if config.AddAddressPolicy == "coerce" {
		engine.SetCoerceAddAddress(true)
	}
	return engine
}

// Result is the outcome of compiling one source blob.
type Result struct {
	Path       string
	Conditions int
	Output     string
	Stats      []types.PassStats
	Warnings   []types.Warning
}

// ProcessSource compiles one wire blob: parse, auto-link, generate, then the
// enabled optimization passes.
func ProcessSource(config Config, source []byte) Result {
	engine := NewEngine(config)
	engine.LoadText(strings.TrimSpace(string(source)))
	engine.AutoLink()

	blob := engine.Generate()

	var result Result
	if config.Passes.BitCompression {
		var stats types.PassStats
		blob, stats = internal.CompressBits(blob)
		result.Stats = append(result.Stats, stats)
	}
	if config.Passes.RememberRecall {
		var stats types.PassStats
		blob, stats = internal.OptimizeRecall(blob)
		result.Stats = append(result.Stats, stats)
	}

	result.Conditions = len(engine.Conditions())
	result.Output = blob
	result.Warnings = engine.Warnings()
	return result
}

// ProcessFile compiles one file from disk.
func ProcessFile(config Config, path string) (Result, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return Result{}, fmt.Errorf("error reading %s: %w", path, err)
	}
	result := ProcessSource(config, content)
	result.Path = path
	return result, nil
}

// ProcessFiles compiles every logic file under the given paths. Directories
// are walked for logic files and reported on a progress bar; plain files are
// compiled directly.
func ProcessFiles(ctx context.Context, logger *zap.Logger, config Config, paths []string) ([]Result, error) {
	var results []Result
	for _, path := range paths {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		info, err := os.Stat(path)
		if err != nil {
			return nil, fmt.Errorf("error accessing %s: %w", path, err)
		}

		if !info.IsDir() {
			result, err := ProcessFile(config, path)
			if err != nil {
				if logger != nil {
					logger.Error("Error processing file", zap.String("file", path), zap.Error(err))
				}
				return nil, err
			}
			results = append(results, result)
			continue
		}

		var files []string
		filepath.Walk(path, func(filePath string, fileInfo os.FileInfo, err error) error {
			if err != nil {
				return err
			}
			if !fileInfo.IsDir() && hasDesiredExtension(filePath) {
				files = append(files, filePath)
			}
			return nil
		})

		bar := progressbar.NewOptions(len(files),
			progressbar.OptionSetDescription(path),
			progressbar.OptionEnableColorCodes(true),
			progressbar.OptionSetWidth(40),
			progressbar.OptionShowCount(),
			progressbar.OptionSetTheme(progressbar.Theme{
				Saucer:        "[green]=[reset]",
				SaucerHead:    "[green]>[reset]",
				SaucerPadding: " ",
				BarStart:      "[",
				BarEnd:        "]",
			}))

		for _, filePath := range files {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			result, err := ProcessFile(config, filePath)
			if err != nil {
				if logger != nil {
					logger.Error("Error processing file", zap.String("file", filePath), zap.Error(err))
				}
				bar.Add(1)
				continue
			}
			results = append(results, result)
			bar.Add(1)
		}
		fmt.Println()
	}

	return results, nil
}

var desiredExtensions = map[string]bool{
	".ralogic": true,
	".txt":     true,
}

func hasDesiredExtension(path string) bool {
	return desiredExtensions[filepath.Ext(path)]
}
