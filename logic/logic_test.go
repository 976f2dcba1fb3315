package logic

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	t.Parallel()

	t.Run("empty path selects defaults", func(t *testing.T) {
		t.Parallel()
		config, err := LoadConfig("")
		require.NoError(t, err)
		assert.Equal(t, DefaultConfig(), config)
	})

	t.Run("file overrides defaults field by field", func(t *testing.T) {
		t.Parallel()
		path := filepath.Join(t.TempDir(), ".ramlg.yaml")
		data := []byte(`name: sandbox
max-lines: 50
generated-groups: 8
passes:
  bit-compression: false
  remember-recall: true
add-address-policy: coerce
`)
		require.NoError(t, os.WriteFile(path, data, 0o644))

		config, err := LoadConfig(path)
		require.NoError(t, err)
		assert.Equal(t, "sandbox", config.Name)
		assert.Equal(t, 50, config.MaxLines)
		assert.Equal(t, 8, config.GeneratedGroups)
		assert.False(t, config.Passes.BitCompression)
		assert.True(t, config.Passes.RememberRecall)
		assert.Equal(t, "coerce", config.AddAddressPolicy)
	})

	t.Run("partial file keeps remaining defaults", func(t *testing.T) {
		t.Parallel()
		path := filepath.Join(t.TempDir(), ".ramlg.yaml")
		require.NoError(t, os.WriteFile(path, []byte("name: partial\n"), 0o644))

		config, err := LoadConfig(path)
		require.NoError(t, err)
		assert.Equal(t, "partial", config.Name)
		assert.Equal(t, DefaultConfig().MaxLines, config.MaxLines)
	})

	t.Run("missing named file is an error", func(t *testing.T) {
		t.Parallel()
		_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
		assert.Error(t, err)
	})

	t.Run("malformed yaml is an error", func(t *testing.T) {
		t.Parallel()
		path := filepath.Join(t.TempDir(), ".ramlg.yaml")
		require.NoError(t, os.WriteFile(path, []byte("{not yaml"), 0o644))
		_, err := LoadConfig(path)
		assert.Error(t, err)
	})
}

func TestProcessSource(t *testing.T) {
	t.Parallel()

	t.Run("compiles and runs the enabled passes", func(t *testing.T) {
		t.Parallel()
		source := "A:0xM1234_A:0xN1234_A:0xO1234_A:0xP1234_A:0xQ1234_A:0xR1234_A:0xS1234_A:0xT1234_0x2000=8"
		result := ProcessSource(DefaultConfig(), []byte(source))

		assert.Equal(t, 9, result.Conditions)
		assert.Equal(t, "A:0xK1234_0x2000=8", result.Output)
		require.Len(t, result.Stats, 2)
		assert.True(t, result.Stats[0].Changed())
		assert.False(t, result.Stats[1].Changed())
	})

	t.Run("disabled passes leave the blob alone", func(t *testing.T) {
		t.Parallel()
		config := DefaultConfig()
		config.Passes.BitCompression = false
		config.Passes.RememberRecall = false

		source := "A:0xM1234_A:0xN1234_A:0xO1234_A:0xP1234_A:0xQ1234_A:0xR1234"
		result := ProcessSource(config, []byte(source))
		assert.Equal(t, source, result.Output)
		assert.Empty(t, result.Stats)
	})

	t.Run("surrounding whitespace is trimmed", func(t *testing.T) {
		t.Parallel()
		result := ProcessSource(DefaultConfig(), []byte("  0xH1234=1\n"))
		assert.Equal(t, "0xH1234=1", result.Output)
		assert.Equal(t, 1, result.Conditions)
	})
}

func TestProcessFile(t *testing.T) {
	t.Parallel()

	t.Run("reads and compiles", func(t *testing.T) {
		t.Parallel()
		path := filepath.Join(t.TempDir(), "logic.ralogic")
		require.NoError(t, os.WriteFile(path, []byte("0xH1234=1_0xH1235=2"), 0o644))

		result, err := ProcessFile(DefaultConfig(), path)
		require.NoError(t, err)
		assert.Equal(t, path, result.Path)
		assert.Equal(t, 2, result.Conditions)
	})

	t.Run("missing file", func(t *testing.T) {
		t.Parallel()
		_, err := ProcessFile(DefaultConfig(), filepath.Join(t.TempDir(), "nope.ralogic"))
		assert.Error(t, err)
	})
}

func TestProcessFiles(t *testing.T) {
	t.Parallel()

	t.Run("walks directories for logic files", func(t *testing.T) {
		t.Parallel()
		dir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(dir, "a.ralogic"), []byte("0xH1=1"), 0o644))
		require.NoError(t, os.WriteFile(filepath.Join(dir, "b.txt"), []byte("0xH2=2"), 0o644))
		require.NoError(t, os.WriteFile(filepath.Join(dir, "skip.md"), []byte("not logic"), 0o644))

		results, err := ProcessFiles(context.Background(), nil, DefaultConfig(), []string{dir})
		require.NoError(t, err)
		assert.Len(t, results, 2)
	})

	t.Run("plain files compile directly", func(t *testing.T) {
		t.Parallel()
		path := filepath.Join(t.TempDir(), "one.ralogic")
		require.NoError(t, os.WriteFile(path, []byte("0xH1=1"), 0o644))

		results, err := ProcessFiles(context.Background(), nil, DefaultConfig(), []string{path})
		require.NoError(t, err)
		require.Len(t, results, 1)
		assert.Equal(t, "0xH1=1", results[0].Output)
	})

	t.Run("cancelled context stops the batch", func(t *testing.T) {
		t.Parallel()
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, err := ProcessFiles(ctx, nil, DefaultConfig(), []string{t.TempDir()})
		assert.Error(t, err)
	})

	t.Run("missing path is an error", func(t *testing.T) {
		t.Parallel()
		_, err := ProcessFiles(context.Background(), nil, DefaultConfig(), []string{"/no/such/path"})
		assert.Error(t, err)
	})
}

func TestHasDesiredExtension(t *testing.T) {
	t.Parallel()
	assert.True(t, hasDesiredExtension("foo.ralogic"))
	assert.True(t, hasDesiredExtension("foo.txt"))
	assert.False(t, hasDesiredExtension("foo.go"))
	assert.False(t, hasDesiredExtension("foo"))
}
