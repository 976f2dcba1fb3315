package passes

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRememberRecall(t *testing.T) {
	t.Parallel()

	t.Run("two-line pattern repeated three times", func(t *testing.T) {
		t.Parallel()
		lines := []string{
			"A:0xH1000", "N:0x2000=1",
			"A:0xH1000", "N:0x2000=1",
			"A:0xH1000", "N:0x2000=1",
		}
		got, stats := RememberRecall(lines)
		assert.Equal(t, []string{
			"A:0xH1000", "K:0x2000=1",
			"N:{recall}",
			"N:{recall}",
		}, got)
		assert.Equal(t, 6, stats.LinesBefore)
		assert.Equal(t, 4, stats.LinesAfter)
		assert.True(t, stats.Changed())
		assert.Positive(t, stats.BytesSaved())
	})

	t.Run("longer pattern wins over a shorter one", func(t *testing.T) {
		t.Parallel()
		lines := []string{
			"A:0xH1000", "A:0xH1001", "N:0x2000=1",
			"A:0xH1000", "A:0xH1001", "N:0x2000=1",
			"A:0xH1000", "A:0xH1001", "N:0x2000=1",
		}
		got, _ := RememberRecall(lines)
		assert.Equal(t, []string{
			"A:0xH1000", "A:0xH1001", "K:0x2000=1",
			"N:{recall}",
			"N:{recall}",
		}, got)
	})

	t.Run("interleaved occurrences keep the other lines in place", func(t *testing.T) {
		t.Parallel()
		lines := []string{
			"A:0xH1000", "N:0x2000=1",
			"0x9999=5",
			"A:0xH1000", "N:0x2000=1",
			"0x8888=6",
			"A:0xH1000", "N:0x2000=1",
		}
		got, _ := RememberRecall(lines)
		assert.Equal(t, []string{
			"A:0xH1000", "K:0x2000=1",
			"0x9999=5",
			"N:{recall}",
			"0x8888=6",
			"N:{recall}",
		}, got)
	})

	t.Run("pattern ending in an unflagged line is left alone", func(t *testing.T) {
		t.Parallel()
		lines := []string{
			"A:0xH1000", "0x2000=1",
			"A:0xH1000", "0x2000=1",
			"A:0xH1000", "0x2000=1",
		}
		got, stats := RememberRecall(lines)
		assert.Equal(t, lines, got)
		assert.False(t, stats.Changed())
	})

	t.Run("only two occurrences is not worth a register", func(t *testing.T) {
		t.Parallel()
		lines := []string{
			"A:0xH1000", "N:0x2000=1",
			"A:0xH1000", "N:0x2000=1",
			"0x1=1", "0x2=2",
		}
		got, stats := RememberRecall(lines)
		assert.Equal(t, lines, got)
		assert.False(t, stats.Changed())
	})

	t.Run("short input is never scanned", func(t *testing.T) {
		t.Parallel()
		lines := []string{"0x1=1", "0x2=2", "0x3=3"}
		got, stats := RememberRecall(lines)
		require.Equal(t, lines, got)
		assert.Equal(t, stats.LinesBefore, stats.LinesAfter)
	})

	t.Run("idempotent", func(t *testing.T) {
		t.Parallel()
		lines := []string{
			"A:0xH1000", "N:0x2000=1",
			"A:0xH1000", "N:0x2000=1",
			"A:0xH1000", "N:0x2000=1",
		}
		once, _ := RememberRecall(lines)
		twice, stats := RememberRecall(once)
		assert.Equal(t, once, twice)
		assert.False(t, stats.Changed())
	})
}
