package internal

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BigDonRob/RA-Modular-Logic-Generator/internal/codec"
	"github.com/BigDonRob/RA-Modular-Logic-Generator/internal/expand"
)

func mustParse(t *testing.T, line string) *codec.Condition {
	t.Helper()
	c, ok := codec.Parse(line)
	require.True(t, ok, "line %q", line)
	return c
}

func TestLoadTextRoundTrip(t *testing.T) {
	t.Parallel()
	e := NewEngine(0)
	blob := "0xH1234=1_A:0xH1235_0x2000>5.10."
	e.LoadText(blob)
	assert.Equal(t, blob, e.Text())
	assert.Len(t, e.Conditions(), 3)
}

func TestLoadTextDropsMalformedLines(t *testing.T) {
	t.Parallel()
	e := NewEngine(0)
	e.LoadText("0xH1234=1_???_0xH1235=2")
	require.Len(t, e.Conditions(), 2)
	assert.Equal(t, "0xH1234=1_0xH1235=2", e.Text())
}

func TestEngineStructuralOps(t *testing.T) {
	t.Parallel()

	t.Run("insert invalidates open expansion sessions", func(t *testing.T) {
		t.Parallel()
		e := NewEngine(0)
		e.LoadText("0xH1=1_0xH2=2")
		_, ok := e.BeginExpansion(1, 2)
		require.True(t, ok)

		require.True(t, e.InsertAfter(1, mustParse(t, "0xaa=1")))
		_, ok = e.ExpansionConfig(1)
		assert.False(t, ok)
	})

	t.Run("remove and copy invalidate open expansion sessions", func(t *testing.T) {
		t.Parallel()
		e := NewEngine(0)
		e.LoadText("0xH1=1_0xH2=2")
		_, ok := e.BeginExpansion(1, 2)
		require.True(t, ok)
		require.True(t, e.Remove(2))
		_, ok = e.ExpansionConfig(1)
		assert.False(t, ok)

		_, ok = e.BeginExpansion(1, 2)
		require.True(t, ok)
		require.True(t, e.Copy(1))
		_, ok = e.ExpansionConfig(1)
		assert.False(t, ok)
	})

	t.Run("append past the cap warns and refuses", func(t *testing.T) {
		t.Parallel()
		e := NewEngine(2)
		e.LoadText("0xH1=1_0xH2=2")
		assert.False(t, e.Append(mustParse(t, "0xaa=1")))

		w := e.Warnings()
		require.Len(t, w, 1)
		assert.Equal(t, "append", w[0].Op)
		assert.Empty(t, e.Warnings()) // drained
	})

	t.Run("remove and copy keep ids dense", func(t *testing.T) {
		t.Parallel()
		e := NewEngine(0)
		e.LoadText("0xH1=1_0xH2=2_0xH3=3")
		require.True(t, e.Remove(2))
		require.True(t, e.Copy(1))
		conds := e.Conditions()
		require.Len(t, conds, 3)
		for i, c := range conds {
			assert.Equal(t, i+1, c.LineID)
		}
		assert.Equal(t, "0xH1=1_0xH1=1_0xH3=3", e.Text())
	})
}

func TestSetTypePolicy(t *testing.T) {
	t.Parallel()

	t.Run("rejects delta under add address by default", func(t *testing.T) {
		t.Parallel()
		e := NewEngine(0)
		e.LoadText("I:0x1234")
		assert.False(t, e.SetType(1, codec.KindDelta))
		assert.Equal(t, codec.KindMem, e.Conditions()[0].Type)

		w := e.Warnings()
		require.Len(t, w, 1)
		assert.Equal(t, "set-type", w[0].Op)
	})

	t.Run("coerce policy substitutes mem silently", func(t *testing.T) {
		t.Parallel()
		e := NewEngine(0)
		e.SetCoerceAddAddress(true)
		e.LoadText("I:p0x1234")
		assert.True(t, e.SetType(1, codec.KindDelta))
		assert.Equal(t, codec.KindMem, e.Conditions()[0].Type)
		assert.Empty(t, e.Warnings())
	})

	t.Run("admissible kinds always pass", func(t *testing.T) {
		t.Parallel()
		e := NewEngine(0)
		e.LoadText("I:0x1234")
		assert.True(t, e.SetType(1, codec.KindPrior))
		assert.Equal(t, codec.KindPrior, e.Conditions()[0].Type)
	})

	t.Run("unrestricted without the add address flag", func(t *testing.T) {
		t.Parallel()
		e := NewEngine(0)
		e.LoadText("0x1234=1")
		assert.True(t, e.SetType(1, codec.KindDelta))
		assert.Equal(t, codec.KindDelta, e.Conditions()[0].Type)
	})
}

func TestGroupColor(t *testing.T) {
	t.Parallel()
	e := NewEngine(0)
	e.LoadText("A:0x1_0x2=2_A:0x3_0x4=4_0x5=5")
	e.AutoLink()

	conds := e.Conditions()
	first := e.GroupColor(conds[0].GroupID)
	second := e.GroupColor(conds[2].GroupID)
	assert.GreaterOrEqual(t, first, 0)
	assert.GreaterOrEqual(t, second, 0)
	assert.NotEqual(t, first, second)

	// stable across calls
	assert.Equal(t, first, e.GroupColor(conds[0].GroupID))
	// singletons carry no tint
	assert.Equal(t, -1, e.GroupColor(conds[4].GroupID))
}

func TestExpansionSession(t *testing.T) {
	t.Parallel()

	t.Run("only a group leader may open a session", func(t *testing.T) {
		t.Parallel()
		e := NewEngine(0)
		e.LoadText("A:0x1_0x2=2")
		e.AutoLink()
		_, ok := e.BeginExpansion(1, 2)
		assert.False(t, ok)
		_, ok = e.BeginExpansion(2, 2)
		assert.True(t, ok)
	})

	t.Run("reopening returns the same session", func(t *testing.T) {
		t.Parallel()
		e := NewEngine(0)
		e.LoadText("0xH1000=1")
		cfg, ok := e.BeginExpansion(1, 3)
		require.True(t, ok)
		cfg.DeltaCheck = true

		again, ok := e.BeginExpansion(1, 99)
		require.True(t, ok)
		assert.Same(t, cfg, again)
		assert.Equal(t, 3, again.GeneratedGroups)
	})

	t.Run("confirm writes the generated lines onto the leader", func(t *testing.T) {
		t.Parallel()
		e := NewEngine(0)
		e.LoadText("0xH1000=1")
		cfg, ok := e.BeginExpansion(1, 3)
		require.True(t, ok)
		lc := cfg.Line(1)
		lc.ActiveTab = expand.TabLeft
		lc.Increment = "1"

		require.True(t, e.ConfirmExpansion(1))
		leader := e.Conditions()[0]
		assert.True(t, leader.Expanded)
		assert.Equal(t, []string{"0xH1000=1", "0xH1001=1", "0xH1002=1"}, leader.ExpandedLines)

		// the session is consumed
		_, ok = e.ExpansionConfig(1)
		assert.False(t, ok)
	})

	t.Run("cancel discards without touching state", func(t *testing.T) {
		t.Parallel()
		e := NewEngine(0)
		e.LoadText("0xH1000=1")
		_, ok := e.BeginExpansion(1, 3)
		require.True(t, ok)
		e.CancelExpansion(1)
		assert.False(t, e.Conditions()[0].Expanded)
		_, ok = e.ExpansionConfig(1)
		assert.False(t, ok)
	})

	t.Run("selection count must match the repetition count", func(t *testing.T) {
		t.Parallel()
		e := NewEngine(0)
		e.LoadText("0xH1000=1")
		cfg, ok := e.BeginExpansion(1, 3)
		require.True(t, ok)
		cfg.Line(1).CustomFieldSize = 16

		sel, ok := e.Customize(1, 1, 0x1000)
		require.True(t, ok)
		sel.Toggle(0x1000)
		sel.Toggle(0x1001)

		assert.False(t, e.ConfirmExpansion(1))
		w := e.Warnings()
		require.Len(t, w, 1)
		assert.Equal(t, "confirm-expansion", w[0].Op)

		sel.Toggle(0x1002)
		require.True(t, e.ConfirmExpansion(1))
		assert.Equal(t, []string{"0xH1000=1", "0xH1001=1", "0xH1002=1"}, e.Conditions()[0].ExpandedLines)
	})

	t.Run("customize needs a positive field size", func(t *testing.T) {
		t.Parallel()
		e := NewEngine(0)
		e.LoadText("0xH1000=1")
		_, ok := e.BeginExpansion(1, 3)
		require.True(t, ok)
		_, ok = e.Customize(1, 1, 0x1000)
		assert.False(t, ok)
	})

	t.Run("generated total respects the line cap", func(t *testing.T) {
		t.Parallel()
		e := NewEngine(4)
		e.LoadText("0xH1000=1_0xH2000=2")
		cfg, ok := e.BeginExpansion(1, 4)
		require.True(t, ok)
		lc := cfg.Line(1)
		lc.ActiveTab = expand.TabLeft
		lc.Increment = "1"

		// 4 generated lines plus the untouched second group exceeds 4
		assert.False(t, e.ConfirmExpansion(1))
		w := e.Warnings()
		require.Len(t, w, 1)
		assert.Equal(t, warnLineCount, w[0].Message)
	})

	t.Run("reset clears expansion state for relinking", func(t *testing.T) {
		t.Parallel()
		e := NewEngine(0)
		e.LoadText("0xH1000=1_0xH2000=2")
		cfg, _ := e.BeginExpansion(1, 2)
		cfg.Line(1).Increment = "1"
		require.True(t, e.ConfirmExpansion(1))
		assert.False(t, e.CanLink(1))

		e.ResetExpansion(1)
		assert.True(t, e.CanLink(1))
	})

	t.Run("delta check runs the accumulator rewrite", func(t *testing.T) {
		t.Parallel()
		e := NewEngine(0)
		e.LoadText("A:0xH1234_0xH1235=5")
		e.AutoLink()
		cfg, ok := e.BeginExpansion(2, 1)
		require.True(t, ok)
		cfg.DeltaCheck = true

		require.True(t, e.ConfirmExpansion(2))
		assert.Equal(t, []string{
			"A:d0xH1234",
			"d0xH1235=5",
			"0=0",
			"A:0xH1234",
			"0xH1235=5",
			"0=0",
		}, e.Conditions()[1].ExpandedLines)
	})
}

func TestGenerate(t *testing.T) {
	t.Parallel()

	t.Run("mixes expanded and authored groups in order", func(t *testing.T) {
		t.Parallel()
		e := NewEngine(0)
		e.LoadText("0xH1000=1_0xH2000=2")
		cfg, _ := e.BeginExpansion(1, 2)
		lc := cfg.Line(1)
		lc.ActiveTab = expand.TabLeft
		lc.Increment = "0x10"
		require.True(t, e.ConfirmExpansion(1))

		assert.Equal(t, "0xH1000=1_0xH1010=1_0xH2000=2", e.Generate())
	})

	t.Run("without expansions generate equals text", func(t *testing.T) {
		t.Parallel()
		e := NewEngine(0)
		e.LoadText("0xH1000=1_A:0x2000_0x3000=3")
		assert.Equal(t, e.Text(), e.Generate())
	})
}

func TestBlobPasses(t *testing.T) {
	t.Parallel()

	t.Run("compress bits reports savings", func(t *testing.T) {
		t.Parallel()
		blob := "A:0xM1234_A:0xN1234_A:0xO1234_A:0xP1234_A:0xQ1234_A:0xR1234_A:0xS1234_A:0xT1234_0x2000=8"
		out, stats := CompressBits(blob)
		assert.Equal(t, "A:0xK1234_0x2000=8", out)
		assert.Equal(t, 7, stats.LinesSaved())
		assert.True(t, stats.Changed())
	})

	t.Run("optimize recall reports savings", func(t *testing.T) {
		t.Parallel()
		blob := "A:0xH1000_N:0x2000=1_A:0xH1000_N:0x2000=1_A:0xH1000_N:0x2000=1"
		out, stats := OptimizeRecall(blob)
		assert.Equal(t, "A:0xH1000_K:0x2000=1_N:{recall}_N:{recall}", out)
		assert.Equal(t, 2, stats.LinesSaved())
	})

	t.Run("empty blob is a no-op", func(t *testing.T) {
		t.Parallel()
		out, stats := CompressBits("")
		assert.Equal(t, "", out)
		assert.False(t, stats.Changed())
	})
}
