package generator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dshills/plsteno/internal/chord"
)

func seqOf(text, strokes string) chord.Sequence {
	return chord.FromChord(text, chord.MustParse(strokes))
}

func TestLedger_Record(t *testing.T) {
	l := NewLedger()

	assert.False(t, l.Record(seqOf("kat", "KAT"), "kat"))
	assert.False(t, l.Record(seqOf("kat", "KAT"), "kat"), "same text twice is not a conflict")
	assert.True(t, l.Record(seqOf("cat", "KAT"), "cat"))
	assert.False(t, l.Record(seqOf("cat", "KAT"), "cat"))

	assert.Equal(t, 1, l.Len())
	assert.Equal(t, 1, l.ConflictCount())
	assert.Equal(t, []string{"cat", "kat"}, l.Texts(seqOf("x", "KAT")))
	assert.Nil(t, l.Texts(seqOf("x", "TA")))
}

func TestLedger_OutlineIgnoresItemKinds(t *testing.T) {
	l := NewLedger()

	root := chord.NewSequence(chord.RootItem("ko", chord.MustParse("KAU")))
	known := chord.NewSequence(chord.KnownRootItem("ko", seqOf("ko", "KAU")))

	l.Record(root, "ko")
	assert.True(t, l.Record(known, "kó"))
}

func TestLedger_ConflictsOrder(t *testing.T) {
	l := NewLedger()

	l.Record(seqOf("a", "TA"), "a")
	l.Record(seqOf("b", "TA"), "b")
	l.Record(seqOf("c", "TA"), "c")

	l.Record(seqOf("d", "KA"), "d")
	l.Record(seqOf("e", "KA"), "e")

	l.Record(seqOf("f", "PA"), "f")
	l.Record(seqOf("g", "PA"), "g")

	l.Record(seqOf("h", "VA"), "h")

	conflicts := l.Conflicts()
	require.Len(t, conflicts, 3)

	assert.Equal(t, "KA", conflicts[0].Outline)
	assert.Equal(t, "PA", conflicts[1].Outline)
	assert.Equal(t, "TA", conflicts[2].Outline)
	assert.Equal(t, []string{"a", "b", "c"}, conflicts[2].Texts)
	assert.Equal(t, "a", conflicts[2].Sequence.Word(), "first recorded sequence is kept")
}

func TestLedger_MultiStroke(t *testing.T) {
	l := NewLedger()

	two := chord.NewSequence(
		chord.RootItem("ko", chord.MustParse("KAU")),
		chord.RootItem("ta", chord.MustParse("TA")),
	)
	l.Record(two, "kota")
	l.Record(two, "kóta")

	conflicts := l.Conflicts()
	require.Len(t, conflicts, 1)
	assert.Equal(t, "KAU/TA", conflicts[0].Outline)
}
