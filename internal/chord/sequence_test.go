package chord

import "testing"

func sampleSequence() Sequence {
	return NewSequence(
		PrefixItem("prze", MustParse("PRE*")),
		RootItem("bieg", MustParse("PJEIG")),
		SuffixItem("łość", MustParse("XFLAUSO")),
	)
}

func TestSequenceWord(t *testing.T) {
	seq := sampleSequence()
	if got := seq.Word(); got != "przebiegłość" {
		t.Errorf("Word() = %q, want %q", got, "przebiegłość")
	}
	if seq.Len() != 3 || seq.IsEmpty() || seq.IsOneShot() {
		t.Errorf("unexpected shape: len=%d", seq.Len())
	}
}

func TestSequenceCollapse(t *testing.T) {
	known := KnownRootItem("bieg", FromChord("bieg", MustParse("PJEIG")))
	seq := NewSequence(PrefixItem("prze", MustParse("PRE*")), known)

	chords := seq.Collapse()
	if len(chords) != 2 {
		t.Fatalf("Collapse() len = %d, want 2", len(chords))
	}
	if chords[1] != MustParse("PJEIG") {
		t.Errorf("Collapse()[1] = %s, want PJEIG", chords[1])
	}
	if got := seq.Strokes(); got != "PRE* + PJEIG" {
		t.Errorf("Strokes() = %q", got)
	}
	if got := seq.Outline("/"); got != "PRE*/PJEIG" {
		t.Errorf("Outline() = %q", got)
	}
	if got := (Sequence{}).Strokes(); got != "<empty>" {
		t.Errorf("empty Strokes() = %q, want <empty>", got)
	}
}

func TestSequenceString(t *testing.T) {
	seq := NewSequence(
		PrefixItem("na", MustParse("LR*A")),
		RootItem("kot", MustParse("KAUT")),
		SuffixItem("ek", MustParse("XFEBG")),
	)
	want := `P:"na-":LR*A + RC:"kot":KAUT + S:"-ek":XFEBG`
	if got := seq.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}

	known := NewSequence(KnownRootItem("kot", FromChord("kot", MustParse("KAUT"))))
	if got := known.String(); got != `KR:"kot":(RC:"kot":KAUT)` {
		t.Errorf("String() = %q", got)
	}
}

func TestSequenceEqual(t *testing.T) {
	a := sampleSequence()
	b := sampleSequence()
	if !a.Equal(b) || a.Key() != b.Key() {
		t.Error("identical sequences should be equal")
	}

	// Same chords, different item boundaries
	c := NewSequence(
		RootItem("prze", MustParse("PRE*")),
		RootItem("bieg", MustParse("PJEIG")),
		SuffixItem("łość", MustParse("XFLAUSO")),
	)
	if a.Equal(c) || a.Key() == c.Key() {
		t.Error("sequences with different item kinds should differ")
	}

	d := NewSequence(
		PrefixItem("prze", MustParse("PRE*")),
		RootItem("bieg", MustParse("PJEIG")),
	)
	if a.Equal(d) {
		t.Error("sequences of different length should differ")
	}
}

func TestSequenceRoots(t *testing.T) {
	inner := NewSequence(RootItem("ko", MustParse("KAU")), RootItem("t", MustParse("-T")))
	seq := NewSequence(
		PrefixItem("na", MustParse("LR*A")),
		KnownRootItem("kot", inner),
		SuffixItem("ek", MustParse("XFEBG")),
	)

	roots := seq.Roots()
	if !roots.Equal(inner) {
		t.Errorf("Roots() = %s, want %s", roots, inner)
	}
	if roots.Word() != "kot" {
		t.Errorf("Roots().Word() = %q, want kot", roots.Word())
	}
}

func TestSequenceCloneIsIndependent(t *testing.T) {
	a := sampleSequence()
	b := a.Clone()
	b.Items[0].Text = "przy"
	if a.Items[0].Text != "prze" {
		t.Error("Clone shares item storage")
	}

	c := a.Append(FromChord("t", MustParse("-T")))
	if c.Len() != 4 || a.Len() != 3 {
		t.Errorf("Append lengths = %d/%d, want 4/3", c.Len(), a.Len())
	}
}
