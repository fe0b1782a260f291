package generator

import (
	"sort"

	"github.com/dshills/plsteno/internal/chord"
)

// Ledger maps outlines to the set of texts that produce them.
// Two sequences share an outline when they collapse to the same strokes,
// whatever the texts of their items. It is not safe for concurrent use on
// its own.
type Ledger struct {
	entries map[string]*ledgerEntry
}

type ledgerEntry struct {
	// seq is the first sequence recorded for the outline.
	seq   chord.Sequence
	texts map[string]struct{}
}

// Conflict is an outline produced by more than one text.
type Conflict struct {
	// Outline is the strokes joined by "/".
	Outline string
	// Sequence is the first sequence recorded for the outline.
	Sequence chord.Sequence
	// Texts are the colliding texts, sorted.
	Texts []string
}

// outlineKey identifies the strokes a sequence types.
func outlineKey(seq chord.Sequence) string {
	return seq.Outline("/")
}

// NewLedger creates an empty ledger.
func NewLedger() *Ledger {
	return &Ledger{entries: make(map[string]*ledgerEntry)}
}

// Record adds text to the set for seq.
// It returns true when seq is now shared by more than one text and text was
// not recorded for it before.
func (l *Ledger) Record(seq chord.Sequence, text string) bool {
	key := outlineKey(seq)
	entry, ok := l.entries[key]
	if !ok {
		entry = &ledgerEntry{seq: seq.Clone(), texts: make(map[string]struct{}, 1)}
		l.entries[key] = entry
	}

	if _, seen := entry.texts[text]; seen {
		return false
	}
	entry.texts[text] = struct{}{}
	return len(entry.texts) > 1
}

// Texts returns the sorted texts recorded for seq.
func (l *Ledger) Texts(seq chord.Sequence) []string {
	entry, ok := l.entries[outlineKey(seq)]
	if !ok {
		return nil
	}
	return sortedTexts(entry.texts)
}

// Len returns the number of distinct outlines.
func (l *Ledger) Len() int {
	return len(l.entries)
}

// ConflictCount returns the number of outlines shared by several texts.
func (l *Ledger) ConflictCount() int {
	n := 0
	for _, entry := range l.entries {
		if len(entry.texts) > 1 {
			n++
		}
	}
	return n
}

// Conflicts returns the shared outlines, fewest texts first.
// Ties are ordered by outline.
func (l *Ledger) Conflicts() []Conflict {
	out := make([]Conflict, 0)
	for key, entry := range l.entries {
		if len(entry.texts) < 2 {
			continue
		}
		out = append(out, Conflict{
			Outline:  key,
			Sequence: entry.seq.Clone(),
			Texts:    sortedTexts(entry.texts),
		})
	}

	sort.Slice(out, func(i, j int) bool {
		if len(out[i].Texts) != len(out[j].Texts) {
			return len(out[i].Texts) < len(out[j].Texts)
		}
		return out[i].Outline < out[j].Outline
	})
	return out
}

func sortedTexts(set map[string]struct{}) []string {
	texts := make([]string, 0, len(set))
	for t := range set {
		texts = append(texts, t)
	}
	sort.Strings(texts)
	return texts
}
