package generator

import (
	"log/slog"
	"strings"

	"github.com/dshills/plsteno/internal/affix"
	"github.com/dshills/plsteno/internal/chord"
	"github.com/dshills/plsteno/internal/rules"
)

// phase is a state of the chunk assembler.
type phase uint8

const (
	phaseIdle phase = iota
	phaseLeft
	phaseCenter
	phaseRight
	phaseEmit
)

// String returns the phase name used in traces.
func (p phase) String() string {
	switch p {
	case phaseIdle:
		return "IDLE"
	case phaseLeft:
		return "LEFT-HAND"
	case phaseCenter:
		return "CENTER"
	case phaseRight:
		return "RIGHT-HAND"
	case phaseEmit:
		return "EMIT"
	default:
		return "UNKNOWN"
	}
}

// assembler builds the chords for one syllable chunk.
//
// Each cycle starts Idle, absorbs as many left-hand, center and right-hand
// combinations as merge cleanly, then emits one root item. A cycle that
// consumes nothing ends the run with a *DecompositionError.
type assembler struct {
	rules  *rules.Rules
	logger *slog.Logger

	chunk string
	rest  string

	acc      chord.Chord
	consumed strings.Builder
	out      chord.Sequence
}

func newAssembler(r *rules.Rules, logger *slog.Logger, chunk string) *assembler {
	return &assembler{rules: r, logger: logger, chunk: chunk, rest: chunk}
}

func (a *assembler) run() (chord.Sequence, error) {
	state := phaseIdle
	for {
		switch state {
		case phaseIdle:
			if a.rest == "" {
				return a.out, nil
			}
			a.acc = chord.Empty
			a.consumed.Reset()
			state = phaseLeft

		case phaseLeft:
			a.absorb(state, a.rules.LeftHand())
			state = phaseCenter

		case phaseCenter:
			a.absorb(state, a.rules.Center())
			state = phaseRight

		case phaseRight:
			a.absorb(state, a.rules.RightHand())
			state = phaseEmit

		case phaseEmit:
			if a.consumed.Len() == 0 || a.acc.IsEmpty() {
				a.logger.Error("INFINITE-LOOP", "chunk", a.chunk, "remaining", a.rest)
				return chord.Sequence{}, &DecompositionError{Chunk: a.chunk, Remaining: a.rest}
			}
			a.out.Add(chord.RootItem(a.consumed.String(), a.acc))
			state = phaseIdle
		}
	}
}

// absorb merges matches from table while they fit the accumulator.
func (a *assembler) absorb(p phase, table *affix.Table[chord.Chord]) {
	for a.rest != "" {
		m, ok := affix.Longest(a.rest, table, 1, affix.Prefix)
		if !ok {
			return
		}

		merged, err := a.acc.Merge(m.Value)
		if err == nil {
			err = a.rules.Validate(merged)
		}
		if err != nil {
			a.logger.Debug("CONFLICT",
				"phase", p.String(),
				"chunk", a.chunk,
				"text", m.Text,
				"chord", m.Value.String(),
				"acc", a.acc.String(),
				"err", err)
			return
		}

		a.logger.Debug("REDUCE",
			"phase", p.String(),
			"text", m.Text,
			"chord", m.Value.String(),
			"acc", merged.String())
		a.acc = merged
		a.consumed.WriteString(m.Text)
		a.rest = m.Rest
	}
}
