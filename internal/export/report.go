package export

import (
	"fmt"
	"io"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/dshills/plsteno/internal/generator"
)

// ConflictEntry is one shared outline in a report.
type ConflictEntry struct {
	Outline string   `yaml:"outline"`
	Texts   []string `yaml:"texts"`
}

// ConflictSection reports one ledger.
type ConflictSection struct {
	Outlines  int             `yaml:"outlines"`
	Conflicts int             `yaml:"conflicts"`
	Entries   []ConflictEntry `yaml:"entries"`
}

// Summary returns the one-line summary, e.g. "3/120 chunk outlines have
// conflicts".
func (s ConflictSection) Summary(what string) string {
	return fmt.Sprintf("%d/%d %s outlines have conflicts", s.Conflicts, s.Outlines, what)
}

// ConflictReport lists the shared outlines of both ledgers, fewest texts
// first.
type ConflictReport struct {
	RunID     string          `yaml:"run_id,omitempty"`
	Generated time.Time       `yaml:"generated"`
	Chunks    ConflictSection `yaml:"chunks"`
	WordRoots ConflictSection `yaml:"word_roots"`
}

// NewConflictReport builds a report from a source.
func NewConflictReport(src Source, runID string) *ConflictReport {
	stats := src.Stats()
	return &ConflictReport{
		RunID:     runID,
		Generated: time.Now().UTC().Truncate(time.Second),
		Chunks:    section(src.ChunkConflicts(), stats.ChunkOutlines),
		WordRoots: section(src.RootConflicts(), stats.RootOutlines),
	}
}

func section(conflicts []generator.Conflict, outlines int) ConflictSection {
	s := ConflictSection{
		Outlines:  outlines,
		Conflicts: len(conflicts),
		Entries:   make([]ConflictEntry, 0, len(conflicts)),
	}
	for _, c := range conflicts {
		s.Entries = append(s.Entries, ConflictEntry{Outline: c.Outline, Texts: c.Texts})
	}
	return s
}

// WriteYAML writes the report to w.
func (r *ConflictReport) WriteYAML(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(r); err != nil {
		return err
	}
	return enc.Close()
}
