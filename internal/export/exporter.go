package export

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/dshills/plsteno/internal/affix"
	"github.com/dshills/plsteno/internal/chord"
	"github.com/dshills/plsteno/internal/generator"
	"github.com/dshills/plsteno/internal/rules"
)

// DefaultDelimiter joins the strokes of a multi-stroke outline.
const DefaultDelimiter = "/"

// Source provides what the exporter writes. *generator.Generator
// implements it.
type Source interface {
	Rules() *rules.Rules
	Chunks() []affix.Entry[chord.Sequence]
	Roots() []affix.Entry[chord.Sequence]
	ChunkConflicts() []generator.Conflict
	RootConflicts() []generator.Conflict
	Stats() generator.Stats
}

// Translator rewrites or drops entries before they are stored.
type Translator interface {
	Translate(ctx context.Context, stroke, text, kind string) (string, bool, error)
}

// Option configures an Exporter.
type Option func(*Exporter)

// WithDelimiter sets the stroke delimiter used in dictionary keys.
func WithDelimiter(delim string) Option {
	return func(e *Exporter) {
		if delim != "" {
			e.delimiter = delim
		}
	}
}

// WithTranslator installs a hook called for every entry.
func WithTranslator(t Translator) Option {
	return func(e *Exporter) {
		e.translator = t
	}
}

// WithLogger sets the logger for collision traces.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Exporter) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// Exporter builds dictionaries from a Source.
type Exporter struct {
	delimiter  string
	translator Translator
	logger     *slog.Logger
}

// New creates an exporter.
func New(opts ...Option) *Exporter {
	e := &Exporter{
		delimiter: DefaultDelimiter,
		logger:    slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Full builds the complete dictionary of chunks, affixes, special
// characters and commands.
func (e *Exporter) Full(ctx context.Context, src Source) (*Dictionary, error) {
	r := src.Rules()
	d := NewDictionary()

	for _, en := range r.Commands() {
		if err := e.add(ctx, d, en.Value.String(), en.Text, KindCommand); err != nil {
			return nil, err
		}
	}
	for _, en := range r.SpecialChars() {
		if err := e.add(ctx, d, en.Value.String(), en.Text, KindSpecial); err != nil {
			return nil, err
		}
	}
	for _, en := range sortedTable(r.Suffixes()) {
		if err := e.add(ctx, d, en.Value.String(), "{^}"+en.Text, KindSuffix); err != nil {
			return nil, err
		}
	}
	for _, en := range sortedTable(r.Prefixes()) {
		if err := e.add(ctx, d, en.Value.String(), en.Text+"{^}", KindPrefix); err != nil {
			return nil, err
		}
	}
	for _, en := range src.Chunks() {
		if err := e.add(ctx, d, en.Value.Outline(e.delimiter), "{&"+en.Text+"}", KindChunk); err != nil {
			return nil, err
		}
	}

	return d, nil
}

// Syllables builds the chunk dictionary.
func (e *Exporter) Syllables(ctx context.Context, src Source) (*Dictionary, error) {
	return e.sequences(ctx, src.Chunks(), KindSyllable)
}

// WordRoots builds the word-root dictionary.
func (e *Exporter) WordRoots(ctx context.Context, src Source) (*Dictionary, error) {
	return e.sequences(ctx, src.Roots(), KindWordRoot)
}

func (e *Exporter) sequences(ctx context.Context, entries []affix.Entry[chord.Sequence], kind Kind) (*Dictionary, error) {
	d := NewDictionary()
	for _, en := range entries {
		if err := e.add(ctx, d, en.Value.Outline(e.delimiter), en.Text, kind); err != nil {
			return nil, err
		}
	}
	return d, nil
}

func (e *Exporter) add(ctx context.Context, d *Dictionary, stroke, text string, kind Kind) error {
	if e.translator != nil {
		out, keep, err := e.translator.Translate(ctx, stroke, text, string(kind))
		if err != nil {
			return fmt.Errorf("translating %s %q: %w", kind, stroke, err)
		}
		if !keep {
			d.Dropped++
			return nil
		}
		text = out
	}

	if !d.Add(Entry{Stroke: stroke, Text: text, Kind: kind}) {
		prev, _ := d.Lookup(stroke)
		e.logger.Debug("outline taken",
			"stroke", stroke,
			"kind", string(kind),
			"text", text,
			"kept", prev.Text)
	}
	return nil
}

// sortedTable returns table entries in a stable order, shortest first.
func sortedTable(t *affix.Table[chord.Chord]) []affix.Entry[chord.Chord] {
	entries := t.Entries()
	for i, j := 0, len(entries)-1; i < j; i, j = i+1, j-1 {
		entries[i], entries[j] = entries[j], entries[i]
	}
	return entries
}
