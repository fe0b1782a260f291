package generator

import (
	"errors"
	"log/slog"
	"sync"

	"github.com/dshills/plsteno/internal/affix"
	"github.com/dshills/plsteno/internal/chord"
	"github.com/dshills/plsteno/internal/rules"
	"github.com/dshills/plsteno/internal/syllable"
)

// minAffixLen is the shortest prefix or suffix the generator strips.
const minAffixLen = 2

// Resolution is the outcome of resolving one word.
type Resolution struct {
	// Word is the sanitized word.
	Word string
	// Sequence is the full outline: prefix, root items, suffix.
	Sequence chord.Sequence
	// NewChunks holds the chunks resolved for the first time.
	NewChunks []chord.Sequence
}

// Stats summarizes the generator caches.
type Stats struct {
	Roots          int
	Chunks         int
	RootOutlines   int
	RootConflicts  int
	ChunkOutlines  int
	ChunkConflicts int
}

// Generator resolves words into chord sequences and accumulates the
// word-root and chunk caches.
type Generator struct {
	mu sync.RWMutex

	rules         *rules.Rules
	logger        *slog.Logger
	skipShortcuts bool

	roots          *affix.Table[chord.Sequence]
	rootConflicts  *Ledger
	chunks         *affix.Table[chord.Sequence]
	chunkConflicts *Ledger
}

// New creates a generator over compiled rules.
// Unless WithoutShortcuts is given, every shortcut is preloaded as a known
// word root so that it is reused verbatim.
func New(r *rules.Rules, opts ...Option) (*Generator, error) {
	if r == nil {
		return nil, errors.New("generator: nil rules")
	}

	g := &Generator{
		rules:          r,
		logger:         slog.New(slog.DiscardHandler),
		roots:          affix.NewTable[chord.Sequence](),
		rootConflicts:  NewLedger(),
		chunks:         affix.NewTable[chord.Sequence](),
		chunkConflicts: NewLedger(),
	}
	for _, opt := range opts {
		opt(g)
	}

	if !g.skipShortcuts {
		for _, sc := range r.Shortcuts() {
			g.roots.Set(sc.Text, chord.FromChord(sc.Text, sc.Value))
		}
	}

	return g, nil
}

// Rules returns the rules the generator was built with.
func (g *Generator) Rules() *rules.Rules {
	return g.rules
}

// Sanitize normalizes a word against the generator's alphabet.
func (g *Generator) Sanitize(word string) (string, error) {
	return Sanitize(word, g.rules.IsLetter)
}

// GenWordChords resolves a word against the current caches without
// changing them.
func (g *Generator) GenWordChords(word string) (Resolution, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.resolve(word)
}

// GenChunkChords resolves one syllable chunk from the hand tables alone.
// Unlike GenWordChords it ignores the chunk cache.
func (g *Generator) GenChunkChords(chunk string) (chord.Sequence, error) {
	return newAssembler(g.rules, g.logger, chunk).run()
}

// AddWordRoot resolves a word and records its root and new chunks in the
// caches and conflict ledgers. It returns the word's full sequence.
func (g *Generator) AddWordRoot(word string) (chord.Sequence, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	res, err := g.resolve(word)
	if err != nil {
		return chord.Sequence{}, err
	}

	root := res.Sequence.Roots()
	if !root.IsEmpty() {
		text := root.Word()
		g.roots.Set(text, root)
		if g.rootConflicts.Record(root, text) {
			g.logger.Debug("root conflict",
				"outline", root.Strokes(),
				"texts", g.rootConflicts.Texts(root))
		}
	}

	for _, chunk := range res.NewChunks {
		text := chunk.Word()
		g.chunks.Set(text, chunk)
		if g.chunkConflicts.Record(chunk, text) {
			g.logger.Debug("chunk conflict",
				"outline", chunk.Strokes(),
				"texts", g.chunkConflicts.Texts(chunk))
		}
	}

	return res.Sequence, nil
}

// resolve runs the pipeline. Callers hold at least the read lock.
func (g *Generator) resolve(word string) (Resolution, error) {
	clean, err := g.Sanitize(word)
	if err != nil {
		return Resolution{}, err
	}

	res := Resolution{Word: clean}
	root := clean

	var prefix, suffix chord.Sequence
	if !g.rules.IsPrefixException(clean) {
		if m, ok := affix.Longest(root, g.rules.Prefixes(), minAffixLen, affix.Prefix); ok {
			prefix.Add(chord.PrefixItem(m.Text, m.Value))
			root = m.Rest
		}
	} else {
		g.logger.Debug("SKIP", "stage", "prefix", "word", clean)
	}

	if root != "" && !g.rules.IsSuffixException(root) {
		if m, ok := affix.Longest(root, g.rules.Suffixes(), minAffixLen, affix.Suffix); ok {
			suffix.Add(chord.SuffixItem(m.Text, m.Value))
			root = m.Rest
		}
	} else if root != "" {
		g.logger.Debug("SKIP", "stage", "suffix", "root", root)
	}

	body, newChunks, err := g.resolveRoot(root)
	if err != nil {
		var de *DecompositionError
		if errors.As(err, &de) {
			de.Word = clean
		}
		return Resolution{}, err
	}

	res.Sequence = prefix.Append(body).Append(suffix)
	res.NewChunks = newChunks
	return res, nil
}

// resolveRoot returns the root items and the chunks resolved for the first
// time. A cached root is reused as a single known-root item.
func (g *Generator) resolveRoot(root string) (chord.Sequence, []chord.Sequence, error) {
	var body chord.Sequence
	if root == "" {
		return body, nil, nil
	}

	if known, ok := g.roots.Get(root); ok {
		body.Add(chord.KnownRootItem(root, known))
		return body, nil, nil
	}

	var fresh []chord.Sequence
	local := make(map[string]chord.Sequence)
	for _, chunk := range syllable.Split(root) {
		if cached, ok := g.chunks.Get(chunk); ok {
			body = body.Append(cached)
			continue
		}
		if seq, ok := local[chunk]; ok {
			body = body.Append(seq)
			continue
		}

		seq, err := g.GenChunkChords(chunk)
		if err != nil {
			return chord.Sequence{}, nil, err
		}
		local[chunk] = seq
		fresh = append(fresh, seq)
		body = body.Append(seq)
	}

	return body, fresh, nil
}

// Roots returns the word-root cache ordered shortest text first.
func (g *Generator) Roots() []affix.Entry[chord.Sequence] {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return shortestFirst(g.roots)
}

// Chunks returns the chunk cache ordered shortest text first.
func (g *Generator) Chunks() []affix.Entry[chord.Sequence] {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return shortestFirst(g.chunks)
}

// RootConflicts returns word-root outlines shared by several roots.
func (g *Generator) RootConflicts() []Conflict {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.rootConflicts.Conflicts()
}

// ChunkConflicts returns chunk outlines shared by several chunks.
func (g *Generator) ChunkConflicts() []Conflict {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.chunkConflicts.Conflicts()
}

// Stats returns cache and ledger sizes.
func (g *Generator) Stats() Stats {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return Stats{
		Roots:          g.roots.Len(),
		Chunks:         g.chunks.Len(),
		RootOutlines:   g.rootConflicts.Len(),
		RootConflicts:  g.rootConflicts.ConflictCount(),
		ChunkOutlines:  g.chunkConflicts.Len(),
		ChunkConflicts: g.chunkConflicts.ConflictCount(),
	}
}

func shortestFirst(t *affix.Table[chord.Sequence]) []affix.Entry[chord.Sequence] {
	entries := t.Entries()
	for i, j := 0, len(entries)-1; i < j; i, j = i+1, j-1 {
		entries[i], entries[j] = entries[j], entries[i]
	}
	return entries
}
