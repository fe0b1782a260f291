// Package app ties the rules, generator, corpus and export packages into
// the two things the command does: build dictionaries from a corpus and
// answer interactive word queries.
package app

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"

	"github.com/dshills/plsteno/internal/config"
	"github.com/dshills/plsteno/internal/corpus"
	"github.com/dshills/plsteno/internal/diag"
	"github.com/dshills/plsteno/internal/export"
	"github.com/dshills/plsteno/internal/generator"
	luahook "github.com/dshills/plsteno/internal/plugin/lua"
	"github.com/dshills/plsteno/internal/progress"
	"github.com/dshills/plsteno/internal/rules"
)

// Options configures Application creation.
type Options struct {
	Config *config.Config
	Logger *slog.Logger
	RunID  string

	// Stdout receives build summaries. Nil means os.Stdout.
	Stdout io.Writer
	// Stderr receives the progress bar. Nil means os.Stderr.
	Stderr io.Writer

	// Loader overrides the rule loader, mainly for tests.
	Loader *rules.Loader
}

// Application owns the generator and everything needed to feed and
// export it.
type Application struct {
	mu sync.RWMutex

	cfg    *config.Config
	logger *slog.Logger
	runID  string
	stdout io.Writer
	stderr io.Writer

	loader     *rules.Loader
	gen        *generator.Generator
	translator *luahook.Translator

	closed bool
}

// BuildReport summarizes a corpus build.
type BuildReport struct {
	Corpus corpus.Stats
	Batch  generator.BatchResult
	Stats  generator.Stats
	// Files lists the written output files in write order.
	Files []string
}

// New loads the rules, creates the generator and the optional translation
// script.
func New(ctx context.Context, opts Options) (*Application, error) {
	if opts.Config == nil {
		return nil, ErrNilConfig
	}

	app := &Application{
		cfg:    opts.Config,
		logger: opts.Logger,
		runID:  opts.RunID,
		stdout: opts.Stdout,
		stderr: opts.Stderr,
		loader: opts.Loader,
	}
	if app.logger == nil {
		app.logger = diag.Discard()
	}
	if app.stdout == nil {
		app.stdout = os.Stdout
	}
	if app.stderr == nil {
		app.stderr = os.Stderr
	}
	if app.loader == nil {
		app.loader = rules.NewLoader()
	}

	r, err := app.loader.Load(app.cfg.Rules)
	if err != nil {
		return nil, NewComponentError("rules", "load", err)
	}
	app.logger.Info("rules loaded",
		"source", ruleSource(app.cfg.Rules),
		"shortcuts", len(r.Shortcuts()),
	)

	gen, err := generator.New(r, generator.WithLogger(app.logger))
	if err != nil {
		return nil, NewComponentError("generator", "create", err)
	}
	app.gen = gen

	if app.cfg.TranslateScript != "" {
		t, err := luahook.LoadTranslator(ctx, app.cfg.TranslateScript)
		if err != nil {
			return nil, NewComponentError("translate", "load", err)
		}
		app.translator = t
		app.logger.Info("translate script loaded", "path", app.cfg.TranslateScript)
	}

	return app, nil
}

// Generator returns the current generator.
func (app *Application) Generator() *generator.Generator {
	app.mu.RLock()
	defer app.mu.RUnlock()
	return app.gen
}

// Config returns the application configuration.
func (app *Application) Config() *config.Config {
	return app.cfg
}

// Reload replaces the generator with a fresh one built on r.
// The caches of the previous generator are discarded.
func (app *Application) Reload(r *rules.Rules) error {
	gen, err := generator.New(r, generator.WithLogger(app.logger))
	if err != nil {
		return NewComponentError("generator", "reload", err)
	}

	app.mu.Lock()
	defer app.mu.Unlock()
	if app.closed {
		return ErrClosed
	}
	app.gen = gen
	return nil
}

// Build reads the configured corpus, feeds every word to the generator and
// writes the configured outputs.
func (app *Application) Build(ctx context.Context) (BuildReport, error) {
	var report BuildReport
	if app.cfg.Corpus == "" {
		return report, ErrNoCorpus
	}
	gen := app.Generator()

	words, cstats, err := corpus.Load(ctx, app.cfg.Corpus, corpus.Options{
		Sanitize:      gen.Sanitize,
		MinLength:     app.cfg.MinWordLength,
		FirstFormOnly: app.cfg.FirstFormOnly,
	})
	if err != nil {
		return report, NewComponentError("corpus", "load", err)
	}
	report.Corpus = cstats
	app.logger.Info("corpus loaded",
		"path", app.cfg.Corpus,
		"lines", cstats.Lines,
		"words", cstats.Words,
		"rejected", cstats.Rejected,
		"short", cstats.Short,
		"duplicates", cstats.Duplicates,
	)

	var onProgress generator.ProgressFunc
	var bar *progress.Bar
	if app.cfg.Progress {
		bar = progress.New(app.stderr, len(words), progress.Options{})
		onProgress = func(done, _ int, word string) {
			bar.Update(done, word)
		}
	}

	batch, err := gen.AddWords(ctx, words, onProgress)
	if bar != nil {
		bar.Finish()
	}
	report.Batch = batch
	if err != nil {
		return report, err
	}
	app.logger.Info("corpus processed", "processed", batch.Processed, "failed", batch.Failed)

	report.Stats = gen.Stats()
	app.printSummary(gen)

	files, err := app.writeOutputs(ctx, gen)
	report.Files = files
	if err != nil {
		return report, err
	}
	return report, nil
}

func (app *Application) printSummary(gen *generator.Generator) {
	stats := gen.Stats()
	fmt.Fprintf(app.stdout, "%d distinct word roots created\n", stats.Roots)
	fmt.Fprintf(app.stdout, "%d distinct word chunks created\n", stats.Chunks)

	chunkConflicts := gen.ChunkConflicts()
	for _, c := range chunkConflicts {
		app.logger.Debug("CHUNK CONFLICT", "outline", c.Outline, "texts", c.Texts)
	}
	rootConflicts := gen.RootConflicts()
	for _, c := range rootConflicts {
		app.logger.Debug("WORD-ROOT CONFLICT", "outline", c.Outline, "texts", c.Texts)
	}

	fmt.Fprintf(app.stdout, "%d/%d chunk outlines have conflicts\n", stats.ChunkConflicts, stats.ChunkOutlines)
	fmt.Fprintf(app.stdout, "%d/%d word-root outlines have conflicts\n", stats.RootConflicts, stats.RootOutlines)
}

func (app *Application) exporter() *export.Exporter {
	opts := []export.Option{
		export.WithDelimiter(app.cfg.StrokeDelimiter),
		export.WithLogger(app.logger),
	}
	if app.translator != nil {
		opts = append(opts, export.WithTranslator(app.translator))
	}
	return export.New(opts...)
}

func (app *Application) writeOutputs(ctx context.Context, gen *generator.Generator) ([]string, error) {
	exp := app.exporter()
	var written []string

	outputs := []struct {
		name  string
		what  string
		build func(context.Context, export.Source) (*export.Dictionary, error)
	}{
		{app.cfg.Dictionary, "dictionary", exp.Full},
		{app.cfg.Syllables, "syllables", exp.Syllables},
		{app.cfg.WordRoots, "word roots", exp.WordRoots},
	}

	for _, out := range outputs {
		path := app.cfg.OutputPath(out.name)
		if path == "" {
			continue
		}
		d, err := out.build(ctx, gen)
		if err != nil {
			return written, NewComponentError("export", out.what, err)
		}
		if err := export.WriteDictionary(ctx, path, d); err != nil {
			return written, &FileError{Op: "write", Path: path, Err: err}
		}
		written = append(written, path)
		if d.Collisions > 0 {
			app.logger.Warn("stroke collisions in export", "what", out.what, "collisions", d.Collisions)
		}
		fmt.Fprintf(app.stdout, "Wrote %d %s entries to %s\n", d.Len(), out.what, path)
	}

	if path := app.cfg.OutputPath(app.cfg.Conflicts); path != "" {
		rep := export.NewConflictReport(gen, app.runID)
		if err := export.WriteFile(ctx, path, rep.WriteYAML); err != nil {
			return written, &FileError{Op: "write", Path: path, Err: err}
		}
		written = append(written, path)
		fmt.Fprintf(app.stdout, "Wrote conflict report to %s\n", path)
	}

	return written, nil
}

// Query reads one word per line from in and prints its chords to out.
// Failing words are reported and the loop goes on. It returns at end of
// input or when ctx is done.
func (app *Application) Query(ctx context.Context, in io.Reader, out io.Writer) error {
	if app.cfg.WatchRules && app.cfg.Rules != "" {
		stop, err := app.watchRules(ctx)
		if err != nil {
			return err
		}
		defer stop()
	}

	lines := make(chan string)
	scanErr := make(chan error, 1)
	go func() {
		defer close(lines)
		sc := bufio.NewScanner(in)
		for sc.Scan() {
			select {
			case lines <- sc.Text():
			case <-ctx.Done():
				return
			}
		}
		scanErr <- sc.Err()
	}()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case line, ok := <-lines:
			if !ok {
				select {
				case err := <-scanErr:
					return err
				default:
					return nil
				}
			}
			app.answer(line, out)
		}
	}
}

func (app *Application) answer(line string, out io.Writer) {
	word := strings.TrimSpace(line)
	if word == "" {
		return
	}

	seq, err := app.Generator().AddWordRoot(word)
	if err != nil {
		app.logger.Debug("query failed", "word", word, "err", err)
		fmt.Fprintf(out, "Error: %v\n", err)
		return
	}
	fmt.Fprintf(out, "Chords: %s\n", seq.Strokes())
	fmt.Fprintf(out, "Full expansion: %s\n", seq.String())
}

func (app *Application) watchRules(ctx context.Context) (func(), error) {
	w, err := rules.NewWatcher(app.cfg.Rules, rules.WithLoader(app.loader))
	if err != nil {
		return nil, NewComponentError("rules", "watch", err)
	}

	ctx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})
	go func() {
		defer close(done)
		err := w.Run(ctx, func(r *rules.Rules, err error) {
			if err != nil {
				app.logger.Error("rule reload failed, keeping previous rules", "path", app.cfg.Rules, "err", err)
				return
			}
			if err := app.Reload(r); err != nil {
				app.logger.Error("rule reload failed", "err", err)
				return
			}
			app.logger.Info("rules reloaded", "path", app.cfg.Rules)
		})
		if err != nil && !errors.Is(err, context.Canceled) {
			app.logger.Warn("rule watcher stopped", "err", err)
		}
	}()

	return func() {
		cancel()
		_ = w.Close()
		<-done
	}, nil
}

// Close releases the translation script. It is safe to call twice.
func (app *Application) Close() error {
	app.mu.Lock()
	defer app.mu.Unlock()
	if app.closed {
		return nil
	}
	app.closed = true
	if app.translator != nil {
		return app.translator.Close()
	}
	return nil
}

func ruleSource(path string) string {
	if path == "" {
		return rules.DefaultName
	}
	return path
}
