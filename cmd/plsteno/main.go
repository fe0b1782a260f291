// Package main is the entry point for the plsteno chord generator.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/dshills/plsteno/internal/app"
	"github.com/dshills/plsteno/internal/config"
	"github.com/dshills/plsteno/internal/diag"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

type cliOptions struct {
	configPath string
	batch      bool

	// overrides holds config keys given on the command line.
	overrides map[string]string
}

func main() {
	os.Exit(run())
}

func run() int {
	opts := parseFlags()

	cfg, err := config.Load(opts.configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	if err := applyOverrides(cfg, opts.overrides); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	logger, runID, err := diag.NewLogger(os.Stderr, diag.Options{
		Level:  cfg.LogLevel,
		Format: diag.Format(cfg.LogFormat),
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	// Handle signals for graceful shutdown
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	application, err := app.New(ctx, app.Options{
		Config: cfg,
		Logger: logger,
		RunID:  runID,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to initialize: %v\n", err)
		return 1
	}
	defer application.Close()

	if cfg.Corpus != "" {
		if _, err := application.Build(ctx); err != nil {
			if errors.Is(err, context.Canceled) {
				return 130
			}
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return 1
		}
	}

	if opts.batch {
		return 0
	}

	if err := application.Query(ctx, os.Stdin, os.Stdout); err != nil {
		if errors.Is(err, context.Canceled) {
			return 0
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	return 0
}

func parseFlags() cliOptions {
	var opts cliOptions
	var showVersion bool
	var showHelp bool

	// Defaults are empty so that only flags given explicitly override the
	// config file.
	var (
		rules, corpus, output, delimiter, translate string
		logLevel, logFormat, conflicts              string
		minLength                                   int
		firstForm, progress, watch                  bool
	)

	flag.StringVar(&opts.configPath, "config", "", "Path to configuration file")
	flag.StringVar(&opts.configPath, "c", "", "Path to configuration file (shorthand)")
	flag.StringVar(&rules, "rules", "", "Rule file (TOML or YAML); default is the built-in Polish tables")
	flag.StringVar(&corpus, "corpus", "", "Word list to build dictionaries from")
	flag.StringVar(&output, "output", "", "Directory for the exported dictionaries")
	flag.StringVar(&output, "o", "", "Directory for the exported dictionaries (shorthand)")
	flag.StringVar(&conflicts, "conflicts", "", "Write a YAML conflict report with this file name")
	flag.BoolVar(&firstForm, "first-form-only", false, "Use only the first form of each corpus line")
	flag.IntVar(&minLength, "min-length", 0, "Minimum word length kept from the corpus")
	flag.StringVar(&delimiter, "delimiter", "", "Stroke delimiter in exported outlines")
	flag.StringVar(&translate, "translate", "", "Lua script with a translate(stroke, text, kind) function")
	flag.StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	flag.StringVar(&logFormat, "log-format", "", "Log format (text, json)")
	flag.BoolVar(&progress, "progress", true, "Show a progress bar during the build")
	flag.BoolVar(&watch, "watch", false, "Reload the rule file when it changes")
	flag.BoolVar(&opts.batch, "batch", false, "Exit after the build instead of reading words from stdin")
	flag.BoolVar(&showVersion, "version", false, "Show version information")
	flag.BoolVar(&showVersion, "v", false, "Show version information (shorthand)")
	flag.BoolVar(&showHelp, "help", false, "Show help message")
	flag.BoolVar(&showHelp, "h", false, "Show help message (shorthand)")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "plsteno - Polish steno chord generator\n\n")
		fmt.Fprintf(os.Stderr, "Usage: plsteno [options]\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  plsteno                            Query words from stdin\n")
		fmt.Fprintf(os.Stderr, "  plsteno -corpus words.txt -batch   Build dictionaries and exit\n")
		fmt.Fprintf(os.Stderr, "  plsteno -rules my.toml -watch      Query with a live rule file\n")
		fmt.Fprintf(os.Stderr, "  plsteno -c plsteno.toml            Use a configuration file\n")
	}

	flag.Parse()

	if showHelp {
		flag.Usage()
		os.Exit(0)
	}

	if showVersion {
		fmt.Printf("plsteno %s\n", version)
		fmt.Printf("Commit: %s\n", commit)
		fmt.Printf("Built: %s\n", date)
		os.Exit(0)
	}

	if flag.NArg() > 0 {
		fmt.Fprintf(os.Stderr, "Error: unexpected arguments: %v\n", flag.Args())
		flag.Usage()
		os.Exit(2)
	}

	values := map[string]string{
		"rules":           rules,
		"corpus":          corpus,
		"output":          output,
		"o":               output,
		"conflicts":       conflicts,
		"first-form-only": strconv.FormatBool(firstForm),
		"min-length":      strconv.Itoa(minLength),
		"delimiter":       delimiter,
		"translate":       translate,
		"log-level":       logLevel,
		"log-format":      logFormat,
		"progress":        strconv.FormatBool(progress),
		"watch":           strconv.FormatBool(watch),
	}

	opts.overrides = make(map[string]string)
	flag.Visit(func(f *flag.Flag) {
		if v, ok := values[f.Name]; ok {
			opts.overrides[flagKeys[f.Name]] = v
		}
	})

	return opts
}

// flagKeys maps flag names to config keys.
var flagKeys = map[string]string{
	"rules":           "rules",
	"corpus":          "corpus",
	"output":          "output_dir",
	"o":               "output_dir",
	"conflicts":       "conflicts",
	"first-form-only": "first_form_only",
	"min-length":      "min_word_length",
	"delimiter":       "stroke_delimiter",
	"translate":       "translate_script",
	"log-level":       "log_level",
	"log-format":      "log_format",
	"progress":        "progress",
	"watch":           "watch_rules",
}

// applyOverrides applies command-line values through the same path as
// environment variables, then revalidates.
func applyOverrides(cfg *config.Config, overrides map[string]string) error {
	if len(overrides) == 0 {
		return nil
	}
	lookup := func(name string) (string, bool) {
		for key, v := range overrides {
			if config.EnvName(key) == name {
				return v, true
			}
		}
		return "", false
	}
	if err := cfg.ApplyEnv(lookup); err != nil {
		return err
	}
	return cfg.Validate()
}
