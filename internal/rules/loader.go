package rules

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// DefaultName is the include name of the embedded rule tables.
const DefaultName = "default"

// defaultPath is the location of the embedded Polish tables.
const defaultPath = "data/polish.toml"

// maxIncludeDepth limits nested includes.
const maxIncludeDepth = 8

//go:embed data/polish.toml
var embedded embed.FS

// Format identifies a rule file encoding.
type Format uint8

const (
	// FormatTOML is the default encoding.
	FormatTOML Format = iota
	// FormatYAML is accepted for .yaml and .yml files.
	FormatYAML
)

// String returns the format name.
func (f Format) String() string {
	if f == FormatYAML {
		return "yaml"
	}
	return "toml"
}

// FormatFromPath picks the format from a file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	default:
		return FormatTOML, fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
	}
}

// FileSystem is an abstraction for file system operations.
// This allows for easy testing with in-memory file systems.
type FileSystem interface {
	// ReadFile reads the entire file at path.
	ReadFile(path string) ([]byte, error)
}

// OSFS implements FileSystem using the real OS file system.
type OSFS struct{}

// ReadFile reads the entire file at path.
func (OSFS) ReadFile(path string) ([]byte, error) {
	return os.ReadFile(path)
}

// Loader reads rule tables from files.
type Loader struct {
	fs FileSystem
}

// NewLoader creates a loader reading from the OS file system.
func NewLoader() *Loader {
	return &Loader{fs: OSFS{}}
}

// NewLoaderWithFS creates a loader with a custom file system.
func NewLoaderWithFS(fsys FileSystem) *Loader {
	return &Loader{fs: fsys}
}

// LoadDefault returns the embedded Polish tables.
func (l *Loader) LoadDefault() (*Tables, error) {
	data, err := fs.ReadFile(embedded, defaultPath)
	if err != nil {
		return nil, fmt.Errorf("reading embedded rules: %w", err)
	}
	return parse(DefaultName, FormatTOML, data)
}

// LoadFile reads a rule file and resolves its includes.
// An empty path or DefaultName loads the embedded tables.
func (l *Loader) LoadFile(path string) (*Tables, error) {
	return l.loadWithIncludes(path, maxIncludeDepth)
}

// LoadReader reads rule tables from a reader without resolving includes.
func (l *Loader) LoadReader(r io.Reader, format Format) (*Tables, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading rules: %w", err)
	}
	return parse("<reader>", format, data)
}

// Load reads and compiles a rule file in one step.
func (l *Loader) Load(path string) (*Rules, error) {
	tables, err := l.LoadFile(path)
	if err != nil {
		return nil, err
	}
	return Compile(tables)
}

func (l *Loader) loadWithIncludes(path string, depth int) (*Tables, error) {
	if path == "" || path == DefaultName {
		return l.LoadDefault()
	}
	if depth <= 0 {
		return nil, fmt.Errorf("%w: %s", ErrIncludeDepthExceeded, path)
	}

	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}

	data, err := l.fs.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading rule file %s: %w", path, err)
	}

	tables, err := parse(path, format, data)
	if err != nil {
		return nil, err
	}
	if len(tables.Include) == 0 {
		return tables, nil
	}

	// Includes are lower priority than the including file.
	base := &Tables{}
	baseDir := filepath.Dir(path)
	for _, inc := range tables.Include {
		incPath := inc
		if inc != DefaultName && !filepath.IsAbs(inc) {
			incPath = filepath.Join(baseDir, inc)
		}

		incTables, err := l.loadWithIncludes(incPath, depth-1)
		if err != nil {
			return nil, fmt.Errorf("loading include %s: %w", incPath, err)
		}
		base = base.Overlay(incTables)
	}

	return base.Overlay(tables), nil
}

// parse decodes rule tables, rejecting unknown keys.
func parse(source string, format Format, data []byte) (*Tables, error) {
	var tables Tables

	switch format {
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&tables); err != nil && !errors.Is(err, io.EOF) {
			return nil, yamlParseError(source, err)
		}
	default:
		dec := toml.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&tables); err != nil {
			return nil, tomlParseError(source, err)
		}
	}

	return &tables, nil
}

func tomlParseError(source string, err error) error {
	perr := &ParseError{Path: source, Message: err.Error(), Err: err}

	var derr *toml.DecodeError
	if errors.As(err, &derr) {
		perr.Line, perr.Column = derr.Position()
	}
	return perr
}

func yamlParseError(source string, err error) error {
	perr := &ParseError{Path: source, Message: err.Error(), Err: err}

	var node *yaml.TypeError
	if errors.As(err, &node) && len(node.Errors) > 0 {
		perr.Message = strings.Join(node.Errors, "; ")
	}
	return perr
}
