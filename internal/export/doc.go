// Package export writes generated outlines as Plover JSON dictionaries.
//
// Three dictionaries can be produced from a generator:
//
//   - Full: every chunk as an attached word part ({&chunk}), every prefix
//     (prefix{^}) and suffix ({^}suffix), special characters and commands
//   - Syllables: chunk outline to chunk text
//   - WordRoots: root outline to root text
//
// Keys are stroke outlines joined with a delimiter, "/" by default as
// Plover expects. When two entries share an outline only one is written;
// the rest are counted as collisions. For the full dictionary, commands
// take precedence over special characters, then suffixes, prefixes and
// finally chunks.
//
// Files are written atomically through a temporary file in the target
// directory, and conflict ledgers can be written as a YAML report.
package export
