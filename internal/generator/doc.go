// Package generator turns Polish words into steno outlines.
//
// A word goes through a fixed pipeline:
//
//  1. Sanitize: lower-case, NFC, letters only, a single word
//  2. Strip the longest known prefix (at least two letters)
//  3. Strip the longest known suffix (at least two letters)
//  4. Reuse the root if it was resolved before, otherwise split it into
//     syllable chunks and resolve every chunk, reusing resolved chunks
//  5. Assemble prefix + root items + suffix
//
// A chunk is resolved by a small state machine that greedily absorbs
// left-hand, center and right-hand combinations into one chord, emits it,
// and starts over on the remaining letters. A cycle that absorbs nothing
// fails with a *DecompositionError instead of looping.
//
// # Caches and Ledgers
//
// AddWordRoot grows two caches: word roots and chunks, each keyed by text.
// It also records every outline in a conflict Ledger, which maps an outline
// to the set of texts producing it. Two texts sharing an outline are a
// conflict for the stenographer; the ledger records them and never fails.
//
// GenWordChords is the read-only counterpart: it resolves a word against
// the current caches without changing them.
//
// A Generator is safe for concurrent use; lookups share a read lock and
// AddWordRoot serializes cache mutation.
package generator
