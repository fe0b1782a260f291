// Package syllable splits Polish word roots into syllable-like chunks.
//
// The split is rough. Every run of consonants followed by a vowel
// cluster becomes a chunk, trailing consonants join the last chunk, and a
// rebalancing pass moves the first consonant of a multi-consonant cluster
// back into the preceding chunk unless the cluster is a single digraph such
// as "ch", "cz", "sz" or "rz".
//
//	Split("przebiegłość") // ["prze", "bieg", "łość"]
//	Split("kościół")      // ["koś", "ciół"]
//
// Concatenating the chunks always yields the input.
package syllable
