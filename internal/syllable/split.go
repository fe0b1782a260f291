package syllable

import (
	"regexp"
)

const (
	// consonantPattern lists digraphs before single letters so that the
	// leftmost alternative wins.
	consonantPattern = "(ch|cz|dz|dź|dż|sz|rz|b|c|ć|d|f|g|h|j|k|l|ł|m|n|ń|p|q|r|s|ś|t|v|w|x|z|ź|ż)"

	// vowelPattern lists vowel digraphs before single vowels.
	vowelPattern = "(ia|ią|ie|ię|io|iu|ió|au|eu|a|ą|e|ę|i|o|ó|u|y)"
)

var (
	// roughSyllable matches consonants followed by one vowel cluster.
	roughSyllable = regexp.MustCompile(consonantPattern + "*" + vowelPattern)

	// consonantGroup captures a leading cluster of two or more consonants
	// (group 1) and its first consonant (group 2).
	consonantGroup = regexp.MustCompile("^(" + consonantPattern + consonantPattern + "+)")

	// singleConsonant matches exactly one consonant or consonant digraph.
	singleConsonant = regexp.MustCompile("^" + consonantPattern + "$")
)

// Split decomposes a word root into chunks.
// A root without vowels is returned as a single chunk; an empty root yields
// no chunks.
func Split(word string) []string {
	if word == "" {
		return nil
	}

	rough := roughSplit(word)
	return rebalance(rough)
}

// roughSplit returns consonant*vowel runs, with trailing consonants appended
// to the final run.
func roughSplit(word string) []string {
	locs := roughSyllable.FindAllStringIndex(word, -1)
	if len(locs) == 0 {
		return []string{word}
	}

	chunks := make([]string, len(locs))
	for i, loc := range locs {
		chunks[i] = word[loc[0]:loc[1]]
	}

	// Anything after the last vowel run belongs to the last chunk.
	chunks[len(chunks)-1] += word[locs[len(locs)-1][1]:]
	return chunks
}

// rebalance moves the first consonant of a leading consonant cluster into
// the previous chunk, leaving single digraphs in place.
func rebalance(rough []string) []string {
	out := make([]string, 0, len(rough))
	out = append(out, rough[0])

	for _, chunk := range rough[1:] {
		m := consonantGroup.FindStringSubmatch(chunk)
		if m != nil && !singleConsonant.MatchString(m[1]) {
			first := m[2]
			out[len(out)-1] += first
			chunk = chunk[len(first):]
		}
		out = append(out, chunk)
	}

	return out
}
