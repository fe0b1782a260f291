// Package corpus reads word lists for dictionary builds.
//
// A corpus is a UTF-8 text file with one dictionary entry per line. An entry
// lists the forms of one lexeme separated by ", ", the format of the SJP
// "odmiany" word list:
//
//	kot, kota, kotem, kotu
//
// Every form is sanitized, forms shorter than the minimum length are
// dropped, duplicates are removed, and the result is ordered shortest first
// so that short roots are resolved before the longer words that reuse them.
package corpus
