package generator

import (
	"context"
	"errors"
)

// ProgressFunc is called after each word of a batch.
type ProgressFunc func(done, total int, word string)

// BatchResult summarizes AddWords.
type BatchResult struct {
	Processed int
	Failed    int
	// Errors holds the first failures, up to maxBatchErrors.
	Errors []error
}

const maxBatchErrors = 32

// AddWords feeds words to AddWordRoot in order. A word that fails is
// counted and skipped. The context is checked between words.
func (g *Generator) AddWords(ctx context.Context, words []string, progress ProgressFunc) (BatchResult, error) {
	var res BatchResult
	for i, w := range words {
		if err := ctx.Err(); err != nil {
			return res, err
		}

		if _, err := g.AddWordRoot(w); err != nil {
			res.Failed++
			if len(res.Errors) < maxBatchErrors {
				res.Errors = append(res.Errors, err)
			}
			msg := "skipped word"
			if errors.Is(err, ErrDecomposition) {
				g.logger.Warn(msg, "word", w, "err", err)
			} else {
				g.logger.Debug(msg, "word", w, "err", err)
			}
		} else {
			res.Processed++
		}

		if progress != nil {
			progress(i+1, len(words), w)
		}
	}
	return res, nil
}
