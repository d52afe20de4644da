package retrieve

import (
	"context"
	"errors"
	"fmt"

	"github.com/rmmentors/alicia/internal/core"
	"github.com/rmmentors/alicia/internal/index"
)

// DefaultTopK is used when the caller does not ask for a specific k.
const DefaultTopK = 4

// Retriever maps a free-text query to the k most similar corpus passages.
type Retriever struct {
	embedder core.Embedder
	index    *index.Index
	passages []core.Passage
}

func New(embedder core.Embedder, ix *index.Index, passages []core.Passage) *Retriever {
	return &Retriever{
		embedder: embedder,
		index:    ix,
		passages: passages,
	}
}

// Retrieve embeds the query as a single-item batch and ranks passages by
// inner-product similarity. Embedding failures propagate unchanged; retrying
// them is the caller's concern.
func (r *Retriever) Retrieve(ctx context.Context, query string, k int) ([]core.ScoredPassage, error) {
	if k <= 0 {
		k = DefaultTopK
	}

	vectors, err := r.embedder.Embed(ctx, []string{query})
	if err != nil {
		var embErr *core.EmbeddingError
		if errors.As(err, &embErr) {
			return nil, err
		}
		return nil, &core.EmbeddingError{Err: err}
	}
	if len(vectors) != 1 {
		return nil, &core.EmbeddingError{
			Err: fmt.Errorf("expected 1 query vector, got %d", len(vectors)),
		}
	}

	hits, err := r.index.Search(vectors[0], k)
	if err != nil {
		return nil, err
	}

	results := make([]core.ScoredPassage, len(hits))
	for i, h := range hits {
		results[i] = core.ScoredPassage{Passage: r.passages[h.Index], Score: h.Score}
	}
	return results, nil
}
