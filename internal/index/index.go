// Package index holds the in-memory vector index over corpus passages.
// The index is built once at startup and read-only afterwards, so searches
// need no synchronization beyond publication.
package index

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/rmmentors/alicia/internal/core"
	"github.com/rmmentors/alicia/pkg/log"
)

// Index stores one embedding vector per passage, positioned by passage
// index, and ranks by inner-product similarity.
type Index struct {
	vectors [][]float32
	dims    int
}

// Hit is one search result: a passage position and its similarity score.
type Hit struct {
	Index int
	Score float32
}

// Build embeds all passages in one batch and stores the vectors keyed by
// passage index. Provider failures and count mismatches surface as
// core.EmbeddingError.
func Build(ctx context.Context, passages []core.Passage, embedder core.Embedder) (*Index, error) {
	texts := make([]string, len(passages))
	for i, p := range passages {
		texts[i] = p.Text
	}

	vectors, err := embedder.Embed(ctx, texts)
	if err != nil {
		return nil, asEmbeddingError(err)
	}
	if len(vectors) != len(passages) {
		return nil, &core.EmbeddingError{
			Err: fmt.Errorf("expected %d vectors, got %d", len(passages), len(vectors)),
		}
	}

	dims := 0
	if len(vectors) > 0 {
		dims = len(vectors[0])
	}
	for i, v := range vectors {
		if len(v) != dims {
			return nil, &core.EmbeddingError{
				Err: fmt.Errorf("vector %d has %d dims, want %d", i, len(v), dims),
			}
		}
	}

	log.FromCtx(ctx).Info().Int("vectors", len(vectors)).Int("dims", dims).Msg("vector index ready")
	return &Index{vectors: vectors, dims: dims}, nil
}

func (ix *Index) Len() int  { return len(ix.vectors) }
func (ix *Index) Dims() int { return ix.dims }

// Search returns up to k entries ranked by descending inner product.
// Ties break by ascending passage index, so results are deterministic for
// a fixed index and query vector.
func (ix *Index) Search(query []float32, k int) ([]Hit, error) {
	if k < 1 {
		return nil, fmt.Errorf("k must be positive, got %d", k)
	}
	if len(query) != ix.dims {
		return nil, fmt.Errorf("query has %d dims, index has %d", len(query), ix.dims)
	}

	hits := make([]Hit, len(ix.vectors))
	for i, v := range ix.vectors {
		hits[i] = Hit{Index: i, Score: dot(query, v)}
	}

	sort.Slice(hits, func(a, b int) bool {
		if hits[a].Score != hits[b].Score {
			return hits[a].Score > hits[b].Score
		}
		return hits[a].Index < hits[b].Index
	})

	if k > len(hits) {
		k = len(hits)
	}
	return hits[:k], nil
}

func dot(a, b []float32) float32 {
	var s float32
	for i := range a {
		s += a[i] * b[i]
	}
	return s
}

func asEmbeddingError(err error) error {
	var embErr *core.EmbeddingError
	if errors.As(err, &embErr) {
		return err
	}
	return &core.EmbeddingError{Err: err}
}
