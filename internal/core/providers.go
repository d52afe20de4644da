package core

import "context"

// Embedder maps texts to fixed-dimension vectors, one per input, same order.
type Embedder interface {
	Embed(ctx context.Context, texts []string) ([][]float32, error)
}

// ChatProvider maps an ordered message sequence to a text reply.
type ChatProvider interface {
	Complete(ctx context.Context, messages []Message) (string, error)
}
