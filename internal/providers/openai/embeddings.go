package openai

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
)

// Embed returns one vector per input text, in input order. The API may
// deliver entries out of order, so results are re-slotted by index.
func (c *Client) Embed(ctx context.Context, texts []string) ([][]float32, error) {
	payload := map[string]any{
		"model": c.embedModel,
		"input": texts,
	}

	resp, err := c.doRequest(ctx, http.MethodPost, "/v1/embeddings", payload)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	data, err := readBody(resp)
	if err != nil {
		return nil, err
	}

	var result struct {
		Data []struct {
			Index     int       `json:"index"`
			Embedding []float32 `json:"embedding"`
		} `json:"data"`
	}
	if err := json.Unmarshal(data, &result); err != nil {
		return nil, fmt.Errorf("decode embeddings: %w", err)
	}

	if len(result.Data) != len(texts) {
		return nil, fmt.Errorf("embeddings count mismatch: want %d, got %d", len(texts), len(result.Data))
	}

	vectors := make([][]float32, len(texts))
	for _, d := range result.Data {
		if d.Index < 0 || d.Index >= len(vectors) {
			return nil, fmt.Errorf("embedding index %d out of range", d.Index)
		}
		vectors[d.Index] = d.Embedding
	}
	return vectors, nil
}
