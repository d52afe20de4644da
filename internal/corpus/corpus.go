// Package corpus turns raw knowledge-base text into the ordered passage
// sequence the retriever works over.
package corpus

import (
	"fmt"
	"os"
	"strings"

	"github.com/rmmentors/alicia/internal/core"
)

// Load splits raw corpus text into passages on blank-line boundaries.
// Each block is trimmed, empty blocks are dropped and indices are assigned
// densely in original order. Returns core.ErrEmptyCorpus when nothing
// survives.
func Load(raw string) ([]core.Passage, error) {
	raw = strings.ReplaceAll(raw, "\r\n", "\n")

	blocks := strings.Split(raw, "\n\n")
	passages := make([]core.Passage, 0, len(blocks))
	for _, b := range blocks {
		b = strings.TrimSpace(b)
		if b == "" {
			continue
		}
		passages = append(passages, core.Passage{Index: len(passages), Text: b})
	}

	if len(passages) == 0 {
		return nil, core.ErrEmptyCorpus
	}
	return passages, nil
}

// LoadFile reads a corpus file and splits it into passages.
func LoadFile(path string) ([]core.Passage, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read corpus: %w", err)
	}
	return Load(string(raw))
}

// ReadDescription loads the agent description used verbatim as the first
// system message.
func ReadDescription(path string) (string, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read agent description: %w", err)
	}
	desc := strings.TrimSpace(string(raw))
	if desc == "" {
		return "", fmt.Errorf("agent description %s is empty", path)
	}
	return desc, nil
}
