package core

import (
	"errors"
	"fmt"
)

// ErrEmptyCorpus is returned when the corpus yields no usable passages.
// Fatal at startup.
var ErrEmptyCorpus = errors.New("corpus contains no passages")

// EmbeddingError wraps a failure of the embedding provider. The turn that
// hit it aborts without mutating session state.
type EmbeddingError struct {
	Err error
}

func (e *EmbeddingError) Error() string {
	return fmt.Sprintf("embedding provider: %v", e.Err)
}

func (e *EmbeddingError) Unwrap() error { return e.Err }

// CompletionError wraps a failure of the chat-completion provider.
type CompletionError struct {
	Err error
}

func (e *CompletionError) Error() string {
	return fmt.Sprintf("completion provider: %v", e.Err)
}

func (e *CompletionError) Unwrap() error { return e.Err }
