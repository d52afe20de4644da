package prompt

import (
	"sync"

	"github.com/pkoukk/tiktoken-go"

	"github.com/rmmentors/alicia/internal/core"
)

var (
	enc     *tiktoken.Tiktoken
	encOnce sync.Once
)

func encoder() *tiktoken.Tiktoken {
	encOnce.Do(func() {
		var err error
		enc, err = tiktoken.GetEncoding("cl100k_base")
		if err != nil {
			panic("failed to load tiktoken: " + err.Error())
		}
	})
	return enc
}

// TokenCount approximates the prompt size in cl100k_base tokens. Message
// framing overhead is not counted; the budget this feeds is soft.
func TokenCount(messages []core.Message) int {
	n := 0
	for _, m := range messages {
		n += len(encoder().Encode(m.Content, nil, nil))
	}
	return n
}
