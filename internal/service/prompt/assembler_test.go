package prompt

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rmmentors/alicia/internal/core"
)

const testDesc = "You are a mentoring assistant."

func scored(texts ...string) []core.ScoredPassage {
	out := make([]core.ScoredPassage, len(texts))
	for i, txt := range texts {
		out[i] = core.ScoredPassage{Passage: core.Passage{Index: i, Text: txt}}
	}
	return out
}

func TestAssemble_Order(t *testing.T) {
	tests := []struct {
		name    string
		history []core.Message
	}{
		{name: "empty history"},
		{
			name: "two prior turns",
			history: []core.Message{
				{Role: core.RoleUser, Content: "q1"},
				{Role: core.RoleAssistant, Content: "a1"},
				{Role: core.RoleUser, Content: "q2"},
				{Role: core.RoleAssistant, Content: "a2"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msgs := Assemble(testDesc, nil, tt.history, scored("ctx"), "the question")
			require.Len(t, msgs, len(tt.history)+4)

			assert.Equal(t, core.Message{Role: core.RoleSystem, Content: testDesc}, msgs[0])
			assert.Equal(t, core.RoleSystem, msgs[1].Role)

			for i, h := range tt.history {
				assert.Equal(t, h, msgs[2+i])
			}

			// Grounding context always second-to-last, query always last.
			grounding := msgs[len(msgs)-2]
			assert.Equal(t, core.RoleAssistant, grounding.Role)
			assert.Contains(t, grounding.Content, "base your answer ONLY on these excerpts")

			assert.Equal(t, core.Message{Role: core.RoleUser, Content: "the question"}, msgs[len(msgs)-1])
		})
	}
}

func TestAssemble_PersonalizationMessage(t *testing.T) {
	msgs := Assemble(testDesc, nil, nil, scored("ctx"), "q")
	assert.Equal(t, "Ask once for program + year, then remember.", msgs[1].Content)

	prof := &core.Profile{Program: "PHD", Year: 3}
	msgs = Assemble(testDesc, prof, nil, scored("ctx"), "q")
	assert.Equal(t, "Student program: PHD, Year: 3.", msgs[1].Content)
}

func TestAssemble_NumberedContext(t *testing.T) {
	msgs := Assemble(testDesc, nil, nil, scored("first passage", "second passage"), "q")
	grounding := msgs[len(msgs)-2].Content

	assert.True(t, strings.HasSuffix(grounding, "1. first passage\n\n2. second passage"))
}

func TestAssemble_SingleRetrievedPassage(t *testing.T) {
	msgs := Assemble(testDesc, nil, nil, scored("Orientation is in August."), "When is orientation?")
	grounding := msgs[len(msgs)-2].Content

	assert.True(t, strings.HasSuffix(grounding, "1. Orientation is in August."))
}

func TestAssemble_NoRetrievedPassages(t *testing.T) {
	msgs := Assemble(testDesc, nil, nil, nil, "q")
	grounding := msgs[len(msgs)-2].Content

	// Instruction still present even with nothing retrieved.
	assert.Contains(t, grounding, "base your answer ONLY on these excerpts")
}

func TestAssemble_HistoryNotMutated(t *testing.T) {
	history := []core.Message{
		{Role: core.RoleUser, Content: "q1"},
		{Role: core.RoleAssistant, Content: "a1"},
	}
	snapshot := append([]core.Message(nil), history...)

	Assemble(testDesc, nil, history, scored("ctx"), "q")
	assert.Equal(t, snapshot, history)
}
