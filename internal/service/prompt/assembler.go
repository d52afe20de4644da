// Package prompt composes the ordered message sequence sent to the
// completion provider.
package prompt

import (
	"fmt"
	"strings"

	"github.com/rmmentors/alicia/internal/core"
)

// askProfile is sent until the student's program and year are known.
const askProfile = "Ask once for program + year, then remember."

// groundingHeader pins the model to the retrieved excerpts. The fallback
// wording, including the external-search instruction, is product copy and
// is kept verbatim.
const groundingHeader = "**Grounding data – you MUST base your answer ONLY on these excerpts. " +
	"If they don’t contain the answer, reply 'I don’t have that information, but I searched online and found " +
	"{then search online and find a reliable source like the program website, find the answer and return the answer " +
	"AND your source link}. Everything should be specific to the University of Colorado Anschutz Medical Campus " +
	"and Denver campus, as well as the student's current program and year.'**\n\n"

// Assemble builds the prompt for one turn:
//
//  1. system: agent description
//  2. system: personalization (profile statement or ask-once instruction)
//  3. history, unmodified and in order
//  4. assistant: grounding instruction plus numbered excerpts
//  5. user: the verbatim query
//
// The grounding message sits immediately before the user query so the
// model's last signal before answering is the retrieved context.
func Assemble(desc string, prof *core.Profile, history []core.Message, retrieved []core.ScoredPassage, query string) []core.Message {
	messages := make([]core.Message, 0, len(history)+4)

	messages = append(messages, core.Message{Role: core.RoleSystem, Content: desc})

	personal := askProfile
	if prof != nil {
		personal = fmt.Sprintf("Student program: %s, Year: %d.", prof.Program, prof.Year)
	}
	messages = append(messages, core.Message{Role: core.RoleSystem, Content: personal})

	messages = append(messages, history...)

	messages = append(messages, core.Message{
		Role:    core.RoleAssistant,
		Content: groundingHeader + renderContext(retrieved),
	})
	messages = append(messages, core.Message{Role: core.RoleUser, Content: query})

	return messages
}

// renderContext renders passages as a one-based numbered list in retrieval
// order, blocks separated by blank lines.
func renderContext(retrieved []core.ScoredPassage) string {
	parts := make([]string, len(retrieved))
	for i, r := range retrieved {
		parts[i] = fmt.Sprintf("%d. %s", i+1, r.Passage.Text)
	}
	return strings.Join(parts, "\n\n")
}
