package rag

import (
	"strings"

	"github.com/astrolabs/webdev-answerbot/internal/database"
)

// Assembler concatenates ranked matches into a bounded context block.
type Assembler struct {
	tokenizer Tokenizer
}

func NewAssembler(tokenizer Tokenizer) *Assembler {
	return &Assembler{tokenizer: tokenizer}
}

// Assemble walks matches in their given similarity-descending order,
// accumulating token counts. It stops at the first match whose inclusion
// would push the running count past tokenBudget; that match and everything
// after it are dropped, so the included matches are always a strict prefix
// of the ranking. Returns the context text and how many matches made it in.
func (a *Assembler) Assemble(matches []database.Match, tokenBudget int) (string, int) {
	var contextText strings.Builder
	tokenCount := 0
	included := 0

	for _, match := range matches {
		tokenCount += a.tokenizer.CountTokens(match.Content)
		if tokenCount > tokenBudget {
			break
		}

		contextText.WriteString(strings.TrimSpace(match.Content))
		contextText.WriteString("\nSOURCE: ")
		contextText.WriteString(match.URL)
		contextText.WriteString("\n---\n")
		included++
	}

	return contextText.String(), included
}
