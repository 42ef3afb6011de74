package engine

import (
	"fmt"
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/pkoukk/tiktoken-go"
	"github.com/sandevgo/bankassist/internal/core"
	"github.com/sandevgo/bankassist/internal/index"
)

const systemInstruction = "You are a banking assistant. Based on the following FAQ, answer the user's question helpfully."

var (
	tk     *tiktoken.Tiktoken
	tkOnce sync.Once
)

func getTokenizer() *tiktoken.Tiktoken {
	tkOnce.Do(func() {
		tk, _ = tiktoken.GetEncoding("cl100k_base")
	})
	return tk
}

func countTokens(text string) int {
	if text == "" {
		return 0
	}
	if enc := getTokenizer(); enc != nil {
		return len(enc.Encode(text, nil, nil))
	}
	// rough approximation when the encoding is unavailable
	return utf8.RuneCountInString(text)/4 + 1
}

// buildPrompt assembles the grounded prompt: system instruction, the
// retrieved FAQ, prior turns oldest first, then the current question.
// Oldest turns are dropped first when the token budget is exceeded; the
// instruction, FAQ block and question are never dropped.
func buildPrompt(match index.Match, turns []core.ConversationTurn, question string, tokenBudget int) string {
	var faq strings.Builder
	faq.WriteString("FAQ:\n")
	faq.WriteString("Q: " + match.Entry.Question + "\n")
	faq.WriteString("A: " + match.Entry.Answer + "\n")

	fixed := systemInstruction + "\n\n" + faq.String()
	tail := "\nUser question:\n" + question + "\n"

	budget := tokenBudget - countTokens(fixed) - countTokens(tail)

	kept := turns
	for len(kept) > 0 && countTokens(formatTurns(kept)) > budget {
		kept = kept[1:]
	}

	var b strings.Builder
	b.WriteString(fixed)
	if history := formatTurns(kept); history != "" {
		b.WriteString("\nPrevious conversation:\n")
		b.WriteString(history)
	}
	b.WriteString(tail)
	return b.String()
}

func formatTurns(turns []core.ConversationTurn) string {
	var b strings.Builder
	for _, t := range turns {
		fmt.Fprintf(&b, "User: %s\nAssistant: %s\n", t.Question, t.Answer)
	}
	return b.String()
}
