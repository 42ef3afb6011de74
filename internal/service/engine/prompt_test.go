package engine

import (
	"strings"
	"testing"

	"github.com/sandevgo/bankassist/internal/core"
	"github.com/sandevgo/bankassist/internal/corpus"
	"github.com/sandevgo/bankassist/internal/index"
)

func feeMatch() index.Match {
	return index.Match{Entry: corpus.Entry{
		Question: "What is the overdraft fee?",
		Answer:   "The overdraft fee is $35 per item.",
	}}
}

func TestBuildPrompt_ContainsAllSections(t *testing.T) {
	turns := []core.ConversationTurn{
		{Question: "Do you charge monthly fees?", Answer: "Only on premium accounts."},
	}

	prompt := buildPrompt(feeMatch(), turns, "And overdrafts?", 3000)

	for _, want := range []string{
		systemInstruction,
		"Q: What is the overdraft fee?",
		"A: The overdraft fee is $35 per item.",
		"Previous conversation:",
		"User: Do you charge monthly fees?",
		"Assistant: Only on premium accounts.",
		"User question:\nAnd overdrafts?",
	} {
		if !strings.Contains(prompt, want) {
			t.Errorf("prompt missing %q", want)
		}
	}
}

func TestBuildPrompt_NoTurnsOmitsHistorySection(t *testing.T) {
	prompt := buildPrompt(feeMatch(), nil, "And overdrafts?", 3000)
	if strings.Contains(prompt, "Previous conversation:") {
		t.Error("history section should be absent without prior turns")
	}
}

func TestBuildPrompt_DropsOldestTurnsFirst(t *testing.T) {
	filler := strings.Repeat("please tell me about the monthly maintenance fees on my checking account ", 30)
	turns := []core.ConversationTurn{
		{Question: "old " + filler, Answer: filler},
		{Question: "new question about savings rates", Answer: "Savings pay 4% annually."},
	}

	prompt := buildPrompt(feeMatch(), turns, "And overdrafts?", 300)

	if strings.Contains(prompt, "old ") {
		t.Error("oldest turn should have been dropped")
	}
	if !strings.Contains(prompt, "new question about savings rates") {
		t.Error("newest turn should have been kept")
	}
}

func TestBuildPrompt_TinyBudgetKeepsFixedParts(t *testing.T) {
	turns := []core.ConversationTurn{
		{Question: "q1", Answer: "a1"},
		{Question: "q2", Answer: "a2"},
	}

	prompt := buildPrompt(feeMatch(), turns, "And overdrafts?", 0)

	if strings.Contains(prompt, "Previous conversation:") {
		t.Error("all turns should have been dropped")
	}
	for _, want := range []string{systemInstruction, "Q: What is the overdraft fee?", "And overdrafts?"} {
		if !strings.Contains(prompt, want) {
			t.Errorf("prompt missing %q", want)
		}
	}
}

func TestCountTokens_Empty(t *testing.T) {
	if n := countTokens(""); n != 0 {
		t.Errorf("expected 0 tokens for empty string, got %d", n)
	}
}
