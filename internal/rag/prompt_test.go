package rag

import (
	"strings"
	"testing"
)

func TestBuildPrompt_Idempotent(t *testing.T) {
	contextText := "Edge functions run close to users.\nSOURCE: https://a.example\n---\n"
	question := "what are edge functions?"

	first := BuildPrompt(contextText, question)
	second := BuildPrompt(contextText, question)

	if first != second {
		t.Error("identical inputs produced different prompts")
	}
}

func TestBuildPrompt_Structure(t *testing.T) {
	contextText := "Some documentation excerpt.\nSOURCE: https://a.example\n---\n"
	question := "how do I deploy?"

	prompt := BuildPrompt(contextText, question)

	for _, fragment := range []string{
		"Sorry, I don't know how to help with that.",
		"SOURCES heading",
		contextText,
		"Question: \"\"\"\nhow do I deploy?\n\"\"\"",
		"Answer as markdown, including related code snippets if available:",
	} {
		if !strings.Contains(prompt, fragment) {
			t.Errorf("prompt missing %q", fragment)
		}
	}

	// The worked example precedes the real context block.
	exampleIdx := strings.Index(prompt, "what is nextjs?")
	contextIdx := strings.LastIndex(prompt, contextText)
	if exampleIdx < 0 || contextIdx < 0 || exampleIdx > contextIdx {
		t.Error("worked example is not before the real context block")
	}
}

func TestBuildPrompt_EmptyContext(t *testing.T) {
	prompt := BuildPrompt("", "anything?")

	if !strings.Contains(prompt, "Question: \"\"\"\nanything?") {
		t.Error("question missing from context-free prompt")
	}
}
