package rag

import (
	"fmt"

	"github.com/pkoukk/tiktoken-go"
)

// Tokenizer counts text in the completion model's tokenization units so the
// context budget matches what the model will actually consume.
type Tokenizer interface {
	CountTokens(text string) int
}

type TiktokenCounter struct {
	encoding *tiktoken.Tiktoken
}

// NewTiktokenCounter resolves the BPE encoding for the given completion
// model identifier.
func NewTiktokenCounter(model string) (*TiktokenCounter, error) {
	encoding, err := tiktoken.EncodingForModel(model)
	if err != nil {
		return nil, fmt.Errorf("failed to load tokenizer for model %s: %w", model, err)
	}

	return &TiktokenCounter{encoding: encoding}, nil
}

func (t *TiktokenCounter) CountTokens(text string) int {
	return len(t.encoding.Encode(text, nil, nil))
}
