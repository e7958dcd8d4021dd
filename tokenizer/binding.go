package tokenizer

import (
	"errors"
	"strings"

	l "github.com/lapatradaa/pre-thai-mmt4nl/lexicon"
)

// Binding pairs a tokenization engine with the lexicon it segments against,
// exposing the plain-string segmentation contract consumed by perturbation
// rules. Whitespace-only words are discarded from the output.
type Binding struct {
	Tokenizer Interface
	Lexicon   l.Lexicon
}

func (b Binding) Segment(text string) ([]string, error) {
	words, err := b.Tokenizer.Tokenize(text, b.Lexicon)
	if err != nil {
		return nil, err
	}

	tokens := make([]string, 0, len(words))
	for _, word := range words {
		if strings.TrimSpace(word.Word) == "" {
			continue
		}
		tokens = append(tokens, word.Word)
	}

	// An empty segmentation of real content means the engine silently lost
	// text. Surface it rather than letting rules produce empty output.
	if len(tokens) == 0 && strings.TrimSpace(text) != "" {
		return nil, errors.New("tokenizer: empty segmentation for non-empty text")
	}

	return tokens, nil
}
