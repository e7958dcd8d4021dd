package tokenizer

import (
	"github.com/lapatradaa/pre-thai-mmt4nl/entities/corpus"
	l "github.com/lapatradaa/pre-thai-mmt4nl/lexicon"
)

// Interface is the segmentation capability. Any engine that can split text
// into an ordered sequence of words against a lexicon satisfies it.
type Interface interface {
	Tokenize(string, l.Lexicon) ([]*corpus.Word, error)
}

type Options struct {
	// MaxDepth bounds how many words ahead the engine may look when
	// choosing between candidate segmentations.
	MaxDepth int
}
