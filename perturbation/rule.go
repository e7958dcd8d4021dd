// Package perturbation generates labeled variants of a Thai sentence for
// MMT4NL-style behavioral testing: each rule reproduces one test category
// (synonym substitution, entity substitution, negation, and so on), and the
// registry applies every rule to an input sentence to produce a named
// result set.
package perturbation

// Rule transforms a sentence into a perturbed sentence under one test
// category. Implementations are stateless aside from injected dependencies
// and must not modify anything observable between calls.
type Rule interface {
	Perturb(sentence string) (string, error)
}

// RuleFunc adapts a plain function to the Rule interface.
type RuleFunc func(sentence string) (string, error)

func (f RuleFunc) Perturb(sentence string) (string, error) {
	return f(sentence)
}

// Segmenter is the word-segmentation capability consumed by rules that
// operate per token. Segment returns the ordered words of text with
// whitespace-only tokens discarded. An implementation must return an error,
// not an empty sequence, when it cannot segment non-empty content.
type Segmenter interface {
	Segment(text string) ([]string, error)
}

// Synonyms supplies ordered interchangeable alternatives for a word, or nil
// when the word has none.
type Synonyms interface {
	Alternatives(word string) []string
}
