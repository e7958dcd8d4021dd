// Package th implements dictionary-based maximal-matching segmentation for
// Thai, which does not delimit words with whitespace. Candidate
// segmentations are compared over a bounded lookahead window; ties are
// broken by mean word length, then word-length variance, then the summed
// frequency of single-rune words.
package th

import (
	"errors"
	"math"
	"unicode/utf8"

	"github.com/lapatradaa/pre-thai-mmt4nl/entities/corpus"
	"github.com/lapatradaa/pre-thai-mmt4nl/lexicon"
	"github.com/lapatradaa/pre-thai-mmt4nl/tokenizer"
)

const defaultMaxDepth = 3

type thTokenizer struct {
	maxDepth int
}

func NewTokenizer(options *tokenizer.Options) tokenizer.Interface {
	maxDepth := defaultMaxDepth
	if options != nil && options.MaxDepth > 0 {
		maxDepth = options.MaxDepth
	}
	return &thTokenizer{maxDepth: maxDepth}
}

// chain is one candidate sequence of dictionary words. Each node holds the
// last word of the sequence and links back to the preceding node.
type chain struct {
	word       string
	freq       int
	depth      int
	totalRunes int
	runeCount  int
	end        int // byte offset just past word
	prev       *chain
}

func (t *thTokenizer) Tokenize(text string, lex lexicon.Lexicon) ([]*corpus.Word, error) {
	if !utf8.ValidString(text) {
		return nil, errors.New("tokenizer: invalid UTF-8 sequence")
	}

	words := []*corpus.Word{}

	offset := 0
	for offset < len(text) {
		root := &chain{end: offset}
		leading, stopped := wordsAt(text, root, lex)

		// No dictionary word starts here: clump the non-lexical run up
		// to the point the lookup failed and move on.
		if len(leading) == 0 {
			if stopped == offset {
				break
			}
			words = append(words, &corpus.Word{
				Word:    text[offset:stopped],
				Lexical: false,
			})
			offset = stopped
			continue
		}

		// Breadth-first search over chains within the lookahead window,
		// keeping those covering the most runes.
		best := []*chain{}
		queue := leading
		for len(queue) > 0 {
			c := queue[0]
			queue = queue[1:]

			if len(best) == 0 || c.totalRunes > best[0].totalRunes {
				best = []*chain{c}
			} else if c.totalRunes == best[0].totalRunes {
				best = append(best, c)
			}

			if c.depth < t.maxDepth {
				next, _ := wordsAt(text, c, lex)
				queue = append(queue, next...)
			}
		}

		best = filterByGreatestMeanLength(best)
		best = filterBySmallestLengthVariance(best)
		best = filterByGreatestSingleRuneFrequency(best)

		if len(best) == 0 {
			return nil, errors.New("tokenizer: no segmentation candidates")
		}

		winner := best[0]
		segment := make([]*corpus.Word, 0, winner.depth)
		for c := winner; c != nil && c.depth > 0; c = c.prev {
			segment = append(segment, &corpus.Word{Word: c.word, Lexical: true})
		}
		for i := len(segment) - 1; i >= 0; i-- {
			words = append(words, segment[i])
		}
		offset = winner.end
	}

	return words, nil
}

// wordsAt returns a chain for every dictionary word beginning where the
// given chain ended. The second return value is the byte offset at which the
// trie walk failed decisively.
func wordsAt(text string, prev *chain, lex lexicon.Lexicon) ([]*chain, int) {
	chains := []*chain{}

	start := prev.end
	width := 0
	runes := 0
	for start+width < len(text) {
		_, w := utf8.DecodeRuneInString(text[start+width:])
		if w == 0 {
			break
		}
		width += w
		runes++

		candidate := text[start : start+width]
		freq, isPrefix, exists := lex.GetLexemeFrequency(candidate)
		if exists {
			chains = append(chains, &chain{
				word:       candidate,
				freq:       freq,
				depth:      prev.depth + 1,
				totalRunes: prev.totalRunes + runes,
				runeCount:  runes,
				end:        start + width,
				prev:       prev,
			})
		}
		if !exists && !isPrefix {
			break
		}
	}

	return chains, start + width
}

func filterByGreatestMeanLength(candidates []*chain) []*chain {
	kept := []*chain{}
	bestMean := -1.0
	for _, c := range candidates {
		mean := float64(c.totalRunes) / float64(c.depth)
		if len(kept) == 0 || mean > bestMean {
			kept = []*chain{c}
			bestMean = mean
		} else if mean == bestMean {
			kept = append(kept, c)
		}
	}
	return kept
}

func filterBySmallestLengthVariance(candidates []*chain) []*chain {
	kept := []*chain{}
	leastVariance := math.MaxFloat64
	for _, c := range candidates {
		mean := float64(c.totalRunes) / float64(c.depth)
		sum := 0.0
		for node := c; node != nil && node.depth > 0; node = node.prev {
			diff := float64(node.runeCount) - mean
			sum += diff * diff
		}
		variance := sum / float64(c.depth)

		if len(kept) == 0 || variance < leastVariance {
			kept = []*chain{c}
			leastVariance = variance
		} else if variance == leastVariance {
			kept = append(kept, c)
		}
	}
	return kept
}

func filterByGreatestSingleRuneFrequency(candidates []*chain) []*chain {
	kept := []*chain{}
	bestSum := -1
	for _, c := range candidates {
		sum := 0
		for node := c; node != nil && node.depth > 0; node = node.prev {
			if node.runeCount == 1 {
				sum += node.freq
			}
		}

		if len(kept) == 0 || sum > bestSum {
			kept = []*chain{c}
			bestSum = sum
		} else if sum == bestSum {
			kept = append(kept, c)
		}
	}
	return kept
}
