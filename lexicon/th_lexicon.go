package lexicon

import (
	"bufio"
	"bytes"
	_ "embed"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// defaultLexemes is a hand-curated Thai word list with rough relative
// frequencies, one "lexeme frequency" pair per line.
//
//go:embed data/lexemes.txt
var defaultLexemes []byte

type thLexicon struct {
	name       string
	language   string
	prefixTrie PrefixTrie
}

// NewThLexicon creates an empty Thai lexicon with the given name and
// language tag.
func NewThLexicon(name string, language string) Lexicon {
	return &thLexicon{
		name:       name,
		language:   language,
		prefixTrie: NewPrefixTrie(),
	}
}

func (l *thLexicon) AddLexeme(lexeme string, frequency int) error {
	l.prefixTrie.AddLexeme(lexeme, frequency)
	return nil
}

func (l *thLexicon) AddLexemes(lexemes []string, frequencies []int) error {
	if len(lexemes) != len(frequencies) {
		return fmt.Errorf("lexicon: %d lexemes but %d frequencies", len(lexemes), len(frequencies))
	}
	l.prefixTrie.AddLexemes(lexemes, frequencies)
	return nil
}

func (l *thLexicon) GetLexemeFrequency(lexeme string) (frequency int, isPrefix bool, exists bool) {
	return l.prefixTrie.GetFrequency(lexeme)
}

func (l *thLexicon) NumEntries() int {
	return l.prefixTrie.NumEntries()
}

// LoadLexemes populates a lexicon from "lexeme frequency" lines.
// Blank lines, lines starting with #, and malformed lines are skipped.
func LoadLexemes(lex Lexicon, r io.Reader) error {
	lexemes := make([]string, 0)
	frequencies := make([]int, 0)

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}

		fields := strings.Fields(text)
		if len(fields) != 2 {
			continue
		}
		freq, err := strconv.Atoi(fields[1])
		if err != nil {
			continue
		}

		lexemes = append(lexemes, fields[0])
		frequencies = append(frequencies, freq)
	}
	if err := scanner.Err(); err != nil {
		return err
	}

	return lex.AddLexemes(lexemes, frequencies)
}

// NewDefaultThLexicon returns a Thai lexicon populated from the embedded
// word list.
func NewDefaultThLexicon(name string, language string) (Lexicon, error) {
	lex := NewThLexicon(name, language)
	if err := LoadLexemes(lex, bytes.NewReader(defaultLexemes)); err != nil {
		return nil, err
	}
	return lex, nil
}
