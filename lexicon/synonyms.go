package lexicon

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

// defaultSynonyms is the built-in synonym table for taxonomy perturbations.
// Extend the YAML file to add headwords; no code changes are needed.
//
//go:embed data/synonyms.yaml
var defaultSynonyms []byte

// SynonymSet maps a headword to an ordered list of interchangeable
// alternatives. Lookup is exact-match and case-sensitive; a word without an
// entry has no alternatives. The set is read-only after construction and
// safe for concurrent readers.
type SynonymSet struct {
	alternatives map[string][]string
}

func NewSynonymSet() *SynonymSet {
	return &SynonymSet{
		alternatives: map[string][]string{},
	}
}

// ParseSynonyms builds a SynonymSet from a YAML mapping of headword to
// alternative list.
func ParseSynonyms(data []byte) (*SynonymSet, error) {
	entries := map[string][]string{}
	if err := yaml.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("lexicon: parsing synonyms: %w", err)
	}

	s := NewSynonymSet()
	for word, alts := range entries {
		s.Add(word, alts...)
	}
	return s, nil
}

// DefaultSynonyms returns the SynonymSet parsed from the embedded table.
func DefaultSynonyms() (*SynonymSet, error) {
	return ParseSynonyms(defaultSynonyms)
}

// Add registers alternatives for a headword, replacing any existing entry.
func (s *SynonymSet) Add(word string, alternatives ...string) {
	s.alternatives[word] = alternatives
}

// Alternatives returns the ordered alternatives for a word, or nil when the
// word has none.
func (s *SynonymSet) Alternatives(word string) []string {
	return s.alternatives[word]
}

// NumEntries returns the number of headwords in the set.
func (s *SynonymSet) NumEntries() int {
	return len(s.alternatives)
}
