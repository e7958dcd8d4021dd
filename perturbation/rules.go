package perturbation

import (
	"math/rand"
	"strings"
	"unicode"
	"unicode/utf8"
)

const (
	negationParticle = "ไม่"
	rareWord         = "บลูเบอร์รี่"
	temporalPhrase   = "เมื่อวานนี้"
	srlVerb          = "กิน"
	srlReplacement   = "รับประทาน"
)

// pronounSwaps maps first- and second-person pronouns to fixed fictitious
// proper nouns, applied in order as whole-word substitutions.
var pronounSwaps = []struct {
	pronoun string
	name    string
}{
	{"ฉัน", "สมชาย"},
	{"ผม", "สมชาย"},
	{"เธอ", "สมหญิง"},
}

// genderSwaps appends gender markers to role nouns, applied in order as
// literal substring substitutions. A noun embedded in a longer word is also
// affected; this mirrors the behavior of the reference perturbations and is
// deliberately not word-boundary aware.
var genderSwaps = []struct {
	noun   string
	marked string
}{
	{"ครู", "ครูผู้หญิง"},
	{"นักเรียน", "นักเรียนชาย"},
}

type taxonomyRule struct {
	segmenter Segmenter
	synonyms  Synonyms
	rng       *rand.Rand
}

// NewTaxonomy builds the synonym-substitution rule. Each token is replaced
// by a uniformly random pick from its alternatives, or kept as-is when it
// has none.
func NewTaxonomy(segmenter Segmenter, synonyms Synonyms, rng *rand.Rand) Rule {
	return &taxonomyRule{segmenter: segmenter, synonyms: synonyms, rng: rng}
}

func (r *taxonomyRule) Perturb(sentence string) (string, error) {
	tokens, err := r.segmenter.Segment(sentence)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	for _, token := range tokens {
		alternatives := r.synonyms.Alternatives(token)
		if len(alternatives) == 0 {
			b.WriteString(token)
			continue
		}
		b.WriteString(alternatives[r.rng.Intn(len(alternatives))])
	}
	return b.String(), nil
}

// NewNER builds the entity-substitution rule: whole-word pronoun
// occurrences become fixed proper nouns.
func NewNER() Rule {
	return RuleFunc(func(sentence string) (string, error) {
		for _, swap := range pronounSwaps {
			sentence = replaceWholeWord(sentence, swap.pronoun, swap.name)
		}
		return sentence, nil
	})
}

// NewNegation builds the negation-insertion rule. Sentences already
// containing the negation particle pass through unchanged, which makes the
// rule idempotent.
func NewNegation() Rule {
	return RuleFunc(func(sentence string) (string, error) {
		if strings.Contains(sentence, negationParticle) {
			return sentence, nil
		}
		return negationParticle + " " + sentence, nil
	})
}

// NewVocab builds the vocabulary-injection rule: a fixed rare word is
// appended to the sentence.
func NewVocab() Rule {
	return RuleFunc(func(sentence string) (string, error) {
		return sentence + " " + rareWord, nil
	})
}

// NewFairness builds the demographic-substitution rule.
func NewFairness() Rule {
	return RuleFunc(func(sentence string) (string, error) {
		for _, swap := range genderSwaps {
			sentence = strings.ReplaceAll(sentence, swap.noun, swap.marked)
		}
		return sentence, nil
	})
}

type robustnessRule struct {
	segmenter Segmenter
	rng       *rand.Rand
}

// NewRobustness builds the character-noise rule: every token of two or more
// runes has one random adjacent rune pair transposed.
func NewRobustness(segmenter Segmenter, rng *rand.Rand) Rule {
	return &robustnessRule{segmenter: segmenter, rng: rng}
}

func (r *robustnessRule) Perturb(sentence string) (string, error) {
	tokens, err := r.segmenter.Segment(sentence)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	for _, token := range tokens {
		b.WriteString(swapAdjacentRunes(token, r.rng))
	}
	return b.String(), nil
}

// NewTemporal builds the temporal-insertion rule: a fixed time phrase is
// prepended to the sentence.
func NewTemporal() Rule {
	return RuleFunc(func(sentence string) (string, error) {
		return temporalPhrase + " " + sentence, nil
	})
}

// NewSRL builds the role-preserving verb substitution rule.
func NewSRL() Rule {
	return RuleFunc(func(sentence string) (string, error) {
		if !strings.Contains(sentence, srlVerb) {
			return sentence, nil
		}
		return strings.ReplaceAll(sentence, srlVerb, srlReplacement), nil
	})
}

func swapAdjacentRunes(word string, rng *rand.Rand) string {
	runes := []rune(word)
	if len(runes) < 2 {
		return word
	}
	i := rng.Intn(len(runes) - 1)
	runes[i], runes[i+1] = runes[i+1], runes[i]
	return string(runes)
}

// replaceWholeWord substitutes occurrences of old whose neighbors are not
// word runes (letters, digits, underscore). Both neighbors are taken from
// the input text, so an occurrence directly following another is still seen
// as preceded by a word rune.
func replaceWholeWord(s, old, replacement string) string {
	if old == "" {
		return s
	}

	before := utf8.RuneError
	var b strings.Builder
	for {
		i := strings.Index(s, old)
		if i < 0 {
			b.WriteString(s)
			return b.String()
		}

		if i > 0 {
			before, _ = utf8.DecodeLastRuneInString(s[:i])
		}
		after, _ := utf8.DecodeRuneInString(s[i+len(old):])
		if isWordRune(before) || isWordRune(after) {
			b.WriteString(s[:i+len(old)])
		} else {
			b.WriteString(s[:i])
			b.WriteString(replacement)
		}
		before, _ = utf8.DecodeLastRuneInString(old)
		s = s[i+len(old):]
	}
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_'
}
