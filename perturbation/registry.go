package perturbation

import (
	"errors"
	"fmt"
	"math/rand"
)

// Canonical names of the built-in rules.
const (
	NameTaxonomy   = "taxonomy"
	NameNER        = "ner"
	NameNegation   = "negation"
	NameVocab      = "vocab"
	NameFairness   = "fairness"
	NameRobustness = "robustness"
	NameTemporal   = "temporal"
	NameSRL        = "srl"
)

// ErrRuleNotRegistered is returned by Registry.Get for unknown rule names.
var ErrRuleNotRegistered = errors.New("perturbation: rule not registered")

// Registry maps stable rule names to rules. Registration order is
// preserved, so Names and ApplyAll iterate deterministically. A Registry is
// safe for concurrent readers once registration is done.
type Registry struct {
	rules map[string]Rule
	order []string
}

func NewRegistry() *Registry {
	return &Registry{
		rules: map[string]Rule{},
	}
}

// Options carries the injected dependencies of the built-in rules. Rand
// seeds the taxonomy and robustness draws; callers wanting reproducible
// output supply a fixed-seed source.
type Options struct {
	Segmenter Segmenter
	Synonyms  Synonyms
	Rand      *rand.Rand
}

// NewDefaultRegistry returns a Registry populated with the eight built-in
// rules. Additional rules may be registered afterwards without touching the
// built-ins.
func NewDefaultRegistry(options Options) *Registry {
	r := NewRegistry()
	r.Register(NameTaxonomy, NewTaxonomy(options.Segmenter, options.Synonyms, options.Rand))
	r.Register(NameNER, NewNER())
	r.Register(NameNegation, NewNegation())
	r.Register(NameVocab, NewVocab())
	r.Register(NameFairness, NewFairness())
	r.Register(NameRobustness, NewRobustness(options.Segmenter, options.Rand))
	r.Register(NameTemporal, NewTemporal())
	r.Register(NameSRL, NewSRL())
	return r
}

// Register adds a rule under name, overwriting any existing rule with the
// same name.
func (r *Registry) Register(name string, rule Rule) {
	if _, ok := r.rules[name]; !ok {
		r.order = append(r.order, name)
	}
	r.rules[name] = rule
}

// Get returns the rule registered under name, or an error wrapping
// ErrRuleNotRegistered.
func (r *Registry) Get(name string) (Rule, error) {
	rule, ok := r.rules[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrRuleNotRegistered, name)
	}
	return rule, nil
}

// Names returns the registered rule names in registration order.
func (r *Registry) Names() []string {
	names := make([]string, len(r.order))
	copy(names, r.order)
	return names
}

// ApplyAll runs every registered rule over the sentence and returns the
// perturbed output keyed by rule name, one entry per rule. Any rule failure
// aborts the whole call; callers needing partial results should invoke
// rules individually through Get.
func (r *Registry) ApplyAll(sentence string) (map[string]string, error) {
	results := make(map[string]string, len(r.order))
	for _, name := range r.order {
		perturbed, err := r.rules[name].Perturb(sentence)
		if err != nil {
			return nil, fmt.Errorf("perturbation: applying %q: %w", name, err)
		}
		results[name] = perturbed
	}
	return results, nil
}
