package main

import (
	"fmt"
	"math/rand"
	"time"

	"go.uber.org/zap"

	"github.com/lapatradaa/pre-thai-mmt4nl/entities/languages"
	l "github.com/lapatradaa/pre-thai-mmt4nl/lexicon"
	p "github.com/lapatradaa/pre-thai-mmt4nl/perturbation"
	t "github.com/lapatradaa/pre-thai-mmt4nl/tokenizer"
	"github.com/lapatradaa/pre-thai-mmt4nl/tokenizer/th"
)

var sample = "ฉันรู้สึกดีมากวันนี้"

func main() {
	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	lexicon, err := l.NewDefaultThLexicon("Thai Common", languages.TH)
	if err != nil {
		logger.Fatal("loading lexicon", zap.Error(err))
	}

	synonyms, err := l.DefaultSynonyms()
	if err != nil {
		logger.Fatal("loading synonyms", zap.Error(err))
	}

	segmenter := t.Binding{
		Tokenizer: th.NewTokenizer(&t.Options{MaxDepth: 3}),
		Lexicon:   lexicon,
	}

	registry := p.NewDefaultRegistry(p.Options{
		Segmenter: segmenter,
		Synonyms:  synonyms,
		Rand:      rand.New(rand.NewSource(time.Now().UnixNano())),
	})

	results, err := registry.ApplyAll(sample)
	if err != nil {
		logger.Fatal("applying perturbations", zap.Error(err))
	}

	for _, name := range registry.Names() {
		fmt.Printf("%-10s: %s\n", name, results[name])
	}
}
