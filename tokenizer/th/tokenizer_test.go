package th_test

import (
	"testing"

	"github.com/lapatradaa/pre-thai-mmt4nl/entities/languages"
	l "github.com/lapatradaa/pre-thai-mmt4nl/lexicon"
	"github.com/lapatradaa/pre-thai-mmt4nl/tokenizer"
	"github.com/lapatradaa/pre-thai-mmt4nl/tokenizer/th"
)

var text = "ฉันรู้สึกดีมากวันนี้"

// The trailing วันนี้ covers the mean-length tie-break: มาก+วัน+นี้ and
// มาก+วันนี้ span the same number of runes.
var correctTokenization = []string{
	"ฉัน", "รู้สึก", "ดี", "มาก", "วันนี้",
}

func defaultLexicon(t testing.TB) l.Lexicon {
	t.Helper()
	lexicon, err := l.NewDefaultThLexicon("Thai Common", languages.TH)
	if err != nil {
		t.Fatal(err)
	}
	return lexicon
}

func TestTokenize(t *testing.T) {
	lexicon := defaultLexicon(t)

	tok := th.NewTokenizer(&tokenizer.Options{
		MaxDepth: 3,
	})

	tokens, err := tok.Tokenize(text, lexicon)
	if err != nil {
		t.Fatal(err)
	}

	if len(tokens) != len(correctTokenization) {
		tokenStrings := []string{}
		for _, token := range tokens {
			tokenStrings = append(tokenStrings, token.Word)
		}
		t.Fatalf("th.Tokenize(): got\n%v\nwant\n%v", tokenStrings, correctTokenization)
	}

	for i, token := range tokens {
		if correctTokenization[i] != token.Word {
			t.Errorf("th.Tokenize(): token[%d] = %s, want %s", i, token.Word, correctTokenization[i])
		}
		if !token.Lexical {
			t.Errorf("th.Tokenize(): token[%d] (%s) marked non-lexical", i, token.Word)
		}
	}
}

func TestTokenizeNonLexicalRuns(t *testing.T) {
	lexicon := defaultLexicon(t)
	tok := th.NewTokenizer(nil)

	tokens, err := tok.Tokenize("ฉันกินข้าว!", lexicon)
	if err != nil {
		t.Fatal(err)
	}

	want := []struct {
		word    string
		lexical bool
	}{
		{"ฉัน", true},
		{"กิน", true},
		{"ข้าว", true},
		{"!", false},
	}

	if len(tokens) != len(want) {
		t.Fatalf("th.Tokenize(): got %d tokens, want %d", len(tokens), len(want))
	}
	for i, token := range tokens {
		if token.Word != want[i].word || token.Lexical != want[i].lexical {
			t.Errorf("th.Tokenize(): token[%d] = {%q, %v}, want {%q, %v}",
				i, token.Word, token.Lexical, want[i].word, want[i].lexical)
		}
	}
}

func TestTokenizeInvalidUTF8(t *testing.T) {
	lexicon := defaultLexicon(t)
	tok := th.NewTokenizer(nil)

	if _, err := tok.Tokenize("ฉัน\xff\xfe", lexicon); err == nil {
		t.Error("th.Tokenize(): expected error for invalid UTF-8")
	}
}

func TestTokenizeEmpty(t *testing.T) {
	lexicon := defaultLexicon(t)
	tok := th.NewTokenizer(nil)

	tokens, err := tok.Tokenize("", lexicon)
	if err != nil {
		t.Fatal(err)
	}
	if len(tokens) != 0 {
		t.Errorf("th.Tokenize(\"\"): got %d tokens, want 0", len(tokens))
	}
}

func BenchmarkTokenizer(b *testing.B) {
	lexicon := defaultLexicon(b)
	tok := th.NewTokenizer(&tokenizer.Options{
		MaxDepth: 3,
	})

	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		if _, err := tok.Tokenize(text, lexicon); err != nil {
			b.Fatal(err)
		}
	}
}
