package lexicon

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadLexemes(t *testing.T) {
	input := strings.Join([]string{
		"# comment line",
		"",
		"ฉัน 100",
		"ข้าว 50",
		"malformed",
		"ไม่ notanumber",
		"วันนี้ 25",
	}, "\n")

	lex := NewThLexicon("test", "th")
	require.NoError(t, LoadLexemes(lex, strings.NewReader(input)))

	assert.Equal(t, 3, lex.NumEntries())

	freq, _, exists := lex.GetLexemeFrequency("ฉัน")
	assert.True(t, exists)
	assert.Equal(t, 100, freq)

	_, _, exists = lex.GetLexemeFrequency("ไม่")
	assert.False(t, exists)
}

func TestAddLexemesLengthMismatch(t *testing.T) {
	lex := NewThLexicon("test", "th")
	err := lex.AddLexemes([]string{"ฉัน", "ข้าว"}, []int{1})
	assert.Error(t, err)
}

func TestNewDefaultThLexicon(t *testing.T) {
	lex, err := NewDefaultThLexicon("Thai Common", "th")
	require.NoError(t, err)

	assert.Greater(t, lex.NumEntries(), 50)

	for _, lexeme := range []string{"ฉัน", "รู้สึก", "ดี", "มาก", "วันนี้", "กิน", "ไม่"} {
		_, _, exists := lex.GetLexemeFrequency(lexeme)
		assert.True(t, exists, "expected default lexicon to contain %q", lexeme)
	}
}
