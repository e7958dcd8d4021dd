package lexicon

type Lexicon interface {
	AddLexeme(lexeme string, frequency int) error
	AddLexemes(lexemes []string, frequencies []int) error
	GetLexemeFrequency(lexeme string) (frequency int, isPrefix bool, exists bool)
	NumEntries() int
}
