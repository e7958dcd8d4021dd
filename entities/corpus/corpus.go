package corpus

// Word is a single segmented unit of text. Lexical is false for runs of
// characters the segmenter could not match against its lexicon
// (punctuation, digits, out-of-vocabulary words).
type Word struct {
	Word    string
	Lexical bool
}
