package lexicon

type PrefixTrie interface {
	AddLexeme(string, int)
	AddLexemes([]string, []int)
	GetFrequency(string) (int, bool, bool)
	NumEntries() int
}

type prefixTrie struct {
	root    *trieNode
	entries int
}

type trieNode struct {
	frequency int
	children  map[rune]*trieNode
}

func NewPrefixTrie() PrefixTrie {
	return &prefixTrie{
		root: &trieNode{
			frequency: -1,
			children:  map[rune]*trieNode{},
		},
	}
}

func (t *prefixTrie) AddLexeme(lexeme string, frequency int) {
	t.addLexeme(lexeme, frequency)
}

// AddLexemes inserts lexemes pairwise with frequencies, ignoring any
// lexemes beyond the shorter slice. Length validation is the caller's
// concern; Lexicon implementations reject mismatched input before it
// reaches the trie.
func (t *prefixTrie) AddLexemes(lexemes []string, frequencies []int) {
	for i, lexeme := range lexemes {
		if i >= len(frequencies) {
			break
		}
		t.addLexeme(lexeme, frequencies[i])
	}
}

// GetFrequency reports the frequency of a lexeme, whether it is a proper
// prefix of some longer lexeme, and whether it exists in the trie at all.
// Frequency is -1 for nodes that are only prefixes.
func (t *prefixTrie) GetFrequency(lexeme string) (frequency int, isPrefix bool, exists bool) {
	curNode := t.root

	for _, r := range lexeme {
		nextNode, ok := curNode.children[r]
		if !ok {
			return -1, false, false
		}
		curNode = nextNode
	}

	return curNode.frequency, len(curNode.children) > 0, curNode.frequency >= 0
}

func (t *prefixTrie) NumEntries() int {
	return t.entries
}

func (t *prefixTrie) addLexeme(lexeme string, frequency int) {
	curNode := t.root

	for _, r := range lexeme {
		nextNode, ok := curNode.children[r]
		if !ok {
			nextNode = &trieNode{
				frequency: -1,
				children:  map[rune]*trieNode{},
			}
			curNode.children[r] = nextNode
		}
		curNode = nextNode
	}

	if curNode != t.root {
		if curNode.frequency < 0 {
			t.entries++
		}
		curNode.frequency = frequency
	}
}
