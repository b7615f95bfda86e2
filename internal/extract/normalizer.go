package extract

import "github.com/nadzzz/shopvoice/internal/lexicon"

// Transform is one pure normalization stage over a token sequence.
type Transform func(tokens []string) []string

// RemovePhrases returns a stage that drops whole-token occurrences of any of
// the phrases, trying longer phrases first at each position.
func RemovePhrases(phrases []string) Transform {
	set := newPhraseSet(phrases)
	return set.remove
}

// Normalizer strips filler phrases, action words and stop words, in that order.
type Normalizer struct {
	stages []Transform
}

// NewNormalizer builds the stage sequence for one language.
func NewNormalizer(lx *lexicon.Lexicon) *Normalizer {
	return &Normalizer{stages: []Transform{
		RemovePhrases(lx.Fillers),
		RemovePhrases(lx.Actions),
		RemovePhrases(lx.StopWords),
	}}
}

// Normalize returns the cleaned utterance. ok is false when nothing that
// could name an item is left.
func (n *Normalizer) Normalize(text string) (out string, ok bool) {
	tokens := n.apply(Tokenize(text))
	if !hasWord(tokens) {
		return "", false
	}
	return Join(tokens), true
}

// apply runs the stages until the output stops shrinking. A removal can bring
// two words together into a new filler ("throw the away" -> "throw away").
// Every extra round drops at least one token, so the loop terminates.
func (n *Normalizer) apply(tokens []string) []string {
	for {
		before := len(tokens)
		for _, stage := range n.stages {
			tokens = stage(tokens)
		}
		if len(tokens) == before {
			break
		}
	}
	return tokens
}

// hasWord reports whether tokens holds anything besides separator symbols.
func hasWord(tokens []string) bool {
	for _, t := range tokens {
		if !isSymbol(t) {
			return true
		}
	}
	return false
}

func isSymbol(tok string) bool {
	return tok == "," || tok == "&" || tok == "+"
}
