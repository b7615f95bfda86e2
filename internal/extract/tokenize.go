package extract

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// Tokenize splits text into lower-case word tokens and separator symbols.
//
// Letters, digits and combining marks form words. The separator runes ',',
// '&' and '+' become tokens of their own, except a ',' or '.' between two
// digits, which stays inside the number ("4.99", "1,5"). All other
// punctuation and whitespace only breaks words.
func Tokenize(text string) []string {
	runes := []rune(norm.NFC.String(strings.ToLower(text)))
	var tokens []string
	var current strings.Builder

	flush := func() {
		if current.Len() > 0 {
			tokens = append(tokens, current.String())
			current.Reset()
		}
	}

	for i, r := range runes {
		switch {
		case unicode.IsLetter(r) || unicode.IsNumber(r) || unicode.IsMark(r):
			current.WriteRune(r)
		case (r == '.' || r == ',') && inNumber(runes, i):
			current.WriteRune(r)
		case r == ',' || r == '&' || r == '+':
			flush()
			tokens = append(tokens, string(r))
		default:
			flush()
		}
	}
	flush()
	return tokens
}

// inNumber reports whether runes[i] sits between two digits.
func inNumber(runes []rune, i int) bool {
	return i > 0 && i+1 < len(runes) && unicode.IsDigit(runes[i-1]) && unicode.IsDigit(runes[i+1])
}

// Join renders tokens back to text. Commas attach to the preceding word so
// that Tokenize(Join(t)) == t.
func Join(tokens []string) string {
	var sb strings.Builder
	for i, tok := range tokens {
		if i > 0 && tok != "," {
			sb.WriteByte(' ')
		}
		sb.WriteString(tok)
	}
	return sb.String()
}

// phraseSet matches token sequences, longest first.
type phraseSet struct {
	set    map[string]struct{}
	maxLen int
}

func newPhraseSet(phrases []string) phraseSet {
	p := phraseSet{set: make(map[string]struct{}, len(phrases))}
	for _, ph := range phrases {
		toks := Tokenize(ph)
		if len(toks) == 0 {
			continue
		}
		p.set[strings.Join(toks, " ")] = struct{}{}
		if len(toks) > p.maxLen {
			p.maxLen = len(toks)
		}
	}
	return p
}

func (p phraseSet) empty() bool { return len(p.set) == 0 }

// match returns the length of the longest phrase starting at tokens[i], or 0.
func (p phraseSet) match(tokens []string, i int) int {
	n := p.maxLen
	if rem := len(tokens) - i; n > rem {
		n = rem
	}
	for ; n >= 1; n-- {
		if _, ok := p.set[strings.Join(tokens[i:i+n], " ")]; ok {
			return n
		}
	}
	return 0
}

// remove drops every whole-token occurrence of any phrase.
func (p phraseSet) remove(tokens []string) []string {
	if p.empty() {
		return tokens
	}
	out := make([]string, 0, len(tokens))
	for i := 0; i < len(tokens); {
		if n := p.match(tokens, i); n > 0 {
			i += n
			continue
		}
		out = append(out, tokens[i])
		i++
	}
	return out
}
