package extract

// Segmenter splits a normalized utterance into one phrase per item.
type Segmenter struct {
	separators [][]string
}

// NewSegmenter tokenizes the separators once. They are applied in the given
// order and compose: every fragment produced by one separator is split again
// by the next.
func NewSegmenter(separators []string) *Segmenter {
	s := &Segmenter{}
	for _, sep := range separators {
		if toks := Tokenize(sep); len(toks) > 0 {
			s.separators = append(s.separators, toks)
		}
	}
	return s
}

// Segment returns the non-empty item phrases of text, in order.
func (s *Segmenter) Segment(text string) []string {
	frags := [][]string{Tokenize(text)}
	for _, sep := range s.separators {
		var next [][]string
		for _, f := range frags {
			next = append(next, splitOn(f, sep)...)
		}
		frags = next
	}

	phrases := make([]string, 0, len(frags))
	for _, f := range frags {
		if hasWord(f) {
			phrases = append(phrases, Join(f))
		}
	}
	return phrases
}

func splitOn(tokens, sep []string) [][]string {
	var out [][]string
	start := 0
	for i := 0; i+len(sep) <= len(tokens); {
		if hasPrefix(tokens[i:], sep) {
			out = append(out, tokens[start:i])
			i += len(sep)
			start = i
			continue
		}
		i++
	}
	return append(out, tokens[start:])
}

func hasPrefix(tokens, prefix []string) bool {
	if len(tokens) < len(prefix) {
		return false
	}
	for i, p := range prefix {
		if tokens[i] != p {
			return false
		}
	}
	return true
}
