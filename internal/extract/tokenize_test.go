package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTokenize(t *testing.T) {
	tests := map[string]struct {
		in   string
		want []string
	}{
		"symbols and prices": {
			in:   "Add 2 bottles, $4.99 & Coca-Cola!",
			want: []string{"add", "2", "bottles", ",", "4.99", "&", "coca", "cola"},
		},
		"decimal comma": {
			in:   "moins de 3,50 €",
			want: []string{"moins", "de", "3,50"},
		},
		"comma after number": {
			in:   "2, 3 apples",
			want: []string{"2", ",", "3", "apples"},
		},
		"apostrophe": {
			in:   "I don't want milk",
			want: []string{"i", "don", "t", "want", "milk"},
		},
		"accents": {
			in:   "Crème Glacée + Käse",
			want: []string{"crème", "glacée", "+", "käse"},
		},
		"empty": {
			in:   "  ?! ",
			want: nil,
		},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tt.want, Tokenize(tt.in))
		})
	}
}

func TestJoinRoundTrip(t *testing.T) {
	for _, in := range []string{
		"milk, bread, and eggs",
		"2 kg apples under 4.99",
		"leche y pan, + queso & 3,50",
		", , milk",
	} {
		toks := Tokenize(in)
		assert.Equal(t, toks, Tokenize(Join(toks)), in)
	}
	assert.Equal(t, "milk, bread & eggs", Join([]string{"milk", ",", "bread", "&", "eggs"}))
}

func TestPhraseSetLongestFirst(t *testing.T) {
	set := newPhraseSet([]string{"add", "can you add", "to my list"})
	got := set.remove(Tokenize("can you add milk to my list add"))
	assert.Equal(t, []string{"milk"}, got)
}
