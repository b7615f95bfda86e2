package corpus

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nadzzz/shopvoice/internal/intent"
	"github.com/nadzzz/shopvoice/internal/lexicon"
)

func newClassifier(t *testing.T, minScore float64) *Classifier {
	t.Helper()
	c, err := NewDefault(lexicon.Default(), minScore)
	require.NoError(t, err)
	return c
}

func TestBuiltinCorpus(t *testing.T) {
	c, err := Builtin()
	require.NoError(t, err)
	for _, lang := range []string{"en", "es", "fr", "de"} {
		require.Contains(t, c, lang)
		assert.NotEmpty(t, c[lang][intent.AddItem], lang)
	}
	for _, l := range intent.Labels() {
		assert.NotEmpty(t, c["en"][l], l)
	}
}

func TestClassify(t *testing.T) {
	c := newClassifier(t, 0.3)
	tests := map[string]struct {
		lang, text string
		want       string
	}{
		"add list":       {lang: "en", text: "add milk, bread, eggs", want: intent.AddItem},
		"add quantity":   {lang: "en-US", text: "add 2 bottles of water", want: intent.AddItem},
		"search":         {lang: "en", text: "find organic apples under $5", want: intent.SearchItem},
		"remove":         {lang: "en", text: "remove that item", want: intent.RemoveItem},
		"update":         {lang: "en", text: "change quantity to 3", want: intent.UpdateQuantity},
		"update make it": {lang: "en", text: "make it 2 bottles", want: intent.UpdateQuantity},
		"filter":         {lang: "en", text: "filter by produce", want: intent.FilterCategory},
		"spanish add":    {lang: "es", text: "agregar leche y pan", want: intent.AddItem},
		"spanish remove": {lang: "es", text: "quitar la leche", want: intent.RemoveItem},
		"french add":     {lang: "fr", text: "ajouter du lait et du pain", want: intent.AddItem},
		"german add":     {lang: "de", text: "milch und brot hinzufügen", want: intent.AddItem},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got, err := c.Classify(context.Background(), tt.lang, tt.text)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.Label)
			assert.Greater(t, got.Score, 0.3)
			assert.LessOrEqual(t, got.Score, 1.0)
		})
	}
}

func TestClassifyAbsent(t *testing.T) {
	c := newClassifier(t, 0.3)
	tests := map[string]struct{ lang, text string }{
		"unknown words":   {lang: "en", text: "xyzzy plugh"},
		"only stop words": {lang: "en", text: "the"},
		"empty":           {lang: "en", text: ""},
		"no model":        {lang: "ja", text: "add milk"},
		"symbols":         {lang: "en", text: ", & +"},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got, err := c.Classify(context.Background(), tt.lang, tt.text)
			require.NoError(t, err)
			assert.False(t, got.HasLabel())
			assert.Zero(t, got.Score)
		})
	}
}

func TestClassifyBelowMinScore(t *testing.T) {
	c := newClassifier(t, 1.1)
	got, err := c.Classify(context.Background(), "en", "add milk")
	require.NoError(t, err)
	assert.Empty(t, got.Label)
	assert.Greater(t, got.Score, 0.0)
}

func TestNewErrors(t *testing.T) {
	lex := lexicon.Default()

	_, err := New(Corpus{}, lex, 0.5)
	assert.Error(t, err)

	_, err = New(Corpus{"en": {"shopping.checkout": {"check out"}}}, lex, 0.5)
	assert.Error(t, err)

	_, err = New(Corpus{"en": {intent.AddItem: nil}}, lex, 0.5)
	assert.Error(t, err)
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "corpus.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
it:
  shopping.add_item: [aggiungi latte, compra pane]
  shopping.clear_list: [svuota la lista]
`), 0o644))

	corp, err := Load(path)
	require.NoError(t, err)
	c, err := New(corp, lexicon.Default(), 0.5)
	require.NoError(t, err)

	got, err := c.Classify(context.Background(), "it-IT", "aggiungi pane")
	require.NoError(t, err)
	assert.Equal(t, intent.AddItem, got.Label)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
