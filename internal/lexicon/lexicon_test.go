package lexicon

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBase(t *testing.T) {
	tests := map[string]string{
		"en":     "en",
		"en-US":  "en",
		"es_ES":  "es",
		"FR-fr":  "fr",
		"de":     "de",
		" zh-CN": "zh",
		"":       "",
	}
	for in, want := range tests {
		t.Run(in, func(t *testing.T) {
			assert.Equal(t, want, Base(in))
		})
	}
}

func TestDefaultFor(t *testing.T) {
	set := Default()

	assert.Equal(t, []string{"en", "es", "fr", "de"}, set.Codes())
	assert.Equal(t, "en", set.For("en-US").Language)
	assert.Equal(t, "es", set.For("es-MX").Language)
	assert.True(t, set.Has("de-DE"))
	assert.False(t, set.Has("it"))

	fb := set.For("it-IT")
	assert.Empty(t, fb.Fillers)
	assert.Empty(t, fb.StopWords)
	assert.Equal(t, UniversalSeparators, fb.Separators)
}

func TestDefaultCategoryOrder(t *testing.T) {
	cats := Default().Categories()
	require.Len(t, cats, 11)
	assert.Equal(t, "dairy", cats[0].Name)
	assert.Equal(t, "electronics", cats[len(cats)-1].Name)
	for _, c := range cats {
		assert.NotEmpty(t, c.Keywords, c.Name)
	}
}

func TestNewValidation(t *testing.T) {
	tests := map[string]Tables{
		"category without name": {
			Categories: []Category{{Name: " ", Keywords: []string{"milk"}}},
		},
		"category without keywords": {
			Categories: []Category{{Name: "dairy"}},
		},
		"duplicate category": {
			Categories: []Category{
				{Name: "dairy", Keywords: []string{"milk"}},
				{Name: "Dairy", Keywords: []string{"cheese"}},
			},
		},
		"language without code": {
			Languages: []Lexicon{{Fillers: []string{"i need"}}},
		},
		"duplicate language": {
			Languages: []Lexicon{{Language: "en"}, {Language: "en-GB"}},
		},
		"empty entry": {
			Languages: []Lexicon{{Language: "en", StopWords: []string{"the", ""}}},
		},
		"empty brand": {
			Brands: []string{"kraft", "  "},
		},
	}
	for name, tables := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := New(tables)
			assert.ErrorIs(t, err, ErrInvalidTable)
		})
	}
}

func TestNewFoldsEntries(t *testing.T) {
	set, err := New(Tables{
		Languages: []Lexicon{{Language: "EN", Fillers: []string{"  I Need "}}},
		Brands:    []string{"Coca-Cola"},
	})
	require.NoError(t, err)

	lx := set.For("en")
	assert.Equal(t, []string{"i need"}, lx.Fillers)
	assert.Equal(t, UniversalSeparators, lx.Separators)
	assert.Equal(t, []string{"coca-cola"}, set.Brands())
}

func TestNewDoesNotAliasInput(t *testing.T) {
	tables := Builtin()
	set := MustNew(tables)
	tables.Languages[0].Fillers[0] = "changed"
	assert.NotEqual(t, "changed", set.For("en").Fillers[0])
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lexicon.yaml")
	data := []byte(`
languages:
  - language: it
    fillers: [ho bisogno di]
    stop_words: [il, la]
    separators: [",", e]
categories:
  - name: dairy
    keywords: [latte]
brands: [barilla]
units: [bottiglie]
`)
	require.NoError(t, os.WriteFile(path, data, 0o644))

	set, err := Load(path)
	require.NoError(t, err)

	lx := set.For("it-IT")
	assert.Equal(t, "it", lx.Language)
	assert.Equal(t, []string{"ho bisogno di"}, lx.Fillers)
	assert.Equal(t, []string{",", "e"}, lx.Separators)
	assert.Equal(t, []Category{{Name: "dairy", Keywords: []string{"latte"}}}, set.Categories())
	assert.Equal(t, []string{"barilla"}, set.Brands())
	assert.Equal(t, []string{"bottiglie"}, set.Units())
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	_, err = Parse([]byte("languages: {"))
	assert.Error(t, err)

	_, err = Parse([]byte("categories:\n  - name: dairy\n"))
	assert.ErrorIs(t, err, ErrInvalidTable)
}

func TestSupported(t *testing.T) {
	langs := Supported()
	require.Len(t, langs, 9)
	assert.Equal(t, "en-US", langs[0].Code)

	langs[0].Code = "xx"
	assert.Equal(t, "en-US", Supported()[0].Code)

	assert.True(t, IsSupported("es"))
	assert.True(t, IsSupported("ja-JP"))
	assert.False(t, IsSupported("nl"))
}
