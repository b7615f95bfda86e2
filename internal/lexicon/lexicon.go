// Package lexicon holds the keyword tables the extraction stages read.
//
// Tables are split in two. Per-language tables (filler phrases, action words,
// stop words, separators, organic words, price prefixes, articles) drive the
// normalizer and the name cleanup. Shared tables (categories, brands, units)
// are matched regardless of the request language.
//
// A Set is built once at startup and never modified afterwards, so it can be
// read from any number of goroutines without locking.
package lexicon

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
	"gopkg.in/yaml.v3"
)

// ErrInvalidTable is returned when a table fails validation.
var ErrInvalidTable = errors.New("invalid lexicon table")

// UniversalSeparators split items in every language, including the ones
// without a lexicon.
var UniversalSeparators = []string{",", "&", "+"}

// Lexicon is the per-language keyword table.
type Lexicon struct {
	Language      string   `yaml:"language"`
	Fillers       []string `yaml:"fillers"`
	Actions       []string `yaml:"actions"`
	StopWords     []string `yaml:"stop_words"`
	Separators    []string `yaml:"separators"` // applied in order
	Organic       []string `yaml:"organic"`
	PricePrefixes []string `yaml:"price_prefixes"`
	Articles      []string `yaml:"articles"`
}

// Category is one row of the ordered category table.
type Category struct {
	Name     string   `yaml:"name"`
	Keywords []string `yaml:"keywords"`
}

// Tables is the serializable form of a Set.
type Tables struct {
	Languages  []Lexicon  `yaml:"languages"`
	Categories []Category `yaml:"categories"`
	Brands     []string   `yaml:"brands"`
	Units      []string   `yaml:"units"`
}

// Set is the validated, immutable collection of tables.
type Set struct {
	byLang     map[string]*Lexicon
	codes      []string
	fallback   *Lexicon
	categories []Category
	brands     []string
	units      []string
}

// New validates t and returns an immutable Set. Every entry is lower-cased
// and NFC-normalized; t itself is not retained.
func New(t Tables) (*Set, error) {
	s := &Set{
		byLang: make(map[string]*Lexicon, len(t.Languages)),
		fallback: &Lexicon{
			Separators: append([]string(nil), UniversalSeparators...),
		},
	}

	for i, lx := range t.Languages {
		code := Base(lx.Language)
		if code == "" {
			return nil, fmt.Errorf("%w: language #%d has no code", ErrInvalidTable, i)
		}
		if _, dup := s.byLang[code]; dup {
			return nil, fmt.Errorf("%w: duplicate language %q", ErrInvalidTable, code)
		}
		c := Lexicon{Language: code}
		var err error
		fields := []struct {
			name string
			src  []string
			dst  *[]string
		}{
			{"fillers", lx.Fillers, &c.Fillers},
			{"actions", lx.Actions, &c.Actions},
			{"stop_words", lx.StopWords, &c.StopWords},
			{"separators", lx.Separators, &c.Separators},
			{"organic", lx.Organic, &c.Organic},
			{"price_prefixes", lx.PricePrefixes, &c.PricePrefixes},
			{"articles", lx.Articles, &c.Articles},
		}
		for _, f := range fields {
			if *f.dst, err = clean(f.src); err != nil {
				return nil, fmt.Errorf("%w: %s.%s: %v", ErrInvalidTable, code, f.name, err)
			}
		}
		if len(c.Separators) == 0 {
			c.Separators = append([]string(nil), UniversalSeparators...)
		}
		s.byLang[code] = &c
		s.codes = append(s.codes, code)
	}

	seen := make(map[string]bool, len(t.Categories))
	for i, cat := range t.Categories {
		name := fold(cat.Name)
		if name == "" {
			return nil, fmt.Errorf("%w: category #%d has no name", ErrInvalidTable, i)
		}
		if seen[name] {
			return nil, fmt.Errorf("%w: duplicate category %q", ErrInvalidTable, name)
		}
		seen[name] = true
		kws, err := clean(cat.Keywords)
		if err != nil {
			return nil, fmt.Errorf("%w: category %s: %v", ErrInvalidTable, name, err)
		}
		if len(kws) == 0 {
			return nil, fmt.Errorf("%w: category %s has no keywords", ErrInvalidTable, name)
		}
		s.categories = append(s.categories, Category{Name: name, Keywords: kws})
	}

	var err error
	if s.brands, err = clean(t.Brands); err != nil {
		return nil, fmt.Errorf("%w: brands: %v", ErrInvalidTable, err)
	}
	if s.units, err = clean(t.Units); err != nil {
		return nil, fmt.Errorf("%w: units: %v", ErrInvalidTable, err)
	}
	return s, nil
}

// MustNew is like New but panics on an invalid table.
func MustNew(t Tables) *Set {
	s, err := New(t)
	if err != nil {
		panic(err)
	}
	return s
}

// Parse decodes YAML tables and validates them.
func Parse(data []byte) (*Set, error) {
	var t Tables
	if err := yaml.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("decoding lexicon: %w", err)
	}
	return New(t)
}

// Load reads a YAML lexicon file.
//
// Expected format:
//
//	languages:
//	  - language: en
//	    fillers: [can you add, i need]
//	    separators: [",", and, "&", plus, "+"]
//	categories:
//	  - name: dairy
//	    keywords: [milk, cheese]
//	brands: [kraft]
//	units: [bottle, bottles]
func Load(path string) (*Set, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading lexicon: %w", err)
	}
	return Parse(data)
}

// For returns the lexicon for a language tag ("es", "es-MX", "fr_FR").
// Languages without a table get an empty lexicon that only splits on the
// universal separators.
func (s *Set) For(tag string) *Lexicon {
	if lx, ok := s.byLang[Base(tag)]; ok {
		return lx
	}
	return s.fallback
}

// Has reports whether the language has its own table.
func (s *Set) Has(tag string) bool {
	_, ok := s.byLang[Base(tag)]
	return ok
}

// Codes lists the languages with a table, in declaration order.
func (s *Set) Codes() []string { return s.codes }

// Categories returns the ordered category table. Callers must not modify it.
func (s *Set) Categories() []Category { return s.categories }

// Brands returns the ordered brand list. Callers must not modify it.
func (s *Set) Brands() []string { return s.brands }

// Units returns the known unit word forms. Callers must not modify it.
func (s *Set) Units() []string { return s.units }

// Base reduces a language tag to its lower-case base language.
func Base(tag string) string {
	tag = strings.TrimSpace(tag)
	if tag == "" {
		return ""
	}
	if t, err := language.Parse(tag); err == nil {
		if b, conf := t.Base(); conf != language.No {
			return b.String()
		}
	}
	tag = strings.ToLower(tag)
	if i := strings.IndexAny(tag, "-_"); i >= 0 {
		tag = tag[:i]
	}
	return tag
}

func fold(s string) string {
	return strings.ToLower(strings.TrimSpace(norm.NFC.String(s)))
}

func clean(in []string) ([]string, error) {
	if len(in) == 0 {
		return nil, nil
	}
	out := make([]string, 0, len(in))
	for i, v := range in {
		v = fold(v)
		if v == "" {
			return nil, fmt.Errorf("entry #%d is empty", i)
		}
		out = append(out, v)
	}
	return out, nil
}
