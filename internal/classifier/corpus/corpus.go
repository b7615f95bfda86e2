// Package corpus implements a built-in intent classifier trained at startup
// on a fixed set of example utterances.
//
// Each language gets its own multinomial naive Bayes model over stemmed word
// features, with Laplace smoothing. The score is the posterior probability of
// the winning label.
package corpus

import (
	"context"
	_ "embed"
	"fmt"
	"log/slog"
	"math"
	"os"
	"sort"
	"strings"
	"unicode"

	"github.com/kljensen/snowball"
	"gopkg.in/yaml.v3"

	"github.com/nadzzz/shopvoice/internal/classifier"
	"github.com/nadzzz/shopvoice/internal/extract"
	"github.com/nadzzz/shopvoice/internal/intent"
	"github.com/nadzzz/shopvoice/internal/lexicon"
	"github.com/nadzzz/shopvoice/internal/message"
)

//go:embed training.yaml
var builtin []byte

// numberFeature replaces every numeric token.
const numberFeature = "<num>"

// snowball stemmer names by base language.
var stemmers = map[string]string{
	"en": "english",
	"es": "spanish",
	"fr": "french",
}

// Corpus maps language -> intent label -> example utterances.
type Corpus map[string]map[string][]string

// Builtin returns the embedded training corpus.
func Builtin() (Corpus, error) {
	return Parse(builtin)
}

// Parse decodes a YAML corpus.
func Parse(data []byte) (Corpus, error) {
	var c Corpus
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("decoding corpus: %w", err)
	}
	return c, nil
}

// Load reads a YAML corpus file.
func Load(path string) (Corpus, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading corpus: %w", err)
	}
	return Parse(data)
}

type model struct {
	labels []string // sorted; first wins ties
	prior  map[string]float64
	counts map[string]map[string]int
	totals map[string]int
	vocab  map[string]struct{}
}

var _ classifier.Classifier = (*Classifier)(nil)

// Classifier is immutable after New.
type Classifier struct {
	models   map[string]*model
	stops    map[string]map[string]bool
	minScore float64
}

// New trains one model per language of c. Stop words of lex are dropped from
// the features. Labels the dispatcher doesn't know are rejected.
func New(c Corpus, lex *lexicon.Set, minScore float64) (*Classifier, error) {
	if len(c) == 0 {
		return nil, fmt.Errorf("corpus is empty")
	}
	cl := &Classifier{
		models:   make(map[string]*model, len(c)),
		stops:    make(map[string]map[string]bool, len(c)),
		minScore: minScore,
	}
	for lang, labels := range c {
		code := lexicon.Base(lang)
		if !lex.Has(code) {
			slog.Warn("corpus language has no lexicon, stop words are kept", "lang", code)
		}
		stops := make(map[string]bool)
		for _, w := range lex.For(code).StopWords {
			for _, tok := range extract.Tokenize(w) {
				stops[tok] = true
			}
		}
		cl.stops[code] = stops

		m := &model{
			prior:  make(map[string]float64, len(labels)),
			counts: make(map[string]map[string]int, len(labels)),
			totals: make(map[string]int, len(labels)),
			vocab:  make(map[string]struct{}),
		}
		docs := 0
		for label, utterances := range labels {
			if !intent.IsKnown(label) {
				return nil, fmt.Errorf("corpus %s: unknown label %q", code, label)
			}
			if len(utterances) == 0 {
				return nil, fmt.Errorf("corpus %s: label %q has no utterances", code, label)
			}
			m.labels = append(m.labels, label)
			m.counts[label] = make(map[string]int)
			for _, u := range utterances {
				for _, f := range cl.features(code, u) {
					m.counts[label][f]++
					m.totals[label]++
					m.vocab[f] = struct{}{}
				}
			}
			m.prior[label] = float64(len(utterances))
			docs += len(utterances)
		}
		sort.Strings(m.labels)
		for label, n := range m.prior {
			m.prior[label] = math.Log(n / float64(docs))
		}
		cl.models[code] = m
	}
	return cl, nil
}

// NewDefault trains on the embedded corpus.
func NewDefault(lex *lexicon.Set, minScore float64) (*Classifier, error) {
	c, err := Builtin()
	if err != nil {
		return nil, err
	}
	return New(c, lex, minScore)
}

// Name returns the backend identifier.
func (c *Classifier) Name() string { return "corpus" }

// Classify scores text against the model of lang. Languages without a model,
// text without a single known feature and posteriors below the minimum score
// all give an absent label.
func (c *Classifier) Classify(_ context.Context, lang, text string) (message.Classification, error) {
	code := lexicon.Base(lang)
	m, ok := c.models[code]
	if !ok {
		return message.Classification{}, nil
	}

	var known []string
	for _, f := range c.features(code, text) {
		if _, ok := m.vocab[f]; ok {
			known = append(known, f)
		}
	}
	if len(known) == 0 {
		return message.Classification{}, nil
	}

	v := float64(len(m.vocab))
	logp := make([]float64, len(m.labels))
	best := 0
	for i, label := range m.labels {
		p := m.prior[label]
		denom := float64(m.totals[label]) + v
		for _, f := range known {
			p += math.Log(float64(m.counts[label][f]+1) / denom)
		}
		logp[i] = p
		if p > logp[best] {
			best = i
		}
	}

	// softmax, shifted by the max for stability
	var sum float64
	for _, p := range logp {
		sum += math.Exp(p - logp[best])
	}
	score := 1 / sum
	if score < c.minScore {
		return message.Classification{Score: score}, nil
	}
	return message.Classification{Label: m.labels[best], Score: score}, nil
}

// Close is a no-op for the corpus classifier.
func (c *Classifier) Close() error { return nil }

func (c *Classifier) features(code, text string) []string {
	stops := c.stops[code]
	stemmer := stemmers[code]
	var out []string
	for _, tok := range extract.Tokenize(text) {
		switch {
		case tok == "," || tok == "&" || tok == "+" || stops[tok]:
			continue
		case isNumber(tok):
			out = append(out, numberFeature)
			continue
		}
		if stemmer != "" {
			if s, err := snowball.Stem(tok, stemmer, false); err == nil && s != "" {
				tok = s
			}
		}
		out = append(out, tok)
	}
	return out
}

func isNumber(tok string) bool {
	return strings.IndexFunc(tok, func(r rune) bool {
		return !unicode.IsDigit(r) && r != '.' && r != ','
	}) < 0
}
