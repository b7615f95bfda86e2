// Package extract turns a transcribed utterance into structured shopping items.
//
// The work happens in three stages: the Normalizer strips conversational
// filler, the Segmenter splits what is left into one phrase per item, and the
// Extractor pulls quantity, unit, organic flag, price ceiling, brand and
// category out of each phrase. The residue becomes the item name.
package extract

import (
	"math"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/nadzzz/shopvoice/internal/lexicon"
	"github.com/nadzzz/shopvoice/internal/message"
)

var leadingNumber = regexp.MustCompile(`^\s*(\d+(?:[.,]\d+)?)(?:\s|$)`)

// Extractor is immutable after New and safe for concurrent use.
type Extractor struct {
	quantity   *regexp.Regexp // nil when the set has no units
	brands     []brand
	categories []lexicon.Category
	rules      map[string]*rules
	fallback   *rules
}

type brand struct {
	name   string
	tokens []string
}

// rules is the compiled per-language part of an Extractor.
type rules struct {
	normalizer *Normalizer
	segmenter  *Segmenter
	organic    phraseSet
	price      *regexp.Regexp // nil when the language has no price prefixes
	articles   map[string]bool
}

// New compiles every table of set.
func New(set *lexicon.Set) *Extractor {
	e := &Extractor{
		quantity:   quantityPattern(set.Units()),
		categories: set.Categories(),
		rules:      make(map[string]*rules, len(set.Codes())),
		fallback:   compile(set.For("")),
	}
	for _, b := range set.Brands() {
		if toks := Tokenize(b); len(toks) > 0 {
			e.brands = append(e.brands, brand{name: b, tokens: toks})
		}
	}
	for _, code := range set.Codes() {
		e.rules[code] = compile(set.For(code))
	}
	return e
}

func compile(lx *lexicon.Lexicon) *rules {
	r := &rules{
		normalizer: NewNormalizer(lx),
		segmenter:  NewSegmenter(lx.Separators),
		organic:    newPhraseSet(lx.Organic),
		price:      pricePattern(lx.PricePrefixes),
		articles:   make(map[string]bool, len(lx.Articles)),
	}
	for _, a := range lx.Articles {
		for _, tok := range Tokenize(a) {
			r.articles[tok] = true
		}
	}
	return r
}

func (e *Extractor) rulesFor(lang string) *rules {
	if r, ok := e.rules[lexicon.Base(lang)]; ok {
		return r
	}
	return e.fallback
}

// Normalize strips filler, action and stop words for lang. ok is false when
// the utterance carries no item content.
func (e *Extractor) Normalize(text, lang string) (string, bool) {
	return e.rulesFor(lang).normalizer.Normalize(text)
}

// Segment splits a normalized utterance into item phrases.
func (e *Extractor) Segment(text, lang string) []string {
	return e.rulesFor(lang).segmenter.Segment(text)
}

// ExtractItems runs the full chain. The result is never nil; phrases that
// leave an empty name are dropped.
func (e *Extractor) ExtractItems(text, lang string) []message.ExtractedItem {
	r := e.rulesFor(lang)
	items := []message.ExtractedItem{}
	normalized, ok := r.normalizer.Normalize(text)
	if !ok {
		return items
	}
	for _, phrase := range r.segmenter.Segment(normalized) {
		if item := e.details(phrase, r); item.Name != "" {
			items = append(items, item)
		}
	}
	return items
}

// ExtractDetails extracts one item from a single phrase. Name is empty when
// nothing but attributes was found.
func (e *Extractor) ExtractDetails(phrase, lang string) message.ExtractedItem {
	return e.details(phrase, e.rulesFor(lang))
}

func (e *Extractor) details(phrase string, r *rules) message.ExtractedItem {
	item := message.ExtractedItem{Quantity: 1}
	work := norm.NFC.String(strings.ToLower(phrase))

	// Quantity with unit first, then a bare leading count.
	if m := e.matchQuantity(work); m != nil {
		item.Quantity = parseQuantity(work[m[2]:m[3]])
		item.Unit = work[m[4]:m[5]]
		work = work[:m[2]] + " " + work[m[5]:]
	} else if m := leadingNumber.FindStringSubmatchIndex(work); m != nil {
		item.Quantity = parseQuantity(work[m[2]:m[3]])
		work = work[:m[2]] + " " + work[m[3]:]
	}

	tokens := Tokenize(work)
	if !r.organic.empty() {
		before := len(tokens)
		tokens = r.organic.remove(tokens)
		item.Organic = len(tokens) < before
	}

	if r.price != nil {
		work = Join(tokens)
		if m := r.price.FindStringSubmatchIndex(work); m != nil {
			if p, ok := parsePrice(work[m[2]:m[3]]); ok {
				item.PriceCeiling = &p
			}
			work = work[:m[0]] + " " + work[m[1]:]
			tokens = Tokenize(work)
		}
	}

	// The brand never stays in the name, even when nothing else is left.
	for _, b := range e.brands {
		if rest, found := removeSequence(tokens, b.tokens); found {
			item.Brand = b.name
			tokens = rest
			break
		}
	}

	residual := Join(tokens)
	item.Category = e.category(residual)

	if len(tokens) > 0 && r.articles[tokens[0]] {
		tokens = tokens[1:]
	}
	item.Name = Join(tokens)
	return item
}

func (e *Extractor) matchQuantity(s string) []int {
	if e.quantity == nil {
		return nil
	}
	return e.quantity.FindStringSubmatchIndex(s)
}

// category returns the first category in table order with a keyword
// contained in s.
func (e *Extractor) category(s string) string {
	if s == "" {
		return ""
	}
	for _, c := range e.categories {
		for _, kw := range c.Keywords {
			if strings.Contains(s, kw) {
				return c.Name
			}
		}
	}
	return ""
}

// removeSequence drops every whole-token occurrence of seq.
func removeSequence(tokens, seq []string) ([]string, bool) {
	var out []string
	found := false
	for i := 0; i < len(tokens); {
		if hasPrefix(tokens[i:], seq) {
			found = true
			i += len(seq)
			continue
		}
		out = append(out, tokens[i])
		i++
	}
	return out, found
}

// parseQuantity rounds decimal counts ("1.5", "2,5") to the nearest whole
// number and clamps anything unparseable or below one to 1.
func parseQuantity(s string) int {
	f, err := strconv.ParseFloat(strings.ReplaceAll(s, ",", "."), 64)
	if err != nil || f < 1 || f > math.MaxInt32 {
		return 1
	}
	return int(math.Round(f))
}

func parsePrice(s string) (float64, bool) {
	p, err := strconv.ParseFloat(strings.ReplaceAll(s, ",", "."), 64)
	if err != nil || p <= 0 {
		return 0, false
	}
	return p, true
}

// quantityPattern matches "<number> <unit>" with word boundaries on both
// sides. Units are tried longest first.
func quantityPattern(units []string) *regexp.Regexp {
	if len(units) == 0 {
		return nil
	}
	return regexp.MustCompile(`(?:^|[^\p{L}\p{N}.,])(\d+(?:[.,]\d+)?)\s*(` + alternation(units) + `)(?:[^\p{L}\p{N}]|$)`)
}

// pricePattern matches "<prefix> [currency] <amount>".
func pricePattern(prefixes []string) *regexp.Regexp {
	if len(prefixes) == 0 {
		return nil
	}
	return regexp.MustCompile(`(?:^|\s)(?:` + alternation(prefixes) + `)\s*[$€£]?\s*(\d+(?:[.,]\d+)?)(?:\s*(?:dollars?|euros?|[$€£]))?`)
}

// alternation quotes words longest first, allowing any run of whitespace
// where a phrase has a space.
func alternation(words []string) string {
	sorted := append([]string(nil), words...)
	sort.SliceStable(sorted, func(i, j int) bool { return len(sorted[i]) > len(sorted[j]) })
	parts := make([]string, 0, len(sorted))
	for _, w := range sorted {
		fields := strings.Fields(w)
		for i, f := range fields {
			fields[i] = regexp.QuoteMeta(f)
		}
		parts = append(parts, strings.Join(fields, `\s+`))
	}
	return strings.Join(parts, "|")
}
