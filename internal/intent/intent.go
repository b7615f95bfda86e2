// Package intent maps a classified intent label and the extracted items to
// an action, an item payload and a rendered confirmation.
package intent

import (
	"fmt"
	"strings"
	"text/template"

	"github.com/nadzzz/shopvoice/internal/lexicon"
	"github.com/nadzzz/shopvoice/internal/message"
)

// Intent labels produced by the classifiers.
const (
	AddItem        = "shopping.add_item"
	RemoveItem     = "shopping.remove_item"
	SearchItem     = "shopping.search_item"
	ShowList       = "shopping.show_list"
	ClearList      = "shopping.clear_list"
	NewList        = "shopping.new_list"
	UpdateQuantity = "shopping.update_quantity"
	FilterCategory = "shopping.filter_category"

	// Unknown is the action reported for absent or unrecognized labels.
	Unknown = "unknown"
)

// Template keys that don't belong to a label.
const (
	keyUnknown = "unknown"
	keyError   = "error"
)

type rule struct {
	key       string // template key; key+"_empty" when items are missing
	payload   string // ItemInfo.Action
	needItems bool
	firstOnly bool
	category  bool // the first item must carry a category
}

var rules = map[string]rule{
	AddItem:        {key: "add", payload: "add_multiple", needItems: true},
	RemoveItem:     {key: "remove", payload: "remove_multiple", needItems: true},
	SearchItem:     {key: "search", payload: "search", needItems: true},
	ShowList:       {key: "show_list", payload: "show_list"},
	ClearList:      {key: "clear_list", payload: "clear_list"},
	NewList:        {key: "new_list", payload: "new_list"},
	UpdateQuantity: {key: "update_quantity", payload: "update_quantity", needItems: true, firstOnly: true},
	FilterCategory: {key: "filter_category", payload: "filter_category", needItems: true, firstOnly: true, category: true},
}

// Labels returns every recognized label.
func Labels() []string {
	return []string{AddItem, RemoveItem, SearchItem, ShowList, ClearList, NewList, UpdateQuantity, FilterCategory}
}

// IsKnown reports whether label is one the dispatcher handles.
func IsKnown(label string) bool {
	_, ok := rules[label]
	return ok
}

// Outcome is the result of dispatching one command.
type Outcome struct {
	Action   string
	Info     message.ItemInfo
	Response string
}

// Recognized reports whether the label mapped to a known intent.
func (o Outcome) Recognized() bool { return o.Action != Unknown }

// view is the data handed to response templates.
type view struct {
	Items    string // comma-joined names
	Name     string // first item
	Quantity int
	Unit     string
	Category string
}

// Dispatcher renders responses from parsed templates. It is immutable and
// safe for concurrent use.
type Dispatcher struct {
	templates map[string]map[string]*template.Template
}

// New parses the built-in response sets.
func New() (*Dispatcher, error) {
	return NewWithTemplates(builtinTemplates)
}

// NewWithTemplates parses sets keyed by language then template key. The
// "en" set must be complete; other languages fall back to it key by key.
func NewWithTemplates(sets map[string]map[string]string) (*Dispatcher, error) {
	en, ok := sets["en"]
	if !ok {
		return nil, fmt.Errorf("response templates: missing en set")
	}
	for _, k := range requiredKeys() {
		if _, ok := en[k]; !ok {
			return nil, fmt.Errorf("response templates: en set missing %q", k)
		}
	}

	d := &Dispatcher{templates: make(map[string]map[string]*template.Template, len(sets))}
	for lang, set := range sets {
		code := lexicon.Base(lang)
		parsed := make(map[string]*template.Template, len(set))
		for key, src := range set {
			tmpl, err := template.New(code + "." + key).Option("missingkey=error").Parse(src)
			if err != nil {
				return nil, fmt.Errorf("response template %s.%s: %w", code, key, err)
			}
			parsed[key] = tmpl
		}
		d.templates[code] = parsed
	}
	return d, nil
}

func requiredKeys() []string {
	keys := []string{keyUnknown, keyError}
	for _, r := range rules {
		keys = append(keys, r.key)
		if r.needItems {
			keys = append(keys, r.key+"_empty")
		}
	}
	return keys
}

// Dispatch builds the outcome for label. Absent or unrecognized labels give
// the Unknown action. An intent that needs items but got none keeps its
// action, carries an empty payload and uses its "couldn't identify" response.
func (d *Dispatcher) Dispatch(label string, items []message.ExtractedItem, lang string) (Outcome, error) {
	r, ok := rules[label]
	if !ok {
		resp, err := d.render(lang, keyUnknown, view{})
		return Outcome{Action: Unknown, Response: resp}, err
	}

	out := Outcome{Action: label}
	if r.needItems && (len(items) == 0 || (r.category && items[0].Category == "")) {
		var err error
		out.Response, err = d.render(lang, r.key+"_empty", view{})
		return out, err
	}

	out.Info.Action = r.payload
	v := view{}
	if r.needItems {
		payload := items
		if r.firstOnly {
			payload = items[:1]
		}
		out.Info.Items = payload
		v = newView(items)
	}

	var err error
	out.Response, err = d.render(lang, r.key, v)
	return out, err
}

// Apology is the response for a failed pipeline.
func (d *Dispatcher) Apology(lang string) string {
	resp, err := d.render(lang, keyError, view{})
	if err != nil {
		return "Sorry, I encountered an error processing your command."
	}
	return resp
}

func (d *Dispatcher) render(lang, key string, v view) (string, error) {
	tmpl := d.lookup(lang, key)
	var sb strings.Builder
	if err := tmpl.Execute(&sb, v); err != nil {
		return "", fmt.Errorf("rendering %s: %w", tmpl.Name(), err)
	}
	return sb.String(), nil
}

func (d *Dispatcher) lookup(lang, key string) *template.Template {
	if set, ok := d.templates[lexicon.Base(lang)]; ok {
		if tmpl, ok := set[key]; ok {
			return tmpl
		}
	}
	return d.templates["en"][key]
}

func newView(items []message.ExtractedItem) view {
	names := make([]string, len(items))
	for i, it := range items {
		names[i] = it.Name
	}
	first := items[0]
	return view{
		Items:    strings.Join(names, ", "),
		Name:     first.Name,
		Quantity: first.Quantity,
		Unit:     first.Unit,
		Category: first.Category,
	}
}
