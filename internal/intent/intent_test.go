package intent

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nadzzz/shopvoice/internal/message"
)

func item(name string) message.ExtractedItem {
	return message.ExtractedItem{Name: name, Quantity: 1}
}

func newDispatcher(t *testing.T) *Dispatcher {
	t.Helper()
	d, err := New()
	require.NoError(t, err)
	return d
}

func TestBuiltinSetsComplete(t *testing.T) {
	for lang, set := range builtinTemplates {
		for _, k := range requiredKeys() {
			assert.Contains(t, set, k, "%s missing %s", lang, k)
		}
	}
}

func TestDispatch(t *testing.T) {
	d := newDispatcher(t)
	milkBread := []message.ExtractedItem{item("milk"), item("bread")}

	tests := map[string]struct {
		label    string
		items    []message.ExtractedItem
		lang     string
		action   string
		info     message.ItemInfo
		response string
	}{
		"add": {
			label: AddItem, items: milkBread, lang: "en", action: AddItem,
			info:     message.ItemInfo{Items: milkBread, Action: "add_multiple"},
			response: "I've added milk, bread to your shopping list.",
		},
		"add empty": {
			label: AddItem, lang: "en", action: AddItem,
			response: "I couldn't identify any items to add. Please try again.",
		},
		"remove empty": {
			label: RemoveItem, items: []message.ExtractedItem{}, lang: "en", action: RemoveItem,
			response: "I couldn't identify any items to remove. Please try again.",
		},
		"search": {
			label: SearchItem, items: []message.ExtractedItem{item("apples")}, lang: "en", action: SearchItem,
			info:     message.ItemInfo{Items: []message.ExtractedItem{item("apples")}, Action: "search"},
			response: "Here are the results for apples.",
		},
		"search empty": {
			label: SearchItem, lang: "en", action: SearchItem,
			response: "I couldn't identify what to search for. Please try again.",
		},
		"show list ignores items": {
			label: ShowList, items: milkBread, lang: "en", action: ShowList,
			info:     message.ItemInfo{Action: "show_list"},
			response: "Here's your current shopping list.",
		},
		"clear list": {
			label: ClearList, lang: "en", action: ClearList,
			info:     message.ItemInfo{Action: "clear_list"},
			response: "I've cleared your shopping list.",
		},
		"new list": {
			label: NewList, lang: "en", action: NewList,
			info:     message.ItemInfo{Action: "new_list"},
			response: "I've created a new shopping list for you.",
		},
		"update quantity": {
			label: UpdateQuantity, items: []message.ExtractedItem{{Name: "water", Quantity: 3}, item("bread")}, lang: "en", action: UpdateQuantity,
			info:     message.ItemInfo{Items: []message.ExtractedItem{{Name: "water", Quantity: 3}}, Action: "update_quantity"},
			response: "I've updated the quantity to 3.",
		},
		"update quantity with unit": {
			label: UpdateQuantity, items: []message.ExtractedItem{{Name: "water", Quantity: 2, Unit: "bottles"}}, lang: "en", action: UpdateQuantity,
			info:     message.ItemInfo{Items: []message.ExtractedItem{{Name: "water", Quantity: 2, Unit: "bottles"}}, Action: "update_quantity"},
			response: "I've updated the quantity to 2 bottles.",
		},
		"update quantity empty": {
			label: UpdateQuantity, lang: "en", action: UpdateQuantity,
			response: "I couldn't identify the item to update. Please try again.",
		},
		"filter category": {
			label: FilterCategory, items: []message.ExtractedItem{{Name: "dairy", Quantity: 1, Category: "dairy"}}, lang: "en", action: FilterCategory,
			info:     message.ItemInfo{Items: []message.ExtractedItem{{Name: "dairy", Quantity: 1, Category: "dairy"}}, Action: "filter_category"},
			response: "Here are the items in the dairy category.",
		},
		"filter category without category": {
			label: FilterCategory, items: []message.ExtractedItem{item("stuff")}, lang: "en", action: FilterCategory,
			response: "I couldn't identify the category to filter by. Please try again.",
		},
		"absent label": {
			label: "", items: milkBread, lang: "en", action: Unknown,
			response: "I didn't understand that command. Please try again.",
		},
		"none label": {
			label: "None", lang: "en", action: Unknown,
			response: "I didn't understand that command. Please try again.",
		},
		"unrecognized label": {
			label: "shopping.checkout", lang: "en", action: Unknown,
			response: "I didn't understand that command. Please try again.",
		},
		"spanish add": {
			label: AddItem, items: []message.ExtractedItem{item("leche"), item("pan")}, lang: "es-ES", action: AddItem,
			info:     message.ItemInfo{Items: []message.ExtractedItem{item("leche"), item("pan")}, Action: "add_multiple"},
			response: "He agregado leche, pan a tu lista de compras.",
		},
		"french remove": {
			label: RemoveItem, items: []message.ExtractedItem{item("lait")}, lang: "fr", action: RemoveItem,
			info:     message.ItemInfo{Items: []message.ExtractedItem{item("lait")}, Action: "remove_multiple"},
			response: "J'ai supprimé lait de votre liste de courses.",
		},
		"german show": {
			label: ShowList, lang: "de", action: ShowList,
			info:     message.ItemInfo{Action: "show_list"},
			response: "Hier ist Ihre aktuelle Einkaufsliste.",
		},
		"fallback to english": {
			label: ClearList, lang: "ja-JP", action: ClearList,
			info:     message.ItemInfo{Action: "clear_list"},
			response: "I've cleared your shopping list.",
		},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			out, err := d.Dispatch(tt.label, tt.items, tt.lang)
			require.NoError(t, err)
			assert.Equal(t, tt.action, out.Action)
			assert.Equal(t, tt.info, out.Info)
			assert.Equal(t, tt.response, out.Response)
			assert.Equal(t, tt.action != Unknown, out.Recognized())
		})
	}
}

func TestEmptyResponsesDifferFromUnknown(t *testing.T) {
	d := newDispatcher(t)
	unknown, err := d.Dispatch("", nil, "en")
	require.NoError(t, err)
	for _, label := range []string{AddItem, RemoveItem, SearchItem, UpdateQuantity, FilterCategory} {
		out, err := d.Dispatch(label, nil, "en")
		require.NoError(t, err)
		assert.NotEqual(t, unknown.Response, out.Response, label)
		assert.Empty(t, out.Info.Items, label)
	}
}

func TestApology(t *testing.T) {
	d := newDispatcher(t)
	assert.Equal(t, "Sorry, I encountered an error processing your command.", d.Apology("en"))
	assert.Equal(t, "Lo siento, ocurrió un error al procesar tu comando.", d.Apology("es"))
	assert.Equal(t, d.Apology("en"), d.Apology("ko"))
}

func TestNewWithTemplates(t *testing.T) {
	t.Run("missing en", func(t *testing.T) {
		_, err := NewWithTemplates(map[string]map[string]string{"es": {}})
		assert.Error(t, err)
	})
	t.Run("incomplete en", func(t *testing.T) {
		_, err := NewWithTemplates(map[string]map[string]string{"en": {"add": "ok"}})
		assert.Error(t, err)
	})
	t.Run("bad syntax", func(t *testing.T) {
		sets := map[string]map[string]string{"en": {}, "es": {"add": "{{.Items"}}
		for k, v := range builtinTemplates["en"] {
			sets["en"][k] = v
		}
		_, err := NewWithTemplates(sets)
		assert.Error(t, err)
	})
	t.Run("partial language falls back per key", func(t *testing.T) {
		sets := map[string]map[string]string{"en": {}, "it": {"add": "Ho aggiunto {{.Items}}."}}
		for k, v := range builtinTemplates["en"] {
			sets["en"][k] = v
		}
		d, err := NewWithTemplates(sets)
		require.NoError(t, err)

		out, err := d.Dispatch(AddItem, []message.ExtractedItem{item("latte")}, "it-IT")
		require.NoError(t, err)
		assert.Equal(t, "Ho aggiunto latte.", out.Response)

		out, err = d.Dispatch(ShowList, nil, "it")
		require.NoError(t, err)
		assert.Equal(t, "Here's your current shopping list.", out.Response)
	})
}

func TestIsKnown(t *testing.T) {
	for _, l := range Labels() {
		assert.True(t, IsKnown(l), l)
	}
	assert.False(t, IsKnown("None"))
	assert.False(t, IsKnown(""))
}
