package classifier

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/lithammer/dedent"

	"github.com/nadzzz/shopvoice/internal/intent"
	"github.com/nadzzz/shopvoice/internal/message"
)

const systemPrompt = `
	You classify shopping-list voice commands.
	The user speaks %s. Pick exactly one intent from this list:
	%s
	Use "None" when the command is not about the shopping list.

	Return ONLY a JSON object with:
	- "intent": the chosen intent
	- "confidence": a number between 0 and 1

	Example: {"intent": "shopping.add_item", "confidence": 0.92}
`

// SystemPrompt builds the instruction sent to LLM backends.
func SystemPrompt(lang string) string {
	var labels strings.Builder
	for _, l := range intent.Labels() {
		labels.WriteString("- " + l + "\n")
	}
	if lang == "" {
		lang = message.DefaultLanguage
	}
	return fmt.Sprintf(strings.TrimSpace(dedent.Dedent(systemPrompt)), lang, strings.TrimSpace(labels.String()))
}

// Reply is the JSON object LLM backends are asked to produce.
type Reply struct {
	Intent     string  `json:"intent"`
	Confidence float64 `json:"confidence"`
}

// ParseReply decodes an LLM answer, tolerating markdown code fences around
// the JSON object.
func ParseReply(content string) (message.Classification, error) {
	content = strings.TrimSpace(content)
	if i := strings.Index(content, "{"); i >= 0 {
		if j := strings.LastIndex(content, "}"); j > i {
			content = content[i : j+1]
		}
	}
	var r Reply
	if err := json.Unmarshal([]byte(content), &r); err != nil {
		return message.Classification{}, fmt.Errorf("could not parse classifier reply: %.200s", content)
	}
	return Verdict(strings.TrimSpace(r.Intent), r.Confidence), nil
}
