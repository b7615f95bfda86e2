// Package message defines the core data types flowing through the shopvoice pipeline.
package message

import "time"

// DefaultLanguage is used when a caller does not name a language.
const DefaultLanguage = "en"

// Command represents an incoming interpretation request from any transport.
type Command struct {
	// ID is a unique identifier for this request (ULID).
	ID string `json:"id,omitempty"`

	// Text is the pre-transcribed utterance (e.g., "add 2 bottles of water").
	Text string `json:"command"`

	// UserID identifies the speaker. Empty means anonymous: history is not recorded.
	UserID string `json:"user_id,omitempty"`

	// Language is a two- or five-letter tag (e.g., "en", "es-ES").
	Language string `json:"language,omitempty"`

	// Timestamp is when the request was received.
	Timestamp time.Time `json:"timestamp,omitzero"`
}

// Lang returns the request language, falling back to DefaultLanguage.
func (c *Command) Lang() string {
	if c.Language == "" {
		return DefaultLanguage
	}
	return c.Language
}

// ExtractedItem is one structured shopping-list entity pulled out of an utterance.
type ExtractedItem struct {
	// Name is the residual noun phrase, lower-cased, leading article removed.
	Name string `json:"name"`

	// Quantity is always >= 1.
	Quantity int `json:"quantity"`

	// Unit is the matched unit token ("bottles", "kg") or empty.
	Unit string `json:"unit"`

	// Category is one of the fixed category names or empty.
	Category string `json:"category"`

	Organic bool   `json:"organic"`
	Brand   string `json:"brand"`

	// PriceCeiling is set from "under $N" phrasing.
	PriceCeiling *float64 `json:"price_ceiling,omitempty"`

	// Notes is reserved for future annotations.
	Notes string `json:"notes"`
}

// Classification is the classifier collaborator's verdict on an utterance.
type Classification struct {
	// Label is the intent label (e.g., "shopping.add_item"). Empty means unknown.
	Label string `json:"label,omitempty"`

	// Score is the classifier confidence in [0,1].
	Score float64 `json:"score"`
}

// HasLabel reports whether the classifier recognized an intent.
func (c Classification) HasLabel() bool {
	return c.Label != "" && c.Label != "None"
}

// ItemInfo is the action-specific payload of a result.
// add/remove/search/update/filter carry Items; show/clear/new carry only Action.
type ItemInfo struct {
	Items  []ExtractedItem `json:"items,omitempty"`
	Action string          `json:"action,omitempty"`
}

// VoiceCommandResult is the outcome of interpreting one command.
type VoiceCommandResult struct {
	// ID echoes the request ID.
	ID string `json:"id,omitempty"`

	// Success is false only when the pipeline itself failed.
	Success bool `json:"success"`

	// Action echoes the intent label, or "unknown".
	Action string `json:"action,omitempty"`

	// Intent is the raw classifier label (empty when absent).
	Intent string `json:"intent,omitempty"`

	Items    []ExtractedItem `json:"items"`
	ItemInfo ItemInfo        `json:"item_info"`

	// Response is a natural-language confirmation in the request language.
	Response string `json:"response"`

	// Confidence is the classifier score, 0 for unknown commands.
	Confidence float64 `json:"confidence"`

	Language string `json:"language,omitempty"`

	// Error carries the fault detail when Success is false.
	Error string `json:"error,omitempty"`
}
