// Package locale resolves event text by id from an external string table.
// A missing entry falls back to the event's inline default, so an
// incomplete translation never blocks play.
package locale

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"fromagerie/internal/event"
)

// Text is one event's localized strings. Choices are positional against
// the event's declared choice order.
type Text struct {
	Title   string   `yaml:"title" json:"title"`
	Text    string   `yaml:"text" json:"text"`
	Choices []string `yaml:"choices" json:"choices"`
}

// Table maps event ids to localized text.
type Table map[event.ID]Text

// Load reads a string table from a YAML file.
func Load(path string) (Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read locale file: %w", err)
	}
	var t Table
	if err := yaml.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("parse locale file %s: %w", path, err)
	}
	return t, nil
}

// Resolve returns the localized text for an event, falling back to the
// inline defaults field by field. A nil table is valid and yields the
// defaults untouched.
func (t Table) Resolve(ev *event.Event, choices []event.Choice) Text {
	out := Text{
		Title:   ev.Title,
		Text:    ev.Text,
		Choices: make([]string, len(choices)),
	}
	for i := range choices {
		out.Choices[i] = choices[i].Label
	}

	if t == nil {
		return out
	}
	loc, ok := t[ev.ID]
	if !ok {
		return out
	}

	if loc.Title != "" {
		out.Title = loc.Title
	}
	if loc.Text != "" {
		out.Text = loc.Text
	}
	for i := range out.Choices {
		if i < len(loc.Choices) && loc.Choices[i] != "" {
			out.Choices[i] = loc.Choices[i]
		}
	}
	return out
}
