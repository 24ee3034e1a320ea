// Package controls provides the dropdown and button components for the TUI.
package controls

import (
	"fmt"

	"github.com/custodia-labs/countries-cli/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/countries-cli/internal/core/domain"
)

// Dropdown is a single-choice selector over a fixed option list.
// It renders inline as "Label: ‹ Option ›" and cycles with Next/Prev.
type Dropdown struct {
	label    string
	options  []domain.Option
	selected int
	focused  bool
	styles   *styles.Styles
}

// NewDropdown creates a dropdown with the first option selected.
func NewDropdown(s *styles.Styles, label string, options []domain.Option) *Dropdown {
	if s == nil {
		s = styles.DefaultStyles()
	}
	return &Dropdown{
		label:   label,
		options: options,
		styles:  s,
	}
}

// Next selects the following option, wrapping around.
func (d *Dropdown) Next() {
	if len(d.options) == 0 {
		return
	}
	d.selected = (d.selected + 1) % len(d.options)
}

// Prev selects the preceding option, wrapping around.
func (d *Dropdown) Prev() {
	if len(d.options) == 0 {
		return
	}
	d.selected = (d.selected - 1 + len(d.options)) % len(d.options)
}

// Value returns the selected option's value. Empty means "All".
func (d *Dropdown) Value() string {
	if len(d.options) == 0 {
		return ""
	}
	return d.options[d.selected].Value
}

// SetValue selects the option with the given value.
// Values not in the list leave the selection unchanged.
func (d *Dropdown) SetValue(value string) {
	for i, opt := range d.options {
		if opt.Value == value {
			d.selected = i
			return
		}
	}
}

// SetFocused sets whether the dropdown has keyboard focus.
func (d *Dropdown) SetFocused(focused bool) {
	d.focused = focused
}

// Focused returns whether the dropdown has keyboard focus.
func (d *Dropdown) Focused() bool {
	return d.focused
}

// View renders the dropdown.
func (d *Dropdown) View() string {
	current := ""
	if len(d.options) > 0 {
		current = d.options[d.selected].Label
	}

	box := fmt.Sprintf("‹ %s ›", current)
	if d.focused {
		box = d.styles.ControlFocused.Render(box)
	} else {
		box = d.styles.Control.Render(box)
	}
	return d.styles.Label.Render(d.label+":") + box
}

// Button is a pressable control that can show an active state.
type Button struct {
	label   string
	active  bool
	focused bool
	styles  *styles.Styles
}

// NewButton creates a button.
func NewButton(s *styles.Styles, label string) *Button {
	if s == nil {
		s = styles.DefaultStyles()
	}
	return &Button{label: label, styles: s}
}

// Label returns the button text.
func (b *Button) Label() string {
	return b.label
}

// SetActive marks the option the button controls as in effect.
func (b *Button) SetActive(active bool) {
	b.active = active
}

// Active returns whether the button's option is in effect.
func (b *Button) Active() bool {
	return b.active
}

// SetFocused sets whether the button has keyboard focus.
func (b *Button) SetFocused(focused bool) {
	b.focused = focused
}

// Focused returns whether the button has keyboard focus.
func (b *Button) Focused() bool {
	return b.focused
}

// View renders the button.
func (b *Button) View() string {
	text := "[ " + b.label + " ]"
	if b.active {
		text = "[✓ " + b.label + " ]"
	}

	switch {
	case b.focused:
		return b.styles.ControlFocused.Render(text)
	case b.active:
		return b.styles.ControlActive.Render(text)
	default:
		return b.styles.Control.Render(text)
	}
}
