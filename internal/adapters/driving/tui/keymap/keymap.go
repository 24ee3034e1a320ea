// Package keymap defines keybindings for the TUI.
package keymap

import (
	"github.com/charmbracelet/bubbles/key"
)

// KeyMap defines all keybindings for the TUI.
type KeyMap struct {
	// Quit exits the application.
	Quit key.Binding

	// Help toggles the full keybinding list.
	Help key.Binding

	// NextControl moves focus to the next control.
	NextControl key.Binding

	// PrevControl moves focus to the previous control.
	PrevControl key.Binding

	// OptionNext selects the next option of the focused dropdown.
	OptionNext key.Binding

	// OptionPrev selects the previous option of the focused dropdown.
	OptionPrev key.Binding

	// Press activates the focused button.
	Press key.Binding

	// RankPopulation shows the top 10 by population.
	RankPopulation key.Binding

	// RankArea shows the top 10 by area.
	RankArea key.Binding

	// ClearRanking removes the top 10 ranking.
	ClearRanking key.Binding

	// ToggleSort toggles the alphabetical sort.
	ToggleSort key.Binding

	// Up scrolls the cards up.
	Up key.Binding

	// Down scrolls the cards down.
	Down key.Binding
}

// DefaultKeyMap returns the default keybindings.
func DefaultKeyMap() *KeyMap {
	return &KeyMap{
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		NextControl: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next control"),
		),
		PrevControl: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "previous control"),
		),
		OptionNext: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "next option"),
		),
		OptionPrev: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "previous option"),
		),
		Press: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "press"),
		),
		RankPopulation: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "top 10 population"),
		),
		RankArea: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "top 10 area"),
		),
		ClearRanking: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "clear top 10"),
		),
		ToggleSort: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "sort a-z"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "scroll down"),
		),
	}
}

// ShortHelp returns a short list of keybindings for the status bar.
func (k *KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.NextControl, k.Press, k.Help, k.Quit}
}

// FullHelp returns the full list of keybindings for the help view.
func (k *KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.NextControl, k.PrevControl, k.OptionNext, k.OptionPrev, k.Press},
		{k.RankPopulation, k.RankArea, k.ClearRanking, k.ToggleSort},
		{k.Up, k.Down, k.Help, k.Quit},
	}
}

// Matches checks if a key string matches a binding.
func Matches(keyStr string, binding key.Binding) bool {
	for _, k := range binding.Keys() {
		if k == keyStr {
			return true
		}
	}
	return false
}
