// Package explorer provides the country explorer view for the TUI:
// the filter controls, the card grid and the status bar.
package explorer

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/countries-cli/internal/adapters/driving/tui/components/card"
	"github.com/custodia-labs/countries-cli/internal/adapters/driving/tui/components/controls"
	"github.com/custodia-labs/countries-cli/internal/adapters/driving/tui/components/status"
	"github.com/custodia-labs/countries-cli/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/countries-cli/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/countries-cli/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/countries-cli/internal/core/domain"
	"github.com/custodia-labs/countries-cli/internal/core/ports/driving"
)

// Title is the heading shown above the controls.
const Title = "Country Information"

// Focus identifies which control has keyboard focus.
type Focus int

const (
	FocusContinent Focus = iota
	FocusSubregion
	FocusRankPopulation
	FocusRankArea
	FocusSortAlphabetically

	focusCount
)

// chromeHeight is the number of lines around the card viewport:
// title, blank, dropdown row, button row, blank, status bar.
const chromeHeight = 6

// View is the country explorer view.
type View struct {
	styles   *styles.Styles
	keymap   *keymap.KeyMap
	explorer driving.Explorer

	continent  *controls.Dropdown
	subregion  *controls.Dropdown
	byPop      *controls.Button
	byArea     *controls.Button
	sortByName *controls.Button
	focus      Focus
	statusBar  *status.Bar
	help       help.Model
	showHelp   bool
	cards      viewport.Model
	loading    bool
	width      int
	height     int
	ready      bool
}

// NewView creates a new explorer view over the given state container.
func NewView(s *styles.Styles, explorer driving.Explorer) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	km := keymap.DefaultKeyMap()

	v := &View{
		styles:     s,
		keymap:     km,
		explorer:   explorer,
		continent:  controls.NewDropdown(s, "Continent", domain.ContinentOptions()),
		subregion:  controls.NewDropdown(s, "Subregion", domain.SubregionOptions()),
		byPop:      controls.NewButton(s, domain.RankingPopulation.Description()),
		byArea:     controls.NewButton(s, domain.RankingArea.Description()),
		sortByName: controls.NewButton(s, "Sort Alphabetically"),
		statusBar:  status.NewBar(s, km),
		help:       help.New(),
		cards:      viewport.New(80, 24-chromeHeight),
		loading:    true,
		width:      80,
		height:     24,
	}
	v.setFocus(FocusContinent)
	v.syncControls()
	return v
}

// SetCountries installs the fetched dataset. An empty slice is valid and is
// what a failed fetch delivers.
func (v *View) SetCountries(countries []domain.Country) {
	v.loading = false
	v.statusBar.SetState(status.StateReady)
	v.explorer.SetDataset(countries)
	v.syncControls()
}

// Update handles messages for the explorer view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case messages.CountriesLoaded:
		v.SetCountries(msg.Countries)
		return v, nil

	case tea.KeyMsg:
		return v.handleKeyMsg(msg)
	}

	var cmd tea.Cmd
	v.cards, cmd = v.cards.Update(msg)
	return v, cmd
}

//nolint:gocyclo // flat key dispatch
func (v *View) handleKeyMsg(msg tea.KeyMsg) (*View, tea.Cmd) {
	k := msg.String()
	km := v.keymap

	switch {
	case keymap.Matches(k, km.Quit):
		return v, tea.Quit

	case keymap.Matches(k, km.Help):
		v.showHelp = !v.showHelp
		v.resizeCards()
		return v, nil

	case keymap.Matches(k, km.NextControl):
		v.setFocus((v.focus + 1) % focusCount)
		return v, nil

	case keymap.Matches(k, km.PrevControl):
		v.setFocus((v.focus - 1 + focusCount) % focusCount)
		return v, nil

	case keymap.Matches(k, km.OptionNext), keymap.Matches(k, km.OptionPrev):
		return v, v.cycleDropdown(keymap.Matches(k, km.OptionNext))

	case keymap.Matches(k, km.Press):
		return v, v.press()

	case keymap.Matches(k, km.RankPopulation):
		v.explorer.SelectRanking(domain.RankingPopulation)
		return v, v.selectionChanged()

	case keymap.Matches(k, km.RankArea):
		v.explorer.SelectRanking(domain.RankingArea)
		return v, v.selectionChanged()

	case keymap.Matches(k, km.ClearRanking):
		v.explorer.SelectRanking(domain.RankingNone)
		return v, v.selectionChanged()

	case keymap.Matches(k, km.ToggleSort):
		v.explorer.ToggleAlphabetical()
		return v, v.selectionChanged()
	}

	// Remaining keys scroll the cards.
	var cmd tea.Cmd
	v.cards, cmd = v.cards.Update(msg)
	return v, cmd
}

// cycleDropdown moves the focused dropdown and applies its new value.
func (v *View) cycleDropdown(forward bool) tea.Cmd {
	var d *controls.Dropdown
	switch v.focus {
	case FocusContinent:
		d = v.continent
	case FocusSubregion:
		d = v.subregion
	default:
		return nil
	}

	if forward {
		d.Next()
	} else {
		d.Prev()
	}

	if v.focus == FocusContinent {
		v.explorer.SelectContinent(d.Value())
	} else {
		v.explorer.SelectSubregion(d.Value())
	}
	return v.selectionChanged()
}

// press activates the focused button. Dropdowns advance to their next option.
func (v *View) press() tea.Cmd {
	switch v.focus {
	case FocusContinent, FocusSubregion:
		return v.cycleDropdown(true)
	case FocusRankPopulation:
		v.explorer.SelectRanking(domain.RankingPopulation)
	case FocusRankArea:
		v.explorer.SelectRanking(domain.RankingArea)
	case FocusSortAlphabetically:
		v.explorer.ToggleAlphabetical()
	default:
		return nil
	}
	return v.selectionChanged()
}

// selectionChanged refreshes the controls and cards after a transition
// and reports the new selection.
func (v *View) selectionChanged() tea.Cmd {
	v.syncControls()
	sel := v.explorer.Selection()
	displayed := len(v.explorer.Displayed())
	return func() tea.Msg {
		return messages.SelectionChanged{Selection: sel, Displayed: displayed}
	}
}

// syncControls mirrors the explorer state into the controls, the status
// bar and the card viewport. The dropdowns follow the selection so the
// cleared side of the continent/subregion pair shows "All".
func (v *View) syncControls() {
	sel := v.explorer.Selection()

	v.continent.SetValue(sel.Continent)
	v.subregion.SetValue(sel.Subregion)
	v.byPop.SetActive(sel.Ranking == domain.RankingPopulation)
	v.byArea.SetActive(sel.Ranking == domain.RankingArea)
	v.sortByName.SetActive(sel.Alphabetical)

	v.statusBar.SetCounts(len(v.explorer.Displayed()), len(v.explorer.Dataset()))
	if sel.IsZero() {
		v.statusBar.SetMessage("")
	} else {
		v.statusBar.SetMessage(sel.String())
	}

	v.cards.SetContent(v.renderCards())
	v.cards.GotoTop()
}

func (v *View) setFocus(f Focus) {
	v.focus = f
	v.continent.SetFocused(f == FocusContinent)
	v.subregion.SetFocused(f == FocusSubregion)
	v.byPop.SetFocused(f == FocusRankPopulation)
	v.byArea.SetFocused(f == FocusRankArea)
	v.sortByName.SetFocused(f == FocusSortAlphabetically)
}

func (v *View) renderCards() string {
	displayed := v.explorer.Displayed()
	if len(displayed) == 0 {
		if v.loading {
			return v.styles.Muted.Render("Loading countries...")
		}
		return v.styles.Muted.Render("No countries to show")
	}
	return card.Grid(v.styles, displayed, v.width)
}

// View renders the explorer.
func (v *View) View() string {
	if !v.ready {
		return "Initialising..."
	}

	var b strings.Builder

	b.WriteString(v.styles.Title.Render(Title))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, v.continent.View(), "  ", v.subregion.View()))
	b.WriteString("\n")
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, v.byPop.View(), " ", v.byArea.View(), " ", v.sortByName.View()))
	b.WriteString("\n\n")
	b.WriteString(v.cards.View())
	b.WriteString("\n")
	if v.showHelp {
		b.WriteString(v.help.FullHelpView(v.keymap.FullHelp()))
		b.WriteString("\n")
	}
	b.WriteString(v.statusBar.View())

	return b.String()
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true
	v.statusBar.SetWidth(width)
	v.help.Width = width
	v.resizeCards()
}

// resizeCards fits the viewport into the space left by the controls.
func (v *View) resizeCards() {
	h := v.height - chromeHeight
	if v.showHelp {
		h -= lipgloss.Height(v.help.FullHelpView(v.keymap.FullHelp()))
	}
	v.cards.Width = v.width
	v.cards.Height = max(1, h)
	v.cards.SetContent(v.renderCards())
}

// Focus returns the control that has keyboard focus.
func (v *View) Focus() Focus {
	return v.focus
}

// Loading returns whether the dataset fetch is still outstanding.
func (v *View) Loading() bool {
	return v.loading
}

// ContinentValue returns the value shown in the continent dropdown.
func (v *View) ContinentValue() string {
	return v.continent.Value()
}

// SubregionValue returns the value shown in the subregion dropdown.
func (v *View) SubregionValue() string {
	return v.subregion.Value()
}
