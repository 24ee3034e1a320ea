package tui

import (
	"context"
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/countries-cli/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/countries-cli/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/countries-cli/internal/adapters/driving/tui/views/explorer"
	"github.com/custodia-labs/countries-cli/internal/logger"
)

// App is the main TUI application following the Elm architecture.
// It implements tea.Model for use with Bubbletea.
type App struct {
	// ports provides access to core services via driving ports.
	ports *Ports

	// ctx is the context handed to the fetch command.
	ctx context.Context

	// styles holds the TUI styles.
	styles *styles.Styles

	// explorerView renders the controls and the card grid.
	explorerView *explorer.View

	// err holds the outcome of the dataset fetch. It is never rendered.
	err error

	// width and height are terminal dimensions.
	width  int
	height int

	// ready indicates if the app has initialised.
	ready bool
}

// Ensure App implements tea.Model.
var _ tea.Model = (*App)(nil)

// NewApp creates a new TUI application with the given ports.
func NewApp(ports *Ports) (*App, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("creating app: %w", err)
	}

	s := styles.DefaultStyles()

	return &App{
		ports:        ports,
		ctx:          context.Background(),
		styles:       s,
		explorerView: explorer.NewView(s, ports.Explorer),
	}, nil
}

// WithContext sets the context for the app.
func (a *App) WithContext(ctx context.Context) *App {
	a.ctx = ctx
	return a
}

// Init implements tea.Model.
// It sets the window title and starts the one-time dataset fetch.
func (a *App) Init() tea.Cmd {
	return tea.Batch(
		tea.SetWindowTitle(explorer.Title),
		a.loadCountries(),
	)
}

// loadCountries fetches the dataset in the background.
func (a *App) loadCountries() tea.Cmd {
	ctx := a.ctx
	countries := a.ports.Countries
	return func() tea.Msg {
		list, err := countries.All(ctx)
		return messages.CountriesLoaded{Countries: list, Err: err}
	}
}

// Update implements tea.Model.
// It handles messages and updates the model state.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.ready = true
		a.explorerView.SetDimensions(msg.Width, msg.Height)
		return a, nil

	case tea.KeyMsg:
		// Global quit with ctrl+c
		if msg.String() == "ctrl+c" {
			return a, tea.Quit
		}

	case messages.CountriesLoaded:
		a.err = msg.Err
		if msg.Err == nil {
			logger.Debug("TUI received %d countries", len(msg.Countries))
		}

	case messages.SelectionChanged:
		logger.Debug("Selection changed: %s (%d shown)", msg.Selection, msg.Displayed)
		return a, nil
	}

	a.explorerView, cmd = a.explorerView.Update(msg)
	return a, cmd
}

// View implements tea.Model.
// It renders the current view as a string.
func (a *App) View() string {
	if !a.ready {
		return "Initialising..."
	}
	return a.explorerView.View()
}

// Run starts the TUI application.
// Cancelling the app's context ends the program without an error.
func (a *App) Run() error {
	p := tea.NewProgram(a, tea.WithAltScreen(), tea.WithContext(a.ctx))
	_, err := p.Run()
	return runError(a.ctx, err)
}

// runError drops the kill error bubbletea reports when ctx was cancelled.
func runError(ctx context.Context, err error) error {
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		logger.Debug("TUI stopped: %v", context.Cause(ctx))
		return nil
	}
	return err
}

// Err returns the outcome of the dataset fetch.
func (a *App) Err() error {
	return a.err
}

// Ready returns whether the app has been initialised.
func (a *App) Ready() bool {
	return a.ready
}

// SetDimensions sets the terminal dimensions (for testing).
func (a *App) SetDimensions(width, height int) {
	a.width = width
	a.height = height
	a.ready = true
	a.explorerView.SetDimensions(width, height)
}
