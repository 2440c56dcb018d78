package tui

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/julianstephens/mindmate/internal/affirmation"
	"github.com/julianstephens/mindmate/internal/constants"
	"github.com/julianstephens/mindmate/internal/journal"
	"github.com/julianstephens/mindmate/internal/logger"
	"github.com/julianstephens/mindmate/internal/mood"
	"github.com/julianstephens/mindmate/internal/preferences"
	"github.com/julianstephens/mindmate/internal/storage"
	"github.com/julianstephens/mindmate/internal/tui/common"
	"github.com/julianstephens/mindmate/internal/tui/components/affirmations"
	"github.com/julianstephens/mindmate/internal/tui/components/breathe"
	"github.com/julianstephens/mindmate/internal/tui/components/helpview"
	journaltab "github.com/julianstephens/mindmate/internal/tui/components/journal"
	"github.com/julianstephens/mindmate/internal/tui/components/moodtracker"
	"github.com/julianstephens/mindmate/internal/tui/components/profileview"
	"github.com/julianstephens/mindmate/internal/tui/components/settingsview"
	"github.com/julianstephens/mindmate/internal/tui/components/ventspace"
	"github.com/julianstephens/mindmate/internal/vent"
)

// Options configures a new shell
type Options struct {
	Tab            constants.Tab
	SystemDark     bool
	StartBreathing bool
	// ExportDir receives exports made from the settings screen
	ExportDir string
}

type Model struct {
	ctx       context.Context
	cancel    context.CancelFunc
	store     storage.Provider
	state     AppState
	styles    common.Styles
	keys      KeyMap
	help      help.Model
	exportDir string
	startCmd  tea.Cmd
	now       func() time.Time

	mood         moodtracker.Model
	journal      journaltab.Model
	vent         ventspace.Model
	affirmations affirmations.Model
	breathing    breathe.Model
	profile      profileview.Model
	settings     settingsview.Model
	support      helpview.Model

	status    string
	statusErr bool
	quitting  bool
	width     int
	height    int
}

func NewModel(store storage.Provider, opts Options) Model {
	ctx, cancel := context.WithCancel(context.Background())

	settings, err := preferences.LoadSettings(store)
	if err != nil {
		logger.Warn("Using default settings", "error", err)
	}
	pref, err := preferences.DarkMode(store, opts.SystemDark)
	if err != nil {
		logger.Warn("Using system color scheme", "error", err)
	}
	dark := preferences.ResolveDark(settings.Theme, pref)
	styles := common.NewStyles(dark)

	board := vent.NewBoard()
	board.SeedSamples()

	m := Model{
		ctx:       ctx,
		cancel:    cancel,
		store:     store,
		state:     NewAppState(opts.Tab, dark),
		styles:    styles,
		keys:      DefaultKeyMap(),
		help:      help.New(),
		exportDir: opts.ExportDir,
		now:       time.Now,

		mood:         moodtracker.New(mood.NewManager(store), styles),
		journal:      journaltab.New(ctx, journal.NewManager(store, nil), styles),
		vent:         ventspace.New(board, styles),
		affirmations: affirmations.New(ctx, affirmation.NewGenerator(store), styles),
		breathing:    breathe.New(store, styles),
		profile:      profileview.New(store, styles),
		settings:     settingsview.New(store, styles),
		support:      helpview.New(styles),
	}
	m.journal.SetShowFull(settings.ShowSensitiveData)
	if opts.StartBreathing && opts.Tab == constants.TabBreathing {
		m.startCmd = m.breathing.Start()
	}
	return m
}

// State returns the current navigation state
func (m Model) State() AppState {
	return m.state
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.vent.Init(), m.startCmd)
}

// capturing reports whether the visible component wants raw keystrokes
func (m Model) capturing() bool {
	switch m.state.View {
	case constants.ViewProfile:
		return m.profile.Capturing()
	case constants.ViewSettings:
		return m.settings.Capturing()
	case constants.ViewHelp:
		return false
	}
	switch m.state.Tab {
	case constants.TabMood:
		return m.mood.Capturing()
	case constants.TabJournal:
		return m.journal.Capturing()
	case constants.TabVent:
		return m.vent.Capturing()
	}
	return false
}

func (m Model) componentHelp() []key.Binding {
	switch m.state.View {
	case constants.ViewProfile:
		return m.profile.ShortHelp()
	case constants.ViewSettings:
		return m.settings.ShortHelp()
	case constants.ViewHelp:
		return m.support.ShortHelp()
	}
	switch m.state.Tab {
	case constants.TabMood:
		return m.mood.ShortHelp()
	case constants.TabJournal:
		return m.journal.ShortHelp()
	case constants.TabVent:
		return m.vent.ShortHelp()
	case constants.TabAffirmations:
		return m.affirmations.ShortHelp()
	case constants.TabBreathing:
		return m.breathing.ShortHelp()
	}
	return nil
}

func (m Model) ShortHelp() []key.Binding {
	if m.capturing() {
		return m.componentHelp()
	}
	var keys []key.Binding
	if m.state.OnMain() {
		keys = append(keys, m.keys.Tab)
	} else {
		keys = append(keys, m.keys.Back)
	}
	keys = append(keys, m.componentHelp()...)
	return append(keys, m.keys.Menu, m.keys.Quit, m.keys.Help)
}

func (m Model) FullHelp() [][]key.Binding {
	global := []key.Binding{m.keys.Tab, m.keys.ShiftTab, m.keys.Back, m.keys.Quit, m.keys.Help}
	menu := []key.Binding{m.keys.Menu, m.keys.Dark, m.keys.Profile, m.keys.Settings, m.keys.Support, m.keys.SignOut}
	return [][]key.Binding{global, menu, m.componentHelp()}
}
