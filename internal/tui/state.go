package tui

import "github.com/julianstephens/mindmate/internal/constants"

// Confirm names a question awaiting a yes/no answer
type Confirm int

const (
	ConfirmNone Confirm = iota
	ConfirmClear
	ConfirmSignOut
)

// AppState is the navigation state of the shell. It is a value: every
// transition returns a new state and leaves the receiver untouched.
type AppState struct {
	Tab      constants.Tab
	View     constants.View
	DarkMode bool
	MenuOpen bool
	Confirm  Confirm
}

// NewAppState starts on the given tab of the main view
func NewAppState(tab constants.Tab, dark bool) AppState {
	return AppState{Tab: tab, View: constants.ViewMain, DarkMode: dark}
}

func (s AppState) NextTab() AppState {
	s.Tab = (s.Tab + 1) % constants.TabCount
	return s
}

func (s AppState) PrevTab() AppState {
	s.Tab = (s.Tab - 1 + constants.TabCount) % constants.TabCount
	return s
}

func (s AppState) SelectTab(t constants.Tab) AppState {
	if t < 0 || int(t) >= constants.TabCount {
		return s
	}
	s.Tab = t
	s.View = constants.ViewMain
	return s
}

// OpenView switches to a secondary screen and closes the menu
func (s AppState) OpenView(v constants.View) AppState {
	s.View = v
	s.MenuOpen = false
	return s
}

// Back returns to the tabs
func (s AppState) Back() AppState {
	s.View = constants.ViewMain
	s.MenuOpen = false
	return s
}

func (s AppState) ToggleDarkMode() AppState {
	s.DarkMode = !s.DarkMode
	return s
}

func (s AppState) ToggleMenu() AppState {
	s.MenuOpen = !s.MenuOpen
	return s
}

// Ask opens a confirmation and closes the menu
func (s AppState) Ask(c Confirm) AppState {
	s.Confirm = c
	s.MenuOpen = false
	return s
}

// Answered clears the pending confirmation
func (s AppState) Answered() AppState {
	s.Confirm = ConfirmNone
	return s
}

// OnMain reports whether the tabs are showing
func (s AppState) OnMain() bool {
	return s.View == constants.ViewMain
}
