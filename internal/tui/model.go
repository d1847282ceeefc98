package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/huh"

	"github.com/lamnguyen/habitkit/internal/constants"
	"github.com/lamnguyen/habitkit/internal/logger"
	"github.com/lamnguyen/habitkit/internal/remote"
	"github.com/lamnguyen/habitkit/internal/storage"
	"github.com/lamnguyen/habitkit/internal/tui/components/habitlist"
	"github.com/lamnguyen/habitkit/internal/tui/components/paused"
	"github.com/lamnguyen/habitkit/internal/tui/components/syncview"
)

// HabitFormModel backs the create/edit form.
type HabitFormModel struct {
	Title       string
	Description string
}

type Model struct {
	store         storage.Provider
	syncer        *remote.Syncer
	state         constants.SessionState
	keys          KeyMap
	help          help.Model
	habitList     habitlist.Model
	pausedList    paused.Model
	syncModel     syncview.Model
	form          *huh.Form
	habitForm     *HabitFormModel
	editingID     int64 // 0 means create mode
	deleteID      int64
	confirmReturn constants.SessionState
	formError     string
	quitting      bool
	width         int
	height        int
}

// NewModel builds the root TUI model. The syncer may be nil when no
// remote endpoint is configured; the sync screen then explains how to
// set one.
func NewModel(store storage.Provider, syncer *remote.Syncer, endpoint string) Model {
	all, err := store.ListAll()
	if err != nil {
		// Show an empty list rather than crashing; details go to the log.
		logger.Error("Loading habits failed", "error", err)
		all = nil
	}

	return Model{
		store:      store,
		syncer:     syncer,
		state:      constants.StateHabits,
		keys:       DefaultKeyMap(),
		help:       help.New(),
		habitList:  habitlist.New(all, 0, 0),
		pausedList: paused.New(all, 0, 0),
		syncModel:  syncview.New(endpoint),
	}
}

// refreshLists re-fetches the collection from the store. Called every
// time a listing screen becomes visible again and after every mutation,
// so changes made elsewhere are always picked up.
func (m *Model) refreshLists() {
	all, err := m.store.ListAll()
	if err != nil {
		logger.Error("Refreshing habits failed", "error", err)
		return
	}
	m.habitList.SetHabits(all)
	m.pausedList.SetHabits(all)
}

func (m Model) ShortHelp() []key.Binding {
	return []key.Binding{m.keys.Tab, m.keys.Quit, m.keys.Help}
}

func (m Model) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{m.keys.Tab, m.keys.ShiftTab, m.keys.Quit, m.keys.Help},
	}
}
