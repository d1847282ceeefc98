package habitlist

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/lamnguyen/habitkit/internal/habits"
	"github.com/lamnguyen/habitkit/internal/models"
)

type AddHabitMsg struct{}

type EditHabitMsg struct {
	ID int64
}

type ToggleDoneMsg struct {
	ID   int64
	Done bool
}

type PauseHabitMsg struct {
	ID int64
}

type DeleteHabitMsg struct {
	ID int64
}

type Item struct {
	Habit models.Habit
}

func (i Item) Title() string {
	title := i.Habit.Title
	if !i.Habit.Active {
		title = "[PAUSED] " + title
	} else if i.Habit.DoneToday {
		title = "✓ " + title
	} else {
		title = "○ " + title
	}
	return title
}

func (i Item) Description() string {
	if i.Habit.Description != "" {
		return i.Habit.Description
	}
	if i.Habit.DoneToday {
		return "completed today"
	}
	return "not completed today"
}

func (i Item) FilterValue() string { return i.Habit.Title }

type KeyMap struct {
	Add    key.Binding
	Edit   key.Binding
	Mark   key.Binding
	Unmark key.Binding
	Pause  key.Binding
	Delete key.Binding
	Search key.Binding
	Hide   key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Add: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "add"),
		),
		Edit: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "edit"),
		),
		Mark: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "mark done"),
		),
		Unmark: key.NewBinding(
			key.WithKeys("u"),
			key.WithHelp("u", "unmark"),
		),
		Pause: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "pause"),
		),
		Delete: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "delete"),
		),
		Search: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "search"),
		),
		Hide: key.NewBinding(
			key.WithKeys("i"),
			key.WithHelp("i", "show/hide paused"),
		),
	}
}

// Model is the listing screen: the full habit collection plus a search
// query and a hide-paused toggle. The visible sequence is derived from
// those three inputs on every change and never mutates the collection.
type Model struct {
	list       list.Model
	search     textinput.Model
	keys       KeyMap
	all        []models.Habit
	hidePaused bool
	searching  bool
}

func New(all []models.Habit, width, height int) Model {
	search := textinput.New()
	search.Placeholder = "search habits"
	search.Prompt = "/ "
	search.CharLimit = 80

	l := list.New(nil, list.NewDefaultDelegate(), width, height)
	l.Title = "Habits"
	l.SetShowTitle(false)
	l.SetShowHelp(false)
	// Derivation is ours (query + paused toggle); the built-in filter
	// would fight the search box.
	l.SetFilteringEnabled(false)

	keys := DefaultKeyMap()
	l.AdditionalShortHelpKeys = func() []key.Binding {
		return []key.Binding{keys.Add, keys.Edit, keys.Mark, keys.Pause, keys.Delete, keys.Search, keys.Hide}
	}
	l.AdditionalFullHelpKeys = func() []key.Binding {
		return []key.Binding{keys.Add, keys.Edit, keys.Mark, keys.Unmark, keys.Pause, keys.Delete, keys.Search, keys.Hide}
	}

	m := Model{
		list:       l,
		search:     search,
		keys:       keys,
		all:        all,
		hidePaused: true,
	}
	m.applyFilter()
	return m
}

// SetHabits replaces the full collection and recomputes the visible
// sequence.
func (m *Model) SetHabits(all []models.Habit) {
	m.all = all
	m.applyFilter()
}

func (m *Model) applyFilter() {
	visible := habits.Filter(m.all, m.search.Value(), m.hidePaused)
	items := make([]list.Item, len(visible))
	for i, h := range visible {
		items[i] = Item{Habit: h}
	}
	m.list.SetItems(items)
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd

	if m.searching {
		if msg, ok := msg.(tea.KeyMsg); ok {
			switch msg.Type {
			case tea.KeyEsc:
				m.searching = false
				m.search.Blur()
				m.search.SetValue("")
				m.applyFilter()
				return m, nil
			case tea.KeyEnter:
				m.searching = false
				m.search.Blur()
				return m, nil
			}
		}
		m.search, cmd = m.search.Update(msg)
		m.applyFilter()
		return m, cmd
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Search):
			m.searching = true
			return m, m.search.Focus()
		case key.Matches(msg, m.keys.Hide):
			m.hidePaused = !m.hidePaused
			m.applyFilter()
			return m, nil
		case key.Matches(msg, m.keys.Add):
			return m, func() tea.Msg { return AddHabitMsg{} }
		case key.Matches(msg, m.keys.Edit):
			if i, ok := m.list.SelectedItem().(Item); ok {
				return m, func() tea.Msg { return EditHabitMsg{ID: i.Habit.ID} }
			}
		case key.Matches(msg, m.keys.Mark):
			if i, ok := m.list.SelectedItem().(Item); ok && !i.Habit.DoneToday {
				return m, func() tea.Msg { return ToggleDoneMsg{ID: i.Habit.ID, Done: true} }
			}
		case key.Matches(msg, m.keys.Unmark):
			if i, ok := m.list.SelectedItem().(Item); ok && i.Habit.DoneToday {
				return m, func() tea.Msg { return ToggleDoneMsg{ID: i.Habit.ID, Done: false} }
			}
		case key.Matches(msg, m.keys.Pause):
			if i, ok := m.list.SelectedItem().(Item); ok && i.Habit.Active {
				return m, func() tea.Msg { return PauseHabitMsg{ID: i.Habit.ID} }
			}
		case key.Matches(msg, m.keys.Delete):
			if i, ok := m.list.SelectedItem().(Item); ok {
				return m, func() tea.Msg { return DeleteHabitMsg{ID: i.Habit.ID} }
			}
		}
	}

	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	header := ""
	if m.searching || m.search.Value() != "" {
		header = m.search.View() + "\n"
	}
	if len(m.list.Items()) == 0 {
		if m.search.Value() != "" {
			return header + "\n  No habits match the search."
		}
		return header + "\n  No habits yet.\n  Press 'a' to add one."
	}
	return header + m.list.View()
}

func (m *Model) SetSize(width, height int) {
	m.list.SetSize(width, height)
}

// Searching reports whether the search box currently owns the
// keyboard.
func (m Model) Searching() bool {
	return m.searching
}
