package paused

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/lamnguyen/habitkit/internal/models"
)

type ResumeHabitMsg struct {
	ID int64
}

type DeleteHabitMsg struct {
	ID int64
}

type Item struct {
	Habit models.Habit
}

func (i Item) Title() string       { return i.Habit.Title }
func (i Item) FilterValue() string { return i.Habit.Title }

func (i Item) Description() string {
	if i.Habit.Description != "" {
		return i.Habit.Description
	}
	return "paused, press 'r' to resume"
}

type KeyMap struct {
	Resume key.Binding
	Delete key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Resume: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "resume"),
		),
		Delete: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "delete"),
		),
	}
}

// Model is the paused-habits screen: only inactive records, which the
// default listing hides.
type Model struct {
	list list.Model
	keys KeyMap
}

func New(all []models.Habit, width, height int) Model {
	l := list.New(nil, list.NewDefaultDelegate(), width, height)
	l.Title = "Paused"
	l.SetShowTitle(false)
	l.SetShowHelp(false)
	l.SetFilteringEnabled(false)

	keys := DefaultKeyMap()
	l.AdditionalShortHelpKeys = func() []key.Binding {
		return []key.Binding{keys.Resume, keys.Delete}
	}
	l.AdditionalFullHelpKeys = func() []key.Binding {
		return []key.Binding{keys.Resume, keys.Delete}
	}

	m := Model{
		list: l,
		keys: keys,
	}
	m.SetHabits(all)
	return m
}

// SetHabits keeps only the inactive records from the full collection.
func (m *Model) SetHabits(all []models.Habit) {
	var items []list.Item
	for _, h := range all {
		if !h.Active {
			items = append(items, Item{Habit: h})
		}
	}
	m.list.SetItems(items)
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Resume):
			if i, ok := m.list.SelectedItem().(Item); ok {
				return m, func() tea.Msg { return ResumeHabitMsg{ID: i.Habit.ID} }
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
	if len(m.list.Items()) == 0 {
		return "\n  No paused habits."
	}
	return m.list.View()
}

func (m *Model) SetSize(width, height int) {
	m.list.SetSize(width, height)
}
