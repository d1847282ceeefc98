package tui

import (
	"context"
	"errors"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/lamnguyen/habitkit/internal/constants"
	"github.com/lamnguyen/habitkit/internal/logger"
	"github.com/lamnguyen/habitkit/internal/tui/components/habitlist"
	"github.com/lamnguyen/habitkit/internal/tui/components/paused"
	"github.com/lamnguyen/habitkit/internal/tui/components/syncview"
)

type syncDoneMsg struct {
	err error
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.habitList.SetSize(msg.Width-4, msg.Height-6)
		m.pausedList.SetSize(msg.Width-4, msg.Height-6)
		return m, nil

	case syncDoneMsg:
		m.syncModel.SetDone(msg.err)
		// The local collection is re-read regardless of remote outcomes.
		m.refreshLists()
		return m, nil
	}

	if m.state == constants.StateForm {
		return m.updateForm(msg)
	}

	if m.state == constants.StateConfirmDelete {
		return m.updateConfirmDelete(msg)
	}

	// Global keys, unless the search box owns the keyboard.
	if msg, ok := msg.(tea.KeyMsg); ok {
		if m.state != constants.StateHabits || !m.habitList.Searching() {
			if handled, cmd := m.handleGlobalKeys(msg); handled {
				return m, cmd
			}
		}
	}

	switch msg := msg.(type) {
	case habitlist.AddHabitMsg:
		m.habitForm = &HabitFormModel{}
		m.form = NewHabitForm(m.habitForm)
		m.editingID = 0
		m.formError = ""
		m.state = constants.StateForm
		return m, m.form.Init()

	case habitlist.EditHabitMsg:
		// An id that no longer exists is a normal outcome: the form
		// simply starts blank.
		m.habitForm = &HabitFormModel{}
		habit, err := m.store.GetHabit(msg.ID)
		if err != nil {
			logger.Error("Loading habit failed", "id", msg.ID, "error", err)
		} else if habit != nil {
			m.habitForm.Title = habit.Title
			m.habitForm.Description = habit.Description
		}
		m.form = NewHabitForm(m.habitForm)
		m.editingID = msg.ID
		m.formError = ""
		m.state = constants.StateForm
		return m, m.form.Init()

	case habitlist.ToggleDoneMsg:
		if err := m.store.SetDoneToday(msg.ID, msg.Done); err != nil {
			logger.Error("Toggling habit failed", "id", msg.ID, "error", err)
		}
		m.refreshLists()
		return m, nil

	case habitlist.PauseHabitMsg:
		if err := m.store.SetActive(msg.ID, false); err != nil {
			logger.Error("Pausing habit failed", "id", msg.ID, "error", err)
		}
		m.refreshLists()
		return m, nil

	case habitlist.DeleteHabitMsg:
		m.deleteID = msg.ID
		m.confirmReturn = constants.StateHabits
		m.state = constants.StateConfirmDelete
		return m, nil

	case paused.ResumeHabitMsg:
		if err := m.store.SetActive(msg.ID, true); err != nil {
			logger.Error("Resuming habit failed", "id", msg.ID, "error", err)
		}
		m.refreshLists()
		return m, nil

	case paused.DeleteHabitMsg:
		m.deleteID = msg.ID
		m.confirmReturn = constants.StatePaused
		m.state = constants.StateConfirmDelete
		return m, nil

	case syncview.StartSyncMsg:
		return m, m.runSync()
	}

	var cmd tea.Cmd
	switch m.state {
	case constants.StateHabits:
		m.habitList, cmd = m.habitList.Update(msg)
	case constants.StatePaused:
		m.pausedList, cmd = m.pausedList.Update(msg)
	case constants.StateSync:
		m.syncModel, cmd = m.syncModel.Update(msg)
	}

	return m, cmd
}

func (m *Model) handleGlobalKeys(msg tea.KeyMsg) (bool, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return true, tea.Quit

	case key.Matches(msg, m.keys.Tab):
		switch m.state {
		case constants.StateHabits:
			m.state = constants.StatePaused
		case constants.StatePaused:
			m.state = constants.StateSync
		case constants.StateSync:
			m.state = constants.StateHabits
		}
		m.enterScreen()
		return true, nil

	case key.Matches(msg, m.keys.ShiftTab):
		switch m.state {
		case constants.StateHabits:
			m.state = constants.StateSync
		case constants.StatePaused:
			m.state = constants.StateHabits
		case constants.StateSync:
			m.state = constants.StatePaused
		}
		m.enterScreen()
		return true, nil

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return true, nil
	}
	return false, nil
}

// enterScreen re-fetches the collection whenever a listing screen
// becomes visible, so mutations made on other screens are picked up.
func (m *Model) enterScreen() {
	if m.state == constants.StateHabits || m.state == constants.StatePaused {
		m.refreshLists()
	}
}

func (m Model) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok && msg.Type == tea.KeyEsc {
		m.state = constants.StateHabits
		m.refreshLists()
		return m, nil
	}

	var cmds []tea.Cmd
	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}
	cmds = append(cmds, cmd)

	switch m.form.State {
	case huh.StateCompleted:
		title := strings.TrimSpace(m.habitForm.Title)
		description := strings.TrimSpace(m.habitForm.Description)

		if m.editingID != 0 {
			if err := m.store.UpdateHabit(m.editingID, title, description); err != nil {
				// Keep the form populated so the user can retry.
				m.formError = err.Error()
				m.form.State = huh.StateNormal
			} else {
				m.formError = ""
				m.state = constants.StateHabits
				m.refreshLists()
			}
			return m, tea.Batch(cmds...)
		}

		if err := m.store.CreateHabit(title, description); err != nil {
			m.formError = err.Error()
			m.form.State = huh.StateNormal
			return m, tea.Batch(cmds...)
		}
		// Create clears both fields and stays, ready for the next entry.
		m.formError = ""
		m.habitForm = &HabitFormModel{}
		m.form = NewHabitForm(m.habitForm)
		m.refreshLists()
		return m, tea.Batch(append(cmds, m.form.Init())...)

	case huh.StateAborted:
		m.state = constants.StateHabits
		m.refreshLists()
	}
	return m, tea.Batch(cmds...)
}

func (m Model) updateConfirmDelete(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "y":
			if err := m.store.DeleteHabit(m.deleteID); err != nil {
				logger.Error("Deleting habit failed", "id", m.deleteID, "error", err)
			}
			m.refreshLists()
			m.state = m.confirmReturn
		case "n", "esc":
			m.state = m.confirmReturn
		}
	}
	return m, nil
}

func (m Model) runSync() tea.Cmd {
	syncer := m.syncer
	if syncer == nil {
		return func() tea.Msg {
			return syncDoneMsg{err: errors.New("no sync endpoint configured")}
		}
	}
	return func() tea.Msg {
		return syncDoneMsg{err: syncer.Run(context.Background())}
	}
}
