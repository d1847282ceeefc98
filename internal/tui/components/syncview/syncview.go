package syncview

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
)

// StartSyncMsg asks the root model to launch one sync run.
type StartSyncMsg struct{}

// Model is the sync screen. It only displays state and emits
// StartSyncMsg; the routine itself runs in the root model so the
// in-flight guard lives in one place.
type Model struct {
	endpoint string
	syncing  bool
	status   string
}

func New(endpoint string) Model {
	return Model{
		endpoint: endpoint,
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok && msg.String() == "s" {
		if m.endpoint == "" {
			m.status = "No sync endpoint configured. Set --sync-endpoint or HABITKIT_SYNC_ENDPOINT."
			return m, nil
		}
		// The control is disabled while a run is outstanding; this is
		// the only concurrency guard the routine needs.
		if m.syncing {
			return m, nil
		}
		m.syncing = true
		m.status = "Syncing..."
		return m, func() tea.Msg { return StartSyncMsg{} }
	}
	return m, nil
}

func (m Model) View() string {
	endpoint := m.endpoint
	if endpoint == "" {
		endpoint = "(not configured)"
	}

	view := fmt.Sprintf("\n  Remote endpoint: %s\n", endpoint)
	if m.status != "" {
		view += "\n  " + m.status + "\n"
	}
	if !m.syncing {
		view += "\n  Press 's' to push all active habits to the remote collection.\n" +
			"  The remote content is replaced; this is a one-way, best-effort mirror."
	}
	return view
}

// SetDone records the outcome of a sync run and re-enables the control.
func (m *Model) SetDone(err error) {
	m.syncing = false
	if err != nil {
		m.status = "Sync failed: " + err.Error()
		return
	}
	m.status = "Sync finished."
}

// Syncing reports whether a run is outstanding.
func (m Model) Syncing() bool {
	return m.syncing
}
