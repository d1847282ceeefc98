package constants

const AppName = "habitkit"

// SessionState identifies the active TUI screen.
type SessionState int

const (
	StateHabits SessionState = iota
	StatePaused
	StateSync
	StateForm
	StateConfirmDelete
)

// DefaultConfigPath is the default SQLite database location. The ~ is
// expanded at startup.
const DefaultConfigPath = "~/.config/habitkit/habitkit.db"

// SampleHabit is one of the records seeded into an empty store on first
// startup.
type SampleHabit struct {
	Title       string
	Description string
}

var SampleHabits = []SampleHabit{
	{"Uống 2 lít nước", "Uống đủ nước mỗi ngày để khỏe mạnh"},
	{"Đi bộ 15 phút", "Đi bộ buổi sáng hoặc tối"},
	{"Đọc sách 30 phút", "Đọc sách phát triển bản thân"},
}
