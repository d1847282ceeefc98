package models

// Habit is the sole persisted entity: a user-defined recurring task.
// IDs are assigned by the store on insert and never reused.
type Habit struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Active      bool   `json:"active"`
	DoneToday   bool   `json:"done_today"`
	CreatedAt   int64  `json:"created_at"` // epoch milliseconds
}

// HabitPayload is the JSON body sent to the remote collection when
// mirroring a local habit. Local ids are never sent; the remote service
// assigns its own.
type HabitPayload struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Active      bool   `json:"active"`
	DoneToday   bool   `json:"done_today"`
}

// RemoteHabit is a record as returned by the remote collection. The id
// format is owned by the remote service and is never reconciled with
// local ids.
type RemoteHabit struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Active      bool   `json:"active"`
	DoneToday   bool   `json:"done_today"`
}

// Payload returns the remote create body for h.
func (h Habit) Payload() HabitPayload {
	return HabitPayload{
		Title:       h.Title,
		Description: h.Description,
		Active:      h.Active,
		DoneToday:   h.DoneToday,
	}
}
