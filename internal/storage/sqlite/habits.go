package sqlite

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/lamnguyen/habitkit/internal/constants"
	"github.com/lamnguyen/habitkit/internal/models"
)

// SeedIfEmpty inserts the sample habits when the table has no rows.
// A non-empty table makes this a no-op, so it runs on every startup.
func (s *Store) SeedIfEmpty() error {
	var count int
	if err := s.db.QueryRow("SELECT COUNT(*) FROM habits").Scan(&count); err != nil {
		return fmt.Errorf("failed to count habits: %w", err)
	}
	if count > 0 {
		return nil
	}

	now := time.Now().UnixMilli()
	for _, sample := range constants.SampleHabits {
		_, err := s.db.Exec(`
			INSERT INTO habits (title, description, created_at) VALUES (?, ?, ?)`,
			sample.Title, sample.Description, now)
		if err != nil {
			return fmt.Errorf("failed to seed habit %q: %w", sample.Title, err)
		}
	}

	return nil
}

// CreateHabit inserts a new habit with the store defaults (active, not
// done today) and the current timestamp. The new id is not returned;
// callers re-query when they need it.
func (s *Store) CreateHabit(title, description string) error {
	_, err := s.db.Exec(`
		INSERT INTO habits (title, description, created_at) VALUES (?, ?, ?)`,
		title, nullableText(description), time.Now().UnixMilli())
	return err
}

func (s *Store) ListActive() ([]models.Habit, error) {
	return s.list("SELECT id, title, description, active, done_today, created_at FROM habits WHERE active = 1 ORDER BY created_at DESC")
}

func (s *Store) ListAll() ([]models.Habit, error) {
	return s.list("SELECT id, title, description, active, done_today, created_at FROM habits ORDER BY created_at DESC")
}

func (s *Store) list(query string) ([]models.Habit, error) {
	rows, err := s.db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var habits []models.Habit
	for rows.Next() {
		h, err := scanHabit(rows)
		if err != nil {
			return nil, err
		}
		habits = append(habits, h)
	}

	return habits, rows.Err()
}

// GetHabit returns (nil, nil) when no habit has the given id.
func (s *Store) GetHabit(id int64) (*models.Habit, error) {
	row := s.db.QueryRow(`
		SELECT id, title, description, active, done_today, created_at
		FROM habits WHERE id = ?`, id)

	h, err := scanHabit(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &h, nil
}

// UpdateHabit overwrites title and description only. Unknown ids are a
// silent no-op.
func (s *Store) UpdateHabit(id int64, title, description string) error {
	_, err := s.db.Exec(`
		UPDATE habits SET title = ?, description = ? WHERE id = ?`,
		title, nullableText(description), id)
	return err
}

func (s *Store) SetDoneToday(id int64, done bool) error {
	_, err := s.db.Exec(`
		UPDATE habits SET done_today = ? WHERE id = ?`, boolToInt(done), id)
	return err
}

func (s *Store) SetActive(id int64, active bool) error {
	_, err := s.db.Exec(`
		UPDATE habits SET active = ? WHERE id = ?`, boolToInt(active), id)
	return err
}

// ResetAllDoneToday clears the done flag on every habit. Nothing calls
// this automatically at day boundaries; it is exposed for an explicit
// reset.
func (s *Store) ResetAllDoneToday() error {
	_, err := s.db.Exec("UPDATE habits SET done_today = 0")
	return err
}

// DeleteHabit hard-removes the row. Unknown ids are a silent no-op.
func (s *Store) DeleteHabit(id int64) error {
	_, err := s.db.Exec("DELETE FROM habits WHERE id = ?", id)
	return err
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanHabit(row rowScanner) (models.Habit, error) {
	var h models.Habit
	var description sql.NullString
	var active, doneToday int

	if err := row.Scan(&h.ID, &h.Title, &description, &active, &doneToday, &h.CreatedAt); err != nil {
		return models.Habit{}, err
	}

	h.Description = description.String
	h.Active = active == 1
	h.DoneToday = doneToday == 1
	return h, nil
}

func nullableText(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
