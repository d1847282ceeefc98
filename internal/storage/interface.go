package storage

import "github.com/lamnguyen/habitkit/internal/models"

type Provider interface {
	// Lifecycle
	Init() error
	Close() error

	// Habits
	SeedIfEmpty() error
	CreateHabit(title, description string) error
	ListActive() ([]models.Habit, error)
	ListAll() ([]models.Habit, error)
	// GetHabit returns (nil, nil) when no habit has the given id;
	// absence is a normal outcome, not an error.
	GetHabit(id int64) (*models.Habit, error)
	UpdateHabit(id int64, title, description string) error
	SetDoneToday(id int64, done bool) error
	SetActive(id int64, active bool) error
	ResetAllDoneToday() error
	DeleteHabit(id int64) error

	// Utils
	ConfigPath() string
}
