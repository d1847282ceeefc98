package storage

import (
	"errors"

	"github.com/lamnguyen/habitkit/internal/storage/postgres"
	"github.com/lamnguyen/habitkit/internal/storage/sqlite"
)

// NewSQLiteStore creates a SQLite-backed provider at the given file path.
func NewSQLiteStore(path string) Provider {
	return sqlite.NewStore(path)
}

// NewPostgresStore creates a PostgreSQL-backed provider for the given
// connection string.
func NewPostgresStore(connString string) Provider {
	return postgres.New(connString)
}

// HasEmbeddedCredentials reports whether a PostgreSQL connection string
// carries an inline password. Credentials must come from the environment
// or .pgpass instead.
func HasEmbeddedCredentials(connString string) bool {
	valid, err := postgres.ValidateConnString(connString)
	return !valid && errors.Is(err, postgres.ErrEmbeddedCredentials)
}
