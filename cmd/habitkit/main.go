package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/lamnguyen/habitkit/internal/cli"
	"github.com/lamnguyen/habitkit/internal/constants"
	"github.com/lamnguyen/habitkit/internal/errors"
	"github.com/lamnguyen/habitkit/internal/logger"
	"github.com/lamnguyen/habitkit/internal/storage"
)

var CLI struct {
	Version kong.VersionFlag
	Config  string `help:"Database path or PostgreSQL connection string. For PostgreSQL, credentials must NOT be embedded in the connection string. Use environment variables or .pgpass instead." type:"string" default:"~/.config/habitkit/habitkit.db"`
	Debug   bool   `help:"Enable debug logging."`

	SyncEndpoint string `help:"Remote habit collection base URL." env:"HABITKIT_SYNC_ENDPOINT" default:""`

	Init  cli.InitCmd  `cmd:"" help:"Initialize habitkit storage and seed sample habits."`
	Tui   cli.TuiCmd   `cmd:"" help:"Launch the interactive TUI." default:"1"`
	Habit cli.HabitCmd `cmd:"" help:"Manage habits from the command line."`
	Sync  cli.SyncCmd  `cmd:"" help:"Push all active habits to the remote collection."`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name(constants.AppName),
		kong.Description("Terminal habit tracker with best-effort remote mirroring"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact:             true,
			NoExpandSubcommands: true,
		}),
		kong.Vars{"version": "v0.1.0"},
	)

	config := expandHome(CLI.Config)

	var store storage.Provider
	if strings.HasPrefix(config, "postgres://") || strings.HasPrefix(config, "postgresql://") {
		if storage.HasEmbeddedCredentials(config) {
			fmt.Fprintln(os.Stderr, "Error: PostgreSQL connection strings with embedded credentials are not allowed.")
			fmt.Fprintln(os.Stderr, "       Use environment variables or a .pgpass file instead.")
			os.Exit(1)
		}
		store = storage.NewPostgresStore(config)
	} else {
		store = storage.NewSQLiteStore(config)
	}

	if err := logger.Init(logger.Config{
		Debug:     CLI.Debug,
		ConfigDir: configDir(config),
	}); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to initialize logging: %v\n", err)
	}

	appCtx := &cli.Context{
		Store:        store,
		SyncEndpoint: CLI.SyncEndpoint,
	}

	// Schema creation and seeding are idempotent, so every startup runs
	// them. The init command handles its own setup (it may need to
	// delete the database first).
	if ctx.Selected() == nil || ctx.Selected().Name != "init" {
		if err := store.Init(); err != nil {
			errors.Fatal(err)
		}
		if err := store.SeedIfEmpty(); err != nil {
			errors.Fatal(err)
		}
	}
	defer store.Close()

	if err := ctx.Run(appCtx); err != nil {
		store.Close()
		errors.Fatal(err)
	}
}

func expandHome(path string) string {
	if !strings.HasPrefix(path, "~") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}

// configDir returns the directory logs live in. Postgres connection
// strings have no directory, so logs fall back next to the default
// config location.
func configDir(config string) string {
	if strings.HasPrefix(config, "postgres://") || strings.HasPrefix(config, "postgresql://") {
		return filepath.Dir(expandHome(constants.DefaultConfigPath))
	}
	return filepath.Dir(config)
}
