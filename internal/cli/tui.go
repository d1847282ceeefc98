package cli

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/lamnguyen/habitkit/internal/remote"
	"github.com/lamnguyen/habitkit/internal/tui"
)

type TuiCmd struct{}

func (c *TuiCmd) Run(ctx *Context) error {
	var syncer *remote.Syncer
	if ctx.SyncEndpoint != "" {
		syncer = remote.NewSyncer(ctx.Store, remote.NewClient(ctx.SyncEndpoint))
	}

	p := tea.NewProgram(tui.NewModel(ctx.Store, syncer, ctx.SyncEndpoint), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Printf("Alas, there's been an error: %v", err)
		os.Exit(1)
	}
	return nil
}
