package cli

import (
	"context"
	"fmt"

	"github.com/lamnguyen/habitkit/internal/remote"
)

type SyncCmd struct {
	Endpoint string `help:"Remote habit collection base URL (overrides --sync-endpoint)." default:""`
}

// Run performs one mirror-push: the remote collection is cleared and
// reloaded from the local active habits. Per-record remote failures are
// logged and swallowed; only local store errors abort.
func (c *SyncCmd) Run(ctx *Context) error {
	endpoint := c.Endpoint
	if endpoint == "" {
		endpoint = ctx.SyncEndpoint
	}
	if endpoint == "" {
		return fmt.Errorf("no sync endpoint configured, set --endpoint or HABITKIT_SYNC_ENDPOINT")
	}

	syncer := remote.NewSyncer(ctx.Store, remote.NewClient(endpoint))
	if err := syncer.Run(context.Background()); err != nil {
		return err
	}

	local, err := ctx.Store.ListActive()
	if err != nil {
		return err
	}
	fmt.Printf("Pushed %d active habit(s) to %s\n", len(local), endpoint)
	return nil
}
