package remote

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/lamnguyen/habitkit/internal/logger"
	"github.com/lamnguyen/habitkit/internal/models"
	"github.com/lamnguyen/habitkit/internal/storage"
)

// ErrSyncInFlight is returned when Run is called while a previous sync
// has not finished yet.
var ErrSyncInFlight = errors.New("sync already running")

// Syncer mirror-pushes the local active habits to the remote collection.
// The push is best-effort only: the remote content is deleted and
// reinserted with no conflict resolution, no retries, and no pull of
// remote-only data back into the local store. Individual remote-call
// failures are swallowed so a flaky network never blocks the local
// workflow.
type Syncer struct {
	store    storage.Provider
	client   *Client
	inFlight atomic.Bool
}

func NewSyncer(store storage.Provider, client *Client) *Syncer {
	return &Syncer{
		store:  store,
		client: client,
	}
}

// Running reports whether a sync is currently outstanding.
func (s *Syncer) Running() bool {
	return s.inFlight.Load()
}

// Run replaces the entire remote collection with the local active
// habits. At most one Run is in flight at a time; concurrent calls get
// ErrSyncInFlight. A local store failure is returned; remote failures
// are logged and ignored.
func (s *Syncer) Run(ctx context.Context) error {
	if !s.inFlight.CompareAndSwap(false, true) {
		return ErrSyncInFlight
	}
	defer s.inFlight.Store(false)

	// A failed fetch means we simply have nothing to delete.
	remoteHabits, err := s.client.List(ctx)
	if err != nil {
		logger.Warn("Fetching remote habits failed, treating collection as empty", "error", err)
		remoteHabits = nil
	}

	var wg sync.WaitGroup
	for _, r := range remoteHabits {
		wg.Add(1)
		go func(id string) {
			defer wg.Done()
			if err := s.client.Delete(ctx, id); err != nil {
				logger.Warn("Remote delete failed", "id", id, "error", err)
			}
		}(r.ID)
	}
	wg.Wait()

	local, err := s.store.ListActive()
	if err != nil {
		return fmt.Errorf("listing local habits: %w", err)
	}

	for _, h := range local {
		wg.Add(1)
		go func(payload models.HabitPayload) {
			defer wg.Done()
			if err := s.client.Create(ctx, payload); err != nil {
				logger.Warn("Remote create failed", "title", payload.Title, "error", err)
			}
		}(h.Payload())
	}
	wg.Wait()

	logger.Info("Sync finished", "pushed", len(local), "cleared", len(remoteHabits))
	return nil
}
