// Package remote polls a remote endpoint for a published device state and
// applies it to the store. It is a writer collaborator: it only produces
// whole State values and never touches the render loops.
package remote

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/ziyadedher/catears/internal/state"
)

// maxBody bounds how much of a response is read. Real payloads are a few KB.
const maxBody = 1 << 20

// Syncer periodically fetches a JSON State document.
type Syncer struct {
	url      string
	interval time.Duration
	client   *http.Client
	store    *state.Store
	log      zerolog.Logger
}

// New builds a syncer polling url every interval.
func New(url string, interval time.Duration, store *state.Store, log zerolog.Logger) *Syncer {
	return &Syncer{
		url:      url,
		interval: interval,
		client:   &http.Client{Timeout: 5 * time.Second},
		store:    store,
		log:      log,
	}
}

// Run polls until the context is canceled. Fetch and parse failures are
// logged and skipped; the previous state always stays intact until a whole
// new state has been accepted.
func (s *Syncer) Run(ctx context.Context) error {
	s.log.Info().Str("url", s.url).Dur("interval", s.interval).Msg("remote sync started")
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			if err := s.syncOnce(ctx); err != nil {
				s.log.Warn().Err(err).Msg("remote sync failed; keeping current state")
			}
		}
	}
}

// syncOnce fetches, validates, and conditionally applies one state document.
func (s *Syncer) syncOnce(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url, nil)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("fetch: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("fetch: unexpected status %s", resp.Status)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBody))
	if err != nil {
		return fmt.Errorf("read body: %w", err)
	}

	// Parse into a fresh value first: a malformed document is rejected
	// wholesale, never partially applied.
	var next state.State
	if err := json.Unmarshal(body, &next); err != nil {
		return fmt.Errorf("parse state: %w", err)
	}

	if wrote := s.store.Update(func(st *state.State) { *st = next }); wrote {
		s.log.Debug().Msg("state updated from remote")
	}
	return nil
}
