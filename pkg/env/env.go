// Package env reports what the running process may touch: a durable backing
// store and a navigable UI.
package env

import (
	"context"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"shopdata/pkg/storage"
)

// Environment is consulted before every storage or navigation attempt.
type Environment interface {
	StorageAvailable() bool
	NavigationAvailable() bool
}

// Static reports fixed answers.
type Static struct {
	Storage    bool
	Navigation bool
}

func (s Static) StorageAvailable() bool    { return s.Storage }
func (s Static) NavigationAvailable() bool { return s.Navigation }

// Probe derives storage availability from a backend. A nil backend means no
// durable storage; a backend implementing storage.Checker is asked on every
// call.
type Probe struct {
	Backend    storage.Backend
	Navigation bool
}

// StorageAvailable reports whether the backend can be used right now.
func (p Probe) StorageAvailable() bool {
	if p.Backend == nil {
		return false
	}
	if c, ok := p.Backend.(storage.Checker); ok {
		return c.Available()
	}
	return true
}

// NavigationAvailable reports whether redirects can be performed.
func (p Probe) NavigationAvailable() bool {
	return p.Navigation
}

// ProbeAll checks every named backend concurrently and returns the
// availability of each. A backend whose check has not answered when ctx is
// done is reported unavailable.
func ProbeAll(ctx context.Context, backends map[string]storage.Backend) map[string]bool {
	names := make([]string, 0, len(backends))
	for name := range backends {
		names = append(names, name)
	}
	results := make([]bool, len(names))
	g, gctx := errgroup.WithContext(ctx)
	for i, name := range names {
		i, name := i, name
		g.Go(func() error {
			done := make(chan bool, 1)
			go func() {
				done <- Probe{Backend: backends[name]}.StorageAvailable()
			}()
			select {
			case ok := <-done:
				results[i] = ok
				return nil
			case <-gctx.Done():
				return fmt.Errorf("probe %s: %w", name, gctx.Err())
			}
		})
	}
	if err := g.Wait(); err != nil {
		slog.Warn("storage probe incomplete", "err", err)
	}

	out := make(map[string]bool, len(names))
	for i, name := range names {
		out[name] = results[i]
		slog.Debug("storage probe", "backend", name, "available", results[i])
	}
	return out
}
