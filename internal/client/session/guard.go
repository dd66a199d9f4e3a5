package session

import (
	"context"
	"errors"

	"github.com/dromero87/superheroes-cli/internal/client/api"
	"github.com/dromero87/superheroes-cli/internal/logging"
)

var (
	// ErrNoSession means no local marker exists; the caller should send the
	// user to the login view without touching the network.
	ErrNoSession = errors.New("no local session")

	// ErrSessionExpired means the server rejected a session the client
	// thought it had; the marker has already been cleared.
	ErrSessionExpired = errors.New("session expired")
)

// markerStore is the slice of Store the guard needs. Tests substitute fakes.
type markerStore interface {
	Has(ctx context.Context) bool
	Clear(ctx context.Context) error
}

// Guard decides whether a protected view may proceed. The check is two-tier:
// a cheap local predicate first, then the protected action itself acts as the
// authoritative server check. The two tiers must never be collapsed: the
// hint alone can say "definitely out", never "definitely in".
type Guard struct {
	store markerStore
	log   logging.Logger
}

func NewGuard(store *Store, log logging.Logger) *Guard {
	return &Guard{store: store, log: log.With("component", "guard")}
}

// Protect runs fn only when a local session hint exists. Without a hint it
// returns ErrNoSession and fn is never called. When fn reports an
// authorization failure, the local state is cleared and ErrSessionExpired is
// returned; any other failure passes through unchanged.
func (g *Guard) Protect(ctx context.Context, fn func(context.Context) error) error {
	if !g.store.Has(ctx) {
		return ErrNoSession
	}

	err := fn(ctx)
	if err == nil {
		return nil
	}

	if errors.Is(err, api.ErrUnauthorized) {
		g.log.Warn(ctx, "server rejected the session, clearing local state")
		if cerr := g.store.Clear(ctx); cerr != nil {
			g.log.Error(ctx, "clearing session state failed", "error", cerr)
		}
		return ErrSessionExpired
	}

	return err
}
