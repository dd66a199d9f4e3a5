package session

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dromero87/superheroes-cli/internal/client/api"
)

type fakeStore struct {
	has         bool
	clearCalled bool
	clearErr    error
}

func (f *fakeStore) Has(ctx context.Context) bool { return f.has }
func (f *fakeStore) Clear(ctx context.Context) error {
	f.clearCalled = true
	f.has = false
	return f.clearErr
}

func newGuard(store markerStore) *Guard {
	return &Guard{store: store, log: testLogger()}
}

func TestProtect_NoMarkerSkipsAction(t *testing.T) {
	store := &fakeStore{has: false}
	g := newGuard(store)

	called := false
	err := g.Protect(context.Background(), func(ctx context.Context) error {
		called = true
		return nil
	})

	require.ErrorIs(t, err, ErrNoSession)
	require.False(t, called, "protected action must not run without a marker")
	require.False(t, store.clearCalled)
}

func TestProtect_MarkerPresentRunsAction(t *testing.T) {
	store := &fakeStore{has: true}
	g := newGuard(store)

	called := false
	err := g.Protect(context.Background(), func(ctx context.Context) error {
		called = true
		return nil
	})

	require.NoError(t, err)
	require.True(t, called)
}

func TestProtect_UnauthorizedClearsAndSignalsExpiry(t *testing.T) {
	store := &fakeStore{has: true}
	g := newGuard(store)

	err := g.Protect(context.Background(), func(ctx context.Context) error {
		return api.ErrUnauthorized
	})

	require.ErrorIs(t, err, ErrSessionExpired)
	require.True(t, store.clearCalled)
}

func TestProtect_WrappedUnauthorizedAlsoClears(t *testing.T) {
	store := &fakeStore{has: true}
	g := newGuard(store)

	err := g.Protect(context.Background(), func(ctx context.Context) error {
		return fmt.Errorf("fetching profile: %w", api.ErrUnauthorized)
	})

	require.ErrorIs(t, err, ErrSessionExpired)
	require.True(t, store.clearCalled)
}

func TestProtect_OtherErrorsPassThrough(t *testing.T) {
	store := &fakeStore{has: true}
	g := newGuard(store)

	boom := errors.New("boom")
	err := g.Protect(context.Background(), func(ctx context.Context) error {
		return boom
	})

	require.ErrorIs(t, err, boom)
	require.False(t, store.clearCalled, "transport failures must not clear the marker")
}

func TestProtect_ClearFailureStillSignalsExpiry(t *testing.T) {
	store := &fakeStore{has: true, clearErr: errors.New("disk gone")}
	g := newGuard(store)

	err := g.Protect(context.Background(), func(ctx context.Context) error {
		return api.ErrUnauthorized
	})

	require.ErrorIs(t, err, ErrSessionExpired)
}
