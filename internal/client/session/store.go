// Package session owns the client-observed session lifecycle: the durable
// login marker and the guard protecting authenticated views.
//
// The marker is a hint that a login succeeded previously. It keeps the client
// from attempting protected fetches for definitely-logged-out users, but it
// never authorizes anything on its own; the server-issued cookie does that,
// and every protected fetch must tolerate the server disagreeing.
package session

import (
	"bytes"
	"context"
	"database/sql"

	sessionrepo "github.com/dromero87/superheroes-cli/internal/client/repositories/session"
	"github.com/dromero87/superheroes-cli/internal/dbx"
	"github.com/dromero87/superheroes-cli/internal/logging"
)

// MarkerKey matches the key the web client keeps in browser storage, so both
// frontends share one vocabulary for "a login succeeded here".
const MarkerKey = "IsLogged"

const usernameKey = "username"

var markerValue = []byte("true")

// Store is the process-wide source of the local session hint. It is written
// only on confirmed login/logout responses (and by the guard when the server
// rejects a session outright).
type Store struct {
	db  *sql.DB
	log logging.Logger
}

func NewStore(db *sql.DB, log logging.Logger) *Store {
	return &Store{db: db, log: log.With("component", "session")}
}

func (s *Store) repo(db dbx.DBTX) sessionrepo.Repository {
	return sessionrepo.NewSQLiteRepository(db)
}

// Has reports whether the durable marker is present. It is a pure read and
// must never be the sole gate for data access.
func (s *Store) Has(ctx context.Context) bool {
	v, err := s.repo(s.db).Get(ctx, MarkerKey)
	if err != nil {
		s.log.Error(ctx, "reading session marker failed", "error", err)
		return false
	}
	return bytes.Equal(v, markerValue)
}

// MarkLoggedIn records a confirmed successful login, storing the marker and
// the username in one transaction. Call only after a 2xx login response.
func (s *Store) MarkLoggedIn(ctx context.Context, username string) error {
	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repo(tx)
		if err := repo.Set(ctx, MarkerKey, markerValue); err != nil {
			return err
		}
		return repo.Set(ctx, usernameKey, []byte(username))
	})
}

// Clear removes all durable session state. Call only after a confirmed 2xx
// logout response, or when the server has rejected the session.
func (s *Store) Clear(ctx context.Context) error {
	return s.repo(s.db).Clear(ctx)
}

// CurrentUser returns the username recorded at login, or "" when unknown.
func (s *Store) CurrentUser(ctx context.Context) string {
	v, err := s.repo(s.db).Get(ctx, usernameKey)
	if err != nil {
		s.log.Error(ctx, "reading session username failed", "error", err)
		return ""
	}
	return string(v)
}
