// Package services contains application services for the superheroes client.
// This file defines the authentication service: registration, cookie-session
// login/logout, and the durable marker discipline around them.
package services

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"

	"github.com/dromero87/superheroes-cli/internal/client/api"
	"github.com/dromero87/superheroes-cli/internal/client/models"
	"github.com/dromero87/superheroes-cli/internal/common"
	"github.com/dromero87/superheroes-cli/internal/logging"
)

var (
	// ErrIncompleteForm means a required registration field is empty.
	ErrIncompleteForm = errors.New("all fields are required")

	// ErrSubmissionInFlight means a credential submission is already running;
	// the caller should wait for it instead of firing another.
	ErrSubmissionInFlight = errors.New("submission already in flight")
)

// AuthService defines credential and session-marker operations.
//
// Contract:
//   - Register: create an account; success establishes no session.
//   - Login: authenticate; the durable marker is set only on a confirmed
//     2xx response, after the transport has stored the session cookie.
//   - Logout: invalidate the server session; the marker is cleared only on
//     a confirmed 2xx, so a failed logout leaves both sides untouched.
//   - HasLocalSession / CurrentUser: pure reads of the durable hint.
//
// All methods must honor context cancellation/timeouts.
type AuthService interface {
	Register(ctx context.Context, form models.RegistrationForm) error
	Login(ctx context.Context, username string, password []byte) error
	Logout(ctx context.Context) error
	HasLocalSession(ctx context.Context) bool
	CurrentUser(ctx context.Context) string
	Close(ctx context.Context) error
}

// sessionStore is the slice of session.Store the service needs.
type sessionStore interface {
	Has(ctx context.Context) bool
	MarkLoggedIn(ctx context.Context, username string) error
	Clear(ctx context.Context) error
	CurrentUser(ctx context.Context) string
}

type authService struct {
	client   api.Client
	store    sessionStore
	log      logging.Logger
	inFlight atomic.Bool
}

// NewAuthService constructs an AuthService bound to the given API client and
// session store.
func NewAuthService(client api.Client, store sessionStore, log logging.Logger) AuthService {
	return &authService{client: client, store: store, log: log.With("component", "auth")}
}

// Register submits the registration form. Presence of every field is checked
// here (the CLI's stand-in for required inputs); format validation is the
// server's business.
func (a *authService) Register(ctx context.Context, form models.RegistrationForm) error {
	if !form.IsComplete() {
		return ErrIncompleteForm
	}
	if !a.inFlight.CompareAndSwap(false, true) {
		return ErrSubmissionInFlight
	}
	defer a.inFlight.Store(false)

	if err := a.client.Register(ctx, form); err != nil {
		return fmt.Errorf("register error: %w", err)
	}
	a.log.Info(ctx, "account created", "username", form.Username)
	return nil
}

// Login authenticates against the server. Only after a confirmed success is
// the durable marker written; the password slice is wiped before returning.
func (a *authService) Login(ctx context.Context, username string, password []byte) error {
	if !a.inFlight.CompareAndSwap(false, true) {
		return ErrSubmissionInFlight
	}
	defer a.inFlight.Store(false)
	defer common.WipeByteArray(password)

	creds := models.Credentials{Username: username, Password: string(password)}
	if err := a.client.Login(ctx, creds); err != nil {
		return fmt.Errorf("login error: %w", err)
	}

	if err := a.store.MarkLoggedIn(ctx, username); err != nil {
		return fmt.Errorf("recording session marker: %w", err)
	}
	a.log.Info(ctx, "logged in", "username", username)
	return nil
}

// Logout asks the server to invalidate the session. The marker survives any
// failure: better to let the user retry than to desynchronize local state
// from a session the server still honors.
func (a *authService) Logout(ctx context.Context) error {
	if err := a.client.Logout(ctx); err != nil {
		return fmt.Errorf("logout error: %w", err)
	}

	if err := a.store.Clear(ctx); err != nil {
		return fmt.Errorf("clearing session marker: %w", err)
	}
	a.log.Info(ctx, "logged out")
	return nil
}

// HasLocalSession reports the durable hint. It never authorizes anything.
func (a *authService) HasLocalSession(ctx context.Context) bool {
	return a.store.Has(ctx)
}

// CurrentUser returns the username recorded at login, or "".
func (a *authService) CurrentUser(ctx context.Context) string {
	return a.store.CurrentUser(ctx)
}

// Close releases resources held by the underlying client.
func (a *authService) Close(ctx context.Context) error {
	return a.client.Close()
}
