package api

import (
	"context"

	"github.com/dromero87/superheroes-cli/internal/client/models"
)

// Client is the API contract against the superheroes backend. All calls are
// credentialed: whatever session cookie the server issued is attached
// automatically by the implementation.
type Client interface {
	Close() error
	Register(ctx context.Context, form models.RegistrationForm) error
	Login(ctx context.Context, creds models.Credentials) error
	Logout(ctx context.Context) error
	Profile(ctx context.Context) (models.Profile, error)
	Superheroes(ctx context.Context) ([]models.Superhero, error)
}
