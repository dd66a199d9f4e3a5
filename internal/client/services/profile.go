package services

import (
	"context"
	"errors"

	"github.com/dromero87/superheroes-cli/internal/client/api"
	"github.com/dromero87/superheroes-cli/internal/logging"
)

// AnonymousName is shown when the server does not provide a display name.
// It matches the web client's fallback.
const AnonymousName = "Usuario"

// ProfileService resolves who the current session belongs to. The endpoint
// is best-effort decoration for display, not a gate: transport failures
// degrade to the placeholder instead of failing the calling view. Only an
// authorization failure propagates, for the session guard to act on.
type ProfileService interface {
	DisplayName(ctx context.Context) (string, error)
}

type profileService struct {
	client api.Client
	log    logging.Logger
}

func NewProfileService(client api.Client, log logging.Logger) ProfileService {
	return &profileService{client: client, log: log.With("component", "profile")}
}

// DisplayName fetches the profile once, with no caching and no retry.
func (p *profileService) DisplayName(ctx context.Context) (string, error) {
	profile, err := p.client.Profile(ctx)
	if err != nil {
		if errors.Is(err, api.ErrUnauthorized) {
			return "", err
		}
		p.log.Warn(ctx, "profile fetch failed, using placeholder", "error", err)
		return AnonymousName, nil
	}

	if profile.Name == "" {
		return AnonymousName, nil
	}
	return profile.Name, nil
}
