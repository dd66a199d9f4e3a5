package services

import (
	"context"
	"fmt"

	"github.com/dromero87/superheroes-cli/internal/client/api"
	"github.com/dromero87/superheroes-cli/internal/client/models"
	"github.com/dromero87/superheroes-cli/internal/logging"
)

// GalleryService fetches the protected superhero listing. Items come back in
// server order; a failed fetch is surfaced to the view, which offers a
// user-triggered reload rather than retrying on its own.
type GalleryService interface {
	List(ctx context.Context) ([]models.Superhero, error)
}

type galleryService struct {
	client api.Client
	log    logging.Logger
}

func NewGalleryService(client api.Client, log logging.Logger) GalleryService {
	return &galleryService{client: client, log: log.With("component", "gallery")}
}

func (g *galleryService) List(ctx context.Context) ([]models.Superhero, error) {
	heroes, err := g.client.Superheroes(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetching superheroes: %w", err)
	}
	g.log.Debug(ctx, "gallery fetched", "count", len(heroes))
	return heroes, nil
}
