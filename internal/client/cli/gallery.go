package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/dromero87/superheroes-cli/internal/client/models"
	"github.com/dromero87/superheroes-cli/internal/client/session"
	"github.com/dromero87/superheroes-cli/internal/client/view"
)

// Gallery fetches the protected listing and renders it. The fetch runs under
// the session guard: with no local marker the request is never made, and an
// authoritative rejection expires the session locally before the message is
// shown. Any other failure lands the view in its error state with a reload
// hint; retrying is always the user's call.
func (a *App) Gallery(ctx context.Context) error {
	tok := a.galleryView.Begin()

	var heroes []models.Superhero
	err := a.guard.Protect(ctx, func(ctx context.Context) error {
		var err error
		heroes, err = a.galleryService.List(ctx)
		return err
	})

	switch {
	case err == nil:
		a.galleryView.Succeed(tok, heroes)
	case errors.Is(err, session.ErrNoSession):
		a.galleryView.Cancel()
		printlnFn(msgPleaseLogin)
		return err
	case errors.Is(err, session.ErrSessionExpired):
		a.galleryView.Cancel()
		a.userName = ""
		printlnFn(msgSessionExpired)
		return err
	default:
		a.log.Error(ctx, "gallery fetch failed", "error", err)
		a.galleryView.Fail(tok, msgGalleryFailed)
	}

	a.renderGallery()
	return err
}

// Reload repeats the gallery fetch on explicit user request.
func (a *App) Reload(ctx context.Context) error {
	return a.Gallery(ctx)
}

// Whoami resolves the display name behind the current session, under the
// guard so an expired session is noticed here too.
func (a *App) Whoami(ctx context.Context) error {
	var name string
	err := a.guard.Protect(ctx, func(ctx context.Context) error {
		var err error
		name, err = a.profileService.DisplayName(ctx)
		return err
	})

	switch {
	case err == nil:
		a.userName = name
		printlnFn(name)
	case errors.Is(err, session.ErrNoSession):
		printlnFn(msgPleaseLogin)
	case errors.Is(err, session.ErrSessionExpired):
		a.userName = ""
		printlnFn(msgSessionExpired)
	default:
		a.log.Error(ctx, "whoami failed", "error", err)
	}
	return err
}

// renderGallery prints the gallery according to its view state.
func (a *App) renderGallery() {
	switch a.galleryView.State() {
	case view.StateError:
		printlnFn(a.galleryView.Message())
		printlnFn(msgReloadHint)

	case view.StateSuccess:
		heroes := a.galleryView.Data()
		if len(heroes) == 0 {
			printlnFn(msgGalleryEmpty)
			return
		}
		printlnFn(msgGalleryTitle)
		for _, h := range heroes {
			printlnFn(fmt.Sprintf("  %d. %s  (%s)", h.ID, h.Superhero, h.Image))
		}
	}
}
