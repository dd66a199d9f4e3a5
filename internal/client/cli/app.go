package cli

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"os"

	"github.com/dromero87/superheroes-cli/internal/client/api"
	"github.com/dromero87/superheroes-cli/internal/client/config"
	"github.com/dromero87/superheroes-cli/internal/client/models"
	"github.com/dromero87/superheroes-cli/internal/client/services"
	"github.com/dromero87/superheroes-cli/internal/client/session"
	"github.com/dromero87/superheroes-cli/internal/client/storage"
	"github.com/dromero87/superheroes-cli/internal/client/view"
	"github.com/dromero87/superheroes-cli/internal/logging"

	_ "modernc.org/sqlite"
)

// sessionGuard is the guard surface the app needs; tests substitute fakes.
type sessionGuard interface {
	Protect(ctx context.Context, fn func(context.Context) error) error
}

// App holds the wired client and the per-view state the REPL renders from.
type App struct {
	config         *config.Config
	log            logging.Logger
	db             *sql.DB
	authService    services.AuthService
	profileService services.ProfileService
	galleryService services.GalleryService
	guard          sessionGuard

	// userName is the display name from the last profile fetch, "" when
	// unknown. It is decoration for the prompt, never an authority.
	userName string

	// regForm keeps the fields of a failed registration so a retry can
	// offer them as defaults. Reset only on a confirmed success.
	regForm *models.RegistrationForm

	galleryView *view.Model[[]models.Superhero]
	reader      *bufio.Reader
}

func NewApp(ctx context.Context, cfg *config.Config, log logging.Logger) (*App, error) {
	db, err := storage.Open(ctx, cfg.DatabasePath)
	if err != nil {
		return nil, fmt.Errorf("initializing local database: %w", err)
	}

	apiClient, err := api.NewHTTPClient(cfg.ServerEndpointAddr, cfg.RequestTimeout, log)
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	store := session.NewStore(db, log)

	return &App{
		config:         cfg,
		log:            log,
		db:             db,
		authService:    services.NewAuthService(apiClient, store, log),
		profileService: services.NewProfileService(apiClient, log),
		galleryService: services.NewGalleryService(apiClient, log),
		guard:          session.NewGuard(store, log),
		galleryView:    view.New[[]models.Superhero](),
		reader:         bufio.NewReader(os.Stdin),
	}, nil
}

// Run starts the REPL and blocks until the user exits.
func (a *App) Run(ctx context.Context) {
	defer func() {
		_ = a.authService.Close(ctx)
		_ = a.db.Close()
	}()

	printlnFn(msgWelcome)
	runREPL(ctx, a, a.getStatus, bufio.NewScanner(os.Stdin))
}

// isLoggedIn reflects the durable hint only; the server can still disagree
// on the next protected fetch.
func (a *App) isLoggedIn() bool {
	return a.authService.HasLocalSession(context.Background())
}

func (a *App) getStatus() string {
	s := a.userName
	if s == "" {
		s = a.authService.CurrentUser(context.Background())
	}
	if s == "" {
		return ""
	}
	return fmt.Sprintf("(%s)", s)
}

// fail logs full error detail and shows the user a short localized message.
func (a *App) fail(ctx context.Context, err error, msg string) {
	a.log.Error(ctx, "command failed", "error", err)
	printlnFn(msg)
}
