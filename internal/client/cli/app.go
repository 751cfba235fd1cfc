package cli

import (
	"bufio"
	"context"
	"database/sql"
	"io"
	"os"

	"github.com/mkravchenko/linkvault/internal/client/api"
	"github.com/mkravchenko/linkvault/internal/client/config"
	"github.com/mkravchenko/linkvault/internal/client/models"
	"github.com/mkravchenko/linkvault/internal/client/repositories/session"
	"github.com/mkravchenko/linkvault/internal/client/services"
	"github.com/mkravchenko/linkvault/internal/logging"
)

// App is the popup orchestrator. It owns the UI state, the captured page,
// and the in-memory session for the lifetime of one run; nothing is shared
// across instances except through the session repository.
type App struct {
	config       *config.Config
	log          logging.Logger
	authService  services.AuthService
	vaultService services.VaultService
	sessions     session.Repository
	page         models.Page

	state  UIState
	reader *bufio.Reader
	out    io.Writer
	db     *sql.DB
}

func NewApp(ctx context.Context, cfg *config.Config, log logging.Logger) (*App, error) {
	db, err := session.Open(ctx, cfg.SessionDBPath)
	if err != nil {
		return nil, err
	}

	sessions := session.NewSQLiteRepository(db)
	apiClient := api.NewRESTClient(api.Options{
		IdentityEndpoint: cfg.IdentityEndpoint,
		StoreEndpoint:    cfg.StoreEndpoint,
		APIKey:           cfg.APIKey,
		ProjectID:        cfg.ProjectID,
		Timeout:          cfg.RequestTimeout,
	}, log)

	guard := services.NewSessionGuard(sessions, log)

	return &App{
		config:       cfg,
		log:          log,
		authService:  services.NewAuthService(apiClient, log),
		vaultService: services.NewVaultService(apiClient, guard, log),
		sessions:     sessions,
		page:         models.Page{Title: cfg.PageTitle, URL: cfg.PageURL},
		state:        UIState{View: ViewLogin, Selected: -1},
		reader:       bufio.NewReader(os.Stdin),
		out:          os.Stdout,
		db:           db,
	}, nil
}

// Run drives the popup until the user exits or input ends.
func (a *App) Run(ctx context.Context) {
	defer a.Close()
	a.startup(ctx)
	a.Root(ctx)
}

func (a *App) Close() {
	if a.db != nil {
		_ = a.db.Close()
	}
}

// startup restores the stored session and, when present, loads the vault
// list so the main view is immediately usable.
func (a *App) startup(ctx context.Context) {
	s, err := a.sessions.Load(ctx)
	if err != nil {
		a.log.Error(ctx, "failed to load session", "error", err)
	}
	a.state = InitialState(s)
	if s != nil {
		a.refreshVaults(ctx)
	}
}

func (a *App) isLoggedIn() bool {
	return a.state.View == ViewMain && a.state.Session != nil
}
