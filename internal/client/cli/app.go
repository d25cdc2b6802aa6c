// Package cli is the interactive front end: a REPL whose commands map onto
// the session store, the draft store and the API client. Handlers print the
// user-facing message of whatever error they get and never crash the loop.
package cli

import (
	"bufio"
	"context"
	"database/sql"
	"os"

	"github.com/bemgestar/bemgestar/internal/client/api"
	"github.com/bemgestar/bemgestar/internal/client/config"
	"github.com/bemgestar/bemgestar/internal/client/draft"
	"github.com/bemgestar/bemgestar/internal/client/session"
	"github.com/bemgestar/bemgestar/internal/client/storage"
	"github.com/bemgestar/bemgestar/internal/logging"

	_ "modernc.org/sqlite"
)

type App struct {
	config  *config.Config
	api     *api.Client
	session *session.Store
	drafts  *draft.Store
	db      *sql.DB
	reader  *bufio.Reader
	log     logging.Logger
}

func NewApp(cfg *config.Config) (*App, error) {
	ctx := context.Background()
	log := logging.NewDefault()

	db, err := storage.InitDatabase(ctx, cfg.DatabasePath)
	if err != nil {
		log.Error(ctx, "error initializing database", "error", err)
		return nil, err
	}

	apiClient := api.New(cfg.APIBaseURL, cfg.RequestTimeout, log)

	return &App{
		config:  cfg,
		api:     apiClient,
		session: session.NewStore(apiClient, db, log),
		drafts:  draft.NewStore(db, log),
		db:      db,
		reader:  bufio.NewReader(os.Stdin),
		log:     log,
	}, nil
}

func (a *App) Close() error {
	return a.db.Close()
}

func (a *App) Run(ctx context.Context) {
	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.getStatus, scanner)
}

func (a *App) isLoggedIn(ctx context.Context) bool {
	return a.session.CheckAuth(ctx)
}

// token reads the stored JWT for the next API call.
func (a *App) token(ctx context.Context) string {
	return a.session.JWT(ctx)
}

func (a *App) getStatus() string {
	ctx := context.Background()
	user := a.session.User(ctx)
	if user == nil {
		return ""
	}
	s := user.Username
	if a.session.TokenExpired(ctx) {
		s += " (sessão expirada)"
	}
	return s
}
