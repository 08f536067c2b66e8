package cli

import (
	"bufio"
	"context"
	"database/sql"
	"log"
	"os"

	"github.com/booshananamudara/zoura-mobile/internal/client/api"
	"github.com/booshananamudara/zoura-mobile/internal/client/cart"
	"github.com/booshananamudara/zoura-mobile/internal/client/catalog"
	"github.com/booshananamudara/zoura-mobile/internal/client/checkout"
	"github.com/booshananamudara/zoura-mobile/internal/client/config"
	"github.com/booshananamudara/zoura-mobile/internal/client/feed"
	"github.com/booshananamudara/zoura-mobile/internal/client/models"
	"github.com/booshananamudara/zoura-mobile/internal/client/orders"
	"github.com/booshananamudara/zoura-mobile/internal/client/session"
	"github.com/booshananamudara/zoura-mobile/internal/client/state"
	"github.com/booshananamudara/zoura-mobile/internal/logging"

	_ "modernc.org/sqlite"
)

// App holds the wired-up client services and the interactive session state.
type App struct {
	config   *config.Config
	db       *sql.DB
	session  *session.Service
	catalog  *catalog.Service
	cart     *cart.Service
	checkout *checkout.Flow
	feed     *feed.Service
	orders   *orders.Service
	reader   *bufio.Reader

	products   []models.Product
	feedOffset int
}

// NewApp opens the local state database and constructs the service graph.
// The sqlite-backed token store doubles as the API client's token source,
// so every request reads the freshest persisted token.
func NewApp(ctx context.Context, c *config.Config, logger logging.Logger) (*App, error) {
	db, err := state.Open(ctx, c.StateDBPath)
	if err != nil {
		log.Printf("error initializing database: %s", err.Error())
		return nil, err
	}

	store := state.NewSQLiteStore(db)
	apiClient := api.NewHTTPClient(c.BaseURL, c.RequestTimeout, store)

	sess := session.New(apiClient, store, logger)
	cartStore := cart.New(apiClient, store, logger)

	return &App{
		config:   c,
		db:       db,
		session:  sess,
		catalog:  catalog.NewService(apiClient),
		cart:     cartStore,
		checkout: checkout.NewFlow(cartStore, logger),
		feed:     feed.New(apiClient, sess),
		orders:   orders.New(apiClient),
		reader:   bufio.NewReader(os.Stdin),
	}, nil
}

func (a *App) isLoggedIn() bool {
	return a.session.User() != nil
}

func (a *App) getStatus() string {
	if u := a.session.User(); u != nil {
		return "(" + u.Name + ")"
	}
	return ""
}

// Run restores the previous session (silently discarding expired or invalid
// tokens), primes the cart mirror, and starts the REPL. It blocks until the
// user exits.
func (a *App) Run(ctx context.Context) {
	defer a.db.Close()

	a.session.Restore(ctx)
	if a.isLoggedIn() {
		_ = a.cart.Fetch(ctx)
	}

	log.Println("Welcome to Zoura CLI (type 'help' for commands)")
	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.getStatus, scanner)
}
