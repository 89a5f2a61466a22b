package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/dmitrijs2005/tradedash/internal/client/client"
	"github.com/dmitrijs2005/tradedash/internal/client/config"
	"github.com/dmitrijs2005/tradedash/internal/client/models"
	"github.com/dmitrijs2005/tradedash/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/tradedash/internal/client/services"
	"github.com/dmitrijs2005/tradedash/internal/filex"
	"github.com/dmitrijs2005/tradedash/internal/logging"
)

// DatabaseFile is the SQLite file created inside the data dir.
const DatabaseFile = "tradedash.db"

type sessionService interface {
	Init(ctx context.Context)
	Login(ctx context.Context, email, password string) error
	Signup(ctx context.Context, email, password, displayName string) error
	Logout(ctx context.Context)
	State() services.State
	User() (models.User, bool)
}

type marketService interface {
	Watch(ctx context.Context, interval time.Duration, onUpdate func(error))
	Refresh(ctx context.Context) error
	Coins() []models.CoinPrice
	Coin(idOrSymbol string) (models.CoinPrice, bool)
	CoinDetail(ctx context.Context, symbol string) (models.CoinDetail, error)
	LastError() error
	Loading() bool
	UpdatedAt() time.Time
}

type tradingService interface {
	Execute(ctx context.Context, req models.TradeRequest) (models.Trade, error)
	History(ctx context.Context, limit int) ([]models.Trade, error)
	Get(ctx context.Context, id int64) (models.Trade, error)
}

type App struct {
	config  *config.Config
	logger  logging.Logger
	session sessionService
	market  marketService
	trading tradingService
	notes   <-chan services.Notification
	closers []func() error
	reader  *bufio.Reader
	out     io.Writer
}

// NewApp opens the local database under cfg.DataDir and wires the services
// against the backend at cfg.APIBaseURL.
func NewApp(ctx context.Context, cfg *config.Config, logger logging.Logger) (*App, error) {
	if logger == nil {
		logger = logging.Discard()
	}

	dir, err := filex.EnsureDir(cfg.DataDir)
	if err != nil {
		return nil, err
	}

	db, err := client.InitDatabase(ctx, filepath.Join(dir, DatabaseFile))
	if err != nil {
		logger.Error(ctx, "error initializing database", "error", err)
		return nil, err
	}

	store := services.NewTokenStore(metadata.NewSQLiteRepository(db))
	api, err := client.NewHTTPClient(cfg.APIBaseURL, client.Options{
		Timeout: cfg.RequestTimeout,
		Tokens:  store,
		Logger:  logger,
	})
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	hub := services.NewBroadcaster(32, logger)
	notes, unsubscribe := hub.Subscribe()

	return &App{
		config:  cfg,
		logger:  logger,
		session: services.NewSessionManager(api, store, hub, logger),
		market:  services.NewMarketService(api, logger),
		trading: services.NewTradingService(api, hub, logger),
		notes:   notes,
		closers: []func() error{
			func() error { unsubscribe(); return nil },
			api.Close,
			db.Close,
		},
		reader: bufio.NewReader(os.Stdin),
		out:    os.Stdout,
	}, nil
}

// Run restores the stored session, starts the market watcher and blocks in
// the REPL until the user exits or ctx is canceled.
func (a *App) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	fmt.Fprintln(a.out, "Welcome to tradedash (type 'help' for commands)")

	a.session.Init(ctx)

	go a.market.Watch(ctx, a.config.MarketPollInterval, func(err error) {
		if err != nil {
			a.logger.Debug(ctx, "market poll failed", "error", err)
		}
	})

	runREPL(ctx, a, a.prompt, a.reader)
	return nil
}

// Close releases the database and the HTTP transport.
func (a *App) Close() error {
	var errs []error
	for _, c := range a.closers {
		if err := c(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func (a *App) isLoggedIn() bool {
	_, ok := a.session.User()
	return ok
}

// prompt prints pending notifications and returns the status shown in the
// prompt, e.g. "a@b.com authenticated".
func (a *App) prompt() string {
	a.drainNotifications()

	state := a.session.State()
	if u, ok := a.session.User(); ok {
		return fmt.Sprintf("%s %s", u.Email, state)
	}
	return string(state)
}

func (a *App) drainNotifications() {
	for {
		select {
		case n, ok := <-a.notes:
			if !ok {
				a.notes = nil
				return
			}
			printNotification(a.out, n)
		default:
			return
		}
	}
}

func printNotification(w io.Writer, n services.Notification) {
	mark := "*"
	if n.Variant == services.VariantDestructive {
		mark = "!"
	}
	if n.Description == "" {
		fmt.Fprintf(w, "%s %s\n", mark, n.Title)
		return
	}
	fmt.Fprintf(w, "%s %s: %s\n", mark, n.Title, n.Description)
}
