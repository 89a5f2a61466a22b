package services

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/dmitrijs2005/tradedash/internal/client/client"
	"github.com/dmitrijs2005/tradedash/internal/client/models"
	"github.com/dmitrijs2005/tradedash/internal/logging"
)

// DefaultPollInterval is how often Watch refreshes prices.
const DefaultPollInterval = 60 * time.Second

// MarketService keeps the latest price snapshot. A failed refresh keeps the
// previous coins and records the error, so the view never goes blank.
type MarketService struct {
	api    client.MarketAPI
	logger logging.Logger

	mu        sync.RWMutex
	coins     []models.CoinPrice
	history   map[string][]models.PricePoint
	lastErr   error
	loading   bool
	updatedAt time.Time
}

func NewMarketService(api client.MarketAPI, logger logging.Logger) *MarketService {
	if logger == nil {
		logger = logging.Discard()
	}
	return &MarketService{
		api:     api,
		logger:  logger,
		history: make(map[string][]models.PricePoint),
		loading: true,
	}
}

// Refresh fetches prices once and updates the snapshot.
func (m *MarketService) Refresh(ctx context.Context) error {
	m.mu.Lock()
	m.loading = true
	m.mu.Unlock()

	coins, err := m.api.Prices(ctx)

	m.mu.Lock()
	defer m.mu.Unlock()
	m.loading = false
	if err != nil {
		m.lastErr = err
		m.logger.Warn(ctx, "failed to fetch market prices", "error", err)
		return err
	}
	m.coins = coins
	m.lastErr = nil
	m.updatedAt = time.Now()
	return nil
}

// Watch refreshes immediately and then every interval until ctx is done.
// onUpdate, if set, runs after each refresh attempt.
func (m *MarketService) Watch(ctx context.Context, interval time.Duration, onUpdate func(error)) {
	if interval <= 0 {
		interval = DefaultPollInterval
	}

	poll := func() {
		err := m.Refresh(ctx)
		if onUpdate != nil {
			onUpdate(err)
		}
	}

	poll()

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			poll()
		case <-ctx.Done():
			return
		}
	}
}

// Coins returns a copy of the latest snapshot.
func (m *MarketService) Coins() []models.CoinPrice {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]models.CoinPrice, len(m.coins))
	copy(out, m.coins)
	return out
}

// Coin looks a coin up by id or, failing that, by symbol (case-insensitive).
func (m *MarketService) Coin(idOrSymbol string) (models.CoinPrice, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, c := range m.coins {
		if c.ID == idOrSymbol {
			return c, true
		}
	}
	for _, c := range m.coins {
		if strings.EqualFold(c.Symbol, idOrSymbol) {
			return c, true
		}
	}
	return models.CoinPrice{}, false
}

// CoinDetail fetches a coin with its price history and caches the history
// under the coin id.
func (m *MarketService) CoinDetail(ctx context.Context, symbol string) (models.CoinDetail, error) {
	detail, err := m.api.CoinDetail(ctx, symbol)
	if err != nil {
		return models.CoinDetail{}, err
	}
	m.mu.Lock()
	m.history[detail.ID] = detail.PriceHistory
	m.mu.Unlock()
	return detail, nil
}

// PriceHistory returns the history cached by the last CoinDetail for id.
func (m *MarketService) PriceHistory(id string) []models.PricePoint {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.history[id]
}

func (m *MarketService) LastError() error {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.lastErr
}

func (m *MarketService) Loading() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.loading
}

func (m *MarketService) UpdatedAt() time.Time {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.updatedAt
}
