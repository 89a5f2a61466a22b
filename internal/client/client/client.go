package client

import (
	"context"

	"github.com/dmitrijs2005/tradedash/internal/client/models"
)

// AuthAPI is the slice of the backend used by the session lifecycle.
type AuthAPI interface {
	Register(ctx context.Context, req models.RegisterRequest) (models.APIUser, error)
	Login(ctx context.Context, req models.LoginRequest) (models.TokenResponse, error)
	CurrentUser(ctx context.Context) (models.APIUser, error)
}

// MarketAPI serves price data.
type MarketAPI interface {
	Prices(ctx context.Context) ([]models.CoinPrice, error)
	CoinDetail(ctx context.Context, symbol string) (models.CoinDetail, error)
}

// TradingAPI places and lists trades.
type TradingAPI interface {
	ExecuteTrade(ctx context.Context, req models.TradeRequest) (models.Trade, error)
	TradeHistory(ctx context.Context, limit int) ([]models.Trade, error)
	Trade(ctx context.Context, id int64) (models.Trade, error)
}

// Client is the full backend contract.
type Client interface {
	AuthAPI
	MarketAPI
	TradingAPI
	Close() error
}
