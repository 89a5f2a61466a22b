package client

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/tradedash/internal/client/models"
	"github.com/dmitrijs2005/tradedash/internal/common"
)

const (
	pathRegister    = "/api/auth/register"
	pathLogin       = "/api/auth/login-json"
	pathCurrentUser = "/api/auth/me"
	pathPrices      = "/api/market/prices"
	pathTrades      = "/api/trading/trades"
)

var _ Client = (*HTTPClient)(nil)

func (c *HTTPClient) Register(ctx context.Context, req models.RegisterRequest) (models.APIUser, error) {
	var user models.APIUser
	err := c.Post(ctx, pathRegister, req, &user)
	return user, err
}

// Login exchanges credentials for an access token. A 2xx answer without a
// token is reported as a decode failure.
func (c *HTTPClient) Login(ctx context.Context, req models.LoginRequest) (models.TokenResponse, error) {
	var tok models.TokenResponse
	if err := c.Post(ctx, pathLogin, req, &tok); err != nil {
		return models.TokenResponse{}, err
	}
	if strings.TrimSpace(tok.AccessToken) == "" {
		return models.TokenResponse{}, &APIError{Kind: KindDecode, Message: msgBadBody, Err: common.ErrInvalidToken}
	}
	return tok, nil
}

func (c *HTTPClient) CurrentUser(ctx context.Context) (models.APIUser, error) {
	var user models.APIUser
	err := c.Get(ctx, pathCurrentUser, &user)
	return user, err
}

func (c *HTTPClient) Prices(ctx context.Context) ([]models.CoinPrice, error) {
	var prices []models.CoinPrice
	if err := c.Get(ctx, pathPrices, &prices); err != nil {
		return nil, err
	}
	return prices, nil
}

func (c *HTTPClient) CoinDetail(ctx context.Context, symbol string) (models.CoinDetail, error) {
	var detail models.CoinDetail
	err := c.Get(ctx, pathPrices+"/"+url.PathEscape(symbol), &detail)
	return detail, err
}

func (c *HTTPClient) ExecuteTrade(ctx context.Context, req models.TradeRequest) (models.Trade, error) {
	var trade models.Trade
	err := c.Post(ctx, pathTrades, req, &trade)
	return trade, err
}

func (c *HTTPClient) TradeHistory(ctx context.Context, limit int) ([]models.Trade, error) {
	q := url.Values{}
	q.Set("limit", strconv.Itoa(limit))
	var trades []models.Trade
	if err := c.Get(ctx, pathTrades+"?"+q.Encode(), &trades); err != nil {
		return nil, err
	}
	return trades, nil
}

func (c *HTTPClient) Trade(ctx context.Context, id int64) (models.Trade, error) {
	var trade models.Trade
	err := c.Get(ctx, fmt.Sprintf("%s/%d", pathTrades, id), &trade)
	return trade, err
}
