package services

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/tradedash/internal/client/client"
	"github.com/dmitrijs2005/tradedash/internal/client/models"
	"github.com/dmitrijs2005/tradedash/internal/logging"
)

// DefaultHistoryLimit is used when History is called without a positive limit.
const DefaultHistoryLimit = 50

// TradingService validates orders locally and forwards them to the backend.
type TradingService struct {
	api      client.TradingAPI
	notifier Notifier
	logger   logging.Logger
}

func NewTradingService(api client.TradingAPI, notifier Notifier, logger logging.Logger) *TradingService {
	if notifier == nil {
		notifier = nopNotifier{}
	}
	if logger == nil {
		logger = logging.Discard()
	}
	return &TradingService{api: api, notifier: notifier, logger: logger}
}

// Execute places an order. Invalid orders are rejected with a validation
// APIError before any network call.
func (t *TradingService) Execute(ctx context.Context, req models.TradeRequest) (models.Trade, error) {
	if err := req.Validate(); err != nil {
		title := "Invalid order"
		if errors.Is(err, models.ErrInvalidAmount) {
			title = "Invalid amount"
		}
		t.notifier.Notify(ctx, Notification{
			Kind:        EventTradeRejected,
			Title:       title,
			Description: err.Error(),
			Variant:     VariantDestructive,
		})
		return models.Trade{}, client.NewValidationError(err)
	}

	trade, err := t.api.ExecuteTrade(ctx, req)
	if err != nil {
		t.logger.Warn(ctx, "trade failed", "symbol", req.Symbol, "error", err)
		t.notifier.Notify(ctx, Notification{
			Kind:        EventTradeFailed,
			Title:       "Trade failed",
			Description: describe(err, "Could not place the order"),
			Variant:     VariantDestructive,
		})
		return models.Trade{}, err
	}

	t.logger.Info(ctx, "trade placed", "trade_id", trade.ID, "symbol", req.Symbol, "side", req.OrderSide)
	t.notifier.Notify(ctx, Notification{
		Kind:        EventTradePlaced,
		Title:       orderTitle(req.OrderSide),
		Description: orderDescription(req),
		Variant:     VariantDefault,
	})
	return trade, nil
}

// History lists the user's recent trades, newest first as served.
func (t *TradingService) History(ctx context.Context, limit int) ([]models.Trade, error) {
	if limit <= 0 {
		limit = DefaultHistoryLimit
	}
	return t.api.TradeHistory(ctx, limit)
}

func (t *TradingService) Get(ctx context.Context, id int64) (models.Trade, error) {
	return t.api.Trade(ctx, id)
}

func orderTitle(side models.OrderSide) string {
	if side == models.OrderSideSell {
		return "Sell Order Placed"
	}
	return "Buy Order Placed"
}

func orderDescription(req models.TradeRequest) string {
	d := fmt.Sprintf("Successfully placed a %s order for %s %s",
		req.OrderSide, strconv.FormatFloat(req.Quantity, 'f', -1, 64), strings.ToUpper(req.Symbol))
	if req.Price != nil {
		d += " at $" + strconv.FormatFloat(*req.Price, 'f', -1, 64)
	}
	return d
}
