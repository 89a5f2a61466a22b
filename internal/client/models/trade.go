package models

import (
	"errors"
	"strings"
	"time"
)

type OrderType string

const (
	OrderTypeMarket     OrderType = "market"
	OrderTypeLimit      OrderType = "limit"
	OrderTypeStopLoss   OrderType = "stop_loss"
	OrderTypeTakeProfit OrderType = "take_profit"
)

func (t OrderType) Valid() bool {
	switch t {
	case OrderTypeMarket, OrderTypeLimit, OrderTypeStopLoss, OrderTypeTakeProfit:
		return true
	}
	return false
}

type OrderSide string

const (
	OrderSideBuy  OrderSide = "buy"
	OrderSideSell OrderSide = "sell"
)

func (s OrderSide) Valid() bool {
	return s == OrderSideBuy || s == OrderSideSell
}

type OrderStatus string

const (
	OrderStatusPending         OrderStatus = "pending"
	OrderStatusFilled          OrderStatus = "filled"
	OrderStatusPartiallyFilled OrderStatus = "partially_filled"
	OrderStatusCancelled       OrderStatus = "cancelled"
	OrderStatusFailed          OrderStatus = "failed"
)

// Validation messages shown to the user when a trade is rejected locally.
var (
	ErrInvalidAmount    = errors.New("Please enter a valid amount.")
	ErrInvalidPrice     = errors.New("Please enter a valid price.")
	ErrMissingSymbol    = errors.New("Please choose a coin to trade.")
	ErrInvalidOrderType = errors.New("Unknown order type.")
	ErrInvalidOrderSide = errors.New("Order side must be buy or sell.")
)

// TradeRequest is the body of POST /api/trading/trades.
type TradeRequest struct {
	Symbol    string    `json:"symbol"`
	OrderType OrderType `json:"order_type"`
	OrderSide OrderSide `json:"order_side"`
	Quantity  float64   `json:"quantity"`
	Price     *float64  `json:"price,omitempty"`
}

// Validate checks the order before anything goes on the wire.
func (r TradeRequest) Validate() error {
	if strings.TrimSpace(r.Symbol) == "" {
		return ErrMissingSymbol
	}
	if !r.OrderType.Valid() {
		return ErrInvalidOrderType
	}
	if !r.OrderSide.Valid() {
		return ErrInvalidOrderSide
	}
	if !(r.Quantity > 0) {
		return ErrInvalidAmount
	}
	if r.Price != nil && !(*r.Price > 0) {
		return ErrInvalidPrice
	}
	return nil
}

// Trade is a trade record returned by the trading endpoints.
type Trade struct {
	ID             int64       `json:"id"`
	ExchangeName   string      `json:"exchange_name"`
	Symbol         string      `json:"symbol"`
	OrderType      OrderType   `json:"order_type"`
	OrderSide      OrderSide   `json:"order_side"`
	OrderStatus    OrderStatus `json:"order_status"`
	Price          *float64    `json:"price"`
	Quantity       float64     `json:"quantity"`
	FilledQuantity float64     `json:"filled_quantity"`
	AveragePrice   *float64    `json:"average_price"`
	Fee            float64     `json:"fee"`
	TotalCost      *float64    `json:"total_cost"`
	CreatedAt      time.Time   `json:"created_at"`
	ExecutedAt     *time.Time  `json:"executed_at"`
}
