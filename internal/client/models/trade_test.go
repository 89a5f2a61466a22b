package models

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func ptr(f float64) *float64 { return &f }

func TestTradeRequest_Validate(t *testing.T) {
	valid := TradeRequest{Symbol: "BTC", OrderType: OrderTypeMarket, OrderSide: OrderSideBuy, Quantity: 0.5}

	tests := []struct {
		name   string
		mutate func(r *TradeRequest)
		want   error
	}{
		{name: "valid market order", mutate: func(r *TradeRequest) {}},
		{name: "valid limit order", mutate: func(r *TradeRequest) { r.OrderType = OrderTypeLimit; r.Price = ptr(100) }},
		{name: "blank symbol", mutate: func(r *TradeRequest) { r.Symbol = "  " }, want: ErrMissingSymbol},
		{name: "unknown type", mutate: func(r *TradeRequest) { r.OrderType = "iceberg" }, want: ErrInvalidOrderType},
		{name: "unknown side", mutate: func(r *TradeRequest) { r.OrderSide = "hold" }, want: ErrInvalidOrderSide},
		{name: "zero quantity", mutate: func(r *TradeRequest) { r.Quantity = 0 }, want: ErrInvalidAmount},
		{name: "negative quantity", mutate: func(r *TradeRequest) { r.Quantity = -1 }, want: ErrInvalidAmount},
		{name: "NaN quantity", mutate: func(r *TradeRequest) { r.Quantity = math.NaN() }, want: ErrInvalidAmount},
		{name: "zero price", mutate: func(r *TradeRequest) { r.Price = ptr(0) }, want: ErrInvalidPrice},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := valid
			tt.mutate(&r)
			err := r.Validate()
			if tt.want == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tt.want)
		})
	}
}
