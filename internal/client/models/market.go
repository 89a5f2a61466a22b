package models

// CoinPrice is one row of GET /api/market/prices.
type CoinPrice struct {
	ID                       string   `json:"id"`
	Symbol                   string   `json:"symbol"`
	Name                     string   `json:"name"`
	CurrentPrice             float64  `json:"current_price"`
	PriceChangePercentage24h float64  `json:"price_change_percentage_24h"`
	MarketCap                *float64 `json:"market_cap,omitempty"`
	Volume24h                *float64 `json:"volume_24h,omitempty"`
}

// PricePoint is a single sample of a coin's price history.
type PricePoint struct {
	Date  string  `json:"date"`
	Price float64 `json:"price"`
}

// CoinDetail is GET /api/market/prices/{symbol}: the price row plus history.
type CoinDetail struct {
	CoinPrice
	PriceHistory []PricePoint `json:"price_history"`
}
