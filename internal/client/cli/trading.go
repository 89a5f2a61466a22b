package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/dmitrijs2005/tradedash/internal/client/models"
)

var (
	orderSides = []string{string(models.OrderSideBuy), string(models.OrderSideSell)}
	orderTypes = []string{
		string(models.OrderTypeMarket),
		string(models.OrderTypeLimit),
		string(models.OrderTypeStopLoss),
		string(models.OrderTypeTakeProfit),
	}
)

// Trade asks for the order details and places the order. Validation and
// backend failures are reported as notifications.
func (a *App) Trade(ctx context.Context) error {
	req, err := a.askOrder()
	if err != nil {
		return err
	}

	if c, ok := a.market.Coin(req.Symbol); ok && req.Quantity > 0 {
		fmt.Fprintf(a.out, "Est. price: %s  Est. total: %s\n", formatUSD(c.CurrentPrice), formatUSD(req.Quantity*c.CurrentPrice))
	}

	trade, err := a.trading.Execute(ctx, req)
	if err != nil {
		return reported(err)
	}
	fmt.Fprintf(a.out, "Trade #%d %s: %s %s %s\n", trade.ID, trade.OrderStatus, trade.OrderSide,
		strconv.FormatFloat(trade.Quantity, 'f', -1, 64), strings.ToUpper(trade.Symbol))
	return nil
}

func (a *App) askOrder() (models.TradeRequest, error) {
	var req models.TradeRequest

	symbol, err := getSimpleText(a.reader, "Coin symbol (e.g. BTC)", a.out)
	if err != nil {
		return req, err
	}
	if c, ok := a.market.Coin(symbol); ok {
		symbol = c.Symbol
	}
	req.Symbol = strings.ToUpper(symbol)

	side, err := GetChoice(a.reader, "Side", orderSides, string(models.OrderSideBuy), a.out)
	if err != nil {
		return req, err
	}
	req.OrderSide = models.OrderSide(side)

	kind, err := GetChoice(a.reader, "Order type", orderTypes, string(models.OrderTypeMarket), a.out)
	if err != nil {
		return req, err
	}
	req.OrderType = models.OrderType(kind)

	amount, err := getSimpleText(a.reader, "Amount in "+req.Symbol, a.out)
	if err != nil {
		return req, err
	}
	// unparsable input becomes 0 and is rejected as an invalid amount
	req.Quantity, _ = strconv.ParseFloat(amount, 64)

	if req.OrderType != models.OrderTypeMarket {
		text, err := getSimpleText(a.reader, "Price in USD", a.out)
		if err != nil {
			return req, err
		}
		price, _ := strconv.ParseFloat(text, 64)
		req.Price = &price
	}
	return req, nil
}

// Trades lists recent trades; args[0] optionally sets the limit.
func (a *App) Trades(ctx context.Context, args []string) error {
	limit := 0
	if len(args) > 0 {
		n, err := strconv.Atoi(args[0])
		if err != nil || n <= 0 {
			fmt.Fprintln(a.out, "Usage: trades [limit]")
			return nil
		}
		limit = n
	}

	trades, err := a.trading.History(ctx, limit)
	if err != nil {
		return err
	}
	if len(trades) == 0 {
		fmt.Fprintln(a.out, "No trades yet.")
		return nil
	}

	tw := newTable(a.out)
	fmt.Fprintln(tw, "ID\tTIME\tSYMBOL\tSIDE\tTYPE\tQTY\tPRICE\tSTATUS")
	for _, t := range trades {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			t.ID, t.CreatedAt.Local().Format(time.DateTime), strings.ToUpper(t.Symbol), t.OrderSide, t.OrderType,
			strconv.FormatFloat(t.Quantity, 'f', -1, 64), formatUSDPtr(t.Price), t.OrderStatus)
	}
	return tw.Flush()
}

// ShowTrade prints a single trade by id.
func (a *App) ShowTrade(ctx context.Context, args []string) error {
	if len(args) == 0 {
		fmt.Fprintln(a.out, "Usage: showtrade <id>")
		return nil
	}
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		fmt.Fprintln(a.out, "Usage: showtrade <id>")
		return nil
	}

	t, err := a.trading.Get(ctx, id)
	if err != nil {
		return err
	}

	tw := newTable(a.out)
	fmt.Fprintf(tw, "ID\t%d\n", t.ID)
	fmt.Fprintf(tw, "Exchange\t%s\n", t.ExchangeName)
	fmt.Fprintf(tw, "Symbol\t%s\n", strings.ToUpper(t.Symbol))
	fmt.Fprintf(tw, "Side\t%s\n", t.OrderSide)
	fmt.Fprintf(tw, "Type\t%s\n", t.OrderType)
	fmt.Fprintf(tw, "Status\t%s\n", t.OrderStatus)
	fmt.Fprintf(tw, "Quantity\t%s (filled %s)\n",
		strconv.FormatFloat(t.Quantity, 'f', -1, 64), strconv.FormatFloat(t.FilledQuantity, 'f', -1, 64))
	fmt.Fprintf(tw, "Price\t%s\n", formatUSDPtr(t.Price))
	fmt.Fprintf(tw, "Average price\t%s\n", formatUSDPtr(t.AveragePrice))
	fmt.Fprintf(tw, "Fee\t%s\n", formatUSD(t.Fee))
	fmt.Fprintf(tw, "Total\t%s\n", formatUSDPtr(t.TotalCost))
	fmt.Fprintf(tw, "Created\t%s\n", t.CreatedAt.Local().Format(time.DateTime))
	if t.ExecutedAt != nil {
		fmt.Fprintf(tw, "Executed\t%s\n", t.ExecutedAt.Local().Format(time.DateTime))
	}
	return tw.Flush()
}
