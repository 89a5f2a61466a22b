package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"
)

// historyRows caps how many price history points the coin command prints.
const historyRows = 10

var errNoCoins = errors.New("no market data available yet")

// Prices prints the latest snapshot. An empty snapshot is fetched on the
// spot; a stale one is printed with a note about the failed refresh.
func (a *App) Prices(ctx context.Context) error {
	coins := a.market.Coins()
	if len(coins) == 0 {
		if err := a.market.Refresh(ctx); err != nil {
			return err
		}
		coins = a.market.Coins()
	}
	if len(coins) == 0 {
		return errNoCoins
	}

	tw := newTable(a.out)
	fmt.Fprintln(tw, "SYMBOL\tNAME\tPRICE\t24H")
	for _, c := range coins {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", strings.ToUpper(c.Symbol), c.Name, formatUSD(c.CurrentPrice), formatChange(c.PriceChangePercentage24h))
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	if err := a.market.LastError(); err != nil {
		fmt.Fprintf(a.out, "Prices as of %s; latest refresh failed: %v\n", humanize.Time(a.market.UpdatedAt()), err)
	}
	return nil
}

// Coin prints one coin with its recent price history. args[0] may be a
// symbol or a coin id from the snapshot.
func (a *App) Coin(ctx context.Context, args []string) error {
	if len(args) == 0 {
		fmt.Fprintln(a.out, "Usage: coin <symbol>")
		return nil
	}

	symbol := args[0]
	if c, ok := a.market.Coin(symbol); ok {
		symbol = c.Symbol
	}

	d, err := a.market.CoinDetail(ctx, strings.ToUpper(symbol))
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "%s (%s)  %s  %s\n", d.Name, strings.ToUpper(d.Symbol), formatUSD(d.CurrentPrice), formatChange(d.PriceChangePercentage24h))
	if d.MarketCap != nil || d.Volume24h != nil {
		fmt.Fprintf(a.out, "Market cap: %s  Volume 24h: %s\n", formatUSDPtr(d.MarketCap), formatUSDPtr(d.Volume24h))
	}

	history := d.PriceHistory
	if len(history) > historyRows {
		history = history[len(history)-historyRows:]
	}
	if len(history) == 0 {
		return nil
	}

	tw := newTable(a.out)
	fmt.Fprintln(tw, "DATE\tPRICE")
	for _, p := range history {
		fmt.Fprintf(tw, "%s\t%s\n", p.Date, formatUSD(p.Price))
	}
	return tw.Flush()
}
