package cli

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/dustin/go-humanize"
)

func formatUSD(v float64) string {
	if v < 0 {
		return "-$" + humanize.CommafWithDigits(-v, 2)
	}
	return "$" + humanize.CommafWithDigits(v, 2)
}

func formatUSDPtr(v *float64) string {
	if v == nil {
		return "-"
	}
	return formatUSD(*v)
}

func formatChange(pct float64) string {
	return fmt.Sprintf("%+.2f%%", pct)
}

func newTable(w io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
}
