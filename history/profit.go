package history

import (
	"context"
	"fmt"
	"io"
	"sort"

	"github.com/shopspring/decimal"
	"github.com/xyths/gatecoin/cmd/utils"
	"github.com/xyths/gatecoin/types"
)

// Summary aggregates the trades of one pair.
type Summary struct {
	Pair   string
	Trades int
	Bought decimal.Decimal // base currency
	Sold   decimal.Decimal
	Net    decimal.Decimal // quote currency, sum of signed totals
	Fees   decimal.Decimal
}

// Summarize groups trades by pair, sorted by pair. Unparsable amounts count as zero.
func Summarize(trades []types.Trade) []Summary {
	byPair := make(map[string]*Summary)
	for _, t := range trades {
		s, ok := byPair[t.Pair]
		if !ok {
			s = &Summary{Pair: t.Pair}
			byPair[t.Pair] = s
		}
		s.Trades++
		quantity, _ := decimal.NewFromString(t.Quantity)
		total, _ := decimal.NewFromString(t.Total)
		fee, _ := decimal.NewFromString(t.FeeAmount)
		switch t.Way {
		case "Bid":
			s.Bought = s.Bought.Add(quantity)
		case "Ask":
			s.Sold = s.Sold.Add(quantity)
		}
		s.Net = s.Net.Add(total)
		s.Fees = s.Fees.Add(fee)
	}
	summaries := make([]Summary, 0, len(byPair))
	for _, s := range byPair {
		summaries = append(summaries, *s)
	}
	sort.Slice(summaries, func(i, j int) bool { return summaries[i].Pair < summaries[j].Pair })
	return summaries
}

// Profit prints the summary of the stored trades between start and end.
func (h *History) Profit(ctx context.Context, start, end string, out io.Writer) error {
	startTime, endTime, err := utils.ParseStartEndTime(start, end)
	if err != nil {
		h.Sugar.Error(err)
		return err
	}
	trades, err := h.getTrades(ctx, startTime, endTime)
	if err != nil {
		h.Sugar.Errorf("error when getTrades: %s", err)
		return err
	}
	return WriteSummary(out, Summarize(trades))
}

func WriteSummary(out io.Writer, summaries []Summary) error {
	if _, err := fmt.Fprintln(out, "pair,trades,bought,sold,net,fees"); err != nil {
		return err
	}
	for _, s := range summaries {
		if _, err := fmt.Fprintf(out, "%s,%d,%s,%s,%s,%s\n", s.Pair, s.Trades, s.Bought, s.Sold, s.Net, s.Fees); err != nil {
			return err
		}
	}
	return nil
}
