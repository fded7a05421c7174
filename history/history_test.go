package history

import (
	"bytes"
	"encoding/csv"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"github.com/xyths/gatecoin/gatecoin"
	"github.com/xyths/gatecoin/types"
	"github.com/xyths/hs"
)

func transaction(way string) gatecoin.TraderTransaction {
	return gatecoin.TraderTransaction{
		TransactionID:   42,
		TransactionTime: time.Unix(1609459200, 0).UTC(),
		AskOrderID:      "A42",
		BidOrderID:      "B42",
		Price:           decimal.RequireFromString("29000"),
		Quantity:        decimal.RequireFromString("0.5"),
		CurrencyPair:    "BTCUSD",
		Way:             way,
		FeeRole:         "Taker",
		FeeRate:         decimal.RequireFromString("0.0035"),
		FeeAmount:       decimal.RequireFromString("50.75"),
	}
}

func TestConvert(t *testing.T) {
	ask := Convert("main", transaction("Ask"))
	require.Equal(t, types.Trade{
		Id:        "main:42",
		TradeId:   42,
		OrderId:   "A42",
		Label:     "main",
		Pair:      "BTCUSD",
		Way:       "Ask",
		Price:     "29000",
		Quantity:  "0.5",
		Total:     "14500",
		Date:      time.Unix(1609459200, 0).UTC(),
		FeeRole:   "Taker",
		FeeRate:   "0.0035",
		FeeAmount: "50.75",
	}, ask)

	bid := Convert("main", transaction("Bid"))
	require.Equal(t, "B42", bid.OrderId)
	require.Equal(t, "-14500", bid.Total)

	unknown := Convert("main", transaction("Swap"))
	require.Equal(t, "", unknown.OrderId)
	require.Equal(t, "14500", unknown.Total)
}

func TestConvert_KeyedByLabel(t *testing.T) {
	// both sides of one trade between two stored accounts
	buyer := Convert("alice", transaction("Bid"))
	seller := Convert("bob", transaction("Ask"))
	require.Equal(t, buyer.TradeId, seller.TradeId)
	require.NotEqual(t, buyer.Id, seller.Id)
	require.Equal(t, "alice:42", buyer.Id)
	require.Equal(t, "bob:42", seller.Id)
}

func TestWriteCSV(t *testing.T) {
	trades := []types.Trade{
		Convert("main", transaction("Ask")),
		Convert("main", transaction("Bid")),
	}
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, trades))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)
	require.Equal(t, csvHeader, records[0])
	require.Equal(t, []string{"main", "2021-01-01 00:00:00", "BTCUSD", "Ask", "29000", "0.5", "14500", "Taker", "50.75", "42", "A42"}, records[1])
	require.Equal(t, "-14500", records[2][6])
	require.Equal(t, "B42", records[2][10])
}

func TestNew(t *testing.T) {
	h, err := New(Config{History: hs.HistoryConf{Interval: "1m"}})
	require.NoError(t, err)
	require.Equal(t, time.Minute, h.interval)

	_, err = New(Config{History: hs.HistoryConf{Interval: "soon"}})
	require.Error(t, err)
	_, err = New(Config{History: hs.HistoryConf{Interval: "0s"}})
	require.Error(t, err)
}
