package history

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xyths/gatecoin/types"
)

func TestSummarize(t *testing.T) {
	trades := []types.Trade{
		{Pair: "ETHBTC", Way: "Bid", Quantity: "2", Total: "-0.06", FeeAmount: "0.0001"},
		{Pair: "BTCUSD", Way: "Bid", Quantity: "1", Total: "-29000", FeeAmount: "10"},
		{Pair: "BTCUSD", Way: "Ask", Quantity: "0.5", Total: "15000", FeeAmount: "5.5"},
		{Pair: "BTCUSD", Way: "Ask", Quantity: "0.5", Total: "15500", FeeAmount: ""},
	}
	summaries := Summarize(trades)
	require.Len(t, summaries, 2)

	btc := summaries[0]
	require.Equal(t, "BTCUSD", btc.Pair)
	require.Equal(t, 3, btc.Trades)
	require.Equal(t, "1", btc.Bought.String())
	require.Equal(t, "1", btc.Sold.String())
	require.Equal(t, "1500", btc.Net.String())
	require.Equal(t, "15.5", btc.Fees.String())

	eth := summaries[1]
	require.Equal(t, "ETHBTC", eth.Pair)
	require.Equal(t, "-0.06", eth.Net.String())
}

func TestSummarize_Empty(t *testing.T) {
	require.Empty(t, Summarize(nil))
}

func TestWriteSummary(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteSummary(&buf, Summarize([]types.Trade{
		{Pair: "BTCUSD", Way: "Ask", Quantity: "0.5", Total: "15000", FeeAmount: "5"},
	})))
	require.Equal(t, "pair,trades,bought,sold,net,fees\nBTCUSD,1,0,0.5,15000,5\n", buf.String())
}
