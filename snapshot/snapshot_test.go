package snapshot

import (
	"bytes"
	"encoding/json"
	"io/ioutil"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/xyths/gatecoin/gatecoin"
	"github.com/xyths/gatecoin/types"
	"github.com/xyths/hs"
	"go.uber.org/zap"
)

const balancesPayload = `{
	"responseStatus": {"message": "OK"},
	"balances": [
		{"currency": "usd", "balance": 1000.5, "availableBalance": 900.5, "pendingIncoming": 3, "pendingOutgoing": 1,
		 "openOrder": 100, "pledging": 0, "isDigital": false},
		{"currency": "BTC", "balance": "0.25", "availableBalance": "0.25", "pendingIncoming": 0, "pendingOutgoing": 0,
		 "openOrder": 0, "pledging": 0, "isDigital": true}
	]
}`

func testClient(t *testing.T, payload string) *gatecoin.Client {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(payload))
	}))
	t.Cleanup(srv.Close)
	return gatecoin.New("public", "secret", srv.URL, nil)
}

func TestBalances(t *testing.T) {
	ex := testClient(t, balancesPayload)
	conf := hs.ExchangeConf{Name: "gatecoin", Label: "main"}
	now := time.Date(2021, 1, 1, 8, 0, 0, 0, time.FixedZone("HKT", 8*3600))

	balances, err := Balances(ex, conf, now)
	require.NoError(t, err)
	require.Equal(t, []types.Balance{
		{Exchange: "gatecoin", Account: "main", Currency: "USD", Balance: "1000.5", Available: "900.5",
			Pending: "2", OpenOrder: "100", IsDigital: false, Time: "2021-01-01T00:00:00Z"},
		{Exchange: "gatecoin", Account: "main", Currency: "BTC", Balance: "0.25", Available: "0.25",
			Pending: "0", OpenOrder: "0", IsDigital: true, Time: "2021-01-01T00:00:00Z"},
	}, balances)
}

func TestBalances_Failed(t *testing.T) {
	ex := testClient(t, `{"responseStatus": {"errorCode": "1005", "message": "Unauthorized"}}`)
	_, err := Balances(ex, hs.ExchangeConf{}, time.Now())
	require.Error(t, err)
	require.Contains(t, err.Error(), "Unauthorized")
}

func TestWrite(t *testing.T) {
	balances := []types.Balance{
		{Exchange: "gatecoin", Account: "main", Currency: "USD", Balance: "1"},
		{Exchange: "gatecoin", Account: "main", Currency: "BTC", Balance: "2"},
	}
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, balances))

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	require.Len(t, lines, 2)
	for i, line := range lines {
		var b types.Balance
		require.NoError(t, json.Unmarshal([]byte(line), &b))
		require.Equal(t, balances[i], b)
	}
}

func testSnapshot(t *testing.T, payload string) *Snapshot {
	return &Snapshot{
		config: Config{
			Exchange: hs.ExchangeConf{Name: "gatecoin", Label: "main"},
			Output:   filepath.Join(t.TempDir(), "balances.jsonl"),
		},
		Sugar: zap.NewNop().Sugar(),
		ex:    testClient(t, payload),
	}
}

func TestSnapshot_Log(t *testing.T) {
	s := testSnapshot(t, balancesPayload)
	require.NoError(t, s.Log())
	require.NoError(t, s.Log())

	data, err := ioutil.ReadFile(s.config.Output)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSuffix(string(data), "\n"), "\n")
	require.Len(t, lines, 4)
	var b types.Balance
	require.NoError(t, json.Unmarshal([]byte(lines[2]), &b))
	require.Equal(t, "USD", b.Currency)
}

func TestSnapshot_LogFailureLeavesNoFile(t *testing.T) {
	s := testSnapshot(t, `{"responseStatus": {"errorCode": "1005", "message": "Unauthorized"}}`)
	require.Error(t, s.Log())

	_, err := os.Stat(s.config.Output)
	require.True(t, os.IsNotExist(err))
}
