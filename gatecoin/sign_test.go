package gatecoin

import (
	"encoding/base64"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

const testURL = "https://api.gatecoin.com/v1/Reference/CurrencyPairs"

func TestSign(t *testing.T) {
	tests := []struct {
		method, url, contentType, timestamp, secret string
		want                                        string
	}{
		{GET, testURL, "", "1609459200.123", "secret", "9WmlgT2l647BtGYeFZiXctWGiPbb5HmtHIIGKqyVUcs="},
		{POST, "https://api.gatecoin.com/v1/Trade/Orders", MIMEJSON, "1609459200.000", "secret", "wCVZDdDqEWHqY+ptKqYWcDw1sUAYuC/DKkiVgYjLBEs="},
	}
	for _, tt := range tests {
		got := Sign(tt.method, tt.url, tt.contentType, tt.timestamp, tt.secret)
		require.Equal(t, tt.want, got, "%s %s", tt.method, tt.url)

		raw, err := base64.StdEncoding.DecodeString(got)
		require.NoError(t, err)
		require.Len(t, raw, 32)
	}
}

func TestSign_Deterministic(t *testing.T) {
	a := Sign(GET, testURL, "", "1609459200.123", "secret")
	b := Sign(GET, testURL, "", "1609459200.123", "secret")
	require.Equal(t, a, b)
}

func TestSign_EveryInputMatters(t *testing.T) {
	base := Sign(GET, testURL, "", "1609459200.123", "secret")
	variants := []string{
		Sign(POST, testURL, "", "1609459200.123", "secret"),
		Sign(GET, testURL+"x", "", "1609459200.123", "secret"),
		Sign(GET, testURL, MIMEJSON, "1609459200.123", "secret"),
		Sign(GET, testURL, "", "1609459200.124", "secret"),
		Sign(GET, testURL, "", "1609459200.123", "secret2"),
	}
	for i, v := range variants {
		require.NotEqual(t, base, v, "variant %d", i)
	}
}

func TestSign_CaseInsensitiveMessage(t *testing.T) {
	lower := Sign("get", strings.ToLower(testURL), "", "1609459200.123", "secret")
	upper := Sign(GET, strings.ToUpper(testURL), "", "1609459200.123", "secret")
	require.Equal(t, lower, upper)

	// the key is not lowercased
	require.NotEqual(t, Sign(GET, testURL, "", "1", "Secret"), Sign(GET, testURL, "", "1", "secret"))
}

func TestTimestamp(t *testing.T) {
	tests := map[string]time.Time{
		"1609459200.000": time.Unix(1609459200, 0),
		"1609459200.123": time.Unix(1609459200, 123456789),
		"1609459200.005": time.Unix(1609459200, 5*int64(time.Millisecond)),
		"1585793595.500": time.Unix(1585793595, 500*int64(time.Millisecond)),
	}
	for want, ts := range tests {
		require.Equal(t, want, Timestamp(ts))
	}
}

func TestContentType(t *testing.T) {
	require.Equal(t, "", contentType(GET))
	require.Equal(t, MIMEJSON, contentType(POST))
	require.Equal(t, MIMEJSON, contentType(DELETE))
}
