package gatecoin

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Sign returns the base64 HMAC-SHA256 of the lowercased method+url+contentType+timestamp.
// The whole message is lowercased, url included; the server verifies the same bytes.
func Sign(method, url, contentType, timestamp, secret string) string {
	message := strings.ToLower(method + url + contentType + timestamp)
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(message))
	return base64.StdEncoding.EncodeToString(mac.Sum(nil))
}

// Timestamp formats t as seconds since epoch with millisecond precision, e.g. 1609459200.123
func Timestamp(t time.Time) string {
	ms := t.UnixNano() / int64(time.Millisecond)
	return decimal.New(ms, -3).StringFixed(3)
}

func contentType(method string) string {
	if method == GET {
		return ""
	}
	return MIMEJSON
}
