package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestParseStartEndTime(t *testing.T) {
	start, end, err := ParseStartEndTime("2021-01-01 00:00:00", "2021-02-01 12:30:00")
	require.NoError(t, err)
	require.Equal(t, time.Date(2021, 1, 1, 0, 0, 0, 0, time.UTC), start)
	require.Equal(t, time.Date(2021, 2, 1, 12, 30, 0, 0, time.UTC), end)
}

func TestParseStartEndTime_Errors(t *testing.T) {
	tests := []struct {
		name       string
		start, end string
	}{
		{"bad start", "2021/01/01", "2021-02-01 00:00:00"},
		{"bad end", "2021-01-01 00:00:00", ""},
		{"reversed", "2021-02-01 00:00:00", "2021-01-01 00:00:00"},
		{"empty range", "2021-01-01 00:00:00", "2021-01-01 00:00:00"},
	}
	for _, tt := range tests {
		_, _, err := ParseStartEndTime(tt.start, tt.end)
		require.Error(t, err, tt.name)
	}
}
