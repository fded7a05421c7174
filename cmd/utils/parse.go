package utils

import (
	"time"

	"github.com/pkg/errors"
)

const TimeLayout = "2006-01-02 15:04:05"

// ParseStartEndTime parses a UTC time range; start must come before end.
func ParseStartEndTime(start, end string) (startTime, endTime time.Time, err error) {
	startTime, err = time.ParseInLocation(TimeLayout, start, time.UTC)
	if err != nil {
		err = errors.Wrapf(err, "bad start time %q", start)
		return
	}
	endTime, err = time.ParseInLocation(TimeLayout, end, time.UTC)
	if err != nil {
		err = errors.Wrapf(err, "bad end time %q", end)
		return
	}
	if !startTime.Before(endTime) {
		err = errors.Errorf("start time(%s) must before end time(%s)", startTime.String(), endTime.String())
		return
	}
	return
}
