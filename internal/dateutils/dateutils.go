// Package dateutils parses Nexo ledger timestamps and formats them for the
// CoinTracker import schema.
package dateutils

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"time"
)

const (
	// LayoutLedger is the layout of the Nexo "Date / Time" column.
	LayoutLedger = "2006-01-02 15:04:05"
	// LayoutCointracker is the layout of the CoinTracker "Date" column.
	LayoutCointracker = "01/02/2006 15:04:05"
)

// ErrInvalidTimestamp is wrapped by every ParseLedgerTimestamp failure.
var ErrInvalidTimestamp = errors.New("timestamp does not match YYYY-MM-DD HH:MM:SS")

var ledgerTimestamp = regexp.MustCompile(`(\d+)-(\d+)-(\d+)\s+(\d+):(\d+):(\d+)`)

// ParseLedgerTimestamp extracts year, month, day, hour, minute and second from
// a "Date / Time" value. The six groups are located by pattern, so surrounding
// text is tolerated, but a value without them or with out-of-range components
// (month 13, 25:00:00, February 30) is rejected. The result is in UTC.
func ParseLedgerTimestamp(value string) (time.Time, error) {
	m := ledgerTimestamp.FindStringSubmatch(value)
	if m == nil {
		return time.Time{}, ErrInvalidTimestamp
	}

	parts := make([]int, 6)
	for i := range parts {
		n, err := strconv.Atoi(m[i+1])
		if err != nil {
			return time.Time{}, fmt.Errorf("%w: %v", ErrInvalidTimestamp, err)
		}
		parts[i] = n
	}

	t := time.Date(parts[0], time.Month(parts[1]), parts[2], parts[3], parts[4], parts[5], 0, time.UTC)

	// time.Date normalises overflow; a round trip that changes any component
	// means the input was out of range.
	if t.Year() != parts[0] || int(t.Month()) != parts[1] || t.Day() != parts[2] ||
		t.Hour() != parts[3] || t.Minute() != parts[4] || t.Second() != parts[5] {
		return time.Time{}, fmt.Errorf("%w: component out of range", ErrInvalidTimestamp)
	}
	return t, nil
}

// FormatCointracker renders t as MM/DD/YYYY HH:MM:SS.
func FormatCointracker(t time.Time) string {
	return t.Format(LayoutCointracker)
}
