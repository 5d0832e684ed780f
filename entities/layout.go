package entities

import "time"

// Fixed-width layouts so string order in SQLite matches time order.
const (
	TimestampLayout = "2006-01-02T15:04:05.000000Z"
	DateLayout      = "2006-01-02"
)

// Timestamp formats t in UTC with TimestampLayout.
func Timestamp(t time.Time) string { return t.UTC().Format(TimestampLayout) }

// Date formats the UTC calendar date of t.
func Date(t time.Time) string { return t.UTC().Format(DateLayout) }
