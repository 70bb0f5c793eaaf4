// Package stamp generates message identifiers and display timestamps.
// It has no dependency on the rest of the domain.
package stamp

import (
	"time"

	"github.com/google/uuid"
)

const (
	// MessageIDPrefix marks message ids apart from other entity ids in logs.
	MessageIDPrefix = "M"
	// uuidTailLen is the length of the last hyphen-separated group of a UUID.
	uuidTailLen = 12
	// DisplayLayout renders month-day hour:minute::second, doubled colon included.
	DisplayLayout = "01-02 15:04::05"
)

// Clock returns wall-clock seconds since the Unix epoch.
type Clock func() int64

// IDGenerator returns a fresh message identifier.
type IDGenerator func() string

// NewMessageID returns "M" followed by the last 12 hex characters of a random UUID.
// The result is opaque and must not be parsed.
func NewMessageID() string {
	id := uuid.NewString()
	return MessageIDPrefix + id[len(id)-uuidTailLen:]
}

// CurrentEpochSeconds is the default Clock.
func CurrentEpochSeconds() int64 {
	return time.Now().Unix()
}

// FormatTimestamp renders epoch seconds in local time for display only.
// Sort by the epoch value, never by this string.
func FormatTimestamp(epochSeconds int64) string {
	return FormatTimestampIn(epochSeconds, time.Local)
}

// FormatTimestampIn is FormatTimestamp in an explicit location; nil means local.
func FormatTimestampIn(epochSeconds int64, loc *time.Location) string {
	if loc == nil {
		loc = time.Local
	}
	return time.Unix(epochSeconds, 0).In(loc).Format(DisplayLayout)
}
