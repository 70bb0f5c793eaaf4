package stamp

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestNewMessageID(t *testing.T) {
	req := require.New(t)

	id := NewMessageID()

	req.True(strings.HasPrefix(id, MessageIDPrefix))
	req.Len(id, len(MessageIDPrefix)+uuidTailLen)
	req.NotContains(id, "-")
}

func TestNewMessageID_Unique(t *testing.T) {
	req := require.New(t)
	seen := make(map[string]struct{}, 10_000)

	for range 10_000 {
		id := NewMessageID()
		_, dup := seen[id]
		req.False(dup, "duplicate id %s", id)
		seen[id] = struct{}{}
	}
}

func TestFormatTimestamp(t *testing.T) {
	req := require.New(t)
	epoch := time.Date(2024, time.March, 5, 14, 30, 0, 0, time.Local).Unix()

	req.Equal("03-05 14:30::00", FormatTimestamp(epoch))
}

func TestFormatTimestampIn(t *testing.T) {
	tests := []struct {
		name string
		at   time.Time
		loc  *time.Location
		want string
	}{
		{
			name: "UTC keeps wall clock",
			at:   time.Date(2023, time.December, 31, 23, 59, 59, 0, time.UTC),
			loc:  time.UTC,
			want: "12-31 23:59::59",
		},
		{
			name: "Fixed offset shifts the day",
			at:   time.Date(2023, time.December, 31, 23, 0, 0, 0, time.UTC),
			loc:  time.FixedZone("UTC+8", 8*60*60),
			want: "01-01 07:00::00",
		},
		{
			name: "Nil location falls back to local",
			at:   time.Date(2024, time.July, 1, 8, 5, 9, 0, time.Local),
			loc:  nil,
			want: "07-01 08:05::09",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, FormatTimestampIn(tt.at.Unix(), tt.loc))
		})
	}
}

func TestCurrentEpochSeconds(t *testing.T) {
	req := require.New(t)
	before := time.Now().Unix()

	now := CurrentEpochSeconds()

	req.GreaterOrEqual(now, before)
	req.LessOrEqual(now, time.Now().Unix())
}
