package uiutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFriendlyRelativeTime(t *testing.T) {
	now := time.Date(2025, 4, 8, 12, 0, 0, 0, time.UTC)
	tests := []struct {
		at   time.Time
		want string
	}{
		{now.Add(time.Minute), "just now"},
		{now.Add(-30 * time.Second), "just now"},
		{now.Add(-time.Minute), "1 minute ago"},
		{now.Add(-5 * time.Minute), "5 minutes ago"},
		{now.Add(-time.Hour), "1 hour ago"},
		{now.Add(-49 * time.Hour), "2 days ago"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FriendlyRelativeTime(tt.at, now))
	}
	assert.Equal(t, FormatFriendlyDateTime(now.AddDate(0, 0, -10)), FriendlyRelativeTime(now.AddDate(0, 0, -10), now))
}

func TestFormatMoney(t *testing.T) {
	assert.Equal(t, "$0.00", FormatMoney(0, ""))
	assert.Equal(t, "$1,234.50", FormatMoney(1234.5, ""))
	assert.Equal(t, "€12.35", FormatMoney(12.346, "€"))
	assert.Equal(t, "-$1,000,000.00", FormatMoney(-1000000, "$"))
}

func TestGroupThousands(t *testing.T) {
	assert.Equal(t, "999", GroupThousands("999"))
	assert.Equal(t, "1,000", GroupThousands("1000"))
	assert.Equal(t, "123,456,789", GroupThousands("123456789"))
}

func TestTruncateWithEllipsis(t *testing.T) {
	assert.Equal(t, "short", TruncateWithEllipsis("short", 10))
	assert.Equal(t, "abc…", TruncateWithEllipsis("abcdefgh", 4))
	assert.Equal(t, "…", TruncateWithEllipsis("abcdefgh", 1))
}

func TestInitials(t *testing.T) {
	assert.Equal(t, "AL", Initials("ada lovelace"))
	assert.Equal(t, "D", Initials("dan"))
	assert.Equal(t, "", Initials("  "))
	assert.Equal(t, "OJ", Initials("Olivia Jane Martin"))
}
