package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPeriodRange(t *testing.T) {
	now := time.Date(2025, 3, 15, 14, 30, 0, 0, time.UTC)
	midnight := time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		period string
		from   time.Time
	}{
		{"", midnight},
		{"today", midnight},
		{"week", midnight.AddDate(0, 0, -6)},
		{"month", midnight.AddDate(0, -1, 0)},
	}
	for _, tt := range tests {
		from, to, err := periodRange(tt.period, now)
		require.NoError(t, err, tt.period)
		assert.Equal(t, tt.from, from, tt.period)
		assert.Equal(t, now, to, tt.period)
	}

	_, _, err := periodRange("quarter", now)
	assert.Error(t, err)
}
