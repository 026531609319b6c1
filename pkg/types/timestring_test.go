package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeStringFromString(t *testing.T) {
	ts, err := NewTimeStringFromString("19:00")
	require.NoError(t, err)
	assert.Equal(t, "19:00", ts.String())

	for _, bad := range []string{"", "25:00", "19:60", "abc", "7pm"} {
		_, err := NewTimeStringFromString(bad)
		assert.ErrorIs(t, err, ErrInvalidTimeString, "input %q", bad)
	}
}

func TestTimeString_AddMinutes(t *testing.T) {
	tests := []struct {
		start   TimeString
		minutes int
		want    TimeString
	}{
		{"19:00", 270, "23:30"},
		{"23:00", 480, "07:00"}, // wraps past midnight
		{"00:00", 0, "00:00"},
		{"10:30", 90, "12:00"},
	}

	for _, tt := range tests {
		got, err := tt.start.AddMinutes(tt.minutes)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, "%s + %dmin", tt.start, tt.minutes)
	}

	_, err := TimeString("bad").AddMinutes(30)
	assert.ErrorIs(t, err, ErrInvalidTimeString)
}

func TestTimeString_Comparisons(t *testing.T) {
	assert.True(t, TimeString("10:00").IsBefore("10:01"))
	assert.False(t, TimeString("10:00").IsBefore("10:00"))
	assert.True(t, TimeString("10:01").IsAfter("10:00"))
	assert.False(t, TimeString("bad").IsBefore("10:00"))
}

func TestTimeString_Scan(t *testing.T) {
	var ts TimeString

	require.NoError(t, ts.Scan("19:00:00"))
	assert.Equal(t, TimeString("19:00"), ts)

	require.NoError(t, ts.Scan([]byte("23:00")))
	assert.Equal(t, TimeString("23:00"), ts)

	require.NoError(t, ts.Scan(time.Date(2026, time.March, 10, 14, 0, 0, 0, time.UTC)))
	assert.Equal(t, TimeString("14:00"), ts)

	require.NoError(t, ts.Scan(nil))
	assert.True(t, ts.IsZero())

	assert.Error(t, ts.Scan(42))
}
