package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeStringFromString(t *testing.T) {
	ts, err := NewTimeStringFromString("09:30")
	require.NoError(t, err)
	assert.Equal(t, "09:30", ts.String())

	for _, invalid := range []string{"9:30", "24:00", "09:60", "0930", "", "ab:cd"} {
		_, err := NewTimeStringFromString(invalid)
		assert.Error(t, err, invalid)
	}
}

func TestNewTimeString(t *testing.T) {
	ts := NewTimeString(time.Date(2026, 2, 16, 9, 5, 0, 0, time.Local))
	assert.Equal(t, TimeString("09:05"), ts)
}

func TestAddMinutes(t *testing.T) {
	ts := TimeString("17:30")

	next, err := ts.AddMinutes(30)
	require.NoError(t, err)
	assert.Equal(t, TimeString("18:00"), next)

	_, err = TimeString("23:30").AddMinutes(60)
	assert.Error(t, err)
}

func TestOrdering(t *testing.T) {
	assert.True(t, TimeString("09:00").IsBefore("17:00"))
	assert.True(t, TimeString("17:00").IsAfter("09:00"))
	assert.False(t, TimeString("09:00").IsBefore("09:00"))
}
