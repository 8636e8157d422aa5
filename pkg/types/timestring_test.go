package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeString(t *testing.T) {
	ts := NewTimeString(time.Date(2025, 6, 2, 9, 5, 30, 0, time.UTC))
	assert.Equal(t, "09:05", ts.String())
}

func TestNewTimeStringFromString(t *testing.T) {
	ts, err := NewTimeStringFromString("14:30")
	require.NoError(t, err)
	assert.Equal(t, "14:30", ts.String())

	_, err = NewTimeStringFromString("25:00")
	assert.Error(t, err)

	_, err = NewTimeStringFromString("9:00")
	assert.Error(t, err)

	_, err = NewTimeStringFromString("not-a-time")
	assert.Error(t, err)
}

func TestTimeString_Minutes(t *testing.T) {
	tests := []struct {
		in   TimeString
		want int
	}{
		{"00:00", 0},
		{"09:00", 540},
		{"12:30", 750},
		{"23:59", 1439},
	}

	for _, tt := range tests {
		got, err := tt.in.Minutes()
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, "minutes of %s", tt.in)
	}

	_, err := TimeString("bad").Minutes()
	assert.Error(t, err)
}

func TestTimeString_AddMinutes(t *testing.T) {
	got, err := TimeString("09:00").AddMinutes(90)
	require.NoError(t, err)
	assert.Equal(t, TimeString("10:30"), got)

	got, err = TimeString("10:00").AddMinutes(-30)
	require.NoError(t, err)
	assert.Equal(t, TimeString("09:30"), got)

	// Переход через полночь не поддерживается
	_, err = TimeString("23:30").AddMinutes(60)
	assert.Error(t, err)

	_, err = TimeString("00:10").AddMinutes(-20)
	assert.Error(t, err)
}

func TestFromMinutes(t *testing.T) {
	assert.Equal(t, TimeString("00:00"), FromMinutes(0))
	assert.Equal(t, TimeString("09:05"), FromMinutes(545))
	assert.Equal(t, TimeString("17:30"), FromMinutes(1050))
}

func TestTimeString_Comparison(t *testing.T) {
	assert.True(t, TimeString("09:00").IsBefore("10:00"))
	assert.False(t, TimeString("10:00").IsBefore("10:00"))
	assert.True(t, TimeString("18:00").IsAfter("09:30"))
	assert.False(t, TimeString("09:30").IsAfter("09:30"))
}

func TestTimeString_Scan(t *testing.T) {
	var ts TimeString

	require.NoError(t, ts.Scan(time.Date(2025, 6, 2, 13, 45, 0, 0, time.UTC)))
	assert.Equal(t, TimeString("13:45"), ts)

	require.NoError(t, ts.Scan("08:15"))
	assert.Equal(t, TimeString("08:15"), ts)

	// postgres TIME приходит с секундами
	require.NoError(t, ts.Scan("08:15:00"))
	assert.Equal(t, TimeString("08:15"), ts)

	require.NoError(t, ts.Scan([]byte("19:00")))
	assert.Equal(t, TimeString("19:00"), ts)

	require.NoError(t, ts.Scan(nil))
	assert.Equal(t, TimeString(""), ts)

	assert.Error(t, ts.Scan(42))
}

func TestTimeString_Value(t *testing.T) {
	v, err := TimeString("11:00").Value()
	require.NoError(t, err)
	assert.Equal(t, "11:00", v)
}
