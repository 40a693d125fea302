package timeutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDaysBetweenSameDay(t *testing.T) {
	loc, err := time.LoadLocation("America/Sao_Paulo")
	require.NoError(t, err)

	// horários diferentes dentro do mesmo dia contam 0
	a := time.Date(2024, 3, 10, 0, 15, 0, 0, loc)
	b := time.Date(2024, 3, 10, 23, 45, 0, 0, loc)

	assert.Equal(t, 0, DaysBetween(a, b))
	assert.Equal(t, 0, DaysBetween(a, a))
	assert.Equal(t, 0, DaysBetween(b, b))
}

func TestDaysBetweenCrossingMidnight(t *testing.T) {
	loc, err := time.LoadLocation("America/Sao_Paulo")
	require.NoError(t, err)

	// 23:00 → 01:00 do dia seguinte: 2 horas de relógio, 1 dia de calendário
	a := time.Date(2024, 3, 10, 23, 0, 0, 0, loc)
	b := time.Date(2024, 3, 11, 1, 0, 0, 0, loc)

	assert.Equal(t, 1, DaysBetween(a, b))
}

func TestDaysBetweenManyDays(t *testing.T) {
	loc := time.UTC

	a := time.Date(2024, 1, 1, 18, 0, 0, 0, loc)
	b := time.Date(2024, 1, 16, 6, 0, 0, 0, loc)

	assert.Equal(t, 15, DaysBetween(a, b))
}

func TestStartAndEndOfDay(t *testing.T) {
	loc := time.UTC
	x := time.Date(2024, 5, 20, 14, 30, 45, 123, loc)

	start := StartOfDay(x)
	end := EndOfDay(x)

	assert.Equal(t, time.Date(2024, 5, 20, 0, 0, 0, 0, loc), start)
	assert.True(t, end.After(x))
	assert.Equal(t, 20, end.Day())
	assert.Equal(t, 23, end.Hour())
}

func TestIsBetweenInclusive(t *testing.T) {
	loc := time.UTC
	start := time.Date(2024, 5, 1, 0, 0, 0, 0, loc)
	end := time.Date(2024, 5, 7, 23, 59, 59, 0, loc)

	assert.True(t, IsBetweenInclusive(start, start, end))
	assert.True(t, IsBetweenInclusive(end, start, end))
	assert.True(t, IsBetweenInclusive(start.AddDate(0, 0, 3), start, end))
	assert.False(t, IsBetweenInclusive(start.Add(-time.Second), start, end))
	assert.False(t, IsBetweenInclusive(end.Add(time.Second), start, end))
}

func TestParseDateAndMidday(t *testing.T) {
	loc, err := time.LoadLocation("America/Sao_Paulo")
	require.NoError(t, err)

	day, err := ParseDate("2024-07-09", loc)
	require.NoError(t, err)

	midday := AtMidday(day)
	assert.Equal(t, 2024, midday.Year())
	assert.Equal(t, time.July, midday.Month())
	assert.Equal(t, 9, midday.Day())
	assert.Equal(t, 12, midday.Hour())
	assert.Equal(t, loc, midday.Location())

	_, err = ParseDate("09/07/2024", loc)
	assert.Error(t, err)
}
