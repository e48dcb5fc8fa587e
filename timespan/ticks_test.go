//go:build testing

package timespan

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFractionTicks(t *testing.T) {
	type Test struct {
		Description   string
		Fraction      number
		ExpectedTicks int64
	}

	tests := []Test{
		{".5", number{value: 5, zeroes: 0}, 5_000_000},
		{".05", number{value: 5, zeroes: 1}, 500_000},
		{".25", number{value: 25, zeroes: 0}, 2_500_000},
		{".1234567", number{value: 1_234_567, zeroes: 0}, 1_234_567},
		{".000", number{value: 0, zeroes: 3}, 0},
		{".0000001", number{value: 1, zeroes: 6}, 1},
	}

	for _, test := range tests {
		require.Equal(t, test.ExpectedTicks, fractionTicks(test.Fraction), test.Description)
	}
}

func TestNumberInvalid(t *testing.T) {
	type Test struct {
		Description     string
		Num             number
		MaxValue        int
		MaxPrecision    int
		ExpectedInvalid bool
	}

	tests := []Test{
		{"hours in range", number{value: 23, zeroes: 0}, maxHours, unlimitedDigits, false},
		{"hours too large", number{value: 24, zeroes: 0}, maxHours, unlimitedDigits, true},
		{"leading zeroes ignored without precision", number{value: 5, zeroes: 9}, maxHours, unlimitedDigits, false},
		{"seven digit fraction", number{value: 9_999_999, zeroes: 0}, maxFraction, MaxFractionDigits, false},
		{"eight digit fraction", number{value: 12_345_678, zeroes: 0}, maxFraction, MaxFractionDigits, true},
		{"too many zeroes", number{value: 1, zeroes: 8}, maxFraction, MaxFractionDigits, true},
		{"zeroes push digits past precision", number{value: 9, zeroes: 7}, maxFraction, MaxFractionDigits, true},
		{"zeroes within precision", number{value: 8, zeroes: 7}, maxFraction, MaxFractionDigits, false},
		{"all zeroes", number{value: 0, zeroes: 7}, maxFraction, MaxFractionDigits, false},
	}

	for _, test := range tests {
		require.Equal(
			t, test.ExpectedInvalid, test.Num.invalid(test.MaxValue, test.MaxPrecision), test.Description,
		)
	}
}

func TestComponentsToTicks(t *testing.T) {
	n := newNumber

	ticks, ok := componentsToTicks(true, n(1), n(2), n(3), n(4), n(5))
	require.True(t, ok)
	require.Equal(t, TicksPerDay+2*TicksPerHour+3*TicksPerMinute+4*TicksPerSecond+5_000_000, ticks)

	ticks, ok = componentsToTicks(true, n(maxDays), n(2), n(48), n(5), n(4_775_807))
	require.True(t, ok)
	require.Equal(t, int64(math.MaxInt64), ticks)

	_, ok = componentsToTicks(true, n(maxDays), n(2), n(48), n(5), n(4_775_808))
	require.False(t, ok)

	ticks, ok = componentsToTicks(false, n(maxDays), n(2), n(48), n(5), n(4_775_808))
	require.True(t, ok)
	ticks, ok = negateTicks(ticks)
	require.True(t, ok)
	require.Equal(t, int64(math.MinInt64), ticks)

	_, ok = componentsToTicks(true, n(maxDays+1), n(0), n(0), n(0), n(0))
	require.False(t, ok)

	_, ok = componentsToTicks(true, n(0), n(0), n(60), n(0), n(0))
	require.False(t, ok)
}

func TestNegateTicks(t *testing.T) {
	ticks, ok := negateTicks(TicksPerSecond)
	require.True(t, ok)
	require.Equal(t, -TicksPerSecond, ticks)

	ticks, ok = negateTicks(0)
	require.True(t, ok)
	require.Equal(t, int64(0), ticks)
}

func TestDurationComponents(t *testing.T) {
	d := FromTicks(-(TicksPerDay + 2*TicksPerHour + 3*TicksPerMinute + 4*TicksPerSecond + 5_000_000))
	require.Equal(t, int64(-1), d.Days())
	require.Equal(t, int64(-2), d.Hours())
	require.Equal(t, int64(-3), d.Minutes())
	require.Equal(t, int64(-4), d.Seconds())
	require.Equal(t, int64(-5_000_000), d.Fraction())

	neg, ok := d.Neg()
	require.True(t, ok)
	require.Equal(t, int64(1), neg.Days())

	_, ok = MinDuration.Neg()
	require.False(t, ok)

	require.Equal(t, "1.5s", FromTicks(15_000_000).Std().String())
	require.Equal(t, int64(math.MaxInt64), int64(MaxDuration.Std()))
	require.Equal(t, int64(math.MinInt64), int64(MinDuration.Std()))
}
