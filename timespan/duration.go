package timespan

import (
	"math"
	"time"
)

// Duration is a signed count of 100ns ticks.
type Duration int64

const (
	TicksPerMillisecond int64 = 10_000
	TicksPerSecond            = TicksPerMillisecond * 1000
	TicksPerMinute            = TicksPerSecond * 60
	TicksPerHour              = TicksPerMinute * 60
	TicksPerDay               = TicksPerHour * 24

	MaxDuration Duration = math.MaxInt64
	MinDuration Duration = math.MinInt64

	MaxMilliseconds = math.MaxInt64 / TicksPerMillisecond
	MinMilliseconds = math.MinInt64 / TicksPerMillisecond
)

func FromTicks(ticks int64) Duration {
	return Duration(ticks)
}

func (d Duration) Ticks() int64 {
	return int64(d)
}

func (d Duration) Days() int64 {
	return int64(d) / TicksPerDay
}

func (d Duration) Hours() int64 {
	return (int64(d) / TicksPerHour) % 24
}

func (d Duration) Minutes() int64 {
	return (int64(d) / TicksPerMinute) % 60
}

func (d Duration) Seconds() int64 {
	return (int64(d) / TicksPerSecond) % 60
}

// Fraction is the sub-second part in ticks, carrying the sign of d.
func (d Duration) Fraction() int64 {
	return int64(d) % TicksPerSecond
}

// Neg returns -d and false when d is MinDuration.
func (d Duration) Neg() (Duration, bool) {
	if d == MinDuration {
		return 0, false
	}
	return -d, true
}

// Std converts to time.Duration, saturating at its bounds.
func (d Duration) Std() time.Duration {
	const nanosPerTick = 100
	if int64(d) > math.MaxInt64/nanosPerTick {
		return time.Duration(math.MaxInt64)
	}
	if int64(d) < math.MinInt64/nanosPerTick {
		return time.Duration(math.MinInt64)
	}
	return time.Duration(int64(d) * nanosPerTick)
}
