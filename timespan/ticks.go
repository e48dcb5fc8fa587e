package timespan

const (
	maxDays     = 10_675_199
	maxHours    = 23
	maxMinutes  = 59
	maxSeconds  = 59
	maxFraction = 9_999_999

	MaxFractionDigits = 7
	unlimitedDigits   = -1

	ticksPerTenthSecond = TicksPerMillisecond * 100
)

func pow10(n int) int64 {
	p := int64(1)
	for i := 0; i < n; i++ {
		p *= 10
	}
	return p
}

// invalid reports whether n exceeds maxValue, or for a precision-limited
// field, carries more significant digits than maxPrecision allows.
func (n number) invalid(maxValue int, maxPrecision int) bool {
	if n.value > maxValue {
		return true
	}
	if maxPrecision == unlimitedDigits {
		return false
	}
	if n.zeroes > maxPrecision {
		return true
	}
	if n.value == 0 || n.zeroes == 0 {
		return false
	}
	return int64(n.value) >= int64(maxValue)/pow10(n.zeroes-1)
}

// fractionTicks scales a fraction so ".01" is 100,000 ticks however many
// digits were written.
func fractionTicks(fraction number) int64 {
	f := int64(fraction.value)
	if f == 0 {
		return 0
	}
	lowerLimit := ticksPerTenthSecond
	if fraction.zeroes > 0 {
		lowerLimit /= pow10(fraction.zeroes)
	}
	for f < lowerLimit {
		f *= 10
	}
	return f
}

// componentsToTicks validates each component and sums them. With positive set
// a total that wrapped negative is rejected; negating is left to the caller.
func componentsToTicks(positive bool, days, hours, minutes, seconds, fraction number) (int64, bool) {
	if days.invalid(maxDays, unlimitedDigits) ||
		hours.invalid(maxHours, unlimitedDigits) ||
		minutes.invalid(maxMinutes, unlimitedDigits) ||
		seconds.invalid(maxSeconds, unlimitedDigits) ||
		fraction.invalid(maxFraction, MaxFractionDigits) {
		return 0, false
	}

	millis := (int64(days.value)*3600*24 +
		int64(hours.value)*3600 +
		int64(minutes.value)*60 +
		int64(seconds.value)) * 1000
	if millis > MaxMilliseconds || millis < MinMilliseconds {
		return 0, false
	}

	ticks := millis*TicksPerMillisecond + fractionTicks(fraction)
	if positive && ticks < 0 {
		return 0, false
	}
	return ticks, true
}

// negateTicks applies a negative sign. Only MinDuration survives a wrap.
func negateTicks(ticks int64) (int64, bool) {
	ticks = -ticks
	if ticks > 0 {
		return 0, false
	}
	return ticks, true
}
