package timespan

import "math"

// constantParser reads the culture independent "c" form
// [ws][-]{ d | [d.]hh:mm[:[ss][.fffffff]] }[ws].
type constantParser struct {
	str string
	pos int
	ch  byte
}

func (p *constantParser) next() {
	if p.pos < len(p.str) {
		p.pos++
	}
	if p.pos < len(p.str) {
		p.ch = p.str[p.pos]
	} else {
		p.ch = 0
	}
}

// nextNonDigit peeks at the first non-digit from the current position.
func (p *constantParser) nextNonDigit() byte {
	for i := p.pos; i < len(p.str); i++ {
		if !isDigit(p.str[i]) {
			return p.str[i]
		}
	}
	return 0
}

func (p *constantParser) skipBlanks() {
	for p.pos < len(p.str) && (p.ch == ' ' || p.ch == '\t') {
		p.next()
	}
}

func parseConstant(input string, res *result) bool {
	p := constantParser{str: input, pos: -1, ch: 0}
	p.next()
	p.skipBlanks()

	negative := false
	if p.pos < len(p.str) && p.ch == '-' {
		negative = true
		p.next()
	}

	var ticks int64
	if p.nextNonDigit() == ':' {
		var ok bool
		if ticks, ok = p.parseTime(res); !ok {
			return false
		}
	} else {
		days, ok := p.parseInt(math.MaxInt64/TicksPerDay, res)
		if !ok {
			return false
		}
		ticks = days * TicksPerDay
		if p.pos < len(p.str) && p.ch == '.' {
			p.next()
			remaining, ok := p.parseTime(res)
			if !ok {
				return false
			}
			ticks += remaining
		}
	}

	if negative {
		ticks = -ticks
		if ticks > 0 {
			return res.fail(KindOverflow, ReasonElementTooLarge)
		}
	} else if ticks < 0 {
		return res.fail(KindOverflow, ReasonElementTooLarge)
	}

	p.skipBlanks()
	if p.pos < len(p.str) {
		return res.fail(KindBadFormat, ReasonBadTimeSpan)
	}
	return res.succeed(ticks)
}

// parseInt rejects a value above bound as soon as it is exceeded, before the
// accumulator can wrap.
func (p *constantParser) parseInt(bound int64, res *result) (int64, bool) {
	var value int64
	start := p.pos
	for p.pos < len(p.str) && isDigit(p.ch) {
		value = value*10 + int64(p.ch-'0')
		if value > bound {
			return 0, res.fail(KindOverflow, ReasonElementTooLarge)
		}
		p.next()
	}
	if p.pos == start {
		return 0, res.fail(KindBadFormat, ReasonBadTimeSpan)
	}
	return value, true
}

func (p *constantParser) parseTime(res *result) (int64, bool) {
	hours, ok := p.parseInt(maxHours, res)
	if !ok {
		return 0, false
	}
	ticks := hours * TicksPerHour
	if p.pos >= len(p.str) || p.ch != ':' {
		return 0, res.fail(KindBadFormat, ReasonBadTimeSpan)
	}
	p.next()

	minutes, ok := p.parseInt(maxMinutes, res)
	if !ok {
		return 0, false
	}
	ticks += minutes * TicksPerMinute

	if p.pos < len(p.str) && p.ch == ':' {
		p.next()
		if p.pos >= len(p.str) || p.ch != '.' {
			seconds, ok := p.parseInt(maxSeconds, res)
			if !ok {
				return 0, false
			}
			ticks += seconds * TicksPerSecond
		}
		if p.pos < len(p.str) && p.ch == '.' {
			p.next()
			f := TicksPerSecond
			for f > 1 && p.pos < len(p.str) && isDigit(p.ch) {
				f /= 10
				ticks += int64(p.ch-'0') * f
				p.next()
			}
		}
	}
	return ticks, true
}
