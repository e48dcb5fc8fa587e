package timespan

import (
	"strings"
	"unicode/utf8"
)

// Styles adjusts custom-picture parsing. Pictures carry no sign token, so a
// negative value is requested here.
type Styles int

const (
	StylesNone           Styles = 0
	StylesAssumeNegative Styles = 1
)

func (s Styles) valid() bool {
	return s&^StylesAssumeNegative == 0
}

const maxDayDigits = 8

// repeatLen counts how many times format[pos] repeats from pos.
func repeatLen(format string, pos int) int {
	c := format[pos]
	n := pos + 1
	for n < len(format) && format[n] == c {
		n++
	}
	return n - pos
}

// nextFormatChar returns the character after pos, if any.
func nextFormatChar(format string, pos int) (rune, int, bool) {
	if pos+1 >= len(format) {
		return 0, 0, false
	}
	r, size := utf8.DecodeRuneInString(format[pos+1:])
	return r, size, true
}

// quotedString reads the literal quoted at format[pos], honoring backslash
// escapes. consumed includes both quotes.
func quotedString(format string, pos int) (literal string, consumed int, ok bool) {
	quote := format[pos]
	var b strings.Builder
	i := pos + 1
	for i < len(format) {
		c := format[i]
		i++
		if c == quote {
			return b.String(), i - pos, true
		}
		if c == '\\' {
			if i >= len(format) {
				return "", 0, false
			}
			b.WriteByte(format[i])
			i++
			continue
		}
		b.WriteByte(c)
	}
	return "", 0, false
}

type customFields struct {
	days     number
	hours    number
	minutes  number
	seconds  number
	fraction number

	seenDays, seenHours, seenMinutes, seenSeconds, seenFraction bool
}

// parseByFormat matches input against a custom picture such as "dd\.hh\:mm".
func parseByFormat(input string, format string, styles Styles, res *result) bool {
	var fields customFields
	tz := newTokenizer(input, -1)

	for i := 0; i < len(format); {
		c := format[i]
		var tokenLen int
		switch c {
		case 'h', 'm', 's':
			tokenLen = repeatLen(format, i)
			seen, target := fields.hms(c)
			if tokenLen > 2 || *seen {
				return res.fail(KindBadFormat, ReasonInvalidString)
			}
			num, ok := tz.exactDigits(tokenLen, 2)
			if !ok {
				return res.fail(KindBadFormat, ReasonInvalidString)
			}
			*target = newNumber(num.value)
			*seen = true
		case 'd':
			tokenLen = repeatLen(format, i)
			if tokenLen > maxDayDigits || fields.seenDays {
				return res.fail(KindBadFormat, ReasonInvalidString)
			}
			minDigits, maxDigits := tokenLen, tokenLen
			if tokenLen == 1 {
				maxDigits = 2
			}
			num, ok := tz.exactDigits(minDigits, maxDigits)
			if !ok {
				return res.fail(KindBadFormat, ReasonInvalidString)
			}
			fields.days = newNumber(num.value)
			fields.seenDays = true
		case 'f', 'F':
			tokenLen = repeatLen(format, i)
			if tokenLen > MaxFractionDigits || fields.seenFraction {
				return res.fail(KindBadFormat, ReasonInvalidString)
			}
			num, ok := tz.exactDigits(tokenLen, tokenLen)
			if !ok && c == 'f' {
				return res.fail(KindBadFormat, ReasonInvalidString)
			}
			fields.fraction = num
			fields.seenFraction = true
		case '\'', '"':
			literal, consumed, ok := quotedString(format, i)
			if !ok {
				return res.failWith(KindBadFormatWithArgument, ReasonBadQuote, "", rune(c))
			}
			if !tz.matchLiteral(literal) {
				return res.fail(KindBadFormat, ReasonInvalidString)
			}
			tokenLen = consumed
		case '%':
			next, _, ok := nextFormatChar(format, i)
			if !ok || next == '%' {
				return res.fail(KindBadFormat, ReasonInvalidString)
			}
			tokenLen = 1
		case '\\':
			_, size, ok := nextFormatChar(format, i)
			if !ok || !tz.matchLiteral(format[i+1:i+1+size]) {
				return res.fail(KindBadFormat, ReasonInvalidString)
			}
			tokenLen = 1 + size
		default:
			return res.fail(KindBadFormat, ReasonInvalidString)
		}
		i += tokenLen
	}

	if !tz.atEnd() {
		return res.fail(KindBadFormat, ReasonBadTimeSpan)
	}

	positive := styles&StylesAssumeNegative == 0
	ticks, ok := componentsToTicks(positive, fields.days, fields.hours, fields.minutes, fields.seconds, fields.fraction)
	if !ok {
		return res.fail(KindOverflow, ReasonElementTooLarge)
	}
	if !positive {
		if ticks, ok = negateTicks(ticks); !ok {
			return res.fail(KindOverflow, ReasonElementTooLarge)
		}
	}
	return res.succeed(ticks)
}

func (f *customFields) hms(c byte) (seen *bool, target *number) {
	switch c {
	case 'h':
		return &f.seenHours, &f.hours
	case 'm':
		return &f.seenMinutes, &f.minutes
	default:
		return &f.seenSeconds, &f.seconds
	}
}
