package culture

import (
	"strings"

	"spanparse/oops"
	"spanparse/timespan"
)

// Slots of a literal set, in the order they appear in a full pattern.
const (
	slotStart = iota
	slotDayHour
	slotHourMinute
	slotMinuteSecond
	slotSecondFraction
	slotEnd
	slotCount
)

// fieldSlot maps a field letter to the literal slot that follows it.
func fieldSlot(c byte) (int, bool) {
	switch c {
	case 'd':
		return slotDayHour, true
	case 'h':
		return slotHourMinute, true
	case 'm':
		return slotMinuteSecond, true
	case 's':
		return slotSecondFraction, true
	case 'f', 'F':
		return slotEnd, true
	default:
		return 0, false
	}
}

// LiteralsFromPattern extracts the separators of a full pattern such as
// d':'h':'mm':'ss'.'FFFFFFF. All five fields must appear, largest first.
func LiteralsFromPattern(pattern string) (timespan.FormatLiterals, error) {
	var literals [slotCount]string
	var b strings.Builder
	slot := slotStart
	inQuote := false
	var quote byte

	for i := 0; i < len(pattern); i++ {
		c := pattern[i]
		switch {
		case inQuote && c == quote:
			inQuote = false
		case inQuote && c == '\\':
			if i+1 >= len(pattern) {
				return timespan.FormatLiterals{}, oops.Newf("pattern %q ends inside an escape", pattern)
			}
			i++
			b.WriteByte(pattern[i])
		case inQuote:
			b.WriteByte(c)
		case c == '\'' || c == '"':
			inQuote = true
			quote = c
		case c == '\\':
			if i+1 >= len(pattern) {
				return timespan.FormatLiterals{}, oops.Newf("pattern %q ends inside an escape", pattern)
			}
			i++
			b.WriteByte(pattern[i])
		case c == '%':
			return timespan.FormatLiterals{}, oops.Newf("pattern %q: unexpected '%%'", pattern)
		default:
			next, isField := fieldSlot(c)
			if !isField {
				b.WriteByte(c)
				continue
			}
			if next < slot {
				return timespan.FormatLiterals{}, oops.Newf("pattern %q: field '%c' out of order", pattern, c)
			}
			if next != slot {
				if next != slot+1 {
					return timespan.FormatLiterals{}, oops.Newf("pattern %q: field before '%c' is missing", pattern, c)
				}
				literals[slot] = b.String()
				b.Reset()
				slot = next
			}
		}
	}

	if inQuote {
		return timespan.FormatLiterals{}, oops.Newf("pattern %q: unterminated quote", pattern)
	}
	if slot != slotEnd {
		return timespan.FormatLiterals{}, oops.Newf("pattern %q: fraction field is missing", pattern)
	}
	literals[slot] = b.String()

	return timespan.NewFormatLiterals(
		literals[slotStart],
		literals[slotDayHour],
		literals[slotHourMinute],
		literals[slotMinuteSecond],
		literals[slotSecondFraction],
		literals[slotEnd],
	), nil
}

func defaultPositivePattern(decimalSeparator string) string {
	return "d':'h':'mm':'ss'" + escapeQuoted(decimalSeparator) + "'FFFFFFF"
}

func defaultNegativePattern(decimalSeparator string) string {
	return "'-'" + defaultPositivePattern(decimalSeparator)
}

func escapeQuoted(s string) string {
	if !strings.ContainsAny(s, `'\`) {
		return s
	}
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		if s[i] == '\'' || s[i] == '\\' {
			b.WriteByte('\\')
		}
		b.WriteByte(s[i])
	}
	return b.String()
}
