package timespan

// FormatLiterals is the set of separators expected around the numeric fields
// of one sign of one culture.
type FormatLiterals struct {
	Start             string
	DayHourSep        string
	HourMinuteSep     string
	MinuteSecondSep   string
	SecondFractionSep string
	End               string

	// AppCompat is MinuteSecondSep+SecondFractionSep, the separator of the
	// legacy "hh:mm:.f" shapes.
	AppCompat string
}

func NewFormatLiterals(start, dayHour, hourMinute, minuteSecond, secondFraction, end string) FormatLiterals {
	return FormatLiterals{
		Start:             start,
		DayHourSep:        dayHour,
		HourMinuteSep:     hourMinute,
		MinuteSecondSep:   minuteSecond,
		SecondFractionSep: secondFraction,
		End:               end,
		AppCompat:         minuteSecond + secondFraction,
	}
}

var (
	positiveInvariant = NewFormatLiterals("", ".", ":", ":", ".", "")
	negativeInvariant = NewFormatLiterals("-", ".", ":", ":", ".", "")
)

func InvariantLiterals(negative bool) FormatLiterals {
	if negative {
		return negativeInvariant
	}
	return positiveInvariant
}

// LiteralProvider supplies the localized literals of one culture.
type LiteralProvider interface {
	FormatLiterals(negative bool) FormatLiterals
}

// The invariant culture renders the day separator as ':' in its full pattern.
var (
	positiveInvariantLocalized = NewFormatLiterals("", ":", ":", ":", ".", "")
	negativeInvariantLocalized = NewFormatLiterals("-", ":", ":", ":", ".", "")
)

type invariantCulture struct{}

func (invariantCulture) FormatLiterals(negative bool) FormatLiterals {
	if negative {
		return negativeInvariantLocalized
	}
	return positiveInvariantLocalized
}

var InvariantCulture LiteralProvider = invariantCulture{}

func providerOrInvariant(p LiteralProvider) LiteralProvider {
	if p == nil {
		return InvariantCulture
	}
	return p
}
