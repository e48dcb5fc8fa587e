package timespan

const (
	maxTokens        = 11
	maxLiteralTokens = 6
	maxNumericTokens = 5
)

type literalSlot int

const (
	slotStart literalSlot = iota
	slotDayHour
	slotHourMinute
	slotMinuteSecond
	slotSecondFraction
	slotEnd
	slotAppCompat
)

func (p *FormatLiterals) slot(s literalSlot) string {
	switch s {
	case slotStart:
		return p.Start
	case slotDayHour:
		return p.DayHourSep
	case slotHourMinute:
		return p.HourMinuteSep
	case slotMinuteSecond:
		return p.MinuteSecondSep
	case slotSecondFraction:
		return p.SecondFractionSep
	case slotEnd:
		return p.End
	case slotAppCompat:
		return p.AppCompat
	default:
		panic("unknown literal slot")
	}
}

type field int

const (
	fieldNone field = iota
	fieldDays
	fieldHours
	fieldMinutes
	fieldSeconds
	fieldFraction
)

// shape is one legal arrangement of numbers and separators. Numbers are
// assigned to fields in order, separators must equal the literal slots.
type shape struct {
	name   string
	slots  []literalSlot
	fields []field
}

var (
	shapeD = shape{
		name:   "d",
		slots:  []literalSlot{slotStart, slotEnd},
		fields: []field{fieldDays},
	}
	shapeHM = shape{
		name:   "hh:mm",
		slots:  []literalSlot{slotStart, slotHourMinute, slotEnd},
		fields: []field{fieldHours, fieldMinutes},
	}
	shapeHMS = shape{
		name:   "hh:mm:ss",
		slots:  []literalSlot{slotStart, slotHourMinute, slotMinuteSecond, slotEnd},
		fields: []field{fieldHours, fieldMinutes, fieldSeconds},
	}
	shapeDHM = shape{
		name:   "d.hh:mm",
		slots:  []literalSlot{slotStart, slotDayHour, slotHourMinute, slotEnd},
		fields: []field{fieldDays, fieldHours, fieldMinutes},
	}
	shapePartialAppCompat = shape{
		name:   "hh:mm:.f",
		slots:  []literalSlot{slotStart, slotHourMinute, slotAppCompat, slotEnd},
		fields: []field{fieldHours, fieldMinutes, fieldFraction},
	}
	shapeHMSF = shape{
		name:   "hh:mm:ss.f",
		slots:  []literalSlot{slotStart, slotHourMinute, slotMinuteSecond, slotSecondFraction, slotEnd},
		fields: []field{fieldHours, fieldMinutes, fieldSeconds, fieldFraction},
	}
	shapeDHMS = shape{
		name:   "d.hh:mm:ss",
		slots:  []literalSlot{slotStart, slotDayHour, slotHourMinute, slotMinuteSecond, slotEnd},
		fields: []field{fieldDays, fieldHours, fieldMinutes, fieldSeconds},
	}
	shapeFullAppCompat = shape{
		name:   "d.hh:mm:.f",
		slots:  []literalSlot{slotStart, slotDayHour, slotHourMinute, slotAppCompat, slotEnd},
		fields: []field{fieldDays, fieldHours, fieldMinutes, fieldFraction},
	}
	shapeDHMSF = shape{
		name: "d.hh:mm:ss.f",
		slots: []literalSlot{
			slotStart, slotDayHour, slotHourMinute, slotMinuteSecond, slotSecondFraction, slotEnd,
		},
		fields: []field{fieldDays, fieldHours, fieldMinutes, fieldSeconds, fieldFraction},
	}
)

// shapesByNumberCount lists the candidate shapes in precedence order.
var shapesByNumberCount = [maxNumericTokens + 1][]shape{
	1: {shapeD},
	2: {shapeHM},
	3: {shapeHMS, shapeDHM, shapePartialAppCompat},
	4: {shapeHMSF, shapeDHMS, shapeFullAppCompat},
	5: {shapeDHMSF},
}

// matches requires both counts to agree with the shape before comparing
// separator contents, so three separators never match a two-separator shape.
func (s *shape) matches(p *FormatLiterals, sepCount int, numCount int, literals []string) bool {
	if numCount != len(s.fields) || sepCount != len(s.slots) || len(literals) < sepCount {
		return false
	}
	for i, slot := range s.slots {
		if literals[i] != p.slot(slot) {
			return false
		}
	}
	return true
}

func (s *shape) assign(numbers []number) (days, hours, minutes, seconds, fraction number) {
	for i, f := range s.fields {
		switch f {
		case fieldDays:
			days = numbers[i]
		case fieldHours:
			hours = numbers[i]
		case fieldMinutes:
			minutes = numbers[i]
		case fieldSeconds:
			seconds = numbers[i]
		case fieldFraction:
			fraction = numbers[i]
		case fieldNone:
		}
	}
	return days, hours, minutes, seconds, fraction
}

// rawInfo accumulates the tokens of one standard-grammar parse.
type rawInfo struct {
	lastSeen   tokenKind
	tokenCount int
	sepCount   int
	numCount   int
	literals   [maxLiteralTokens]string
	numbers    [maxNumericTokens]number

	provider   LiteralProvider
	posLoc     FormatLiterals
	negLoc     FormatLiterals
	posLocInit bool
	negLocInit bool
}

func newRawInfo(provider LiteralProvider) rawInfo {
	return rawInfo{provider: providerOrInvariant(provider)} //nolint:exhaustruct
}

func (r *rawInfo) positiveLocalized() *FormatLiterals {
	if !r.posLocInit {
		r.posLoc = r.provider.FormatLiterals(false)
		r.posLocInit = true
	}
	return &r.posLoc
}

func (r *rawInfo) negativeLocalized() *FormatLiterals {
	if !r.negLocInit {
		r.negLoc = r.provider.FormatLiterals(true)
		r.negLocInit = true
	}
	return &r.negLoc
}

func (r *rawInfo) processToken(tok token, res *result) bool {
	switch tok.kind {
	case tokenNumberOverflow:
		return res.fail(KindOverflow, ReasonElementTooLarge)
	case tokenSeparator:
		if !r.addSep(tok.sep, res) {
			return false
		}
	case tokenNumber:
		if r.tokenCount == 0 {
			if !r.addSep("", res) {
				return false
			}
		}
		if !r.addNum(tok.num, res) {
			return false
		}
	default:
		return res.fail(KindBadFormat, ReasonBadTimeSpan)
	}

	r.lastSeen = tok.kind
	return true
}

func (r *rawInfo) addSep(sep string, res *result) bool {
	if r.sepCount >= maxLiteralTokens || r.tokenCount >= maxTokens {
		return res.fail(KindBadFormat, ReasonBadTimeSpan)
	}
	r.literals[r.sepCount] = sep
	r.sepCount++
	r.tokenCount++
	return true
}

func (r *rawInfo) addNum(num number, res *result) bool {
	if r.numCount >= maxNumericTokens || r.tokenCount >= maxTokens {
		return res.fail(KindBadFormat, ReasonBadTimeSpan)
	}
	r.numbers[r.numCount] = num
	r.numCount++
	r.tokenCount++
	return true
}

func (r *rawInfo) matches(s *shape, p *FormatLiterals) bool {
	return s.matches(p, r.sepCount, r.numCount, r.literals[:r.sepCount])
}
