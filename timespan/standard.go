package timespan

import "strings"

type standardStyles int

const (
	styleInvariant standardStyles = 1 << iota
	styleLocalized
	styleRequireFull

	styleAny = styleInvariant | styleLocalized
)

func parseStandard(input string, styles standardStyles, provider LiteralProvider, res *result) bool {
	input = strings.TrimSpace(input)
	if input == "" {
		return res.fail(KindBadFormat, ReasonBadTimeSpan)
	}

	tz := newTokenizer(input, 0)
	raw := newRawInfo(provider)
	for tok := tz.nextToken(); tok.kind != tokenEnd; tok = tz.nextToken() {
		if !raw.processToken(tok, res) {
			return false
		}
	}
	return resolveTerminal(&raw, styles, res)
}

type template struct {
	literals *FormatLiterals
	positive bool
}

// template returns the i-th literal set in match order. Localized sets are
// only fetched from the provider once the invariant ones failed to win.
func (r *rawInfo) template(styles standardStyles, i int) (template, bool) {
	switch i {
	case 0:
		if styles&styleInvariant != 0 {
			return template{literals: &positiveInvariant, positive: true}, true
		}
	case 1:
		if styles&styleInvariant != 0 {
			return template{literals: &negativeInvariant, positive: false}, true
		}
	case 2:
		if styles&styleLocalized != 0 {
			return template{literals: r.positiveLocalized(), positive: true}, true
		}
	case 3:
		if styles&styleLocalized != 0 {
			return template{literals: r.negativeLocalized(), positive: false}, true
		}
	}
	return template{}, false //nolint:exhaustruct
}

const templateCount = 4

func resolveTerminal(raw *rawInfo, styles standardStyles, res *result) bool {
	if raw.lastSeen == tokenNumber {
		if !raw.processToken(token{kind: tokenSeparator, sep: ""}, res) { //nolint:exhaustruct
			return res.fail(KindBadFormat, ReasonBadTimeSpan)
		}
	}

	if raw.numCount < 1 || raw.numCount > maxNumericTokens {
		return res.fail(KindBadFormat, ReasonBadTimeSpan)
	}
	if styles&styleRequireFull != 0 && raw.numCount != maxNumericTokens {
		return res.fail(KindBadFormat, ReasonBadTimeSpan)
	}
	shapes := shapesByNumberCount[raw.numCount]

	// A template that matched the separators but failed range checks makes the
	// whole parse an overflow unless some later candidate converts cleanly.
	overflow := false
	for i := 0; i < templateCount; i++ {
		tmpl, ok := raw.template(styles, i)
		if !ok {
			continue
		}
		for j := range shapes {
			s := &shapes[j]
			if !raw.matches(s, tmpl.literals) {
				continue
			}
			days, hours, minutes, seconds, fraction := s.assign(raw.numbers[:raw.numCount])
			ticks, ok := componentsToTicks(tmpl.positive, days, hours, minutes, seconds, fraction)
			if !ok {
				overflow = true
				continue
			}
			if !tmpl.positive {
				if ticks, ok = negateTicks(ticks); !ok {
					return res.fail(KindOverflow, ReasonElementTooLarge)
				}
			}
			return res.succeed(ticks)
		}
	}

	if overflow {
		return res.fail(KindOverflow, ReasonElementTooLarge)
	}
	return res.fail(KindBadFormat, ReasonBadTimeSpan)
}
