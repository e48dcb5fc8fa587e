// Package timespan parses textual durations into 100ns ticks.
//
// Three grammars are supported: the culture aware standard grammar
// ([Parse]), custom pictures ([ParseExact]) and a list of pictures tried in
// order ([ParseExactMultiple]). Every Parse* function has a Try* twin that
// reports failure as false instead of an error; both run the same checks.
package timespan

func Parse(s string, provider LiteralProvider) (Duration, error) {
	res := newResult(true)
	if !parseStandard(s, styleAny, provider, &res) {
		return 0, res.err()
	}
	return Duration(res.ticks), nil
}

func TryParse(s string, provider LiteralProvider) (Duration, bool) {
	res := newResult(false)
	if !parseStandard(s, styleAny, provider, &res) {
		return 0, false
	}
	return Duration(res.ticks), true
}

// ParseExact parses s with one picture. The single letters c, t and T select
// the constant form, g the localized form and G the localized full form.
func ParseExact(s string, picture string, provider LiteralProvider, styles Styles) (Duration, error) {
	res := newResult(true)
	if !parseExact(s, picture, provider, styles, &res) {
		return 0, res.err()
	}
	return Duration(res.ticks), nil
}

func TryParseExact(s string, picture string, provider LiteralProvider, styles Styles) (Duration, bool) {
	res := newResult(false)
	if !parseExact(s, picture, provider, styles, &res) {
		return 0, false
	}
	return Duration(res.ticks), true
}

// ParseExactMultiple returns the result of the first picture that matches.
// A nil or empty list, or an empty picture anywhere in it, is an error even
// when an earlier picture would have matched.
func ParseExactMultiple(s string, pictures []string, provider LiteralProvider, styles Styles) (Duration, error) {
	res := newResult(true)
	if !parseExactMultiple(s, pictures, provider, styles, &res) {
		return 0, res.err()
	}
	return Duration(res.ticks), nil
}

func TryParseExactMultiple(s string, pictures []string, provider LiteralProvider, styles Styles) (Duration, bool) {
	res := newResult(false)
	if !parseExactMultiple(s, pictures, provider, styles, &res) {
		return 0, false
	}
	return Duration(res.ticks), true
}

func parseExact(input string, picture string, provider LiteralProvider, styles Styles, res *result) bool {
	if !styles.valid() {
		return res.failArgument(KindBadFormatWithArgument, ReasonInvalidStyles, "styles")
	}
	if picture == "" {
		return res.fail(KindBadFormat, ReasonBadFormatSpecifier)
	}

	if len(picture) == 1 {
		switch picture[0] {
		case 'c', 't', 'T':
			return parseConstant(input, res)
		case 'g':
			return parseStandard(input, styleLocalized, provider, res)
		case 'G':
			return parseStandard(input, styleLocalized|styleRequireFull, provider, res)
		default:
			return res.fail(KindBadFormat, ReasonBadFormatSpecifier)
		}
	}

	return parseByFormat(input, picture, styles, res)
}

func parseExactMultiple(
	input string, pictures []string, provider LiteralProvider, styles Styles, res *result,
) bool {
	if pictures == nil {
		return res.failArgument(KindNullArgument, ReasonArgumentNull, "pictures")
	}
	if !styles.valid() {
		return res.failArgument(KindBadFormatWithArgument, ReasonInvalidStyles, "styles")
	}
	if len(pictures) == 0 {
		return res.fail(KindBadFormat, ReasonBadFormatSpecifier)
	}
	for _, picture := range pictures {
		if picture == "" {
			return res.fail(KindBadFormat, ReasonBadFormatSpecifier)
		}
	}
	if input == "" {
		return res.fail(KindBadFormat, ReasonBadTimeSpan)
	}

	for _, picture := range pictures {
		// Each attempt gets its own quiet result so one picture's failure
		// cannot leak into the next.
		inner := newResult(false)
		if parseExact(input, picture, provider, styles, &inner) {
			return res.succeed(inner.ticks)
		}
	}
	return res.fail(KindBadFormat, ReasonBadTimeSpan)
}
