//go:build testing

package timespan

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"spanparse/oops"
)

func TestParseExactMultiple(t *testing.T) {
	pictures := []string{`hh\:mm\:ss`, `hh\:mm`, "c"}

	d, err := ParseExactMultiple("01:02", pictures, nil, StylesNone)
	oops.RequireNoError(t, err)
	require.Equal(t, span(0, 1, 2, 0, 0), d.Ticks())

	d, err = ParseExactMultiple("01:02:03", pictures, nil, StylesNone)
	oops.RequireNoError(t, err)
	require.Equal(t, span(0, 1, 2, 3, 0), d.Ticks())

	d, err = ParseExactMultiple("1.02:03", pictures, nil, StylesNone)
	oops.RequireNoError(t, err)
	require.Equal(t, span(1, 2, 3, 0, 0), d.Ticks())

	d, ok := TryParseExactMultiple("01:02", pictures, nil, StylesAssumeNegative)
	require.True(t, ok)
	require.Equal(t, -span(0, 1, 2, 0, 0), d.Ticks())
}

func TestParseExactMultipleFailures(t *testing.T) {
	type Test struct {
		Description    string
		Input          string
		Pictures       []string
		Styles         Styles
		ExpectedErr    error
		ExpectedReason Reason
	}

	tests := []Test{
		{"nil list", "01:02", nil, StylesNone, ErrNullArgument, ReasonArgumentNull},
		{"empty list", "01:02", []string{}, StylesNone, ErrBadFormat, ReasonBadFormatSpecifier},
		{
			"empty picture after a match", "01:02", []string{`hh\:mm`, ""}, StylesNone,
			ErrBadFormat, ReasonBadFormatSpecifier,
		},
		{"empty input", "", []string{`hh\:mm`}, StylesNone, ErrBadFormat, ReasonBadTimeSpan},
		{"no match", "01-02", []string{`hh\:mm`, "c"}, StylesNone, ErrBadFormat, ReasonBadTimeSpan},
		{"overflow is not reported", "25:00", []string{`hh\:mm`}, StylesNone, ErrBadFormat, ReasonBadTimeSpan},
		{
			"invalid styles", "01:02", []string{`hh\:mm`}, Styles(8),
			ErrBadFormatArgument, ReasonInvalidStyles,
		},
	}

	for _, test := range tests {
		_, err := ParseExactMultiple(test.Input, test.Pictures, nil, test.Styles)
		oops.RequireStackError(t, err, test.ExpectedErr, test.Description)
		var parseErr *ParseError
		require.ErrorAs(t, err, &parseErr, test.Description)
		require.Equal(t, test.ExpectedReason, parseErr.Reason, test.Description)

		_, ok := TryParseExactMultiple(test.Input, test.Pictures, nil, test.Styles)
		require.False(t, ok, test.Description)
	}
}

func TestNullArgumentMessage(t *testing.T) {
	_, err := ParseExactMultiple("1", nil, nil, StylesNone)
	require.EqualError(t, err, "value cannot be nil: pictures")
}

func TestTryAndParseAgree(t *testing.T) {
	inputs := []string{
		"", "1", "1:2", "1:2:3", "1.2:3:4.5", "-1:2", "24:00", "1:2:3.12345678", "x", "1:2:3:4:5",
		"10675199.02:48:05.4775808", "-10675199.02:48:05.4775808", " 1 ", "1:2:.5", "1::2",
	}
	pictures := []string{"c", "g", "G", `hh\:mm`, `d\.hh\:mm\:ss`, `h\:m\:s\.FFFFFFF`}

	for _, input := range inputs {
		d, err := Parse(input, nil)
		tryD, ok := TryParse(input, nil)
		require.Equal(t, err == nil, ok, input)
		require.Equal(t, d, tryD, input)

		for _, picture := range pictures {
			d, err := ParseExact(input, picture, nil, StylesNone)
			tryD, ok := TryParseExact(input, picture, nil, StylesNone)
			require.Equal(t, err == nil, ok, "%q %q", input, picture)
			require.Equal(t, d, tryD, "%q %q", input, picture)
		}

		d, err = ParseExactMultiple(input, pictures, nil, StylesNone)
		tryD, ok = TryParseExactMultiple(input, pictures, nil, StylesNone)
		require.Equal(t, err == nil, ok, input)
		require.Equal(t, d, tryD, input)
	}
}

// formatConstant renders d as [-][d.]hh:mm:ss[.fffffff].
func formatConstant(d Duration) string {
	ticks := d.Ticks()
	var b strings.Builder
	magnitude := uint64(ticks)
	if ticks < 0 {
		b.WriteByte('-')
		magnitude = uint64(-ticks)
	}
	days := magnitude / uint64(TicksPerDay)
	rest := magnitude % uint64(TicksPerDay)
	if days > 0 {
		fmt.Fprintf(&b, "%d.", days)
	}
	fmt.Fprintf(
		&b, "%02d:%02d:%02d",
		rest/uint64(TicksPerHour),
		rest%uint64(TicksPerHour)/uint64(TicksPerMinute),
		rest%uint64(TicksPerMinute)/uint64(TicksPerSecond),
	)
	if fraction := rest % uint64(TicksPerSecond); fraction > 0 {
		fmt.Fprintf(&b, ".%07d", fraction)
	}
	return b.String()
}

// formatFull renders d in the localized full shape [-]d:hh:mm:ss.fffffff.
func formatFull(d Duration) string {
	ticks := d.Ticks()
	sign := ""
	magnitude := uint64(ticks)
	if ticks < 0 {
		sign = "-"
		magnitude = uint64(-ticks)
	}
	return fmt.Sprintf(
		"%s%d:%02d:%02d:%02d.%07d",
		sign,
		magnitude/uint64(TicksPerDay),
		magnitude%uint64(TicksPerDay)/uint64(TicksPerHour),
		magnitude%uint64(TicksPerHour)/uint64(TicksPerMinute),
		magnitude%uint64(TicksPerMinute)/uint64(TicksPerSecond),
		magnitude%uint64(TicksPerSecond),
	)
}

func TestRoundTrip(t *testing.T) {
	durations := []Duration{
		0,
		1,
		FromTicks(TicksPerSecond),
		FromTicks(span(0, 1, 2, 3, 5_000_000)),
		FromTicks(-span(1, 2, 3, 4, 5_000_000)),
		FromTicks(1_234_567_890_123),
		FromTicks(-1),
		MaxDuration,
		MinDuration,
	}

	for _, d := range durations {
		text := formatConstant(d)

		parsed, err := ParseExact(text, "c", nil, StylesNone)
		oops.RequireNoError(t, err, text)
		require.Equal(t, d, parsed, text)

		parsed, err = Parse(text, nil)
		oops.RequireNoError(t, err, text)
		require.Equal(t, d, parsed, text)

		full := formatFull(d)
		parsed, err = ParseExact(full, "G", nil, StylesNone)
		oops.RequireNoError(t, err, full)
		require.Equal(t, d, parsed, full)
	}
}
