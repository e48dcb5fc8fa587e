//go:build testing

package timespan

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNextToken(t *testing.T) {
	tz := newTokenizer("-1.02:03", 0)
	expected := []token{
		{kind: tokenSeparator, num: number{}, sep: "-"},
		{kind: tokenNumber, num: number{value: 1, zeroes: 0}, sep: ""},
		{kind: tokenSeparator, num: number{}, sep: "."},
		{kind: tokenNumber, num: number{value: 2, zeroes: 1}, sep: ""},
		{kind: tokenSeparator, num: number{}, sep: ":"},
		{kind: tokenNumber, num: number{value: 3, zeroes: 1}, sep: ""},
	}
	for _, tok := range expected {
		require.Equal(t, tok, tz.nextToken())
	}
	require.Equal(t, tokenEnd, tz.nextToken().kind)
}

func TestNextTokenOverflow(t *testing.T) {
	type Test struct {
		Input        string
		ExpectedKind tokenKind
	}

	tests := []Test{
		{"2147483647", tokenNumber},
		{"2147483648", tokenNumberOverflow},
		{"99999999999", tokenNumberOverflow},
		{"4294967297", tokenNumberOverflow},
		{"42949672970000000001", tokenNumberOverflow},
		{"268435455", tokenNumber},
		{"2684354560", tokenNumberOverflow},
		{"300000000", tokenNumber},
		{"0000000000000", tokenNumber},
	}

	for _, test := range tests {
		tz := newTokenizer(test.Input, 0)
		require.Equal(t, test.ExpectedKind, tz.nextToken().kind, test.Input)
	}
}

func TestExactDigits(t *testing.T) {
	tz := newTokenizer("123ab", -1)

	num, ok := tz.exactDigits(2, 2)
	require.True(t, ok)
	require.Equal(t, 12, num.value)

	num, ok = tz.exactDigits(1, 2)
	require.True(t, ok)
	require.Equal(t, 3, num.value)

	_, ok = tz.exactDigits(1, 1)
	require.False(t, ok)

	require.True(t, tz.matchLiteral("ab"))
	require.True(t, tz.atEnd())
}

func TestExactDigitsCountsLeadingZeroes(t *testing.T) {
	tz := newTokenizer("0050", -1)
	num, ok := tz.exactDigits(4, 4)
	require.True(t, ok)
	require.Equal(t, number{value: 50, zeroes: 2}, num)
	require.True(t, tz.atEnd())
}

func TestMatchLiteralPastEnd(t *testing.T) {
	tz := newTokenizer("a", -1)
	require.False(t, tz.matchLiteral("ab"))
}

func TestNextTokenKeepsLargeValues(t *testing.T) {
	tz := newTokenizer("300000000x", 0)
	require.Equal(t, token{kind: tokenNumber, num: number{value: 300_000_000, zeroes: 0}, sep: ""}, tz.nextToken())
	require.Equal(t, token{kind: tokenSeparator, num: number{}, sep: "x"}, tz.nextToken())
}
