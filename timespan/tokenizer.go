package timespan

import "math"

type tokenKind int

const (
	tokenNone tokenKind = iota
	tokenEnd
	tokenNumber
	tokenSeparator
	tokenNumberOverflow
)

// number is a digit run. "01" and "1" share a value but not a zero count,
// which matters for fractions. value never exceeds math.MaxInt32.
type number struct {
	value  int
	zeroes int
}

func newNumber(value int) number {
	return number{value: value, zeroes: 0}
}

type token struct {
	kind tokenKind
	num  number
	sep  string
}

type tokenizer struct {
	value string
	pos   int
}

// newTokenizer scans whole tokens from start. The custom grammar steps single
// characters and starts at -1, one before the first character.
func newTokenizer(value string, start int) tokenizer {
	return tokenizer{value: value, pos: start}
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func (t *tokenizer) atEnd() bool {
	return t.pos >= len(t.value)-1
}

func (t *tokenizer) nextToken() token {
	if t.pos >= len(t.value) {
		return token{kind: tokenEnd} //nolint:exhaustruct
	}

	if isDigit(t.value[t.pos]) {
		// value stays int64 until it is known to fit in an int32.
		var value int64
		zeroes := 0
		for t.pos < len(t.value) && isDigit(t.value[t.pos]) {
			if value&0xF000_0000 != 0 {
				return token{kind: tokenNumberOverflow} //nolint:exhaustruct
			}
			value = value*10 + int64(t.value[t.pos]-'0')
			if value > math.MaxInt32 {
				return token{kind: tokenNumberOverflow} //nolint:exhaustruct
			}
			if value == 0 {
				zeroes++
			}
			t.pos++
		}
		return token{kind: tokenNumber, num: number{value: int(value), zeroes: zeroes}} //nolint:exhaustruct
	}

	start := t.pos
	for t.pos < len(t.value) && !isDigit(t.value[t.pos]) {
		t.pos++
	}
	return token{kind: tokenSeparator, sep: t.value[start:t.pos]} //nolint:exhaustruct
}

// advanceChar moves one character forward and returns it. ok is false once the
// position is past the input.
func (t *tokenizer) advanceChar() (c byte, ok bool) {
	t.pos++
	if t.pos < len(t.value) {
		return t.value[t.pos], true
	}
	return 0, false
}

func (t *tokenizer) stepBack() {
	if t.pos >= 0 {
		t.pos--
	}
}

// exactDigits reads between minDigits and maxDigits digits. Callers ask for
// at most 8, so the value stays well inside int32.
func (t *tokenizer) exactDigits(minDigits, maxDigits int) (num number, ok bool) {
	digits := 0
	for digits < maxDigits {
		c, more := t.advanceChar()
		if !more || !isDigit(c) {
			t.stepBack()
			break
		}
		num.value = num.value*10 + int(c-'0')
		if num.value == 0 {
			num.zeroes++
		}
		digits++
	}
	return num, digits >= minDigits
}

// matchLiteral consumes literal byte for byte.
func (t *tokenizer) matchLiteral(literal string) bool {
	for i := 0; i < len(literal); i++ {
		c, more := t.advanceChar()
		if !more || c != literal[i] {
			return false
		}
	}
	return true
}
