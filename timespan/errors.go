package timespan

import (
	"errors"
	"fmt"

	"spanparse/oops"
)

type Kind int

const (
	KindNone Kind = iota
	KindNullArgument
	KindBadFormat
	KindBadFormatWithArgument
	KindOverflow
)

func (k Kind) String() string {
	switch k {
	case KindNone:
		return "none"
	case KindNullArgument:
		return "null argument"
	case KindBadFormat:
		return "bad format"
	case KindBadFormatWithArgument:
		return "bad format with argument"
	case KindOverflow:
		return "overflow"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Reason is a stable tag for the message a caller may want to render.
type Reason int

const (
	ReasonNone Reason = iota
	ReasonArgumentNull
	ReasonBadTimeSpan
	ReasonInvalidString
	ReasonBadFormatSpecifier
	ReasonBadQuote
	ReasonElementTooLarge
	ReasonInvalidStyles
)

func (r Reason) String() string {
	switch r {
	case ReasonNone:
		return "none"
	case ReasonArgumentNull:
		return "argumentNull"
	case ReasonBadTimeSpan:
		return "badTimeSpan"
	case ReasonInvalidString:
		return "invalidString"
	case ReasonBadFormatSpecifier:
		return "badFormatSpecifier"
	case ReasonBadQuote:
		return "badQuote"
	case ReasonElementTooLarge:
		return "elementTooLarge"
	case ReasonInvalidStyles:
		return "invalidStyles"
	default:
		return fmt.Sprintf("Reason(%d)", int(r))
	}
}

var (
	ErrNullArgument      = errors.New("value cannot be nil")
	ErrBadFormat         = errors.New("string was not recognized as a valid duration")
	ErrBadFormatArgument = errors.New("format is invalid")
	ErrOverflow          = errors.New("duration component is out of range")
)

type ParseError struct {
	Kind      Kind
	Reason    Reason
	Argument  string
	FormatArg rune
}

func (e *ParseError) Error() string {
	switch e.Reason {
	case ReasonArgumentNull:
		return fmt.Sprintf("%s: %s", ErrNullArgument.Error(), e.Argument)
	case ReasonBadTimeSpan:
		return ErrBadFormat.Error()
	case ReasonInvalidString:
		return "input string was not in a correct format"
	case ReasonBadFormatSpecifier:
		return "format specifier was invalid"
	case ReasonBadQuote:
		return fmt.Sprintf("cannot find a matching quote character for the character '%c'", e.FormatArg)
	case ReasonElementTooLarge:
		return "the duration could not be parsed because at least one of the numeric components " +
			"is out of range or contains too many digits"
	case ReasonInvalidStyles:
		return fmt.Sprintf("invalid %s value", e.Argument)
	default:
		return e.Kind.String()
	}
}

func (e *ParseError) Is(target error) bool {
	switch target {
	case ErrNullArgument:
		return e.Kind == KindNullArgument
	case ErrBadFormat:
		return e.Kind == KindBadFormat
	case ErrBadFormatArgument:
		return e.Kind == KindBadFormatWithArgument
	case ErrOverflow:
		return e.Kind == KindOverflow
	default:
		return false
	}
}

// result is the outcome of one parse call. With throw unset only the kind of a
// failure is kept, so the boolean entry points never build an error value.
type result struct {
	ticks   int64
	throw   bool
	kind    Kind
	failure *ParseError
}

func newResult(throw bool) result {
	return result{throw: throw} //nolint:exhaustruct
}

func (r *result) fail(kind Kind, reason Reason) bool {
	return r.failWith(kind, reason, "", 0)
}

func (r *result) failArgument(kind Kind, reason Reason, argument string) bool {
	return r.failWith(kind, reason, argument, 0)
}

func (r *result) failWith(kind Kind, reason Reason, argument string, formatArg rune) bool {
	r.kind = kind
	if r.throw {
		r.failure = &ParseError{
			Kind:      kind,
			Reason:    reason,
			Argument:  argument,
			FormatArg: formatArg,
		}
	}
	return false
}

func (r *result) succeed(ticks int64) bool {
	r.ticks = ticks
	r.kind = KindNone
	r.failure = nil
	return true
}

func (r *result) err() error {
	if r.failure == nil {
		return nil
	}
	return oops.Wrap(r.failure)
}
