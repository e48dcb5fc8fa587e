package culture

import (
	"strings"
	"unicode"

	lru "github.com/hashicorp/golang-lru/v2"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"spanparse/log"
	"spanparse/timespan"
)

// Culture supplies the localized literals of one locale to the parser.
type Culture struct {
	Name             string
	Tag              language.Tag
	DecimalSeparator string
	PositivePattern  string
	NegativePattern  string

	cache *lru.Cache[literalsKey, timespan.FormatLiterals]
}

// literalsKey is per Culture value, so a replaced culture still held by a
// caller never shares entries with its replacement.
type literalsKey struct {
	culture  *Culture
	negative bool
}

const InvariantName = "invariant"

var Invariant = &Culture{
	Name:             InvariantName,
	Tag:              language.Und,
	DecimalSeparator: ".",
	PositivePattern:  defaultPositivePattern("."),
	NegativePattern:  defaultNegativePattern("."),
	cache:            nil,
}

// New builds a culture from its tag, taking the decimal separator from CLDR
// and the standard full patterns around it.
func New(tag language.Tag) *Culture {
	sep := DecimalSeparator(tag)
	return &Culture{
		Name:             tag.String(),
		Tag:              tag,
		DecimalSeparator: sep,
		PositivePattern:  defaultPositivePattern(sep),
		NegativePattern:  defaultNegativePattern(sep),
		cache:            nil,
	}
}

// DecimalSeparator formats 1.5 for tag and keeps what sits between the digits.
func DecimalSeparator(tag language.Tag) string {
	formatted := message.NewPrinter(tag).Sprintf("%.1f", 1.5)
	sep := strings.TrimFunc(formatted, unicode.IsDigit)
	if sep == "" {
		return "."
	}
	return sep
}

func (c *Culture) FormatLiterals(negative bool) timespan.FormatLiterals {
	key := literalsKey{culture: c, negative: negative}
	if c.cache != nil {
		if literals, ok := c.cache.Get(key); ok {
			return literals
		}
	}

	pattern := c.PositivePattern
	if negative {
		pattern = c.NegativePattern
	}
	literals, err := LiteralsFromPattern(pattern)
	if err != nil {
		// Patterns are validated on registration, so this only happens for a
		// Culture assembled by hand.
		log.Warn().Err(err).Str("culture", c.Name).Msg("falling back to invariant literals")
		return timespan.InvariantCulture.FormatLiterals(negative)
	}

	if c.cache != nil {
		c.cache.Add(key, literals)
	}
	return literals
}

func (c *Culture) validate() error {
	if _, err := LiteralsFromPattern(c.PositivePattern); err != nil {
		return err
	}
	_, err := LiteralsFromPattern(c.NegativePattern)
	return err
}

var _ timespan.LiteralProvider = (*Culture)(nil)
