// Run `golangci-lint cache clean` after modifying this file.

package gorules

import (
	"github.com/quasilyte/go-ruleguard/dsl"
)

func parserPurity(m dsl.Matcher) {
	m.Match(`log.$_()`).
		Where(m.File().PkgPath.Matches(`spanparse/timespan`)).
		Report(`the parser does not log, report failures through result instead`)
	m.Match(`time.Now()`).
		Where(m.File().PkgPath.Matches(`spanparse/timespan`)).
		Report(`parsing must not depend on the clock`)
	m.Match(`fmt.Errorf($*_)`, `errors.New($_)`).
		Where(
			!m.File().PkgPath.Matches(`spanparse/timespan`) &&
				!m.File().PkgPath.Matches(`spanparse/oops`)).
		Report(`use oops.New or oops.Newf to keep the stack`)
}

func cultureRegistry(m dsl.Matcher) {
	m.Match(`culture.Default().Register($_)`).
		Where(!m.File().PkgPath.Matches(`spanparse/culture`)).
		Report(`load cultures through Registry.Load or LoadFile so patterns are validated`)
}
