package cmd

import (
	"bufio"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/dlclark/regexp2"
	"github.com/spf13/cobra"

	"spanparse/culture"
	"spanparse/log"
	"spanparse/oops"
	"spanparse/timespan"
)

func newScanCmd(flags *globalFlags) *cobra.Command {
	var showRejected bool

	scanCmd := &cobra.Command{
		Use:   "scan [file]",
		Short: "Find and parse duration-looking text in a file or stdin",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := resolveCulture(flags)
			if err != nil {
				return err
			}

			var reader io.Reader = cmd.InOrStdin()
			if len(args) == 1 {
				f, err := os.Open(args[0])
				if err != nil {
					return oops.Wrap(err)
				}
				defer f.Close()
				reader = f
			}

			return scan(reader, cmd.OutOrStdout(), flags.json, showRejected, c)
		},
	}
	scanCmd.Flags().BoolVar(&showRejected, "rejected", false, "also print candidates that failed to parse")
	return scanCmd
}

// candidatePattern matches runs of 2 to 5 digit groups joined by any of the
// given separators, not glued to surrounding letters, digits or separators.
func candidatePattern(separators []string) *regexp2.Regexp {
	escaped := make([]string, 0, len(separators))
	for _, sep := range separators {
		escaped = append(escaped, regexp2.Escape(sep))
	}
	sepGroup := "(?:" + strings.Join(escaped, "|") + ")"
	pattern := `(?<![\p{L}\p{N}]|` + sepGroup + `)-?\d+(?:` + sepGroup + `\d+){1,4}(?![\p{L}\p{N}]|` +
		sepGroup + `\d)`
	return regexp2.MustCompile(pattern, regexp2.None)
}

func scanSeparators(c *culture.Culture) []string {
	set := map[string]struct{}{}
	for _, negative := range []bool{false, true} {
		for _, literals := range []timespan.FormatLiterals{
			timespan.InvariantLiterals(negative), c.FormatLiterals(negative),
		} {
			for _, sep := range []string{
				literals.DayHourSep, literals.HourMinuteSep, literals.MinuteSecondSep,
				literals.SecondFractionSep,
			} {
				if sep != "" {
					set[sep] = struct{}{}
				}
			}
		}
	}

	separators := make([]string, 0, len(set))
	for sep := range set {
		separators = append(separators, sep)
	}
	// Longest first so alternation prefers multi-character separators.
	sort.Slice(separators, func(i, j int) bool {
		if len(separators[i]) != len(separators[j]) {
			return len(separators[i]) > len(separators[j])
		}
		return separators[i] < separators[j]
	})
	return separators
}

func scan(r io.Reader, w io.Writer, asJSON bool, showRejected bool, c *culture.Culture) error {
	re := candidatePattern(scanSeparators(c))
	scanner := bufio.NewScanner(r)
	lineNumber := 0
	found := 0
	for scanner.Scan() {
		lineNumber++
		line := scanner.Text()
		match, err := re.FindStringMatch(line)
		for ; err == nil && match != nil; match, err = re.FindNextMatch(match) {
			candidate := match.String()
			d, parseErr := timespan.Parse(candidate, c)
			if parseErr != nil {
				log.Debug().Err(parseErr).Int("line", lineNumber).Str("candidate", candidate).Msg("rejected")
				if !showRejected {
					continue
				}
			} else {
				found++
			}

			out := newParseOutput(candidate, d, parseErr)
			out.Line = lineNumber
			if err := writeOutput(w, asJSON, out); err != nil {
				return err
			}
		}
		if err != nil {
			return oops.Wrapf(err, "line %d", lineNumber)
		}
	}
	if err := scanner.Err(); err != nil {
		return oops.Wrap(err)
	}
	log.Info().Int("lines", lineNumber).Int("durations", found).Msg("scan finished")
	return nil
}
