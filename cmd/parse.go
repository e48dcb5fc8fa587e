package cmd

import (
	"bufio"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"spanparse/log"
	"spanparse/oops"
	"spanparse/timespan"
)

func newParseCmd(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "parse [text...]",
		Short: "Parse with the standard grammar, reading lines from stdin when no text is given",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := resolveCulture(flags)
			if err != nil {
				return err
			}
			inputs, err := inputsOrStdin(cmd.InOrStdin(), args)
			if err != nil {
				return err
			}

			return runEach(cmd.OutOrStdout(), flags.json, inputs, func(input string) (timespan.Duration, error) {
				return timespan.Parse(input, c)
			})
		},
	}
}

func inputsOrStdin(stdin io.Reader, args []string) ([]string, error) {
	if len(args) > 0 {
		return args, nil
	}

	var inputs []string
	scanner := bufio.NewScanner(stdin)
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")
		if line == "" {
			continue
		}
		inputs = append(inputs, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, oops.Wrap(err)
	}
	return inputs, nil
}

// runEach prints one result per input and fails if any input did not parse.
func runEach(
	w io.Writer, asJSON bool, inputs []string, parse func(string) (timespan.Duration, error),
) error {
	failures := 0
	for _, input := range inputs {
		d, err := parse(input)
		if err != nil {
			failures++
			log.Debug().Err(err).Str("input", input).Msg("parse failed")
		}
		if err := writeOutput(w, asJSON, newParseOutput(input, d, err)); err != nil {
			return err
		}
	}
	if failures > 0 {
		return oops.Newf("%d of %d inputs failed to parse", failures, len(inputs))
	}
	return nil
}
