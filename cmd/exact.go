package cmd

import (
	"github.com/spf13/cobra"

	"spanparse/timespan"
)

func newExactCmd(flags *globalFlags) *cobra.Command {
	var formats []string
	var negative bool

	exactCmd := &cobra.Command{
		Use:   "exact [text...]",
		Short: "Parse against one or more pictures, first match wins",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := resolveCulture(flags)
			if err != nil {
				return err
			}
			inputs, err := inputsOrStdin(cmd.InOrStdin(), args)
			if err != nil {
				return err
			}

			styles := timespan.StylesNone
			if negative {
				styles = timespan.StylesAssumeNegative
			}
			return runEach(cmd.OutOrStdout(), flags.json, inputs, func(input string) (timespan.Duration, error) {
				if len(formats) == 1 {
					return timespan.ParseExact(input, formats[0], c, styles)
				}
				return timespan.ParseExactMultiple(input, formats, c, styles)
			})
		},
	}
	exactCmd.Flags().StringArrayVarP(&formats, "format", "f", nil, "picture such as c, g, G or hh\\:mm\\:ss (repeatable)")
	exactCmd.Flags().BoolVar(&negative, "negative", false, "treat custom picture results as negative")
	_ = exactCmd.MarkFlagRequired("format")
	return exactCmd
}
