package cmd

import (
	"fmt"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"spanparse/culture"
	"spanparse/oops"
	"spanparse/timespan"
)

type cultureOutput struct {
	Name             string                  `json:"name"`
	DecimalSeparator string                  `json:"decimal_separator"`
	PositivePattern  string                  `json:"positive_pattern"`
	NegativePattern  string                  `json:"negative_pattern"`
	Positive         timespan.FormatLiterals `json:"positive"`
	Negative         timespan.FormatLiterals `json:"negative"`
}

func newCulturesCmd(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "cultures",
		Short: "List known cultures and their literal sets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			// Loads the configured overrides as a side effect.
			if _, err := resolveCulture(flags); err != nil {
				return err
			}

			cultures := append([]*culture.Culture{culture.Invariant}, culture.Default().Cultures()...)
			w := cmd.OutOrStdout()
			for _, c := range cultures {
				out := cultureOutput{
					Name:             c.Name,
					DecimalSeparator: c.DecimalSeparator,
					PositivePattern:  c.PositivePattern,
					NegativePattern:  c.NegativePattern,
					Positive:         c.FormatLiterals(false),
					Negative:         c.FormatLiterals(true),
				}
				if flags.json {
					bytes, err := json.Marshal(out)
					if err != nil {
						return oops.Wrap(err)
					}
					if _, err := fmt.Fprintf(w, "%s\n", bytes); err != nil {
						return oops.Wrap(err)
					}
					continue
				}
				if _, err := fmt.Fprintf(
					w, "%s\t%q\t%s\t%s\n", out.Name, out.DecimalSeparator, out.PositivePattern, out.NegativePattern,
				); err != nil {
					return oops.Wrap(err)
				}
			}
			return nil
		},
	}
}
