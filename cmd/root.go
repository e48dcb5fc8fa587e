package cmd

import (
	"io"
	"strconv"

	"github.com/goccy/go-json"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"spanparse/config"
	"spanparse/culture"
	"spanparse/log"
	"spanparse/oops"
	"spanparse/timespan"
)

type globalFlags struct {
	culture  string
	json     bool
	logLevel string
}

func NewRoot() *cobra.Command {
	var flags globalFlags
	root := &cobra.Command{
		Use:           "spanparse",
		Short:         "Parse textual durations into 100ns ticks",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			logLevel := flags.logLevel
			if logLevel == "" {
				logLevel = config.Cfg.LogLevel
			}
			return log.SetLevel(logLevel)
		},
	}
	root.PersistentFlags().StringVar(&flags.culture, "culture", "", "culture for localized literals (default from config)")
	root.PersistentFlags().BoolVar(&flags.json, "json", false, "print results as JSON lines")
	root.PersistentFlags().StringVar(&flags.logLevel, "log-level", "", "debug, info, warn or error")

	root.AddCommand(newParseCmd(&flags))
	root.AddCommand(newExactCmd(&flags))
	root.AddCommand(newScanCmd(&flags))
	root.AddCommand(newCulturesCmd(&flags))
	return root
}

// resolveCulture loads the configured overrides into the default registry
// and picks the culture named by the flag or the config. Unknown names are an
// error outside production.
func resolveCulture(flags *globalFlags) (*culture.Culture, error) {
	registry := culture.Default()
	if config.Cfg.CulturesFile != "" {
		if err := registry.LoadFile(config.Cfg.CulturesFile); err != nil {
			return nil, err
		}
	}

	name := flags.culture
	if name == "" {
		name = config.Cfg.Culture
	}
	c := registry.Lookup(name)
	if c == culture.Invariant && !culture.IsInvariantName(name) {
		if config.Cfg.Env.IsDevOrTest() {
			return nil, oops.Newf("unknown culture %q", name)
		}
		log.Warn().Str("culture", name).Msg("unknown culture, using invariant")
	}
	log.Debug().Str("requested", name).Str("culture", c.Name).Msg("resolved culture")
	return c, nil
}

type parseOutput struct {
	Input    string `json:"input"`
	Line     int    `json:"line,omitempty"`
	Ticks    int64  `json:"ticks"`
	Duration string `json:"duration,omitempty"`
	Kind     string `json:"kind,omitempty"`
	Error    string `json:"error,omitempty"`
}

func newParseOutput(input string, d timespan.Duration, err error) parseOutput {
	out := parseOutput{
		Input:    input,
		Line:     0,
		Ticks:    0,
		Duration: "",
		Kind:     "",
		Error:    "",
	}
	if err != nil {
		out.Error = err.Error()
		var parseErr *timespan.ParseError
		if errors.As(err, &parseErr) {
			out.Kind = parseErr.Kind.String()
		}
		return out
	}
	out.Ticks = d.Ticks()
	out.Duration = d.Std().String()
	return out
}

func writeOutput(w io.Writer, asJSON bool, out parseOutput) error {
	if asJSON {
		bytes, err := json.Marshal(out)
		if err != nil {
			return oops.Wrap(err)
		}
		bytes = append(bytes, '\n')
		_, err = w.Write(bytes)
		return oops.Wrap(err)
	}

	var err error
	prefix := out.Input
	if out.Line > 0 {
		prefix = strconv.Itoa(out.Line) + "\t" + prefix
	}
	if out.Error != "" {
		_, err = io.WriteString(w, prefix+"\terror\t"+out.Error+"\n")
	} else {
		_, err = io.WriteString(w, prefix+"\t"+strconv.FormatInt(out.Ticks, 10)+"\t"+out.Duration+"\n")
	}
	return oops.Wrap(err)
}
