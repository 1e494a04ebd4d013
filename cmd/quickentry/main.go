package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"quick-entry/pkg/quickparse"
)

var version = "dev"

const nowLayout = "2006-01-02 15:04"

type rootFlags struct {
	timezone string
	now      string
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	rootCmd := &cobra.Command{
		Use:     "quickentry",
		Short:   "Parse quick-entry lines from the terminal",
		Version: version,

		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.PersistentFlags().StringVar(&flags.timezone, "tz", "Europe/Berlin", "IANA timezone for relative dates")
	rootCmd.PersistentFlags().StringVar(&flags.now, "now", "", `reference time, RFC3339 or "2006-01-02 15:04" (default: current time)`)

	rootCmd.AddCommand(parseCmd(flags))
	rootCmd.AddCommand(simpleCmd(flags))
	rootCmd.AddCommand(shortcutsCmd())
	rootCmd.AddCommand(tuiCmd(flags))
	return rootCmd
}

// setup builds the parser and resolves the reference time from the flags.
func (f *rootFlags) setup() (*quickparse.Parser, time.Time, error) {
	parser, err := quickparse.NewParser(f.timezone)
	if err != nil {
		return nil, time.Time{}, fmt.Errorf("invalid --tz %q: %w", f.timezone, err)
	}

	now, err := parseNow(f.now, parser.Location())
	if err != nil {
		return nil, time.Time{}, err
	}
	return parser, now, nil
}

func parseNow(value string, loc *time.Location) (time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Now().In(loc), nil
	}
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t.In(loc), nil
	}
	if t, err := time.ParseInLocation(nowLayout, value, loc); err == nil {
		return t, nil
	}
	return time.Time{}, fmt.Errorf("invalid --now %q: want RFC3339 or %q", value, nowLayout)
}
