package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func simpleCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:     "simple <text>",
		Short:   "Parse with the token parser (#tag, /calendar, p1..p3, due:<phrase>)",
		Example: `  quickentry simple "Bericht #arbeit p1 due:next_friday"`,
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			parser, now, err := flags.setup()
			if err != nil {
				return err
			}

			res := parser.ParseSimple(strings.Join(args, " "), now)
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, res.Title)
			if len(res.Tags) > 0 {
				fmt.Fprintln(out, "  🏷 "+strings.Join(res.Tags, " "))
			}
			if res.CalendarKey != "" {
				fmt.Fprintln(out, "  🗓 /"+res.CalendarKey)
			}
			if res.Priority != "" {
				fmt.Fprintln(out, "  ❗ "+string(res.Priority))
			}
			if res.Due != nil {
				fmt.Fprintln(out, "  📅 "+res.Due.Format("Mon 02.01.2006"))
			}
			return nil
		},
	}
}
