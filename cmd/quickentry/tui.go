package main

import (
	"github.com/spf13/cobra"

	"quick-entry/internal/tui"
)

func tuiCmd(flags *rootFlags) *cobra.Command {
	var server string

	cmd := &cobra.Command{
		Use:   "tui",
		Short: "Type entries with a live preview",
		Long: `Opens an input line that re-parses on every keystroke and shows the
recognised fields underneath. Enter submits the line to a running quick-entry
server when --server is set, otherwise it is only kept in the session list.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			parser, _, err := flags.setup()
			if err != nil {
				return err
			}

			var submit tui.SubmitFunc
			if server != "" {
				submit = tui.NewHTTPSubmitter(server)
			}
			return tui.Run(parser, submit)
		},
	}

	cmd.Flags().StringVar(&server, "server", "", "base URL of a quick-entry server, e.g. http://localhost:8080")
	return cmd
}
