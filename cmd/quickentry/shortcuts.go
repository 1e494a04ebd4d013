package main

import (
	"fmt"
	"os"

	"github.com/muesli/reflow/wordwrap"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"quick-entry/pkg/quickparse"
)

const defaultWidth = 80

func shortcutsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "shortcuts",
		Short: "Print the cheat-sheet",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			width := defaultWidth
			if f, ok := out.(*os.File); ok {
				if w, _, err := term.GetSize(int(f.Fd())); err == nil && w > 0 {
					width = w
				}
			}
			for _, line := range quickparse.CheatSheet() {
				fmt.Fprintln(out, wordwrap.String(line, width))
			}
		},
	}
}
