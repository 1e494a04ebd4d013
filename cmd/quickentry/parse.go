package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"quick-entry/internal/quickadd/usecase"
	"quick-entry/pkg/quickparse"
)

var (
	styleTitle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	styleBadge = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	styleDim   = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

func parseCmd(flags *rootFlags) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "parse <text>",
		Short: "Parse a line and show what was recognised",
		Example: `  quickentry parse "Zahnarzt morgen 15 uhr bei Dr. Weber"
  quickentry parse --json --now "2024-06-03 09:00" "Miete 1.7. 800€ p1"`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			parser, now, err := flags.setup()
			if err != nil {
				return err
			}

			res := parser.ParseAt(strings.Join(args, " "), now)
			out := cmd.OutOrStdout()
			if asJSON {
				return writeJSON(out, res)
			}
			printResult(out, res, isTerminal(out))
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "print the full result as JSON")
	return cmd
}

func printResult(w io.Writer, res quickparse.Result, color bool) {
	title, badge, dim := styleTitle.Render, styleBadge.Render, styleDim.Render
	if !color {
		plain := func(s ...string) string { return strings.Join(s, " ") }
		title, badge, dim = plain, plain, plain
	}

	fmt.Fprintln(w, title(res.Title))
	for _, b := range usecase.Badges(res) {
		fmt.Fprintln(w, "  "+badge(b))
	}
	if len(res.MatchedTokens) > 0 {
		fmt.Fprintln(w, dim("  matched: "+strings.Join(res.MatchedTokens, ", ")))
	}
}

// isTerminal reports whether w is an interactive terminal.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(v)
}
