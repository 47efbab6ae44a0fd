package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/themekit/internal/components"
	"github.com/alexisbeaulieu97/themekit/internal/tokens"
	"github.com/alexisbeaulieu97/themekit/pkg/diff"
)

type tokensOptions struct {
	theme string
	check bool
	diff  bool
}

const swatchWidth = 4

func newTokensCmd() *cobra.Command {
	opts := &tokensOptions{}

	cmd := &cobra.Command{
		Use:   "tokens",
		Short: "List colour tokens with swatches",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTokens(cmd, opts)
		},
	}

	cmd.Flags().StringVar(&opts.theme, "theme", "", "Only list one token set: light or dark")
	cmd.Flags().BoolVar(&opts.check, "check", false, "Verify that both sets define the same keys")
	cmd.Flags().BoolVar(&opts.diff, "diff", false, "Show only the colours that differ between light and dark")

	return cmd
}

func runTokens(cmd *cobra.Command, opts *tokensOptions) error {
	if opts.check {
		if err := tokens.CheckParity(); err != nil {
			return newCommandError("check tokens", "comparing light and dark sets", err, "Define every missing key in both sets.")
		}
		fmt.Fprintln(cmd.OutOrStdout(), "Token sets are in parity.")
		return nil
	}

	if opts.diff {
		return runTokensDiff(cmd)
	}

	names := tokens.Names()
	if opts.theme != "" {
		name, err := tokens.ParseName(opts.theme)
		if err != nil {
			return newCommandError("list tokens", "parsing --theme", err, "Use --theme light or --theme dark.")
		}
		names = []tokens.Name{name}
	}

	headers := []string{"TOKEN"}
	sets := make([]*tokens.Set, 0, len(names))
	for _, name := range names {
		set, err := tokens.Get(name)
		if err != nil {
			return newCommandError("list tokens", "loading token set", err, "")
		}
		sets = append(sets, set)
		headers = append(headers, name.String(), "")
	}

	var rows [][]string
	for _, key := range sets[0].ColorKeys() {
		row := []string{string(key)}
		for _, set := range sets {
			value, swatch := describeColor(set, key)
			row = append(row, value, swatch)
		}
		rows = append(rows, row)
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers(headers...).
		Rows(rows...)

	fmt.Fprintln(cmd.OutOrStdout(), t.Render())
	return nil
}

// describeColor returns the raw value and a swatch flattened onto the set's
// page background.
func describeColor(set *tokens.Set, key tokens.ColorKey) (string, string) {
	c, err := set.Color(key)
	if err != nil {
		return "missing", ""
	}
	ctx := components.NewRenderContext(set)
	swatch := lipgloss.NewStyle().
		Background(ctx.Paint(c, 1)).
		Width(swatchWidth).
		Render("")
	return string(c), swatch
}

func runTokensDiff(cmd *cobra.Command) error {
	light, err := tokens.Get(tokens.Light)
	if err != nil {
		return newCommandError("diff tokens", "loading light set", err, "")
	}
	dark, err := tokens.Get(tokens.Dark)
	if err != nil {
		return newCommandError("diff tokens", "loading dark set", err, "")
	}

	out := diff.Lines(colorDocument(light), colorDocument(dark), diff.Options{
		FromLabel:   light.Name().String(),
		ToLabel:     dark.Name().String(),
		OnlyChanges: true,
	})
	if out == "" {
		fmt.Fprintln(cmd.OutOrStdout(), "Light and dark sets are identical.")
		return nil
	}
	fmt.Fprint(cmd.OutOrStdout(), out)
	return nil
}

// colorDocument lists one "key value" line per colour token.
func colorDocument(set *tokens.Set) string {
	var b strings.Builder
	for _, key := range set.ColorKeys() {
		c, err := set.Color(key)
		if err != nil {
			continue
		}
		fmt.Fprintf(&b, "%s %s\n", key, c)
	}
	return b.String()
}
