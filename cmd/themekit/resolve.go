package main

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/alexisbeaulieu97/themekit/internal/components"
	"github.com/alexisbeaulieu97/themekit/internal/tokens"
	"github.com/alexisbeaulieu97/themekit/internal/variant"
)

type resolveOptions struct {
	style    string
	variant  string
	size     string
	state    string
	disabled bool
	loading  bool
	pressed  bool
	focus    bool
	theme    string
	label    string
	output   string
}

func newResolveCmd() *cobra.Command {
	opts := &resolveOptions{}

	cmd := &cobra.Command{
		Use:   "resolve",
		Short: "Print the resolved attributes of a button configuration",
		Long: `Resolve a (style, variant, size, interaction) configuration against a token set
and print the visual attributes a button would be drawn with.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runResolve(cmd, opts)
		},
	}

	cmd.Flags().StringVar(&opts.style, "style", "default", "Style family: default, link or secondary")
	cmd.Flags().StringVar(&opts.variant, "variant", "primary", "Role variant: primary, secondary or link")
	cmd.Flags().StringVar(&opts.size, "size", "default", "Size: default or large")
	cmd.Flags().StringVar(&opts.state, "state", "default", "Requested state: default, pressed, focus, disabled or loading")
	cmd.Flags().BoolVar(&opts.disabled, "disabled", false, "Mark the control disabled")
	cmd.Flags().BoolVar(&opts.loading, "loading", false, "Mark the control loading")
	cmd.Flags().BoolVar(&opts.pressed, "pressed", false, "Mark the control pressed")
	cmd.Flags().BoolVar(&opts.focus, "focus", false, "Mark the control focused")
	cmd.Flags().StringVar(&opts.theme, "theme", "light", "Token set: light or dark")
	cmd.Flags().StringVar(&opts.label, "label", "Button", "Label used for the preview")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "text", "Output format: text or yaml")

	return cmd
}

func runResolve(cmd *cobra.Command, opts *resolveOptions) error {
	cfg, set, err := opts.config()
	if err != nil {
		return newCommandError("resolve", "parsing flags", err, "Run 'themekit resolve --help' to list accepted values.")
	}

	attrs := variant.Resolve(cfg, set)
	report := newResolveReport(cfg, set.Name(), attrs)

	switch opts.output {
	case "yaml":
		return renderResolveYAML(cmd, report)
	case "text", "":
		return renderResolveText(cmd, report, set, attrs, opts.label)
	default:
		return newCommandError("resolve", "selecting output", fmt.Errorf("unknown output format %q", opts.output), "Use --output text or --output yaml.")
	}
}

func (o *resolveOptions) config() (variant.Config, *tokens.Set, error) {
	style, err := variant.ParseStyle(o.style)
	if err != nil {
		return variant.Config{}, nil, err
	}
	v, err := variant.ParseVariant(o.variant)
	if err != nil {
		return variant.Config{}, nil, err
	}
	size, err := variant.ParseSize(o.size)
	if err != nil {
		return variant.Config{}, nil, err
	}
	state, err := variant.ParseState(o.state)
	if err != nil {
		return variant.Config{}, nil, err
	}
	name, err := tokens.ParseName(o.theme)
	if err != nil {
		return variant.Config{}, nil, err
	}
	set, err := tokens.Get(name)
	if err != nil {
		return variant.Config{}, nil, err
	}

	return variant.Config{
		Style:   style,
		Variant: v,
		Size:    size,
		Interaction: variant.Interaction{
			Requested: state,
			Focused:   o.focus,
			Pressed:   o.pressed,
			Disabled:  o.disabled,
			Loading:   o.loading,
		},
	}, set, nil
}

// resolveReport is the stable, flat shape of resolved attributes.
type resolveReport struct {
	Theme         string  `yaml:"theme"`
	Style         string  `yaml:"style"`
	Variant       string  `yaml:"variant"`
	Size          string  `yaml:"size"`
	State         string  `yaml:"state"`
	Background    string  `yaml:"background"`
	BackgroundKey string  `yaml:"background_key,omitempty"`
	BorderWidth   int     `yaml:"border_width"`
	BorderColor   string  `yaml:"border_color"`
	BorderKey     string  `yaml:"border_key,omitempty"`
	TextColor     string  `yaml:"text_color"`
	TextKey       string  `yaml:"text_key"`
	SpinnerColor  string  `yaml:"spinner_color"`
	Opacity       float64 `yaml:"opacity"`
	PaddingX      int     `yaml:"padding_x"`
	PaddingY      int     `yaml:"padding_y"`
	MinWidth      int     `yaml:"min_width"`
	MinHeight     int     `yaml:"min_height"`
	Radius        int     `yaml:"radius"`
	Gap           int     `yaml:"gap"`
	Font          string  `yaml:"font"`
	FontSize      int     `yaml:"font_size"`
	FontWeight    int     `yaml:"font_weight"`
}

func newResolveReport(cfg variant.Config, name tokens.Name, attrs variant.Attributes) resolveReport {
	return resolveReport{
		Theme:         name.String(),
		Style:         cfg.Style.String(),
		Variant:       cfg.Variant.String(),
		Size:          cfg.Size.String(),
		State:         attrs.State.String(),
		Background:    string(attrs.Background),
		BackgroundKey: string(attrs.BackgroundKey),
		BorderWidth:   attrs.BorderWidth,
		BorderColor:   string(attrs.BorderColor),
		BorderKey:     string(attrs.BorderKey),
		TextColor:     string(attrs.TextColor),
		TextKey:       string(attrs.TextKey),
		SpinnerColor:  string(attrs.SpinnerColor),
		Opacity:       attrs.Opacity,
		PaddingX:      attrs.PaddingX,
		PaddingY:      attrs.PaddingY,
		MinWidth:      attrs.MinWidth,
		MinHeight:     attrs.MinHeight,
		Radius:        attrs.Radius,
		Gap:           attrs.Gap,
		Font:          attrs.Typography.FontFamily,
		FontSize:      attrs.Typography.Size,
		FontWeight:    attrs.Typography.Weight,
	}
}

func renderResolveYAML(cmd *cobra.Command, report resolveReport) error {
	enc := yaml.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent(2)
	if err := enc.Encode(report); err != nil {
		return newCommandError("resolve", "encoding YAML", err, "")
	}
	return enc.Close()
}

func renderResolveText(cmd *cobra.Command, r resolveReport, set *tokens.Set, attrs variant.Attributes, label string) error {
	withKey := func(value, key string) string {
		if key == "" {
			return value
		}
		return value + " (" + key + ")"
	}

	rows := [][]string{
		{"theme", r.Theme},
		{"style", r.Style},
		{"variant", r.Variant},
		{"size", r.Size},
		{"state", r.State},
		{"background", withKey(r.Background, r.BackgroundKey)},
		{"border", strconv.Itoa(r.BorderWidth) + " " + withKey(r.BorderColor, r.BorderKey)},
		{"text", withKey(r.TextColor, r.TextKey)},
		{"spinner", r.SpinnerColor},
		{"opacity", strconv.FormatFloat(r.Opacity, 'f', -1, 64)},
		{"padding", fmt.Sprintf("%d × %d", r.PaddingX, r.PaddingY)},
		{"min size", fmt.Sprintf("%d × %d", r.MinWidth, r.MinHeight)},
		{"radius", strconv.Itoa(r.Radius)},
		{"gap", strconv.Itoa(r.Gap)},
		{"typography", fmt.Sprintf("%s %d/%d", r.Font, r.FontSize, r.FontWeight)},
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		Headers("ATTRIBUTE", "VALUE").
		Rows(rows...)

	ctx := components.NewRenderContext(set)
	preview := components.RenderAttributes(ctx, attrs, variant.ResolveSlots(attrs.State, "", label, ""))

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, t.Render())
	fmt.Fprintln(out)
	fmt.Fprintln(out, preview)
	return nil
}
