package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func resolveYAML(t *testing.T, args ...string) resolveReport {
	t.Helper()
	stdout, _, err := executeCommand(t, append([]string{"resolve", "--output", "yaml"}, args...)...)
	require.NoError(t, err)

	var report resolveReport
	require.NoError(t, yaml.Unmarshal([]byte(stdout), &report))
	return report
}

func TestResolveDefaultPrimary(t *testing.T) {
	r := resolveYAML(t)

	assert.Equal(t, "light", r.Theme)
	assert.Equal(t, "default", r.State)
	assert.Equal(t, "brand-400", r.BackgroundKey)
	assert.Equal(t, "#1FE2D9", r.Background)
	assert.Equal(t, "static-100", r.TextKey)
	assert.Equal(t, 0, r.BorderWidth)
	assert.Equal(t, 1.0, r.Opacity)
	assert.Equal(t, 16, r.PaddingX)
	assert.Equal(t, 8, r.PaddingY)
	assert.Equal(t, 48, r.MinWidth)
	assert.Equal(t, 48, r.MinHeight)
	assert.Equal(t, 9999, r.Radius)
	assert.Equal(t, 700, r.FontWeight)
}

func TestResolveDisabledWinsOverPressed(t *testing.T) {
	r := resolveYAML(t, "--size", "large", "--disabled", "--pressed", "--theme", "dark")

	assert.Equal(t, "dark", r.Theme)
	assert.Equal(t, "disabled", r.State)
	assert.Equal(t, "primary-100", r.BackgroundKey)
	assert.Equal(t, "primary-foreground-100", r.TextKey)
	assert.Equal(t, 0.5, r.Opacity)
	assert.Equal(t, 32, r.PaddingX)
}

func TestResolveFocusAddsBorder(t *testing.T) {
	r := resolveYAML(t, "--focus")

	assert.Equal(t, "focus", r.State)
	assert.Equal(t, 2, r.BorderWidth)
	assert.Equal(t, "brand-700", r.BorderKey)
}

func TestResolveUnlistedCombinationIsNeutral(t *testing.T) {
	r := resolveYAML(t, "--style", "link", "--variant", "primary", "--state", "disabled")

	assert.Equal(t, "disabled", r.State)
	assert.Equal(t, "transparent", r.Background)
	assert.Empty(t, r.BackgroundKey)
	assert.Equal(t, 0, r.BorderWidth)
	assert.Equal(t, 0.5, r.Opacity)
}

func TestResolveTextOutput(t *testing.T) {
	stdout, _, err := executeCommand(t, "resolve", "--variant", "secondary", "--label", "Cancel")
	require.NoError(t, err)

	assert.Contains(t, stdout, "ATTRIBUTE")
	assert.Contains(t, stdout, "secondary-100")
	assert.Contains(t, stdout, "border-100")
	assert.Contains(t, stdout, "16 × 8")
	assert.Contains(t, stdout, "Cancel")
}

func TestResolveRejectsBadInput(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"style", []string{"--style", "fancy"}, "parsing flags"},
		{"state", []string{"--state", "hovered"}, "parsing flags"},
		{"theme", []string{"--theme", "sepia"}, "parsing flags"},
		{"output", []string{"--output", "json"}, "--output text or --output yaml"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := executeCommand(t, append([]string{"resolve"}, tt.args...)...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}
