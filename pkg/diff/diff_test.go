package diff

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLinesIdentical(t *testing.T) {
	doc := "line1\nline2\nline3\n"
	assert.Empty(t, Lines(doc, doc, Options{FromLabel: "a", ToLabel: "b"}))
}

func TestLinesSingleChange(t *testing.T) {
	result := Lines("line1\nline2\nline3\n", "line1\nmodified\nline3\n", Options{FromLabel: "light", ToLabel: "dark"})

	assert.True(t, strings.HasPrefix(result, "--- light\n+++ dark\n"))
	assert.Contains(t, result, "\n line1\n")
	assert.Contains(t, result, "\n-line2\n")
	assert.Contains(t, result, "\n+modified\n")
	assert.Contains(t, result, "\n line3\n")
}

func TestLinesOnlyChanges(t *testing.T) {
	result := Lines("a\nb\nc\nd\n", "a\nB\nc\nD\n", Options{OnlyChanges: true})

	assert.NotContains(t, result, " a\n")
	assert.NotContains(t, result, " c\n")
	for _, want := range []string{"-b\n", "+B\n", "-d\n", "+D\n"} {
		assert.Contains(t, result, want)
	}
}

func TestLinesWithoutTrailingNewline(t *testing.T) {
	result := Lines("x\ny", "x\nz", Options{})
	assert.Contains(t, result, "-y\n")
	assert.Contains(t, result, "+z\n")
}

func TestLinesTruncates(t *testing.T) {
	var from, to strings.Builder
	for i := 0; i < maxDiffLines; i++ {
		fmt.Fprintf(&from, "old %d\n", i)
		fmt.Fprintf(&to, "new %d\n", i)
	}

	result := Lines(from.String(), to.String(), Options{})

	assert.True(t, strings.HasSuffix(result, truncateMessage+"\n"))
	// Two header lines, the capped body and the marker.
	assert.Equal(t, maxDiffLines+3, strings.Count(result, "\n"))
}
