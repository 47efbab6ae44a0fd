// Package diff renders line-oriented diffs of small text documents.
package diff

import (
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
)

const (
	maxDiffLines    = 2000
	truncateMessage = "... (diff truncated, exceeds 2,000 lines) ..."
)

// Options labels the two sides and controls which lines are printed.
type Options struct {
	FromLabel string
	ToLabel   string
	// OnlyChanges drops unchanged lines from the output.
	OnlyChanges bool
}

// Lines compares two newline-separated documents line by line. It returns an
// empty string when they are identical.
func Lines(from, to string, opts Options) string {
	if from == to {
		return ""
	}

	dmp := diffmatchpatch.New()
	a, b, index := dmp.DiffLinesToChars(from, to)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(a, b, false), index)

	var buf strings.Builder
	buf.WriteString("--- " + opts.FromLabel + "\n")
	buf.WriteString("+++ " + opts.ToLabel + "\n")

	written := 0
	for _, d := range diffs {
		var prefix string
		switch d.Type {
		case diffmatchpatch.DiffDelete:
			prefix = "-"
		case diffmatchpatch.DiffInsert:
			prefix = "+"
		default:
			if opts.OnlyChanges {
				continue
			}
			prefix = " "
		}

		for _, line := range strings.SplitAfter(d.Text, "\n") {
			if line == "" {
				continue
			}
			if written == maxDiffLines {
				buf.WriteString(truncateMessage + "\n")
				return buf.String()
			}
			buf.WriteString(prefix)
			buf.WriteString(strings.TrimSuffix(line, "\n"))
			buf.WriteString("\n")
			written++
		}
	}

	return buf.String()
}
