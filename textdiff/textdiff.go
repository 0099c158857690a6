// Package textdiff renders line diffs between the stable serializations of
// two values. Because the serialization is deterministic, equal values
// always diff empty and the output never churns on map iteration order.
package textdiff

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	diffpatch "github.com/sergi/go-diff/diffmatchpatch"

	"github.com/deepval-dev/go-deepval/stringify"
)

// Diffs computes the line-level diff between the pretty serializations of
// a and b.
func Diffs(a, b any) []diffpatch.Diff {
	at, _ := stringify.Serialize(a, stringify.Pretty(true))
	bt, _ := stringify.Serialize(b, stringify.Pretty(true))
	diffCfg := diffpatch.New()
	ac, bc, lines := diffCfg.DiffLinesToChars(at+"\n", bt+"\n")
	diffs := diffCfg.DiffMain(ac, bc, false)
	return diffCfg.DiffCharsToLines(diffs, lines)
}

// Diff returns a +/- prefixed line rendering of the differences between a
// and b. Structurally equal values yield the empty string.
func Diff(a, b any) string {
	diffs := Diffs(a, b)
	if !Changed(diffs) {
		return ""
	}
	var sb strings.Builder
	writeDiffs(&sb, diffs, plainPalette)
	return sb.String()
}

// Colored is Diff with deletions in red and insertions in green.
func Colored(a, b any) string {
	diffs := Diffs(a, b)
	if !Changed(diffs) {
		return ""
	}
	var sb strings.Builder
	writeDiffs(&sb, diffs, coloredPalette)
	return sb.String()
}

// Changed reports whether diffs contains any insert or delete.
func Changed(diffs []diffpatch.Diff) bool {
	for i := range diffs {
		if diffs[i].Type != diffpatch.DiffEqual {
			return true
		}
	}
	return false
}

type palette struct {
	keep func(format string, a ...any) string
	del  func(format string, a ...any) string
	ins  func(format string, a ...any) string
}

var (
	plainPalette = &palette{
		keep: fmt.Sprintf,
		del:  fmt.Sprintf,
		ins:  fmt.Sprintf,
	}
	coloredPalette = &palette{
		keep: fmt.Sprintf,
		del:  color.RedString,
		ins:  color.GreenString,
	}
)

func writeDiffs(sb *strings.Builder, diffs []diffpatch.Diff, p *palette) {
	for i := range diffs {
		diff := &diffs[i]
		prefix, paint := " ", p.keep
		switch diff.Type {
		case diffpatch.DiffDelete:
			prefix, paint = "-", p.del
		case diffpatch.DiffInsert:
			prefix, paint = "+", p.ins
		}
		for _, line := range diffLines(diff.Text) {
			sb.WriteString(paint("%s%s\n", prefix, line))
		}
	}
}

func diffLines(text string) []string {
	lines := strings.Split(text, "\n")
	if n := len(lines); n > 0 && lines[n-1] == "" {
		lines = lines[:n-1]
	}
	return lines
}
