package diffmatchpatch

import (
	"fmt"
	"strings"
)

// DefaultContextLines is the number of unchanged lines of surrounding context
// displayed by Unified.
const DefaultContextLines = 3

// UnifiedOption is an option for Unified and DiffUnified.
type UnifiedOption func(*unifiedOptions)

type unifiedOptions struct {
	contextLines int
	text1Label   string
	text2Label   string
}

// UnifiedContextLines sets the number of unchanged lines of surrounding
// context printed. Defaults to DefaultContextLines.
func UnifiedContextLines(lines int) UnifiedOption {
	if lines <= 0 {
		lines = DefaultContextLines
	}
	return func(o *unifiedOptions) {
		o.contextLines = lines
	}
}

// UnifiedLabels sets the labels for the old and new texts. Defaults to
// "text1" and "text2".
func UnifiedLabels(oldLabel, newLabel string) UnifiedOption {
	return func(o *unifiedOptions) {
		o.text1Label = oldLabel
		o.text2Label = newLabel
	}
}

func newUnifiedOptions(opts []UnifiedOption) unifiedOptions {
	ret := unifiedOptions{
		contextLines: DefaultContextLines,
		text1Label:   "text1",
		text2Label:   "text2",
	}
	for _, o := range opts {
		o(&ret)
	}
	return ret
}

// Unified computes the differences between text1 and text2 and formats them
// in the "unified diff" format. Optionally pass UnifiedOption to set the
// old/new labels and context lines.
func (dmp *DiffMatchPatch) Unified(text1, text2 string, opts ...UnifiedOption) string {
	options := newUnifiedOptions(opts)

	text1Enc, text2Enc, lines := dmp.DiffLinesToChars(text1, text2)
	diffs := dmp.DiffMain(text1Enc, text2Enc, false)
	diffs = dmp.DiffCharsToLines(diffs, lines)

	return toUnified(diffs, options).String()
}

// DiffUnified formats the diffs slice in the "unified diff" format.
// Optionally pass UnifiedOption to set the old/new labels and context lines.
func (dmp *DiffMatchPatch) DiffUnified(diffs []Diff, opts ...UnifiedOption) string {
	return toUnified(diffs, newUnifiedOptions(opts)).String()
}

// unified represents modifications in a form conducive to printing a unified
// diff.
type unified struct {
	label1, label2 string
	hunks          []hunk
}

// hunk is a run of nearby changes, separated from its neighbours by more than
// 2*contextLines unchanged lines.
type hunk struct {
	// The line in text1 where the hunk starts.
	fromLine int
	// The line in text2 where the hunk starts.
	toLine int
	// Each Diff holds one deleted, inserted, or unchanged line.
	diffs []Diff
}

// toUnified regroups a diff sequence into hunks of linewise diffs.
func toUnified(diffs []Diff, opts unifiedOptions) unified {
	maxCtx := opts.contextLines * 2
	u := unified{
		label1: opts.text1Label,
		label2: opts.text2Label,
	}

	if !hasChanges(diffs) {
		return u
	}

	diffs = diffLinewise(diffs)

	var (
		h *hunk

		lineNo1 int
		lineNo2 int
		context []Diff
	)
	for _, diff := range diffs {
		switch diff.Type {
		case DiffDelete:
			lineNo1++
		case DiffInsert:
			lineNo2++
		case DiffEqual:
			lineNo1++
			lineNo2++
		}

		if diff.Type == DiffEqual {
			context = append(context, diff)
			continue
		}

		// More unchanged lines than two hunks' worth of context: close the
		// open hunk with its trailing context.
		if h != nil && len(context) > maxCtx {
			cl := min(len(context), opts.contextLines)
			h.diffs = append(h.diffs, context[:cl]...)
			u.hunks = append(u.hunks, *h)
			h = nil
		}

		// Open a new hunk, leading with up to contextLines of context.
		if h == nil {
			cl := min(len(context), opts.contextLines)

			l1 := lineNo1 - cl
			l2 := lineNo2 - cl
			// When starting a new hunk, the line number for lineNo1 XOR
			// lineNo2 has already been advanced, but not the other. Account
			// for that in l1 or l2.
			switch diff.Type {
			case DiffDelete:
				l2++
			case DiffInsert:
				l1++
			}

			h = &hunk{
				fromLine: l1,
				toLine:   l2,
				diffs:    context[len(context)-cl:],
			}
			context = nil
		}

		// Interior context (small enough to keep the hunk open).
		h.diffs = append(h.diffs, context...)
		context = nil

		h.diffs = append(h.diffs, diff)
	}

	// Close the last hunk.
	if h != nil {
		cl := min(len(context), opts.contextLines)
		h.diffs = append(h.diffs, context[:cl]...)
		u.hunks = append(u.hunks, *h)
	}

	return u
}

func hasChanges(diffs []Diff) bool {
	for _, diff := range diffs {
		if diff.Type != DiffEqual {
			return true
		}
	}
	return false
}

// diffLinewise splits and merges diffs so that each individual diff
// represents one line, including the final newline character.
func diffLinewise(diffs []Diff) []Diff {
	var (
		ret          []Diff
		line1, line2 string
	)

	diffs = diffCleanupNewline(diffs)

	flush := func() {
		if strings.HasSuffix(line1, "\n") && line1 == line2 {
			ret = append(ret, Diff{Type: DiffEqual, Text: line1})
			line1, line2 = "", ""
		}
		if strings.HasSuffix(line1, "\n") {
			ret = append(ret, Diff{Type: DiffDelete, Text: line1})
			line1 = ""
		}
		if strings.HasSuffix(line2, "\n") {
			ret = append(ret, Diff{Type: DiffInsert, Text: line2})
			line2 = ""
		}
	}

	for _, diff := range diffs {
		for _, segment := range strings.SplitAfter(diff.Text, "\n") {
			switch diff.Type {
			case DiffDelete:
				line1 += segment
			case DiffInsert:
				line2 += segment
			default: // equal
				line1 += segment
				line2 += segment
			}
			flush()
		}
	}

	// line1 and/or line2 may be non-empty if there is no newline at the end
	// of the text.
	if line1 != "" && line1 == line2 {
		ret = append(ret, Diff{Type: DiffEqual, Text: line1})
		line1, line2 = "", ""
	}
	if line1 != "" {
		ret = append(ret, Diff{Type: DiffDelete, Text: line1})
	}
	if line2 != "" {
		ret = append(ret, Diff{Type: DiffInsert, Text: line2})
	}

	return reorderDeletionsFirst(ret)
}

// diffCleanupNewline looks for single edits surrounded on both sides by
// equalities which can be shifted sideways to align on newlines.
func diffCleanupNewline(diffs []Diff) []Diff {
	var ret []Diff

	for i := 0; i < len(diffs); i++ {
		if i < len(diffs)-2 && diffs[i].Type == DiffEqual && diffs[i+1].Type != DiffEqual && diffs[i+2].Type == DiffEqual {
			common := prefixWithNewline(diffs[i+1].Text, diffs[i+2].Text)

			// Convert ["=<equal>", "±<common\n><change>", "=<common\n><equal>"]
			// to ["=<equal><common\n>", "±<change><common\n>", "=<equal>"]
			if common != "" {
				ret = append(ret,
					Diff{
						Type: DiffEqual,
						Text: diffs[i].Text + common,
					},
					Diff{
						Type: diffs[i+1].Type,
						Text: strings.TrimPrefix(diffs[i+1].Text, common) + common,
					},
					Diff{
						Type: DiffEqual,
						Text: strings.TrimPrefix(diffs[i+2].Text, common),
					},
				)

				i += 2
				continue
			}
		}

		ret = append(ret, diffs[i])
	}

	return ret
}

// prefixWithNewline returns the longest common prefix of text1 and text2, cut
// back to end at its last newline character. If there is no common prefix, or
// it contains no newline, the empty string is returned.
func prefixWithNewline(text1, text2 string) string {
	prefix := []rune(text1)[:commonPrefixLength([]rune(text1), []rune(text2))]

	index := strings.LastIndex(string(prefix), "\n")
	if index != -1 {
		return string(prefix)[:index+1]
	}

	return ""
}

// reorderDeletionsFirst reorders changes so that deletions come before
// insertions, without crossing an equality boundary.
func reorderDeletionsFirst(diffs []Diff) []Diff {
	var (
		ret        []Diff
		deletions  []Diff
		insertions []Diff
	)

	for _, diff := range diffs {
		switch diff.Type {
		case DiffDelete:
			deletions = append(deletions, diff)
		case DiffInsert:
			insertions = append(insertions, diff)
		case DiffEqual:
			ret = append(ret, deletions...)
			deletions = nil

			ret = append(ret, insertions...)
			insertions = nil

			ret = append(ret, diff)
		}
	}

	ret = append(ret, deletions...)
	ret = append(ret, insertions...)

	return ret
}

// numLines returns the number of lines in the hunk for text1 and text2.
func (h hunk) numLines() (n1, n2 int) {
	for _, diff := range h.diffs {
		switch diff.Type {
		case DiffDelete:
			n1++
		case DiffInsert:
			n2++
		case DiffEqual:
			n1++
			n2++
		}
	}
	return n1, n2
}

func (h hunk) String() string {
	var b strings.Builder

	fmt.Fprint(&b, "@@")

	numLines1, numLines2 := h.numLines()

	switch {
	case numLines1 > 1:
		fmt.Fprintf(&b, " -%d,%d", h.fromLine, numLines1)
	case h.fromLine == 1 && numLines1 == 0:
		// Mimic GNU diff -u behavior when adding to an empty file.
		fmt.Fprintf(&b, " -0,0")
	default:
		fmt.Fprintf(&b, " -%d", h.fromLine)
	}

	switch {
	case numLines2 > 1:
		fmt.Fprintf(&b, " +%d,%d", h.toLine, numLines2)
	case h.toLine == 1 && numLines2 == 0:
		// Mimic GNU diff -u behavior when removing the whole file.
		fmt.Fprintf(&b, " +0,0")
	default:
		fmt.Fprintf(&b, " +%d", h.toLine)
	}

	fmt.Fprint(&b, " @@\n")

	for _, diff := range h.diffs {
		switch diff.Type {
		case DiffDelete:
			fmt.Fprintf(&b, "-%s", diff.Text)
		case DiffInsert:
			fmt.Fprintf(&b, "+%s", diff.Text)
		default:
			fmt.Fprintf(&b, " %s", diff.Text)
		}
		if !strings.HasSuffix(diff.Text, "\n") {
			fmt.Fprintf(&b, "\n\\ No newline at end of file\n")
		}
	}

	return b.String()
}

// String converts a unified diff to the standard textual form for that diff.
// The output of this function can be passed to tools like patch.
func (u unified) String() string {
	if len(u.hunks) == 0 {
		return ""
	}
	var b strings.Builder
	fmt.Fprintf(&b, "--- %s\n", u.label1)
	fmt.Fprintf(&b, "+++ %s\n", u.label2)
	for _, hunk := range u.hunks {
		fmt.Fprint(&b, hunk)
	}
	return b.String()
}
