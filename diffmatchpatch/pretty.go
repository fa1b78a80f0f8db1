// Copyright (c) 2012-2016 The go-diff authors. All rights reserved.
// https://github.com/sergi/go-diff
// See the included LICENSE file for license details.
//
// go-diff is a Go implementation of Google's Diff, Match, and Patch library
// Original library is Copyright (c) 2006 Google Inc.
// http://code.google.com/p/google-diff-match-patch/

package diffmatchpatch

import (
	"html"
	"strings"
)

// DiffPrettyHtml converts a []Diff into a pretty HTML report. It is intended
// as an example from which to write one's own display functions.
func (dmp *DiffMatchPatch) DiffPrettyHtml(diffs []Diff) string {
	var sb strings.Builder
	for _, diff := range diffs {
		text := strings.Replace(html.EscapeString(diff.Text), "\n", "&para;<br>", -1)
		switch diff.Type {
		case DiffInsert:
			sb.WriteString("<ins style=\"background:#e6ffe6;\">")
			sb.WriteString(text)
			sb.WriteString("</ins>")
		case DiffDelete:
			sb.WriteString("<del style=\"background:#ffe6e6;\">")
			sb.WriteString(text)
			sb.WriteString("</del>")
		case DiffEqual:
			sb.WriteString("<span>")
			sb.WriteString(text)
			sb.WriteString("</span>")
		}
	}
	return sb.String()
}

// DiffPrettyText converts a []Diff into a colored text report using ANSI
// escape sequences.
func (dmp *DiffMatchPatch) DiffPrettyText(diffs []Diff) string {
	var sb strings.Builder
	for _, diff := range diffs {
		switch diff.Type {
		case DiffInsert:
			sb.WriteString("\x1b[32m")
			sb.WriteString(diff.Text)
			sb.WriteString("\x1b[0m")
		case DiffDelete:
			sb.WriteString("\x1b[31m")
			sb.WriteString(diff.Text)
			sb.WriteString("\x1b[0m")
		case DiffEqual:
			sb.WriteString(diff.Text)
		}
	}
	return sb.String()
}
