// Copyright (c) 2012-2016 The go-diff authors. All rights reserved.
// https://github.com/sergi/go-diff
// See the included LICENSE file for license details.
//
// go-diff is a Go implementation of Google's Diff, Match, and Patch library
// Original library is Copyright (c) 2006 Google Inc.
// http://code.google.com/p/google-diff-match-patch/

package diffmatchpatch

import (
	"strings"
	"time"
)

// index addresses a line in the shared line array built by DiffLinesToChars.
// Indexes are transported inside synthetic strings with one rune per index;
// the encoding skips the surrogate block, which Go strings cannot carry.
type index uint32

const (
	runeSkipStart = 0xD800
	runeSkipEnd   = 0xE000
	runeMax       = 0x110000
)

// indexesToString encodes a sequence of line-array indexes as a string of
// synthetic runes, one rune per index.
func indexesToString(indexes []index) string {
	var sb strings.Builder
	for _, idx := range indexes {
		if idx < runeSkipStart {
			sb.WriteRune(rune(idx))
		} else {
			sb.WriteRune(rune(idx + (runeSkipEnd - runeSkipStart)))
		}
	}
	return sb.String()
}

// stringToIndex reverses indexesToString.
func stringToIndex(text string) []index {
	runes := []rune(text)
	indexes := make([]index, len(runes))
	for i, r := range runes {
		if r < runeSkipEnd {
			indexes[i] = index(r)
		} else {
			indexes[i] = index(r) - (runeSkipEnd - runeSkipStart)
		}
	}
	return indexes
}

// DiffLinesToChars splits two texts into a list of strings, and reduces the
// texts to a string of hashes where each Unicode character represents one
// line. The zeroth element of the line array is reserved and always empty.
func (dmp *DiffMatchPatch) DiffLinesToChars(text1, text2 string) (string, string, []string) {
	// '\x00' is a valid character, but various debuggers don't like it. So
	// we'll insert a junk entry at index 0 to avoid generating a null
	// character.
	lineArray := []string{""} // e.g. lineArray[4] == "Hello\n"
	lineHash := map[string]index{}

	chars1 := dmp.diffLinesToCharsMunge(text1, &lineArray, lineHash)
	chars2 := dmp.diffLinesToCharsMunge(text2, &lineArray, lineHash)
	return chars1, chars2, lineArray
}

// DiffLinesToRunes splits two texts into a list of runes.
func (dmp *DiffMatchPatch) DiffLinesToRunes(text1, text2 string) ([]rune, []rune, []string) {
	chars1, chars2, lineArray := dmp.DiffLinesToChars(text1, text2)
	return []rune(chars1), []rune(chars2), lineArray
}

// diffLinesToCharsMunge splits a text into a list of strings, reducing the
// text to a string of hashes where each Unicode character represents one
// line. The line array and hash are shared across both texts so that matching
// lines get matching code units.
func (dmp *DiffMatchPatch) diffLinesToCharsMunge(text string, lineArray *[]string, lineHash map[string]index) string {
	// Walk the text, pulling out a substring for each line. A simple
	// text.split("\n") would temporarily double our memory footprint and
	// would drop the trailing newline off each line.
	lineStart := 0
	lineEnd := -1
	strs := []index{}

	for lineEnd < len(text)-1 {
		lineEnd = indexOf(text, "\n", lineStart)
		if lineEnd == -1 {
			lineEnd = len(text) - 1
		}
		line := text[lineStart : lineEnd+1]
		lineStart = lineEnd + 1

		lineValue, ok := lineHash[line]
		if !ok {
			if len(*lineArray) == runeMax-(runeSkipEnd-runeSkipStart) {
				// The line alphabet is exhausted; this is a hard limit of the
				// encoding, not an input error.
				panic("too many distinct lines to encode as characters")
			}
			*lineArray = append(*lineArray, line)
			lineValue = index(len(*lineArray) - 1)
			lineHash[line] = lineValue
		}
		strs = append(strs, lineValue)
	}

	return indexesToString(strs)
}

// DiffCharsToLines rehydrates the text in a diff from a string of line hashes
// to real lines of text.
func (dmp *DiffMatchPatch) DiffCharsToLines(diffs []Diff, lineArray []string) []Diff {
	hydrated := make([]Diff, 0, len(diffs))
	for _, aDiff := range diffs {
		var sb strings.Builder
		for _, idx := range stringToIndex(aDiff.Text) {
			sb.WriteString(lineArray[idx])
		}
		aDiff.Text = sb.String()
		hydrated = append(hydrated, aDiff)
	}
	return hydrated
}

// diffLineMode does a quick line-level diff on both texts, then rediffs the
// parts for greater accuracy. This speedup can produce non-minimal diffs.
func (dmp *DiffMatchPatch) diffLineMode(text1, text2 []rune, deadline time.Time) []Diff {
	// Scan the text on a line-by-line basis first.
	chars1, chars2, linearray := dmp.DiffLinesToRunes(string(text1), string(text2))

	diffs := dmp.diffMainRunes(chars1, chars2, false, deadline)

	// Convert the diff back to original text.
	diffs = dmp.DiffCharsToLines(diffs, linearray)
	// Eliminate freak matches (e.g. blank lines).
	diffs = dmp.DiffCleanupSemantic(diffs)

	// Rediff any replacement blocks, this time character-by-character.
	// Add a dummy entry at the end; the sweep below never merges into it, so
	// exactly one trailing element is dropped afterwards.
	diffs = append(diffs, Diff{DiffEqual, ""})

	pointer := 0
	countDelete := 0
	countInsert := 0

	// Surely this can be simplified when the same text is inserted and
	// deleted.
	textDelete := ""
	textInsert := ""

	for pointer < len(diffs) {
		switch diffs[pointer].Type {
		case DiffInsert:
			countInsert++
			textInsert += diffs[pointer].Text
		case DiffDelete:
			countDelete++
			textDelete += diffs[pointer].Text
		case DiffEqual:
			// Upon reaching an equality, check for prior redundancies.
			if countDelete >= 1 && countInsert >= 1 {
				// Delete the offending records and add the merged ones.
				diffs = splice(diffs, pointer-countDelete-countInsert,
					countDelete+countInsert)

				pointer = pointer - countDelete - countInsert
				a := dmp.diffMainRunes([]rune(textDelete), []rune(textInsert), false, deadline)
				for j := len(a) - 1; j >= 0; j-- {
					diffs = splice(diffs, pointer, 0, a[j])
				}
				pointer = pointer + len(a)
			}

			countInsert = 0
			countDelete = 0
			textDelete = ""
			textInsert = ""
		}
		pointer++
	}

	return diffs[:len(diffs)-1] // Remove the dummy entry at the end.
}
