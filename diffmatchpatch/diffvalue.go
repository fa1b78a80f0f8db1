// Copyright (c) 2012-2016 The go-diff authors. All rights reserved.
// https://github.com/sergi/go-diff
// See the included LICENSE file for license details.
//
// go-diff is a Go implementation of Google's Diff, Match, and Patch library
// Original library is Copyright (c) 2006 Google Inc.
// http://code.google.com/p/google-diff-match-patch/

package diffmatchpatch

import (
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"unicode/utf8"
)

// DiffText1 computes and returns the source text (all equalities and
// deletions).
func (dmp *DiffMatchPatch) DiffText1(diffs []Diff) string {
	// Compute text1 from diffs.
	var text strings.Builder

	for _, aDiff := range diffs {
		if aDiff.Type != DiffInsert {
			text.WriteString(aDiff.Text)
		}
	}
	return text.String()
}

// DiffText2 computes and returns the destination text (all equalities and
// insertions).
func (dmp *DiffMatchPatch) DiffText2(diffs []Diff) string {
	var text strings.Builder

	for _, aDiff := range diffs {
		if aDiff.Type != DiffDelete {
			text.WriteString(aDiff.Text)
		}
	}
	return text.String()
}

// DiffLevenshtein computes the Levenshtein distance of a diff: the number of
// inserted, deleted or substituted characters.
func (dmp *DiffMatchPatch) DiffLevenshtein(diffs []Diff) int {
	levenshtein := 0
	insertions := 0
	deletions := 0

	for _, aDiff := range diffs {
		switch aDiff.Type {
		case DiffInsert:
			insertions += utf8.RuneCountInString(aDiff.Text)
		case DiffDelete:
			deletions += utf8.RuneCountInString(aDiff.Text)
		case DiffEqual:
			// A deletion and an insertion is one substitution.
			levenshtein += max(insertions, deletions)
			insertions = 0
			deletions = 0
		}
	}

	levenshtein += max(insertions, deletions)
	return levenshtein
}

// DiffXIndex maps a location in text1 to its equivalent location in text2.
// E.g. "The cat" vs "The big cat": location 1 maps to 1, location 5 maps
// to 9.
func (dmp *DiffMatchPatch) DiffXIndex(diffs []Diff, loc int) int {
	chars1 := 0
	chars2 := 0
	lastChars1 := 0
	lastChars2 := 0
	lastDiff := Diff{}
	for _, aDiff := range diffs {
		if aDiff.Type != DiffInsert {
			// Equality or deletion.
			chars1 += len(aDiff.Text)
		}
		if aDiff.Type != DiffDelete {
			// Equality or insertion.
			chars2 += len(aDiff.Text)
		}
		if chars1 > loc {
			// Overshot the location.
			lastDiff = aDiff
			break
		}
		lastChars1 = chars1
		lastChars2 = chars2
	}
	if lastDiff.Type == DiffDelete {
		// The location was deleted.
		return lastChars2
	}
	// Add the remaining character length.
	return lastChars2 + (loc - lastChars1)
}

// DiffToDelta crushes the diff into an encoded string which describes the
// operations required to transform text1 into text2. E.g. =3\t-2\t+ing ->
// Keep 3 chars, delete 2 chars, insert 'ing'. Operations are tab-separated.
// Inserted text is escaped using %xx notation.
func (dmp *DiffMatchPatch) DiffToDelta(diffs []Diff) string {
	var text strings.Builder
	for _, aDiff := range diffs {
		switch aDiff.Type {
		case DiffInsert:
			text.WriteString("+")
			text.WriteString(strings.Replace(url.QueryEscape(aDiff.Text), "+", " ", -1))
			text.WriteString("\t")

		case DiffDelete:
			text.WriteString("-")
			text.WriteString(strconv.Itoa(utf8.RuneCountInString(aDiff.Text)))
			text.WriteString("\t")

		case DiffEqual:
			text.WriteString("=")
			text.WriteString(strconv.Itoa(utf8.RuneCountInString(aDiff.Text)))
			text.WriteString("\t")
		}
	}
	delta := text.String()
	if len(delta) != 0 {
		// Strip off trailing tab character.
		delta = delta[0 : len(delta)-1]
	}
	return unescaper.Replace(delta)
}

// DiffFromDelta, given the original text1 and an encoded string which
// describes the operations required to transform text1 into text2, computes
// the full diff.
func (dmp *DiffMatchPatch) DiffFromDelta(text1 string, delta string) (diffs []Diff, err error) {
	i := 0
	runes := []rune(text1)

	for _, token := range strings.Split(delta, "\t") {
		if len(token) == 0 {
			// Blank tokens are ok (from a trailing \t).
			continue
		}

		// Each token begins with a one character parameter which specifies
		// the operation of this token (delete, insert, equality).
		param := token[1:]

		switch op := token[0]; op {
		case '+':
			// Decode would change all "+" to " ".
			param = strings.Replace(param, "+", "%2b", -1)
			param, err = url.QueryUnescape(param)
			if err != nil {
				return nil, err
			}
			if !utf8.ValidString(param) {
				return nil, fmt.Errorf("invalid UTF-8 token: %q", param)
			}

			diffs = append(diffs, Diff{DiffInsert, param})

		case '=', '-':
			n, err := strconv.ParseInt(param, 10, 0)
			if err != nil {
				return nil, err
			} else if n < 0 {
				return nil, errors.New("negative number in DiffFromDelta: " + param)
			}

			i += int(n)
			// Break out if we are out of bounds, go1.6 can't handle this
			// very well.
			if i > len(runes) {
				break
			}
			// Remember that string slicing is by byte; we want by rune here.
			text := string(runes[i-int(n) : i])

			if op == '=' {
				diffs = append(diffs, Diff{DiffEqual, text})
			} else {
				diffs = append(diffs, Diff{DiffDelete, text})
			}

		default:
			// Anything else is an error.
			return nil, errors.New("invalid diff operation in DiffFromDelta: " + string(token[0]))
		}
	}

	if i != len(runes) {
		return nil, fmt.Errorf("delta length (%v) is different from source text length (%v)", i, len(runes))
	}

	return diffs, nil
}
