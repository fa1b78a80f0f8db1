// Copyright (c) 2012-2016 The go-diff authors. All rights reserved.
// https://github.com/sergi/go-diff
// See the included LICENSE file for license details.
//
// go-diff is a Go implementation of Google's Diff, Match, and Patch library
// Original library is Copyright (c) 2006 Google Inc.
// http://code.google.com/p/google-diff-match-patch/

// Package diffmatchpatch offers robust algorithms to perform the operations
// required for synchronizing plain text: computing character-level diffs,
// fuzzily locating patterns, and producing and applying patches that survive
// imperfect targets.
package diffmatchpatch

import (
	"time"
)

// Defaults used by New. Callers that tweak a DiffMatchPatch field can restore
// it from here.
const (
	DefaultDiffTimeout          = time.Second
	DefaultDiffEditCost         = 4
	DefaultMatchThreshold       = 0.5
	DefaultMatchDistance        = 1000
	DefaultMatchMaxBits         = 32
	DefaultPatchDeleteThreshold = 0.5
	DefaultPatchMargin          = 4
)

// DiffMatchPatch holds the tuning knobs shared by the diff, match and patch
// operations. The zero value is not useful; construct instances with New.
// Fields may be adjusted between operations but must not be mutated while an
// operation is in flight.
type DiffMatchPatch struct {
	// DiffTimeout bounds the time spent bisecting a diff before giving up
	// and accepting a non-optimal result (0 for unbounded).
	DiffTimeout time.Duration
	// DiffEditCost is the cost of an empty edit operation in terms of edit
	// characters, used by DiffCleanupEfficiency.
	DiffEditCost int
	// MatchThreshold is the score above which no match is declared
	// (0.0 = perfection, 1.0 = very loose).
	MatchThreshold float64
	// MatchDistance is how far from the expected location a match may stray;
	// a match this many characters away adds 1.0 to its score. 0 demands the
	// exact location.
	MatchDistance int
	// MatchMaxBits is the number of bits in the machine word the Bitap scan
	// uses; patterns longer than this cannot be matched directly.
	MatchMaxBits int
	// PatchDeleteThreshold governs how closely the contents of an oversized
	// deletion have to match the expected contents when applying a patch
	// (0.0 = perfection, 1.0 = very loose). MatchThreshold still controls
	// how closely the end points must match.
	PatchDeleteThreshold float64
	// PatchMargin is the chunk size of context included around each patch.
	PatchMargin int
}

// New creates a DiffMatchPatch with the default tuning parameters.
func New() *DiffMatchPatch {
	return &DiffMatchPatch{
		DiffTimeout:          DefaultDiffTimeout,
		DiffEditCost:         DefaultDiffEditCost,
		MatchThreshold:       DefaultMatchThreshold,
		MatchDistance:        DefaultMatchDistance,
		MatchMaxBits:         DefaultMatchMaxBits,
		PatchDeleteThreshold: DefaultPatchDeleteThreshold,
		PatchMargin:          DefaultPatchMargin,
	}
}
