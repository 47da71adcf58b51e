// SPDX-License-Identifier: MIT

package floyd

import (
	"math"
	"strconv"
	"strings"
)

// Answer is the immutable result of one query.
//
// On success Outcome is OutcomeComplete, Weight is the shortest distance,
// Paths holds every minimum-weight path and Message is "Done". On failure
// Weight is +Inf, both path sets are empty and Message carries the error text.
type Answer struct {
	Start    int
	End      int
	Outcome  Outcome
	Weight   float64
	Paths    []Path
	MinPaths []Path
	Message  string
}

// Status returns "Complete" or "Failed".
func (a Answer) Status() string {
	if a.Outcome == OutcomeComplete {
		return StatusComplete
	}

	return StatusFailed
}

// Complete reports whether the query succeeded.
func (a Answer) Complete() bool { return a.Outcome == OutcomeComplete }

// String renders the four-line summary:
//
//	status - Complete
//	0->1: weight = 3;
//	paths: ('0 -> 3 -> 1',);
//	min_paths: ('0 -> 3 -> 1',);
func (a Answer) String() string {
	lines := []string{
		"status - " + a.Status(),
		strconv.Itoa(a.Start) + "->" + strconv.Itoa(a.End) + ": weight = " + FormatWeight(a.Weight) + ";",
		"paths: " + formatTuple(a.Paths) + ";",
		"min_paths: " + formatTuple(a.MinPaths) + ";",
	}

	return strings.Join(lines, "\n")
}

// FormatWeight renders a weight with the shortest exact decimal form;
// the no-edge sentinel renders as "inf".
func FormatWeight(w float64) string {
	if math.IsInf(w, 1) {
		return "inf"
	}

	return strconv.FormatFloat(w, 'f', -1, 64)
}

// formatTuple renders paths as a tuple literal: (), ('a',), ('a', 'b').
func formatTuple(paths []Path) string {
	var b strings.Builder
	b.WriteByte('(')
	for i, p := range paths {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteByte('\'')
		b.WriteString(p.String())
		b.WriteByte('\'')
	}
	if len(paths) == 1 {
		b.WriteByte(',')
	}
	b.WriteByte(')')

	return b.String()
}

// minimalPaths selects Answer.MinPaths.
//
// Without hop filtering the full set is returned unchanged: historically the
// filter compared against a minimum it never updated and so removed nothing,
// and callers rely on that output. With hop filtering only the paths with
// the fewest nodes are kept.
func minimalPaths(paths []Path, hopFiltering bool) []Path {
	if len(paths) == 0 {
		return nil
	}
	if !hopFiltering {
		return append([]Path(nil), paths...)
	}

	fewest := len(paths[0])
	for _, p := range paths[1:] {
		if len(p) < fewest {
			fewest = len(p)
		}
	}
	out := make([]Path, 0, len(paths))
	for _, p := range paths {
		if len(p) == fewest {
			out = append(out, p)
		}
	}

	return out
}
