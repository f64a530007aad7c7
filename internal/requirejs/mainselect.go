// SPDX-License-Identifier: MPL-2.0

package requirejs

import (
	"strings"

	"github.com/agext/levenshtein"
)

// SelectMain chooses the most plausible entry file from an ambiguous
// "main" array. The policy is a contract, not an implementation detail:
//
//  1. a single candidate is returned unconditionally;
//  2. candidates are filtered to .js files (case-insensitive); when that
//     filter leaves nothing, the full set is used instead;
//  3. the remaining candidates are scored by case-insensitive Levenshtein
//     distance between candidate and package name, and the minimum wins;
//  4. ties break in favor of the earliest candidate in input order.
//
// Ambiguity is resolved by policy, never escalated: an answer is always
// produced for a non-empty input. An empty input returns "".
func SelectMain(candidates []string, packageName string) string {
	if len(candidates) == 0 {
		return ""
	}
	if len(candidates) == 1 {
		return candidates[0]
	}

	filtered := make([]string, 0, len(candidates))
	for _, c := range candidates {
		if strings.HasSuffix(strings.ToLower(c), ".js") {
			filtered = append(filtered, c)
		}
	}
	if len(filtered) == 0 {
		filtered = candidates
	}

	// A multi-entry main array may repeat names, so distances are
	// memoized per lowercased candidate within this one selection.
	name := strings.ToLower(packageName)
	memo := make(map[string]int, len(filtered))
	distance := func(candidate string) int {
		lower := strings.ToLower(candidate)
		if d, ok := memo[lower]; ok {
			return d
		}
		d := levenshtein.Distance(name, lower, nil)
		memo[lower] = d
		return d
	}

	best := filtered[0]
	bestDistance := distance(best)
	for _, c := range filtered[1:] {
		if d := distance(c); d < bestDistance {
			best = c
			bestDistance = d
		}
	}
	return best
}
