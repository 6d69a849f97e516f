// Copyright 2025 Talentsift Labs
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package query

import (
	"strings"

	"github.com/talentsift/talentsift/core"
)

// Filter applies the extracted constraints to retrieved results.
//
// The duration stage is strict: an upper bound removes everything longer,
// an exact duration removes everything that is not an exact minute match,
// and both drop records without a parseable duration, even if that leaves
// no results. The skill and test-type stages are soft: a keyword that
// matches nothing leaves the candidate set unchanged. The input slice is
// never mutated and relative order is preserved.
func Filter(results []*core.SearchResult, c Constraints) []*core.SearchResult {
	filtered := results

	switch {
	case c.MaxDuration > 0:
		filtered = filterByMaxDuration(filtered, c.MaxDuration)
	case c.Duration > 0:
		filtered = filterByExactDuration(filtered, c.Duration)
	}

	if len(c.Skills) > 0 {
		filtered = keepMatching(filtered, func(a *core.Assessment) bool {
			return matchesAnySkill(a, c.Skills)
		})
	}

	if len(c.TestTypes) > 0 {
		filtered = keepMatching(filtered, func(a *core.Assessment) bool {
			return matchesAnyTestType(a, c.TestTypes)
		})
	}

	return filtered
}

func filterByMaxDuration(results []*core.SearchResult, limit int) []*core.SearchResult {
	kept := make([]*core.SearchResult, 0, len(results))
	for _, r := range results {
		if r.Assessment.DurationMinutes > 0 && r.Assessment.DurationMinutes <= limit {
			kept = append(kept, r)
		}
	}
	return kept
}

// filterByExactDuration keeps only exact minute matches. An exact
// mention is not a bound: a 25-minute test does not satisfy "30 minutes".
func filterByExactDuration(results []*core.SearchResult, minutes int) []*core.SearchResult {
	kept := make([]*core.SearchResult, 0, len(results))
	for _, r := range results {
		if r.Assessment.DurationMinutes == minutes {
			kept = append(kept, r)
		}
	}
	return kept
}

// keepMatching keeps results whose assessment satisfies the predicate,
// falling back to the full input when nothing matches.
func keepMatching(results []*core.SearchResult, match func(*core.Assessment) bool) []*core.SearchResult {
	kept := make([]*core.SearchResult, 0, len(results))
	for _, r := range results {
		if match(r.Assessment) {
			kept = append(kept, r)
		}
	}
	if len(kept) == 0 {
		return results
	}
	return kept
}

func matchesAnySkill(a *core.Assessment, skills []string) bool {
	haystack := strings.ToLower(a.Name + " " + a.Description)
	for _, skill := range skills {
		if skillPatterns[skill].MatchString(haystack) {
			return true
		}
	}
	return false
}

func matchesAnyTestType(a *core.Assessment, testTypes []string) bool {
	loweredType := strings.ToLower(a.TestType)
	loweredDescription := strings.ToLower(a.Description)
	for _, testType := range testTypes {
		if strings.Contains(loweredType, testType) {
			return true
		}
		if testTypePatterns[testType].MatchString(loweredDescription) {
			return true
		}
	}
	return false
}
