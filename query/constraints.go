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
	"regexp"
	"strconv"
	"strings"
)

// Constraints holds the structured requirements extracted from a query.
// Zero duration values mean the query did not mention one; nil slices
// mean no keywords of that kind were found.
type Constraints struct {
	// MaxDuration is an upper bound in minutes ("less than 40 minutes").
	MaxDuration int

	// Duration is an exact duration mention in minutes ("40 minutes").
	// Never set together with MaxDuration; a bounded phrasing wins.
	Duration int

	// Skills are the technology keywords found in the query.
	Skills []string

	// TestTypes are the assessment category keywords found in the query.
	TestTypes []string
}

// IsEmpty reports whether no constraints were extracted.
func (c Constraints) IsEmpty() bool {
	return c.MaxDuration == 0 && c.Duration == 0 && len(c.Skills) == 0 && len(c.TestTypes) == 0
}

// skillVocabulary lists the technology keywords recognized in queries.
// Matching is whole-word over the lowercased query.
var skillVocabulary = []string{
	"java", "python", "javascript", "js", "sql",
	"react", "angular", "node", "c++", "c#",
}

// testTypeVocabulary lists the assessment category keywords.
var testTypeVocabulary = []string{
	"cognitive", "personality", "behavior", "situational", "technical", "coding",
}

var (
	maxTimePattern  = regexp.MustCompile(`(?i)(less than|max|maximum|under|within|up to)\s*(\d+)\s*min`)
	durationPattern = regexp.MustCompile(`(?i)(\d+)\s*minutes`)

	skillPatterns    = compileKeywordPatterns(skillVocabulary)
	testTypePatterns = compileKeywordPatterns(testTypeVocabulary)
)

// compileKeywordPatterns builds whole-word patterns for a vocabulary.
// Keywords ending in a non-word character (c++, c#) keep the trailing
// boundary, so they only match when directly followed by a word
// character. Callers rely on this exact behavior staying stable.
func compileKeywordPatterns(vocabulary []string) map[string]*regexp.Regexp {
	patterns := make(map[string]*regexp.Regexp, len(vocabulary))
	for _, keyword := range vocabulary {
		patterns[keyword] = regexp.MustCompile(`\b` + regexp.QuoteMeta(keyword) + `\b`)
	}
	return patterns
}

// ExtractConstraints parses duration limits, skill keywords and test-type
// keywords out of a free-text query.
func ExtractConstraints(queryText string) Constraints {
	var c Constraints
	lowered := strings.ToLower(queryText)

	if m := maxTimePattern.FindStringSubmatch(queryText); m != nil {
		if minutes, err := strconv.Atoi(m[2]); err == nil {
			c.MaxDuration = minutes
		}
	} else if m := durationPattern.FindStringSubmatch(queryText); m != nil {
		if minutes, err := strconv.Atoi(m[1]); err == nil {
			c.Duration = minutes
		}
	}

	for _, skill := range skillVocabulary {
		if skillPatterns[skill].MatchString(lowered) {
			c.Skills = append(c.Skills, skill)
		}
	}

	for _, testType := range testTypeVocabulary {
		if testTypePatterns[testType].MatchString(lowered) {
			c.TestTypes = append(c.TestTypes, testType)
		}
	}

	return c
}
