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


package catalog

import (
	"regexp"
	"strconv"
)

var (
	// durationTokenPattern matches a duration phrase inside feature text,
	// e.g. "30 minutes" or "45 min".
	durationTokenPattern = regexp.MustCompile(`\d+\s*(minutes|min|m|hours|hr)`)

	// typeLabelPattern matches an explicit "type:" or "category:" label.
	typeLabelPattern = regexp.MustCompile(`(?:type|category):\s*([^,.]+)`)

	leadingIntPattern = regexp.MustCompile(`\d+`)
)

// ParseDurationMinutes extracts the minute count from free-text duration
// fields like "30 minutes". Returns 0 when no number is present, so the
// downstream filter can treat the duration as unknown rather than guessing.
func ParseDurationMinutes(text string) int {
	m := leadingIntPattern.FindString(text)
	if m == "" {
		return 0
	}
	minutes, err := strconv.Atoi(m)
	if err != nil {
		return 0
	}
	return minutes
}
