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


package index

import (
	"fmt"

	"github.com/talentsift/talentsift/core"
)

// DocumentText builds the searchable text representation of an assessment.
// This is the text that gets embedded, so its shape directly affects what
// queries match.
func DocumentText(a *core.Assessment) string {
	name := a.Name
	if name == "" {
		name = "Unknown Name"
	}
	description := a.Description
	if description == "" {
		description = "No description available"
	}
	testType := a.TestType
	if testType == "" {
		testType = core.FlagUnknown
	}
	duration := a.Duration
	if duration == "" {
		duration = core.FlagUnknown
	}

	return fmt.Sprintf("%s. %s Type: %s. Duration: %s.", name, description, testType, duration)
}
