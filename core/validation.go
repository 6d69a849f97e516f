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


package core

import "fmt"

// ValidateAssessment validates an Assessment according to domain rules.
//
// Validation rules:
//   - Name must not be empty
//   - Description must not be empty
//
// NOT validated (populated later or genuinely optional):
//   - Vector (empty until the indexer runs)
//   - Duration, RemoteTesting, AdaptiveIRT, TestType (default to Unknown)
//   - URL
func ValidateAssessment(a *Assessment) error {
	if a == nil {
		return fmt.Errorf("%w: assessment is nil", ErrInvalidAssessment)
	}

	if a.Name == "" {
		return fmt.Errorf("%w: %w", ErrInvalidAssessment, ErrEmptyName)
	}

	if a.Description == "" {
		return fmt.Errorf("%w: %w", ErrInvalidAssessment, ErrEmptyDescription)
	}

	return nil
}

// Normalize fills the optional tri-state and category fields with
// FlagUnknown when the catalog did not provide them.
func Normalize(a *Assessment) {
	if a.RemoteTesting == "" {
		a.RemoteTesting = FlagUnknown
	}
	if a.AdaptiveIRT == "" {
		a.AdaptiveIRT = FlagUnknown
	}
	if a.Duration == "" {
		a.Duration = FlagUnknown
	}
	if a.TestType == "" {
		a.TestType = FlagUnknown
	}
}
