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


// Package query turns free-text hiring queries into ranked assessment
// recommendations.
//
// A query goes through three stages: constraint extraction (duration
// limits, skill keywords, test-type keywords), semantic retrieval over
// the embedding index, and constraint filtering of the retrieved
// candidates. Filtering is soft: when a constraint would eliminate every
// candidate, the pre-filter set is kept rather than returning nothing.
package query
