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


// Package index builds the persisted embedding index over the assessment
// catalog.
//
// The Indexer is idempotent: EnsureIndexed is a no-op when the repository
// already holds records, so front-ends can call it unconditionally at
// startup. Embedding happens in batches on a worker pool since the
// embedding service is the slow path.
package index
