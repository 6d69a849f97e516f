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


package storage

import (
	"context"

	"github.com/talentsift/talentsift/core"
)

// VectorSearcher provides vector similarity search over stored assessments.
// Implementations must be thread-safe.
type VectorSearcher interface {
	// FindSimilar finds assessments similar to the given vector.
	// Returns records with similarity >= minSimilarity, up to limit results.
	// Results are ordered by similarity score (highest first).
	FindSimilar(ctx context.Context, vector []float32, minSimilarity float32, limit int) ([]*core.SearchResult, error)
}

// AssessmentRepository provides operations for managing assessment records.
// Implementations must be thread-safe and support concurrent access.
type AssessmentRepository interface {
	VectorSearcher

	// PutAssessments stores one or more assessments.
	// IDs are content-based (IDFromContent of the assessment name), so
	// re-ingesting the same catalog overwrites rather than duplicates.
	// Sets InsertedAt on first write and UpdatedAt on every write.
	// Returns the records with IDs and timestamps populated.
	PutAssessments(ctx context.Context, assessments ...*core.Assessment) ([]*core.Assessment, error)

	// GetAssessment retrieves a single assessment by ID.
	// Returns ErrNotFound if the record doesn't exist.
	GetAssessment(ctx context.Context, id core.ID) (*core.Assessment, error)

	// GetAssessments retrieves multiple assessments by their IDs.
	// Returns only the records that exist (no error for missing records).
	GetAssessments(ctx context.Context, ids ...core.ID) ([]*core.Assessment, error)

	// ListAssessments retrieves every stored assessment, ordered by name.
	ListAssessments(ctx context.Context) ([]*core.Assessment, error)

	// Count returns the number of stored assessments.
	Count(ctx context.Context) (int, error)

	// DeleteAssessments removes assessments by their IDs.
	// Returns ErrNotFound if any record doesn't exist.
	DeleteAssessments(ctx context.Context, ids ...core.ID) error

	// Close closes the repository and releases resources.
	Close() error
}
