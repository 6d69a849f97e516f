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
	"context"
	"fmt"
	"log/slog"

	"github.com/talentsift/talentsift/ai"
	"github.com/talentsift/talentsift/core"
	"github.com/talentsift/talentsift/storage"
)

// searchOverfetch is how many candidates are retrieved before filtering.
// Constraint filtering can discard most of the retrieved set, so the
// retrieval limit is deliberately larger than any result limit callers use.
const searchOverfetch = 20

// defaultMinSimilarity is the retrieval score floor.
const defaultMinSimilarity = 0.25

// Engine answers free-text queries with ranked assessment recommendations.
type Engine struct {
	repository    storage.VectorSearcher
	embedder      ai.Embedder
	minSimilarity float32
	logger        *slog.Logger
}

// Recommendation is the outcome of processing one query.
type Recommendation struct {
	// Constraints are the structured requirements extracted from the query.
	Constraints Constraints

	// Results are the recommended assessments, best first.
	Results []*core.SearchResult

	// FallbackUsed reports that filtering eliminated every candidate and
	// the unfiltered retrieval results were returned instead.
	FallbackUsed bool
}

// EngineOption configures an Engine.
type EngineOption func(*Engine)

// WithMinSimilarity sets the retrieval score floor.
func WithMinSimilarity(min float32) EngineOption {
	return func(e *Engine) {
		e.minSimilarity = min
	}
}

// WithEngineLogger sets a custom logger.
// Default is slog.Default().
func WithEngineLogger(logger *slog.Logger) EngineOption {
	return func(e *Engine) {
		if logger == nil {
			logger = slog.Default()
		}
		e.logger = logger
	}
}

// NewEngine creates a query engine over the given index.
func NewEngine(repository storage.VectorSearcher, embedder ai.Embedder, opts ...EngineOption) (*Engine, error) {
	if repository == nil {
		return nil, ErrRepositoryRequired
	}
	if embedder == nil {
		return nil, ErrEmbedderRequired
	}

	e := &Engine{
		repository:    repository,
		embedder:      embedder,
		minSimilarity: defaultMinSimilarity,
		logger:        slog.Default(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e, nil
}

// ProcessQuery extracts constraints from the query, retrieves semantically
// similar assessments and filters them down to at most maxResults.
func (e *Engine) ProcessQuery(ctx context.Context, queryText string, maxResults int) (*Recommendation, error) {
	if maxResults < 1 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidLimit, maxResults)
	}

	constraints := ExtractConstraints(queryText)
	e.logger.Debug("extracted constraints",
		"maxDuration", constraints.MaxDuration,
		"duration", constraints.Duration,
		"skills", constraints.Skills,
		"testTypes", constraints.TestTypes)

	vector, err := e.embedder.EmbedText(ctx, queryText)
	if err != nil {
		return nil, fmt.Errorf("failed to embed query: %w", err)
	}

	retrieved, err := e.repository.FindSimilar(ctx, vector, e.minSimilarity, searchOverfetch)
	if err != nil {
		return nil, fmt.Errorf("similarity search failed: %w", err)
	}

	filtered := Filter(retrieved, constraints)

	rec := &Recommendation{Constraints: constraints}
	if len(filtered) == 0 && len(retrieved) > 0 {
		e.logger.Info("constraints eliminated all candidates, returning unfiltered results",
			"retrieved", len(retrieved))
		rec.FallbackUsed = true
		filtered = retrieved
	}

	if len(filtered) > maxResults {
		filtered = filtered[:maxResults]
	}
	rec.Results = filtered

	e.logger.Info("processed query",
		"retrieved", len(retrieved),
		"returned", len(rec.Results),
		"fallback", rec.FallbackUsed)

	return rec, nil
}
