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
	"context"
	"log/slog"
	"runtime"
	"sync"

	"github.com/panjf2000/ants/v2"
	"github.com/talentsift/talentsift/ai"
	"github.com/talentsift/talentsift/core"
	"github.com/talentsift/talentsift/storage"
)

const defaultBatchSize = 16

// Indexer embeds assessment documents and stores them for similarity search.
type Indexer struct {
	repository storage.AssessmentRepository
	embedder   ai.Embedder
	pool       *ants.Pool
	batchSize  int
	logger     *slog.Logger
}

// Option configures an Indexer.
type Option func(*Indexer) error

// WithPoolSize sets the worker pool size for concurrent embedding.
// Default is runtime.NumCPU() / 2, with a minimum of 1.
func WithPoolSize(size int) Option {
	return func(ix *Indexer) error {
		if size < 1 {
			size = 1
		}

		if ix.pool != nil {
			ix.pool.Release()
		}

		pool, err := ants.NewPool(size)
		if err != nil {
			return err
		}
		ix.pool = pool
		return nil
	}
}

// WithBatchSize sets how many documents are embedded per request.
// Default is 16.
func WithBatchSize(size int) Option {
	return func(ix *Indexer) error {
		if size < 1 {
			size = 1
		}
		ix.batchSize = size
		return nil
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(ix *Indexer) error {
		if logger == nil {
			logger = slog.Default()
		}
		ix.logger = logger
		return nil
	}
}

// NewIndexer creates a new indexer.
func NewIndexer(repository storage.AssessmentRepository, embedder ai.Embedder, opts ...Option) (*Indexer, error) {
	if repository == nil {
		return nil, ErrRepositoryRequired
	}
	if embedder == nil {
		return nil, ErrEmbedderRequired
	}

	poolSize := runtime.NumCPU() / 2
	if poolSize < 1 {
		poolSize = 1
	}

	pool, err := ants.NewPool(poolSize)
	if err != nil {
		return nil, err
	}

	ix := &Indexer{
		repository: repository,
		embedder:   embedder,
		pool:       pool,
		batchSize:  defaultBatchSize,
		logger:     slog.Default(),
	}

	for _, opt := range opts {
		if optErr := opt(ix); optErr != nil {
			ix.Release()
			return nil, optErr
		}
	}

	return ix, nil
}

// EnsureIndexed embeds and stores the given assessments unless the
// repository is already populated. Records missing a name or description
// are discarded.
func (ix *Indexer) EnsureIndexed(ctx context.Context, assessments []*core.Assessment) error {
	if len(assessments) == 0 {
		ix.logger.Info("no assessments provided, skipping indexing")
		return nil
	}

	count, err := ix.repository.Count(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		ix.logger.Info("index already populated, skipping embedding generation", "count", count)
		return nil
	}

	valid := make([]*core.Assessment, 0, len(assessments))
	for _, a := range assessments {
		if err := core.ValidateAssessment(a); err != nil {
			ix.logger.Warn("discarding invalid assessment", "name", a.Name, "err", err)
			continue
		}
		core.Normalize(a)
		valid = append(valid, a)
	}
	if len(valid) == 0 {
		ix.logger.Warn("no valid assessments to index")
		return nil
	}

	ix.logger.Info("generating embeddings", "count", len(valid), "batchSize", ix.batchSize)

	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		firstErr error
	)

	for start := 0; start < len(valid); start += ix.batchSize {
		end := start + ix.batchSize
		if end > len(valid) {
			end = len(valid)
		}
		batch := valid[start:end]

		wg.Add(1)
		submitErr := ix.pool.Submit(func() {
			defer wg.Done()
			if err := ix.indexBatch(ctx, batch); err != nil {
				ix.logger.Error("error indexing batch", "size", len(batch), "err", err)
				mu.Lock()
				if firstErr == nil {
					firstErr = err
				}
				mu.Unlock()
			}
		})
		if submitErr != nil {
			wg.Done()
			return submitErr
		}
	}

	wg.Wait()
	if firstErr != nil {
		return firstErr
	}

	ix.logger.Info("indexed assessments", "count", len(valid))
	return nil
}

// indexBatch embeds one batch of documents and stores the records.
func (ix *Indexer) indexBatch(ctx context.Context, batch []*core.Assessment) error {
	texts := make([]string, len(batch))
	for i, a := range batch {
		texts[i] = DocumentText(a)
	}

	vectors, err := ix.embedder.EmbedTexts(ctx, texts)
	if err != nil {
		return err
	}

	for i, a := range batch {
		if i < len(vectors) {
			a.Vector = vectors[i]
		}
	}

	_, err = ix.repository.PutAssessments(ctx, batch...)
	return err
}

// Release releases the worker pool.
// The indexer should not be used after calling Release.
func (ix *Indexer) Release() {
	if ix.pool != nil {
		ix.pool.Release()
	}
}
