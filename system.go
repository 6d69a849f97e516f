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


package talentsift

import (
	"log/slog"

	"github.com/talentsift/talentsift/ai"
	"github.com/talentsift/talentsift/ai/openai"
	"github.com/talentsift/talentsift/index"
	"github.com/talentsift/talentsift/query"
	"github.com/talentsift/talentsift/storage"
	"github.com/talentsift/talentsift/storage/badger"
)

// System wires the storage backend, embedder, indexer and query engine
// into one assessment recommendation service.
type System struct {
	backend  *badger.Backend
	repo     storage.AssessmentRepository
	embedder ai.Embedder
	logger   *slog.Logger
}

// SystemOption configures a System.
type SystemOption func(*systemOptions)

type systemOptions struct {
	aiConfig *ai.Config
	inMemory bool
	embedder ai.Embedder
}

// WithAIConfig sets the embedding service configuration.
func WithAIConfig(config *ai.Config) SystemOption {
	return func(o *systemOptions) {
		o.aiConfig = config
	}
}

// WithInMemoryStorage keeps the index in memory instead of on disk.
// Useful for tests and throwaway runs.
func WithInMemoryStorage() SystemOption {
	return func(o *systemOptions) {
		o.inMemory = true
	}
}

// WithEmbedder replaces the default OpenAI-compatible embedder.
func WithEmbedder(embedder ai.Embedder) SystemOption {
	return func(o *systemOptions) {
		o.embedder = embedder
	}
}

// New opens the index at filePath and connects to the embedding service.
func New(filePath string, opts ...SystemOption) (*System, error) {
	options := &systemOptions{
		aiConfig: ai.DefaultConfig(),
	}
	for _, opt := range opts {
		opt(options)
	}

	backend, err := badger.OpenBackend(filePath, options.inMemory)
	if err != nil {
		return nil, err
	}

	repo, err := badger.NewAssessmentRepository(backend)
	if err != nil {
		backend.Close()
		return nil, err
	}

	embedder := options.embedder
	if embedder == nil {
		embedder, err = openai.NewEmbedder(options.aiConfig)
		if err != nil {
			repo.Close()
			backend.Close()
			return nil, err
		}
	}

	return &System{
		backend:  backend,
		repo:     repo,
		embedder: embedder,
		logger:   slog.Default(),
	}, nil
}

func (s *System) Close() error {
	if err := s.repo.Close(); err != nil {
		s.logger.Error("error closing assessment repository", "err", err)
		return err
	}
	if err := s.backend.Close(); err != nil {
		s.logger.Error("error closing backend storage", "err", err)
		return err
	}
	return nil
}

func (s *System) Repository() storage.AssessmentRepository {
	return s.repo
}

func (s *System) Embedder() ai.Embedder {
	return s.embedder
}

func (s *System) NewIndexer(opts ...index.Option) (*index.Indexer, error) {
	return index.NewIndexer(s.repo, s.embedder, opts...)
}

func (s *System) NewEngine(opts ...query.EngineOption) (*query.Engine, error) {
	return query.NewEngine(s.repo, s.embedder, opts...)
}
