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


package badger

import (
	"context"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/talentsift/talentsift/core"
	"github.com/talentsift/talentsift/storage"
)

// AssessmentRepository implements storage.AssessmentRepository for BadgerDB.
type AssessmentRepository struct {
	backend *Backend
}

var _ storage.AssessmentRepository = (*AssessmentRepository)(nil)

// NewAssessmentRepository creates a new AssessmentRepository.
//
// Returns storage.AssessmentRepository interface to enforce abstraction.
func NewAssessmentRepository(backend *Backend) (storage.AssessmentRepository, error) {
	return &AssessmentRepository{backend: backend}, nil
}

// Close releases repository resources. The backend is owned by the caller
// and closed separately.
func (r *AssessmentRepository) Close() error {
	return nil
}

// FindSimilar delegates to the backend.
func (r *AssessmentRepository) FindSimilar(ctx context.Context, vector []float32, minSimilarity float32, limit int) ([]*core.SearchResult, error) {
	return r.backend.FindSimilar(ctx, vector, minSimilarity, limit)
}

// PutAssessments stores one or more assessments.
// IDs are derived from the assessment name, so writing the same catalog
// twice overwrites in place instead of duplicating.
func (r *AssessmentRepository) PutAssessments(ctx context.Context, assessments ...*core.Assessment) ([]*core.Assessment, error) {
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		now := time.Now().UTC()
		for _, a := range assessments {
			if a.Id == 0 {
				a.Id = core.IDFromContent(a.Name)
			}

			key := makeAssessmentKey(a.Id)

			// Preserve InsertedAt across overwrites
			old, err := r.readAssessment(tx, key)
			if err != nil {
				return err
			}
			if old != nil {
				a.InsertedAt = old.InsertedAt
			} else {
				a.InsertedAt = now
			}
			a.UpdatedAt = now

			value := storage.MarshalAssessment(a)
			if err := tx.Set(key, value); err != nil {
				return err
			}

			nameKey := makeAssessmentNameKey(a.Name)
			if err := tx.Set(nameKey, storage.MarshalID(a.Id)); err != nil {
				return err
			}
		}
		return tx.Commit()
	}, true)

	return assessments, err
}

// GetAssessment retrieves a single assessment by ID.
func (r *AssessmentRepository) GetAssessment(ctx context.Context, id core.ID) (*core.Assessment, error) {
	var result *core.Assessment
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		key := makeAssessmentKey(id)
		var err error
		result, err = r.readAssessment(tx, key)
		if err != nil {
			return err
		}
		if result == nil {
			return storage.ErrNotFound
		}
		return nil
	}, false)
	return result, err
}

// GetAssessments retrieves multiple assessments by their IDs.
func (r *AssessmentRepository) GetAssessments(ctx context.Context, ids ...core.ID) ([]*core.Assessment, error) {
	var result []*core.Assessment
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		for _, id := range ids {
			key := makeAssessmentKey(id)
			record, err := r.readAssessment(tx, key)
			if err != nil {
				return err
			}
			if record != nil {
				result = append(result, record)
			}
		}
		return nil
	}, false)
	return result, err
}

// ListAssessments retrieves every stored assessment, ordered by name.
func (r *AssessmentRepository) ListAssessments(ctx context.Context) ([]*core.Assessment, error) {
	var results []*core.Assessment
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(assessmentNamePrefix)
		iter := tx.NewIterator(opts)
		defer iter.Close()

		for iter.Rewind(); iter.Valid(); iter.Next() {
			var id core.ID
			if err := iter.Item().Value(func(val []byte) error {
				var err error
				id, err = storage.UnmarshalID(val)
				return err
			}); err != nil {
				return err
			}

			record, err := r.readAssessment(tx, makeAssessmentKey(id))
			if err != nil {
				return err
			}
			if record != nil {
				results = append(results, record)
			}
		}
		return nil
	}, false)

	return results, err
}

// Count returns the number of stored assessments.
func (r *AssessmentRepository) Count(ctx context.Context) (int, error) {
	count := 0
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(assessmentKeyPrefix)
		opts.PrefetchValues = false
		iter := tx.NewIterator(opts)
		defer iter.Close()

		for iter.Rewind(); iter.Valid(); iter.Next() {
			count++
		}
		return nil
	}, false)
	return count, err
}

// DeleteAssessments removes assessments by their IDs.
func (r *AssessmentRepository) DeleteAssessments(ctx context.Context, ids ...core.ID) error {
	return r.backend.WithTx(func(tx *badger.Txn) error {
		for _, id := range ids {
			key := makeAssessmentKey(id)

			record, err := r.readAssessment(tx, key)
			if err != nil {
				return err
			}
			if record == nil {
				return storage.ErrNotFound
			}

			if err := tx.Delete(makeAssessmentNameKey(record.Name)); err != nil {
				return err
			}
			if err := tx.Delete(key); err != nil {
				return err
			}
		}
		return tx.Commit()
	}, true)
}

// readAssessment reads an assessment from the transaction.
// Returns nil (no error) when the key doesn't exist.
func (r *AssessmentRepository) readAssessment(tx *badger.Txn, key []byte) (*core.Assessment, error) {
	item, err := tx.Get(key)
	if err != nil {
		if err == badger.ErrKeyNotFound {
			return nil, nil
		}
		return nil, err
	}

	var record *core.Assessment
	err = item.Value(func(val []byte) error {
		var err error
		record, err = storage.UnmarshalAssessment(val)
		return err
	})
	return record, err
}
