package query

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/talentsift/talentsift/ai/mock"
	"github.com/talentsift/talentsift/core"
	"github.com/talentsift/talentsift/storage/badger"
)

// stubSearcher returns a fixed candidate list, letting tests pin the
// retrieval stage while exercising extraction and filtering.
type stubSearcher struct {
	results []*core.SearchResult
	err     error
}

func (s *stubSearcher) FindSimilar(ctx context.Context, vector []float32, minSimilarity float32, limit int) ([]*core.SearchResult, error) {
	if s.err != nil {
		return nil, s.err
	}
	if len(s.results) > limit {
		return s.results[:limit], nil
	}
	return s.results, nil
}

func newStubEngine(t *testing.T, results []*core.SearchResult) *Engine {
	t.Helper()
	e, err := NewEngine(&stubSearcher{results: results}, mock.NewMockEmbedder())
	require.NoError(t, err)
	return e
}

func TestNewEngine_RequiresCollaborators(t *testing.T) {
	_, err := NewEngine(nil, mock.NewMockEmbedder())
	assert.ErrorIs(t, err, ErrRepositoryRequired)

	_, err = NewEngine(&stubSearcher{}, nil)
	assert.ErrorIs(t, err, ErrEmbedderRequired)
}

func TestProcessQuery_RejectsInvalidLimit(t *testing.T) {
	e := newStubEngine(t, resultFixture())

	_, err := e.ProcessQuery(context.Background(), "java developers", 0)
	assert.ErrorIs(t, err, ErrInvalidLimit)
}

// Minimum query length is a boundary policy, not the engine's. An empty
// query carries no constraints and still retrieves by similarity.
func TestProcessQuery_AcceptsEmptyQuery(t *testing.T) {
	e := newStubEngine(t, resultFixture())

	rec, err := e.ProcessQuery(context.Background(), "", 2)
	require.NoError(t, err)
	assert.True(t, rec.Constraints.IsEmpty())
	assert.Len(t, rec.Results, 2)
}

func TestProcessQuery_SkillAndDurationQuery(t *testing.T) {
	e := newStubEngine(t, resultFixture())

	rec, err := e.ProcessQuery(context.Background(), "Java developers, less than 45 minutes", 10)
	require.NoError(t, err)

	assert.Equal(t, 45, rec.Constraints.MaxDuration)
	assert.Equal(t, []string{"java"}, rec.Constraints.Skills)
	assert.False(t, rec.FallbackUsed)
	assert.Equal(t, []string{"Java Programming Test"}, names(rec.Results))
}

func TestProcessQuery_TestTypeQuery(t *testing.T) {
	e := newStubEngine(t, resultFixture())

	rec, err := e.ProcessQuery(context.Background(), "cognitive and personality tests max 45 minutes", 10)
	require.NoError(t, err)

	assert.Equal(t, 45, rec.Constraints.MaxDuration)
	assert.Equal(t, []string{"cognitive", "personality"}, rec.Constraints.TestTypes)
	assert.Equal(t, []string{"Verify Numerical Reasoning", "OPQ Personality Questionnaire"}, names(rec.Results))
}

func TestProcessQuery_FallbackWhenFilterEliminatesAll(t *testing.T) {
	e := newStubEngine(t, resultFixture())

	rec, err := e.ProcessQuery(context.Background(), "anything under 5 minutes", 2)
	require.NoError(t, err)

	assert.True(t, rec.FallbackUsed)
	assert.Len(t, rec.Results, 2)
	assert.Equal(t, "Java Programming Test", rec.Results[0].Assessment.Name)
}

func TestProcessQuery_TruncatesToLimit(t *testing.T) {
	e := newStubEngine(t, resultFixture())

	rec, err := e.ProcessQuery(context.Background(), "assessments for new hires", 2)
	require.NoError(t, err)

	assert.False(t, rec.FallbackUsed)
	assert.Len(t, rec.Results, 2)
}

func TestProcessQuery_EmptyIndex(t *testing.T) {
	e := newStubEngine(t, nil)

	rec, err := e.ProcessQuery(context.Background(), "java developers", 5)
	require.NoError(t, err)

	assert.Empty(t, rec.Results)
	assert.False(t, rec.FallbackUsed)
}

func TestProcessQuery_EmbedderError(t *testing.T) {
	embedder := mock.NewMockEmbedder()
	embedErr := errors.New("embedding service unavailable")
	embedder.EmbedTextFunc = func(ctx context.Context, text string) ([]float32, error) {
		return nil, embedErr
	}

	e, err := NewEngine(&stubSearcher{results: resultFixture()}, embedder)
	require.NoError(t, err)

	_, err = e.ProcessQuery(context.Background(), "java developers", 5)
	assert.ErrorIs(t, err, embedErr)
}

func TestProcessQuery_SearchError(t *testing.T) {
	searchErr := errors.New("backend closed")
	e, err := NewEngine(&stubSearcher{err: searchErr}, mock.NewMockEmbedder())
	require.NoError(t, err)

	_, err = e.ProcessQuery(context.Background(), "java developers", 5)
	assert.ErrorIs(t, err, searchErr)
}

func TestProcessQuery_AgainstStoredIndex(t *testing.T) {
	repo, backend, err := badger.NewMemoryRepository()
	require.NoError(t, err)
	defer repo.Close()
	defer backend.Close()

	embedder := mock.NewMockEmbedder()
	ctx := context.Background()

	for _, r := range resultFixture() {
		a := r.Assessment
		vector, embedErr := embedder.EmbedText(ctx, a.Name+" "+a.Description)
		require.NoError(t, embedErr)
		a.Vector = vector
		_, putErr := repo.PutAssessments(ctx, a)
		require.NoError(t, putErr)
	}

	e, err := NewEngine(repo, embedder)
	require.NoError(t, err)

	rec, err := e.ProcessQuery(ctx, "Java developers", 10)
	require.NoError(t, err)

	require.NotEmpty(t, rec.Results)
	assert.Equal(t, []string{"Java Programming Test"}, names(rec.Results))
}
