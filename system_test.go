package talentsift

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/talentsift/talentsift/ai/mock"
	"github.com/talentsift/talentsift/core"
)

func newTestSystem(t *testing.T) *System {
	t.Helper()
	sys, err := New("", WithInMemoryStorage(), WithEmbedder(mock.NewMockEmbedder()))
	require.NoError(t, err)
	t.Cleanup(func() { sys.Close() })
	return sys
}

func TestSystem_EndToEnd(t *testing.T) {
	sys := newTestSystem(t)
	ctx := context.Background()

	indexer, err := sys.NewIndexer()
	require.NoError(t, err)
	defer indexer.Release()

	assessments := []*core.Assessment{
		{
			Name:            "Java Programming Test",
			Description:     "Assesses Java coding skills for backend roles.",
			Duration:        "40 minutes",
			DurationMinutes: 40,
			TestType:        "Technical & Coding",
		},
		{
			Name:            "OPQ Personality Questionnaire",
			Description:     "Workplace personality profile.",
			Duration:        "45 minutes",
			DurationMinutes: 45,
			TestType:        "Personality",
		},
	}
	require.NoError(t, indexer.EnsureIndexed(ctx, assessments))

	count, err := sys.Repository().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	engine, err := sys.NewEngine()
	require.NoError(t, err)

	rec, err := engine.ProcessQuery(ctx, "Java developers, less than 45 minutes", 5)
	require.NoError(t, err)
	require.NotEmpty(t, rec.Results)
	assert.Equal(t, "Java Programming Test", rec.Results[0].Assessment.Name)
}

func TestSystem_PersistsAcrossReopen(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	sys, err := New(dir, WithEmbedder(mock.NewMockEmbedder()))
	require.NoError(t, err)

	indexer, err := sys.NewIndexer()
	require.NoError(t, err)
	require.NoError(t, indexer.EnsureIndexed(ctx, []*core.Assessment{
		{Name: "Verify Numerical Reasoning", Description: "Numerical reasoning."},
	}))
	indexer.Release()
	require.NoError(t, sys.Close())

	reopened, err := New(dir, WithEmbedder(mock.NewMockEmbedder()))
	require.NoError(t, err)
	defer reopened.Close()

	count, err := reopened.Repository().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestSystem_CloseIsClean(t *testing.T) {
	sys, err := New("", WithInMemoryStorage(), WithEmbedder(mock.NewMockEmbedder()))
	require.NoError(t, err)
	assert.NoError(t, sys.Close())
}
