package badger

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/talentsift/talentsift/core"
	"github.com/talentsift/talentsift/storage"
)

func newTestRepo(t *testing.T) storage.AssessmentRepository {
	t.Helper()
	repo, backend, err := NewMemoryRepository()
	require.NoError(t, err)
	t.Cleanup(func() {
		repo.Close()
		backend.Close()
	})
	return repo
}

func TestPutAssessments_GeneratesContentIDs(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	records := []*core.Assessment{
		{Name: "Coding Simulations - Java", Description: "Java programming simulation."},
		{Name: "Verify - Numerical Reasoning", Description: "Numerical reasoning test."},
	}

	added, err := repo.PutAssessments(ctx, records...)
	require.NoError(t, err)
	require.Len(t, added, 2)

	for _, a := range added {
		assert.Equal(t, core.IDFromContent(a.Name), a.Id)
		assert.False(t, a.InsertedAt.IsZero())
		assert.False(t, a.UpdatedAt.IsZero())
	}
}

func TestPutAssessments_OverwritesByName(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	first := &core.Assessment{
		Name:        "OPQ",
		Description: "Original description.",
	}
	_, err := repo.PutAssessments(ctx, first)
	require.NoError(t, err)

	second := &core.Assessment{
		Name:        "OPQ",
		Description: "Updated description.",
		Vector:      []float32{0.1, 0.2},
	}
	_, err = repo.PutAssessments(ctx, second)
	require.NoError(t, err)

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	got, err := repo.GetAssessment(ctx, core.IDFromContent("OPQ"))
	require.NoError(t, err)
	assert.Equal(t, "Updated description.", got.Description)
	assert.Equal(t, []float32{0.1, 0.2}, got.Vector)
	// Stored timestamps carry millisecond precision
	assert.WithinDuration(t, first.InsertedAt, got.InsertedAt, time.Millisecond, "InsertedAt should survive overwrite")
}

func TestGetAssessment_NotFound(t *testing.T) {
	repo := newTestRepo(t)

	_, err := repo.GetAssessment(context.Background(), core.ID(12345))
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestGetAssessments_SkipsMissing(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	added, err := repo.PutAssessments(ctx, &core.Assessment{
		Name:        "Teamwork Styles Assessment",
		Description: "Collaboration preferences.",
	})
	require.NoError(t, err)

	got, err := repo.GetAssessments(ctx, added[0].Id, core.ID(99999))
	require.NoError(t, err)
	assert.Len(t, got, 1)
	assert.Equal(t, "Teamwork Styles Assessment", got[0].Name)
}

func TestListAssessments_OrderedByName(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	_, err := repo.PutAssessments(ctx,
		&core.Assessment{Name: "Zeta Test", Description: "d"},
		&core.Assessment{Name: "Alpha Test", Description: "d"},
		&core.Assessment{Name: "Mid Test", Description: "d"},
	)
	require.NoError(t, err)

	list, err := repo.ListAssessments(ctx)
	require.NoError(t, err)
	require.Len(t, list, 3)

	assert.Equal(t, "Alpha Test", list[0].Name)
	assert.Equal(t, "Mid Test", list[1].Name)
	assert.Equal(t, "Zeta Test", list[2].Name)
}

func TestCount_Empty(t *testing.T) {
	repo := newTestRepo(t)

	count, err := repo.Count(context.Background())
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestDeleteAssessments(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	added, err := repo.PutAssessments(ctx, &core.Assessment{
		Name:        "Verify Interactive",
		Description: "Adaptive cognitive test.",
	})
	require.NoError(t, err)

	require.NoError(t, repo.DeleteAssessments(ctx, added[0].Id))

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, count)

	list, err := repo.ListAssessments(ctx)
	require.NoError(t, err)
	assert.Empty(t, list, "name index entry should be gone too")
}

func TestDeleteAssessments_NotFound(t *testing.T) {
	repo := newTestRepo(t)

	err := repo.DeleteAssessments(context.Background(), core.ID(424242))
	assert.ErrorIs(t, err, storage.ErrNotFound)
}
