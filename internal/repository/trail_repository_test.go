package repository

import (
	"context"
	"testing"

	"github.com/Tibebua/NationalPark/internal/model"
	"github.com/Tibebua/NationalPark/internal/testdb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTrails(t *testing.T) (*TrailRepository, *model.NationalPark, *model.NationalPark) {
	t.Helper()
	ctx := context.Background()
	db := testdb.New(t)
	parks := NewNationalParkRepository(db)

	simien := &model.NationalPark{Name: "Simien", State: "Amhara"}
	bale := &model.NationalPark{Name: "Bale", State: "Oromia"}
	require.NoError(t, parks.Create(ctx, simien))
	require.NoError(t, parks.Create(ctx, bale))
	return NewTrailRepository(db), simien, bale
}

func TestTrailRepository_ListSortedWithPark(t *testing.T) {
	ctx := context.Background()
	repo, simien, bale := setupTrails(t)

	for _, tr := range []model.Trail{
		{Name: "Sanetti", Difficulty: model.DifficultyEasy, NationalParkID: bale.ID},
		{Name: "Imet Gogo", Difficulty: model.DifficultyDifficult, NationalParkID: simien.ID},
		{Name: "Ras Dashen", Difficulty: model.DifficultyExpert, NationalParkID: simien.ID},
		{Name: "Chennek", Difficulty: model.DifficultyModerate, NationalParkID: simien.ID},
	} {
		tr := tr
		require.NoError(t, repo.Create(ctx, &tr))
	}

	trails, err := repo.List(ctx)
	require.NoError(t, err)

	var names []string
	for _, tr := range trails {
		names = append(names, tr.Name)
		require.NotNil(t, tr.NationalPark, tr.Name)
		assert.Equal(t, tr.NationalParkID, tr.NationalPark.ID)
	}
	assert.Equal(t, []string{"Chennek", "Imet Gogo", "Ras Dashen", "Sanetti"}, names)
	assert.Equal(t, "Oromia", trails[3].NationalPark.State)
}

func TestTrailRepository_ListByPark(t *testing.T) {
	ctx := context.Background()
	repo, simien, bale := setupTrails(t)
	require.NoError(t, repo.Create(ctx, &model.Trail{Name: "Chennek", Difficulty: model.DifficultyModerate, NationalParkID: simien.ID}))

	trails, err := repo.ListByPark(ctx, simien.ID)
	require.NoError(t, err)
	require.Len(t, trails, 1)
	assert.Equal(t, "Simien", trails[0].NationalPark.Name)

	empty, err := repo.ListByPark(ctx, bale.ID)
	require.NoError(t, err)
	assert.NotNil(t, empty)
	assert.Empty(t, empty)
}

func TestTrailRepository_GetUpdateDelete(t *testing.T) {
	ctx := context.Background()
	repo, simien, bale := setupTrails(t)
	trail := &model.Trail{Name: "Chennek", Distance: 12.5, Elevation: 900, Difficulty: model.DifficultyModerate, NationalParkID: simien.ID}
	require.NoError(t, repo.Create(ctx, trail))

	got, err := repo.Get(ctx, trail.ID)
	require.NoError(t, err)
	assert.Equal(t, 12.5, got.Distance)
	assert.Equal(t, 900.0, got.Elevation)
	assert.Equal(t, "Simien", got.NationalPark.Name)

	trail.NationalParkID = bale.ID
	trail.Difficulty = model.DifficultyExpert
	require.NoError(t, repo.Update(ctx, trail))

	got, err = repo.Get(ctx, trail.ID)
	require.NoError(t, err)
	assert.Equal(t, model.DifficultyExpert, got.Difficulty)
	assert.Equal(t, "Bale", got.NationalPark.Name)

	require.NoError(t, repo.Delete(ctx, trail))
	_, err = repo.Get(ctx, trail.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestTrailRepository_CreateUnknownPark(t *testing.T) {
	repo, _, _ := setupTrails(t)

	err := repo.Create(context.Background(), &model.Trail{Name: "Nowhere", Difficulty: model.DifficultyEasy, NationalParkID: 999})
	assert.Error(t, err)
}

func TestTrailRepository_Exists(t *testing.T) {
	ctx := context.Background()
	repo, simien, _ := setupTrails(t)
	trail := &model.Trail{Name: "Imet Gogo", Difficulty: model.DifficultyDifficult, NationalParkID: simien.ID}
	require.NoError(t, repo.Create(ctx, trail))

	ok, err := repo.ExistsByName(ctx, " imet gogo ")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = repo.Exists(ctx, trail.ID)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = repo.Exists(ctx, trail.ID+100)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestTrailRepository_ExistsByName_NonASCII(t *testing.T) {
	ctx := context.Background()
	repo, simien, _ := setupTrails(t)
	require.NoError(t, repo.Create(ctx, &model.Trail{Name: "Тропа Ras Däshen", Difficulty: model.DifficultyExpert, NationalParkID: simien.ID}))

	ok, err := repo.ExistsByName(ctx, "  ТРОПА ras DÄSHEN")
	require.NoError(t, err)
	assert.True(t, ok)
}
