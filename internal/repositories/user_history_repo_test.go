package repositories_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"samurai-nutrition/internal/models"
	"samurai-nutrition/internal/repositories"
	"samurai-nutrition/pkg/pagination"
)

func TestUserHistoryRepositoryListAndStats(t *testing.T) {
	db := setupDB(t)
	repo := repositories.NewGORMUserHistoryRepository(db)

	for _, action := range []string{"login", "login", "purchase"} {
		require.NoError(t, repo.Create(&models.UserHistory{
			UserID:     "u1",
			ActionType: action,
		}))
	}
	// Another user's entries never leak into u1's trail.
	require.NoError(t, repo.Create(&models.UserHistory{
		UserID:     "u2",
		ActionType: "login",
	}))

	p := pagination.Params{Page: 1, PerPage: 10}
	entries, total, err := repo.List("u1", p, repositories.UserHistoryFilter{})
	require.NoError(t, err)
	assert.EqualValues(t, 3, total)
	assert.Len(t, entries, 3)

	entries, total, err = repo.List("u1", p, repositories.UserHistoryFilter{ActionType: "purchase"})
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
	require.Len(t, entries, 1)
	assert.Equal(t, "purchase", entries[0].ActionType)

	stats, err := repo.Stats("u1", time.Now().AddDate(0, 0, -7))
	require.NoError(t, err)
	assert.EqualValues(t, 3, stats.TotalActions)
	assert.EqualValues(t, 3, stats.RecentActions)
	assert.Len(t, stats.ActionStats, 2)

	require.NoError(t, repo.Clear("u1"))
	_, total, err = repo.List("u1", p, repositories.UserHistoryFilter{})
	require.NoError(t, err)
	assert.EqualValues(t, 0, total)

	// u2's trail survives the clear.
	_, total, err = repo.List("u2", p, repositories.UserHistoryFilter{})
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
}

func TestBundleRepositorySlugLifecycle(t *testing.T) {
	db := setupDB(t)
	repo := repositories.NewGORMBundleRepository(db)

	bundle := &models.Bundle{Slug: "starter-stack", Name: "Starter Stack", DiscountPercent: 15}
	require.NoError(t, repo.Create(bundle))
	assert.NotEmpty(t, bundle.ID)

	got, err := repo.GetBySlug("starter-stack")
	require.NoError(t, err)
	assert.Equal(t, "Starter Stack", got.Name)

	_, err = repo.GetBySlug("no-such-bundle")
	assert.ErrorIs(t, err, models.ErrNotFound)

	got.Name = "Starter Stack Deluxe"
	require.NoError(t, repo.Update(got))
	updated, err := repo.GetBySlug("starter-stack")
	require.NoError(t, err)
	assert.Equal(t, "Starter Stack Deluxe", updated.Name)

	assert.ErrorIs(t, repo.DeleteBySlug("no-such-bundle"), models.ErrNotFound)
	require.NoError(t, repo.DeleteBySlug("starter-stack"))
	bundles, err := repo.List()
	require.NoError(t, err)
	assert.Empty(t, bundles)
}
