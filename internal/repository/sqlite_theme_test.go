package repository

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mhennig/kalender/internal/domain"
	"github.com/mhennig/kalender/internal/testutil"
)

func newTheme(name string) *domain.Theme {
	return &domain.Theme{
		ID:       uuid.New().String(),
		Name:     name,
		Prompt:   "Erstelle eine Idee zu {theme} für {platform} als {post_type}.",
		Examples: []string{"Führung Volkach", "Wanderroute Prichsenstadt"},
	}
}

func TestThemeRepo_CreateAndGet(t *testing.T) {
	repo := NewSQLiteThemeRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	theme := newTheme("Volkach")
	require.NoError(t, repo.Create(ctx, theme))

	got, err := repo.GetByName(ctx, "Volkach")
	require.NoError(t, err)
	assert.Equal(t, theme.ID, got.ID)
	assert.Equal(t, theme.Prompt, got.Prompt)
	assert.Equal(t, []string{"Führung Volkach", "Wanderroute Prichsenstadt"}, got.Examples)
	assert.False(t, got.CreatedAt.IsZero())
}

func TestThemeRepo_GetMissing(t *testing.T) {
	repo := NewSQLiteThemeRepo(testutil.NewTestDB(t))
	_, err := repo.GetByName(context.Background(), "nope")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestThemeRepo_CreateRejectsDuplicateName(t *testing.T) {
	repo := NewSQLiteThemeRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, newTheme("Volkach")))
	err := repo.Create(ctx, newTheme("Volkach"))
	assert.ErrorIs(t, err, ErrDuplicate)
}

func TestThemeRepo_CreateValidates(t *testing.T) {
	repo := NewSQLiteThemeRepo(testutil.NewTestDB(t))
	err := repo.Create(context.Background(), &domain.Theme{ID: uuid.New().String(), Name: " "})
	assert.Error(t, err)
}

func TestThemeRepo_ListSortedByName(t *testing.T) {
	repo := NewSQLiteThemeRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, newTheme("Zinsen")))
	require.NoError(t, repo.Create(ctx, newTheme("Ausflüge")))

	themes, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, themes, 2)
	assert.Equal(t, "Ausflüge", themes[0].Name)
	assert.Equal(t, "Zinsen", themes[1].Name)
}

func TestThemeRepo_Update(t *testing.T) {
	repo := NewSQLiteThemeRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	theme := newTheme("Volkach")
	require.NoError(t, repo.Create(ctx, theme))

	theme.Prompt = "Neuer Prompt für {platform}."
	theme.Examples = []string{"Weinfest", " ", "Stadtlauf"}
	require.NoError(t, repo.Update(ctx, theme))

	got, err := repo.GetByName(ctx, "Volkach")
	require.NoError(t, err)
	assert.Equal(t, "Neuer Prompt für {platform}.", got.Prompt)
	assert.Equal(t, []string{"Weinfest", "Stadtlauf"}, got.Examples, "blank examples dropped on save")
}

func TestThemeRepo_Delete(t *testing.T) {
	repo := NewSQLiteThemeRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, newTheme("Volkach")))
	require.NoError(t, repo.Delete(ctx, "Volkach"))
	assert.ErrorIs(t, repo.Delete(ctx, "Volkach"), ErrNotFound)
}
