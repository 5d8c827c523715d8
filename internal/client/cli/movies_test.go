package cli

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/dmitrijs2005/moviekeeper/internal/client/catalog"
	"github.com/dmitrijs2005/moviekeeper/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func joined(lines *[]string) string { return strings.Join(*lines, "\n") }

func TestSearch_ParsesTrailingPage(t *testing.T) {
	lines := capturePrint(t)
	a, cat := newTestApp(t)

	require.NoError(t, a.Search(context.Background(), []string{"the", "matrix", "2"}))
	assert.Equal(t, "the matrix", cat.lastQuery)
	assert.Equal(t, 2, cat.lastPage)
	assert.Contains(t, joined(lines), "tt0133093  The Matrix (1999)")
	assert.Contains(t, joined(lines), "page 2, 11 results total")
	assert.NotContains(t, joined(lines), "next:")

	require.NoError(t, a.Search(context.Background(), []string{"2001"}))
	assert.Equal(t, "2001", cat.lastQuery, "a lone number is the query")
	assert.Equal(t, 1, cat.lastPage)
	assert.Contains(t, joined(lines), "next: search ... 2")
}

func TestSearch_UsageAndError(t *testing.T) {
	lines := capturePrint(t)
	a, cat := newTestApp(t)

	require.NoError(t, a.Search(context.Background(), nil))
	assert.Equal(t, "Usage: search <query> [page]", (*lines)[0])

	cat.err = errors.New("dial tcp: timeout")
	require.Error(t, a.Search(context.Background(), []string{"x"}))
}

func TestPopularAndYear(t *testing.T) {
	lines := capturePrint(t)
	a, cat := newTestApp(t)

	require.NoError(t, a.Popular(context.Background()))
	assert.Contains(t, joined(lines), "The Matrix")

	require.NoError(t, a.Year(context.Background(), []string{"1999"}))
	assert.Equal(t, "1999", cat.lastYear)
	assert.Equal(t, "", cat.lastQuery)

	require.NoError(t, a.Year(context.Background(), []string{"1999", "the", "matrix"}))
	assert.Equal(t, "the matrix", cat.lastQuery)

	cat.lastYear = ""
	require.NoError(t, a.Year(context.Background(), []string{"99"}))
	assert.Equal(t, "", cat.lastYear)
}

func TestShow(t *testing.T) {
	lines := capturePrint(t)
	a, _ := newTestApp(t)

	require.NoError(t, a.Show(context.Background(), []string{"tt0133093"}))
	out := joined(lines)
	assert.Contains(t, out, "The Matrix (1999) [tt0133093]")
	assert.Contains(t, out, "Director:  Lana Wachowski, Lilly Wachowski")
	assert.NotContains(t, out, "Rated:")
	assert.Contains(t, out, "A hacker learns the truth.")

	err := a.Show(context.Background(), []string{"tt-bogus"})
	require.ErrorIs(t, err, catalog.ErrCatalog)
}

func TestFavUnfavFavs(t *testing.T) {
	lines := capturePrint(t)
	ctx := context.Background()
	a, _ := newTestApp(t)

	require.NoError(t, a.Fav(ctx, []string{"tt0133093"}))
	assert.Contains(t, joined(lines), "Please login to manage favorites")

	loginAlice(t, a)
	require.NoError(t, a.Fav(ctx, []string{"tt0133093"}))
	assert.True(t, a.store.IsFavorite("tt0133093"))
	fav := a.store.Favorites()[0]
	assert.Equal(t, "The Matrix", fav.Title)
	assert.Equal(t, "https://img/m.jpg", fav.PosterURL)

	require.ErrorIs(t, a.Fav(ctx, []string{"tt0133093"}), common.ErrDuplicateFavorite)

	*lines = nil
	require.NoError(t, a.Favs(ctx))
	assert.Len(t, *lines, 1)
	assert.Contains(t, (*lines)[0], "tt0133093  The Matrix (1999)")

	require.NoError(t, a.Unfav(ctx, []string{"tt0133093"}))
	assert.False(t, a.store.IsFavorite("tt0133093"))

	*lines = nil
	require.NoError(t, a.Favs(ctx))
	assert.Equal(t, []string{"No favorites yet"}, *lines)
}

func TestUnfav_RequiresSession(t *testing.T) {
	capturePrint(t)
	a, _ := newTestApp(t)

	require.ErrorIs(t, a.Unfav(context.Background(), []string{"tt1"}), common.ErrUnauthenticated)
}
