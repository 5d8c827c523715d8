package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/moviekeeper/internal/client/catalog"
)

func (a *App) printResults(res catalog.SearchResult, page int) {
	if len(res.Movies) == 0 {
		printlnFn("No movies found")
		return
	}
	for _, m := range res.Movies {
		mark := " "
		if a.store.IsFavorite(m.ImdbID) {
			mark = "*"
		}
		printlnFn(fmt.Sprintf("%s %-10s %s (%s)", mark, m.ImdbID, m.Title, m.Year))
	}
	if page > 0 {
		line := fmt.Sprintf("page %d, %d results total", page, res.Total)
		if res.HasMore(page) {
			line += fmt.Sprintf("; next: search ... %d", page+1)
		}
		printlnFn(line)
	}
}

// Search runs "search <query...> [page]". A trailing integer is the page.
func (a *App) Search(ctx context.Context, args []string) error {
	if len(args) == 0 {
		printlnFn("Usage: search <query> [page]")
		return nil
	}

	page := 1
	if len(args) > 1 {
		if n, err := strconv.Atoi(args[len(args)-1]); err == nil {
			page = n
			args = args[:len(args)-1]
		}
	}
	if page < 1 {
		page = 1
	}

	res, err := a.catalog.SearchMovies(ctx, strings.Join(args, " "), page)
	if err != nil {
		return a.report(ctx, "search", err)
	}
	a.printResults(res, page)
	return nil
}

// Popular prints a sample of popular movies.
func (a *App) Popular(ctx context.Context) error {
	res, err := a.catalog.GetPopularMovies(ctx)
	if err != nil {
		return a.report(ctx, "popular", err)
	}
	a.printResults(res, 0)
	return nil
}

// Year runs "year <yyyy> [query...]".
func (a *App) Year(ctx context.Context, args []string) error {
	if len(args) == 0 {
		printlnFn("Usage: year <yyyy> [query]")
		return nil
	}
	if _, err := strconv.Atoi(args[0]); err != nil || len(args[0]) != 4 {
		printlnFn("Year must have four digits")
		return nil
	}

	res, err := a.catalog.SearchMoviesByYear(ctx, args[0], strings.Join(args[1:], " "))
	if err != nil {
		return a.report(ctx, "year", err)
	}
	a.printResults(res, 0)
	return nil
}

// Show prints the details of one movie.
func (a *App) Show(ctx context.Context, args []string) error {
	if len(args) != 1 {
		printlnFn("Usage: show <id>")
		return nil
	}

	d, err := a.catalog.GetMovieByID(ctx, args[0])
	if err != nil {
		return a.report(ctx, "show", err)
	}

	printlnFn(fmt.Sprintf("%s (%s) [%s]", d.Title, d.Year, d.ImdbID))
	rating := d.ImdbRating
	if rating != "" && d.ImdbVotes != "" {
		rating += " (" + d.ImdbVotes + " votes)"
	}
	for _, row := range [][2]string{
		{"Rated", d.Rated}, {"Released", d.Released}, {"Runtime", d.Runtime},
		{"Genre", d.Genre}, {"Director", d.Director}, {"Writer", d.Writer},
		{"Actors", d.Actors}, {"Language", d.Language}, {"Country", d.Country},
		{"Awards", d.Awards}, {"IMDb", rating},
		{"Box office", d.BoxOffice}, {"Poster", d.Poster},
	} {
		if row[1] != "" && row[1] != "N/A" {
			printlnFn(fmt.Sprintf("  %-10s %s", row[0]+":", row[1]))
		}
	}
	if d.Plot != "" {
		printlnFn()
		printlnFn(d.Plot)
	}
	if a.store.IsFavorite(d.ImdbID) {
		printlnFn("* in your favorites")
	}
	return nil
}

// Fav looks the movie up and adds it to the favorites.
func (a *App) Fav(ctx context.Context, args []string) error {
	if len(args) != 1 {
		printlnFn("Usage: fav <id>")
		return nil
	}
	if !a.store.IsAuthenticated() {
		printlnFn("Please login to manage favorites")
		return nil
	}

	d, err := a.catalog.GetMovieByID(ctx, args[0])
	if err != nil {
		return a.report(ctx, "fav", err)
	}
	if err := a.store.AddToFavorites(ctx, d.Ref()); err != nil {
		return a.report(ctx, "fav", err)
	}

	a.log.Debug(ctx, "favorite added", "movie", d.ImdbID)
	printlnFn("Added to favorites:", d.Title)
	return nil
}

// Unfav removes a movie from the favorites.
func (a *App) Unfav(ctx context.Context, args []string) error {
	if len(args) != 1 {
		printlnFn("Usage: unfav <id>")
		return nil
	}

	if err := a.store.RemoveFromFavorites(ctx, args[0]); err != nil {
		return a.report(ctx, "unfav", err)
	}

	a.log.Debug(ctx, "favorite removed", "movie", args[0])
	printlnFn("Removed from favorites:", args[0])
	return nil
}

// Favs lists the favorites in the order they were added.
func (a *App) Favs(ctx context.Context) error {
	if !a.store.IsAuthenticated() {
		printlnFn("Please login to see your favorites")
		return nil
	}

	favs := a.store.Favorites()
	if len(favs) == 0 {
		printlnFn("No favorites yet")
		return nil
	}
	for _, f := range favs {
		printlnFn(fmt.Sprintf("%-10s %s (%s) added %s", f.MovieID, f.Title, f.Year, f.AddedAt.Format("2006-01-02")))
	}
	return nil
}
