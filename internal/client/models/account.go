// Package models defines the records the MovieKeeper store persists and the
// movie records the catalog client returns.
package models

import "time"

// Favorite is a movie snapshot captured when the user favorited it. The
// display fields are never refreshed from the catalog.
type Favorite struct {
	MovieID   string    `json:"movieId"`
	Title     string    `json:"title"`
	Year      string    `json:"year"`
	PosterURL string    `json:"posterUrl"`
	AddedAt   time.Time `json:"addedAt"`
}

// MovieRef is the part of a catalog movie that AddToFavorites needs.
type MovieRef struct {
	MovieID   string
	Title     string
	Year      string
	PosterURL string
}

// Favorite stamps the reference with addedAt.
func (m MovieRef) Favorite(addedAt time.Time) Favorite {
	return Favorite{
		MovieID:   m.MovieID,
		Title:     m.Title,
		Year:      m.Year,
		PosterURL: m.PosterURL,
		AddedAt:   addedAt,
	}
}

// Account is a registered user as stored in the account collection.
// Secret holds whatever the configured credential verifier sealed.
type Account struct {
	ID        string     `json:"id"`
	Username  string     `json:"username"`
	Email     string     `json:"email"`
	Secret    string     `json:"secret"`
	Favorites []Favorite `json:"favorites"`
	CreatedAt time.Time  `json:"createdAt"`
}

// PublicAccount is an Account without its secret. It is the session record
// and the only account shape handed to callers.
type PublicAccount struct {
	ID        string     `json:"id"`
	Username  string     `json:"username"`
	Email     string     `json:"email"`
	Favorites []Favorite `json:"favorites"`
	CreatedAt time.Time  `json:"createdAt"`
}

// Public drops the secret. Favorites are copied so the result does not
// alias the account.
func (a Account) Public() PublicAccount {
	return PublicAccount{
		ID:        a.ID,
		Username:  a.Username,
		Email:     a.Email,
		Favorites: CloneFavorites(a.Favorites),
		CreatedAt: a.CreatedAt,
	}
}

// FavoriteIndex returns the position of movieID in the favorites, or -1.
func (a Account) FavoriteIndex(movieID string) int {
	for i, f := range a.Favorites {
		if f.MovieID == movieID {
			return i
		}
	}
	return -1
}

// HasFavorite reports whether movieID is among the session favorites.
func (p PublicAccount) HasFavorite(movieID string) bool {
	for _, f := range p.Favorites {
		if f.MovieID == movieID {
			return true
		}
	}
	return false
}

// CloneFavorites copies favs; the result is never nil so it encodes as [].
func CloneFavorites(favs []Favorite) []Favorite {
	out := make([]Favorite, len(favs))
	copy(out, favs)
	return out
}
