package models

// Movie is one row of an OMDb search result.
type Movie struct {
	Title  string `json:"Title"`
	Year   string `json:"Year"`
	ImdbID string `json:"imdbID"`
	Type   string `json:"Type"`
	Poster string `json:"Poster"`
}

// Ref returns the snapshot stored when the movie is favorited.
func (m Movie) Ref() MovieRef {
	return MovieRef{MovieID: m.ImdbID, Title: m.Title, Year: m.Year, PosterURL: m.Poster}
}

// MovieDetail is the full OMDb record returned by a lookup by id.
type MovieDetail struct {
	Movie
	Rated      string `json:"Rated"`
	Released   string `json:"Released"`
	Runtime    string `json:"Runtime"`
	Genre      string `json:"Genre"`
	Director   string `json:"Director"`
	Writer     string `json:"Writer"`
	Actors     string `json:"Actors"`
	Plot       string `json:"Plot"`
	Language   string `json:"Language"`
	Country    string `json:"Country"`
	Awards     string `json:"Awards"`
	ImdbRating string `json:"imdbRating"`
	ImdbVotes  string `json:"imdbVotes"`
	BoxOffice  string `json:"BoxOffice"`
}
