package spotify

type Image struct {
	URL    string `json:"url"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

type Artist struct {
	Id         string   `json:"id"`
	Name       string   `json:"name"`
	Genres     []string `json:"genres"`
	Popularity int      `json:"popularity"`
	Followers  struct {
		Total int `json:"total"`
	} `json:"followers"`
	ImageURLs []Image `json:"images"`
}

type Album struct {
	Id          string    `json:"id"`
	Name        string    `json:"name"`
	AlbumType   string    `json:"album_type"`
	Artists     []*Artist `json:"artists"`
	ImageURLs   []Image   `json:"images"`
	ReleaseDate string    `json:"release_date"`
	TotalTracks int       `json:"total_tracks"`
}

type Track struct {
	Id         string    `json:"id"`
	Name       string    `json:"name"`
	Album      *Album    `json:"album"`
	Artists    []*Artist `json:"artists"`
	Popularity int       `json:"popularity"`
	DurationMS int       `json:"duration_ms"`
}

type TracksPage struct {
	Items []Track `json:"items"`
	Next  string  `json:"next"`
}

type AlbumsPage struct {
	Items []Album `json:"items"`
	Next  string  `json:"next"`
}

type ArtistsPage struct {
	Items []Artist `json:"items"`
	Next  string  `json:"next"`
}

type SearchResponse struct {
	Tracks  *TracksPage  `json:"tracks"`
	Albums  *AlbumsPage  `json:"albums"`
	Artists *ArtistsPage `json:"artists"`
}
