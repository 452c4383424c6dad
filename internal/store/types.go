package store

import "time"

// TargetType identifies which catalog collection a review points at.
type TargetType string

const (
	TargetSong  TargetType = "song"
	TargetAlbum TargetType = "album"
)

type User struct {
	UserId          string    `firestore:"userId"`
	Username        string    `firestore:"username"`
	Email           string    `firestore:"email"`
	ProfilePicture  string    `firestore:"profilePicture"`
	Bio             string    `firestore:"bio"`
	BookmarkedSongs []string  `firestore:"bookmarkedSongs,omitempty"`
	Followers       []string  `firestore:"followers,omitempty"`
	Following       []string  `firestore:"following,omitempty"`
	Reviews         []string  `firestore:"reviews,omitempty"`
	CreatedAt       time.Time `firestore:"createdAt"`
}

type Song struct {
	SongId      string   `firestore:"songId"`
	Name        string   `firestore:"name"`
	ArtistNames []string `firestore:"artistNames"`
	AlbumId     string   `firestore:"albumId"`
	ImageURLs   []string `firestore:"imageUrls,omitempty"`
	// ReviewScore is the running sum of ratings; divide by NumReviews
	// for the average.
	ReviewScore float64 `firestore:"reviewScore"`
	NumReviews  int     `firestore:"numReviews"`
}

type Album struct {
	AlbumId     string   `firestore:"albumId"`
	Name        string   `firestore:"name"`
	ArtistNames []string `firestore:"artistNames"`
	ReleaseDate string   `firestore:"releaseDate"`
	TotalTracks int      `firestore:"totalTracks"`
	ImageURLs   []string `firestore:"imageUrls,omitempty"`
	ReviewScore float64  `firestore:"reviewScore"`
	NumReviews  int      `firestore:"numReviews"`
}

type Artist struct {
	ArtistId  string   `firestore:"artistId"`
	Name      string   `firestore:"name"`
	Genres    []string `firestore:"genres,omitempty"`
	Followers int      `firestore:"followers"`
	ImageURLs []string `firestore:"imageUrls,omitempty"`
}

type Review struct {
	ReviewId   string     `firestore:"reviewId"`
	UserId     string     `firestore:"userId"`
	TargetType TargetType `firestore:"targetType"`
	TargetId   string     `firestore:"targetId"`
	Rating     float64    `firestore:"rating"`
	Text       string     `firestore:"text"`
	Likes      int        `firestore:"likes"`
	Dislikes   int        `firestore:"dislikes"`
	LikedBy    []string   `firestore:"likedBy,omitempty"`
	DislikedBy []string   `firestore:"dislikedBy,omitempty"`
	CreatedAt  time.Time  `firestore:"createdAt"`
}

type Comment struct {
	CommentId string    `firestore:"commentId"`
	ReviewId  string    `firestore:"reviewId"`
	UserId    string    `firestore:"userId"`
	Text      string    `firestore:"text"`
	CreatedAt time.Time `firestore:"createdAt"`
}

// AverageScore derives the display rating from the running sum.
func (s *Song) AverageScore() float64 {
	return averageScore(s.ReviewScore, s.NumReviews)
}

// AverageScore derives the display rating from the running sum.
func (a *Album) AverageScore() float64 {
	return averageScore(a.ReviewScore, a.NumReviews)
}

func averageScore(sum float64, count int) float64 {
	if count <= 0 {
		return 0
	}
	return sum / float64(count)
}
