package service

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"jukeboxd.com/m/v2/internal/store"
)

// Store is the slice of the document-store layer the handlers use.
// Kept as an interface so handler tests can run against an in-memory
// fake instead of Firestore.
type Store interface {
	SaveUser(ctx context.Context, user *store.User) error
	GetUser(ctx context.Context, userId string) (*store.User, error)
	UpdateProfile(ctx context.Context, userId string, bio, profilePicture *string) error
	ToggleBookmark(ctx context.Context, userId, songId string) (bool, error)

	Follow(ctx context.Context, userId, targetId string) error
	Unfollow(ctx context.Context, userId, targetId string) error

	CreateReview(ctx context.Context, userId string, targetType store.TargetType, targetId string, rating float64, text string) (*store.Review, error)
	GetReview(ctx context.Context, reviewId string) (*store.Review, error)
	ReviewsByUser(ctx context.Context, userId string) ([]*store.Review, error)
	ReviewsForTarget(ctx context.Context, targetType store.TargetType, targetId string) ([]*store.Review, error)
	SetReaction(ctx context.Context, reviewId, userId string, reaction store.Reaction) error
	FriendReviews(ctx context.Context, userId string) ([]*store.Review, error)

	AddComment(ctx context.Context, reviewId, userId, text string) (*store.Comment, error)
	Comments(ctx context.Context, reviewId string) ([]*store.Comment, error)

	SaveSong(ctx context.Context, song *store.Song) error
	GetSong(ctx context.Context, songId string) (*store.Song, error)
	SaveAlbum(ctx context.Context, album *store.Album) error
	GetAlbum(ctx context.Context, albumId string) (*store.Album, error)
	SaveArtist(ctx context.Context, artist *store.Artist) error
	GetArtist(ctx context.Context, artistId string) (*store.Artist, error)
}

type Handler struct {
	store Store
}

func NewHandler(s Store) *Handler {
	return &Handler{store: s}
}

type Message struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

func (h *Handler) Home(c *gin.Context) {
	c.String(http.StatusOK, "Jukeboxd Backend")
}

func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "healthy",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}
