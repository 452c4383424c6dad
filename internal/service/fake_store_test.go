package service

import (
	"context"
	"fmt"
	"sort"
	"time"

	"jukeboxd.com/m/v2/internal/store"
)

// fakeStore is an in-memory Store for handler tests. It mirrors the
// document-store semantics the handlers rely on: set-like membership
// arrays, counters derived from set sizes, and all-or-nothing
// multi-entity updates.
type fakeStore struct {
	users    map[string]*store.User
	songs    map[string]*store.Song
	albums   map[string]*store.Album
	artists  map[string]*store.Artist
	reviews  map[string]*store.Review
	comments []*store.Comment
	nextId   int
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		users:   map[string]*store.User{},
		songs:   map[string]*store.Song{},
		albums:  map[string]*store.Album{},
		artists: map[string]*store.Artist{},
		reviews: map[string]*store.Review{},
	}
}

func (f *fakeStore) newId(prefix string) string {
	f.nextId++
	return fmt.Sprintf("%s-%d", prefix, f.nextId)
}

func invalidArg(reason string) error {
	return &store.InvalidArgumentError{Reason: reason}
}

func contains(ids []string, id string) bool {
	for _, existing := range ids {
		if existing == id {
			return true
		}
	}
	return false
}

func remove(ids []string, id string) []string {
	result := []string{}
	for _, existing := range ids {
		if existing != id {
			result = append(result, existing)
		}
	}
	return result
}

func (f *fakeStore) SaveUser(_ context.Context, user *store.User) error {
	if user.UserId == "" {
		return invalidArg("missing user id")
	}
	// Re-saving an existing uid refreshes profile fields only, the
	// social graph on the stored document survives.
	if existing, ok := f.users[user.UserId]; ok {
		existing.Username = user.Username
		existing.Email = user.Email
		existing.ProfilePicture = user.ProfilePicture
		existing.Bio = user.Bio
		return nil
	}
	f.users[user.UserId] = user
	return nil
}

func (f *fakeStore) GetUser(_ context.Context, userId string) (*store.User, error) {
	user, ok := f.users[userId]
	if !ok {
		return nil, store.ErrNotFound
	}
	return user, nil
}

func (f *fakeStore) UpdateProfile(_ context.Context, userId string, bio, profilePicture *string) error {
	if bio == nil && profilePicture == nil {
		return invalidArg("nothing to update")
	}
	user, ok := f.users[userId]
	if !ok {
		return store.ErrNotFound
	}
	if bio != nil {
		user.Bio = *bio
	}
	if profilePicture != nil {
		user.ProfilePicture = *profilePicture
	}
	return nil
}

func (f *fakeStore) ToggleBookmark(_ context.Context, userId, songId string) (bool, error) {
	user, ok := f.users[userId]
	if !ok {
		return false, store.ErrNotFound
	}
	if contains(user.BookmarkedSongs, songId) {
		user.BookmarkedSongs = remove(user.BookmarkedSongs, songId)
		return false, nil
	}
	user.BookmarkedSongs = append(user.BookmarkedSongs, songId)
	return true, nil
}

func (f *fakeStore) Follow(_ context.Context, userId, targetId string) error {
	return f.updateFollow(userId, targetId, true)
}

func (f *fakeStore) Unfollow(_ context.Context, userId, targetId string) error {
	return f.updateFollow(userId, targetId, false)
}

func (f *fakeStore) updateFollow(userId, targetId string, follow bool) error {
	if userId == targetId {
		return invalidArg("self-follow")
	}
	user, ok := f.users[userId]
	if !ok {
		return store.ErrNotFound
	}
	target, ok := f.users[targetId]
	if !ok {
		return store.ErrNotFound
	}
	if follow {
		if !contains(user.Following, targetId) {
			user.Following = append(user.Following, targetId)
		}
		if !contains(target.Followers, userId) {
			target.Followers = append(target.Followers, userId)
		}
	} else {
		user.Following = remove(user.Following, targetId)
		target.Followers = remove(target.Followers, userId)
	}
	return nil
}

func (f *fakeStore) CreateReview(_ context.Context, userId string, targetType store.TargetType, targetId string, rating float64, text string) (*store.Review, error) {
	if rating < 1 || rating > 5 {
		return nil, invalidArg("rating out of range")
	}
	user, ok := f.users[userId]
	if !ok {
		return nil, store.ErrNotFound
	}

	switch targetType {
	case store.TargetSong:
		song, ok := f.songs[targetId]
		if !ok {
			return nil, store.ErrNotFound
		}
		song.ReviewScore += rating
		song.NumReviews++
	case store.TargetAlbum:
		album, ok := f.albums[targetId]
		if !ok {
			return nil, store.ErrNotFound
		}
		album.ReviewScore += rating
		album.NumReviews++
	default:
		return nil, invalidArg("unknown target type")
	}

	review := &store.Review{
		ReviewId:   f.newId("review"),
		UserId:     userId,
		TargetType: targetType,
		TargetId:   targetId,
		Rating:     rating,
		Text:       text,
		CreatedAt:  time.Now().UTC(),
	}
	f.reviews[review.ReviewId] = review
	user.Reviews = append(user.Reviews, review.ReviewId)
	return review, nil
}

func (f *fakeStore) GetReview(_ context.Context, reviewId string) (*store.Review, error) {
	review, ok := f.reviews[reviewId]
	if !ok {
		return nil, store.ErrNotFound
	}
	return review, nil
}

func (f *fakeStore) ReviewsByUser(_ context.Context, userId string) ([]*store.Review, error) {
	reviews := []*store.Review{}
	for _, review := range f.reviews {
		if review.UserId == userId {
			reviews = append(reviews, review)
		}
	}
	return reviews, nil
}

func (f *fakeStore) ReviewsForTarget(_ context.Context, targetType store.TargetType, targetId string) ([]*store.Review, error) {
	reviews := []*store.Review{}
	for _, review := range f.reviews {
		if review.TargetType == targetType && review.TargetId == targetId {
			reviews = append(reviews, review)
		}
	}
	return reviews, nil
}

func (f *fakeStore) SetReaction(_ context.Context, reviewId, userId string, reaction store.Reaction) error {
	review, ok := f.reviews[reviewId]
	if !ok {
		return store.ErrNotFound
	}
	review.LikedBy = remove(review.LikedBy, userId)
	review.DislikedBy = remove(review.DislikedBy, userId)
	switch reaction {
	case store.ReactionLike:
		review.LikedBy = append(review.LikedBy, userId)
	case store.ReactionDislike:
		review.DislikedBy = append(review.DislikedBy, userId)
	}
	review.Likes = len(review.LikedBy)
	review.Dislikes = len(review.DislikedBy)
	return nil
}

func (f *fakeStore) FriendReviews(ctx context.Context, userId string) ([]*store.Review, error) {
	user, ok := f.users[userId]
	if !ok {
		return nil, store.ErrNotFound
	}
	feed := []*store.Review{}
	for _, followedId := range user.Following {
		reviews, _ := f.ReviewsByUser(ctx, followedId)
		feed = append(feed, reviews...)
	}
	return feed, nil
}

func (f *fakeStore) AddComment(_ context.Context, reviewId, userId, text string) (*store.Comment, error) {
	if _, ok := f.reviews[reviewId]; !ok {
		return nil, store.ErrNotFound
	}
	if text == "" {
		return nil, invalidArg("empty comment text")
	}
	comment := &store.Comment{
		CommentId: f.newId("comment"),
		ReviewId:  reviewId,
		UserId:    userId,
		Text:      text,
		CreatedAt: time.Now().UTC(),
	}
	f.comments = append(f.comments, comment)
	return comment, nil
}

func (f *fakeStore) Comments(_ context.Context, reviewId string) ([]*store.Comment, error) {
	comments := []*store.Comment{}
	for _, comment := range f.comments {
		if comment.ReviewId == reviewId {
			comments = append(comments, comment)
		}
	}
	sort.SliceStable(comments, func(i, j int) bool {
		return comments[i].CreatedAt.Before(comments[j].CreatedAt)
	})
	return comments, nil
}

func (f *fakeStore) SaveSong(_ context.Context, song *store.Song) error {
	if _, ok := f.songs[song.SongId]; !ok {
		f.songs[song.SongId] = song
	}
	return nil
}

func (f *fakeStore) GetSong(_ context.Context, songId string) (*store.Song, error) {
	song, ok := f.songs[songId]
	if !ok {
		return nil, store.ErrNotFound
	}
	return song, nil
}

func (f *fakeStore) SaveAlbum(_ context.Context, album *store.Album) error {
	if _, ok := f.albums[album.AlbumId]; !ok {
		f.albums[album.AlbumId] = album
	}
	return nil
}

func (f *fakeStore) GetAlbum(_ context.Context, albumId string) (*store.Album, error) {
	album, ok := f.albums[albumId]
	if !ok {
		return nil, store.ErrNotFound
	}
	return album, nil
}

func (f *fakeStore) SaveArtist(_ context.Context, artist *store.Artist) error {
	if _, ok := f.artists[artist.ArtistId]; !ok {
		f.artists[artist.ArtistId] = artist
	}
	return nil
}

func (f *fakeStore) GetArtist(_ context.Context, artistId string) (*store.Artist, error) {
	artist, ok := f.artists[artistId]
	if !ok {
		return nil, store.ErrNotFound
	}
	return artist, nil
}
