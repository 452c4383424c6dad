package store

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"go.uber.org/zap"
)

// SaveUser materializes a profile document for a signed-up user. The
// document id is the identity provider's stable uid. Re-saving an
// existing uid (frontend retry, sign-up on another device) merges the
// profile fields only; followers, following, reviews and bookmarks on
// the existing document are kept.
func (s *Store) SaveUser(ctx context.Context, user *User) error {
	if user.UserId == "" {
		return invalidArgf("missing user id")
	}
	logger.Info("Saving user",
		zap.String("userId", user.UserId),
		zap.String("username", user.Username))

	if user.CreatedAt.IsZero() {
		user.CreatedAt = time.Now().UTC()
	}

	ref := s.users().Doc(user.UserId)
	_, err := ref.Create(ctx, user)
	if err == nil {
		return nil
	}
	if !isAlreadyExists(err) {
		logger.Error("Failed to save user",
			zap.String("userId", user.UserId),
			zap.Error(err))
		return wrapStoreErr("save user", err)
	}

	logger.Debug("User already exists, refreshing profile fields",
		zap.String("userId", user.UserId))
	_, err = ref.Set(ctx, map[string]any{
		"username":       user.Username,
		"email":          user.Email,
		"profilePicture": user.ProfilePicture,
		"bio":            user.Bio,
	}, firestore.MergeAll)
	if err != nil {
		logger.Error("Failed to refresh user profile",
			zap.String("userId", user.UserId),
			zap.Error(err))
		return wrapStoreErr("refresh user profile", err)
	}
	return nil
}

func (s *Store) GetUser(ctx context.Context, userId string) (*User, error) {
	var user User
	if err := s.getDoc(ctx, usersCollection, userId, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// UpdateProfile changes the mutable profile fields: bio and picture.
// A nil field is left untouched; a pointer to the empty string clears
// the stored value.
func (s *Store) UpdateProfile(ctx context.Context, userId string, bio, profilePicture *string) error {
	if userId == "" {
		return invalidArgf("missing user id")
	}
	updates := []firestore.Update{}
	if bio != nil {
		updates = append(updates, firestore.Update{Path: "bio", Value: *bio})
	}
	if profilePicture != nil {
		updates = append(updates, firestore.Update{Path: "profilePicture", Value: *profilePicture})
	}
	if len(updates) == 0 {
		return invalidArgf("nothing to update")
	}
	if _, err := s.users().Doc(userId).Update(ctx, updates); err != nil {
		return wrapStoreErr("update profile", err)
	}
	return nil
}

// ToggleBookmark adds songId to the user's bookmarks if absent and
// removes it if present, returning the resulting state.
func (s *Store) ToggleBookmark(ctx context.Context, userId, songId string) (bool, error) {
	if userId == "" {
		return false, invalidArgf("missing user id")
	}
	if songId == "" {
		return false, invalidArgf("missing song id")
	}

	ref := s.users().Doc(userId)
	bookmarked := false
	err := s.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		doc, err := tx.Get(ref)
		if err != nil {
			return wrapStoreErr("get user", err)
		}
		var user User
		if err := doc.DataTo(&user); err != nil {
			return wrapStoreErr("decode user", err)
		}

		update := firestore.Update{Path: "bookmarkedSongs"}
		if containsId(user.BookmarkedSongs, songId) {
			update.Value = firestore.ArrayRemove(songId)
			bookmarked = false
		} else {
			update.Value = firestore.ArrayUnion(songId)
			bookmarked = true
		}
		if err := tx.Update(ref, []firestore.Update{update}); err != nil {
			return wrapStoreErr("update bookmarks", err)
		}
		return nil
	})
	if err != nil {
		return false, err
	}

	logger.Debug("Toggled bookmark",
		zap.String("userId", userId),
		zap.String("songId", songId),
		zap.Bool("bookmarked", bookmarked))
	return bookmarked, nil
}
