package store

import (
	"context"

	"cloud.google.com/go/firestore"
	"go.uber.org/zap"
)

// validateFollow checks the follow/unfollow preconditions shared by both
// directions: non-empty ids and no self-follow.
func validateFollow(userId, targetId string) error {
	if userId == "" || targetId == "" {
		return invalidArgf("missing user id")
	}
	if userId == targetId {
		return invalidArgf("user %s cannot follow themselves", userId)
	}
	return nil
}

// Follow records userId following targetId. Both user documents are
// updated in one transaction: targetId joins userId's following set and
// userId joins targetId's followers set. ArrayUnion makes a repeated
// follow a no-op.
func (s *Store) Follow(ctx context.Context, userId, targetId string) error {
	return s.updateFollowSets(ctx, userId, targetId, true)
}

// Unfollow removes the symmetric pair written by Follow. Unfollowing a
// user who was never followed is a no-op.
func (s *Store) Unfollow(ctx context.Context, userId, targetId string) error {
	return s.updateFollowSets(ctx, userId, targetId, false)
}

func (s *Store) updateFollowSets(ctx context.Context, userId, targetId string, follow bool) error {
	if err := validateFollow(userId, targetId); err != nil {
		return err
	}

	userRef := s.users().Doc(userId)
	targetRef := s.users().Doc(targetId)

	err := s.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		if _, err := tx.Get(userRef); err != nil {
			return wrapStoreErr("get user", err)
		}
		if _, err := tx.Get(targetRef); err != nil {
			return wrapStoreErr("get target user", err)
		}

		following := firestore.Update{Path: "following", Value: firestore.ArrayUnion(targetId)}
		followers := firestore.Update{Path: "followers", Value: firestore.ArrayUnion(userId)}
		if !follow {
			following.Value = firestore.ArrayRemove(targetId)
			followers.Value = firestore.ArrayRemove(userId)
		}
		if err := tx.Update(userRef, []firestore.Update{following}); err != nil {
			return wrapStoreErr("update following", err)
		}
		if err := tx.Update(targetRef, []firestore.Update{followers}); err != nil {
			return wrapStoreErr("update followers", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	logger.Debug("Updated follow relation",
		zap.String("userId", userId),
		zap.String("targetId", targetId),
		zap.Bool("follow", follow))
	return nil
}
