package store

import (
	"context"

	"cloud.google.com/go/firestore"
	"go.uber.org/zap"
)

// Reaction is the per-(review, user) toggle state: none, like, dislike.
// A user is in at most one of likedBy/dislikedBy at any time.
type Reaction string

const (
	ReactionNone    Reaction = "none"
	ReactionLike    Reaction = "like"
	ReactionDislike Reaction = "dislike"
)

func ParseReaction(s string) (Reaction, error) {
	switch Reaction(s) {
	case ReactionNone, ReactionLike, ReactionDislike:
		return Reaction(s), nil
	default:
		return "", invalidArgf("unknown reaction %q", s)
	}
}

// SetReaction moves the (review, user) toggle to the requested state.
// The read-modify-write runs in a single transaction so concurrent
// reactions on the same review cannot lose updates.
func (s *Store) SetReaction(ctx context.Context, reviewId, userId string, reaction Reaction) error {
	if reviewId == "" {
		return invalidArgf("missing review id")
	}
	if userId == "" {
		return invalidArgf("missing user id")
	}

	ref := s.reviews().Doc(reviewId)
	err := s.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		doc, err := tx.Get(ref)
		if err != nil {
			return wrapStoreErr("get review", err)
		}
		var review Review
		if err := doc.DataTo(&review); err != nil {
			return wrapStoreErr("decode review", err)
		}

		if !applyReaction(&review, userId, reaction) {
			// Requested state already in effect, nothing to write.
			return nil
		}
		return tx.Set(ref, review)
	})
	if err != nil {
		return err
	}

	logger.Debug("Applied reaction",
		zap.String("reviewId", reviewId),
		zap.String("userId", userId),
		zap.String("reaction", string(reaction)))
	return nil
}

// applyReaction mutates review so that userId's toggle state becomes the
// requested reaction, keeping likedBy/dislikedBy mutually exclusive and
// the counters equal to the set sizes. It reports whether anything
// changed; re-requesting the current state is a no-op.
func applyReaction(review *Review, userId string, reaction Reaction) bool {
	liked := containsId(review.LikedBy, userId)
	disliked := containsId(review.DislikedBy, userId)

	switch reaction {
	case ReactionLike:
		if liked {
			return false
		}
		review.LikedBy = append(review.LikedBy, userId)
		review.DislikedBy = removeId(review.DislikedBy, userId)
	case ReactionDislike:
		if disliked {
			return false
		}
		review.DislikedBy = append(review.DislikedBy, userId)
		review.LikedBy = removeId(review.LikedBy, userId)
	case ReactionNone:
		if !liked && !disliked {
			return false
		}
		review.LikedBy = removeId(review.LikedBy, userId)
		review.DislikedBy = removeId(review.DislikedBy, userId)
	default:
		return false
	}

	syncReactionCounters(review)
	return true
}

// syncReactionCounters recomputes likes/dislikes from the membership
// sets, so the counters can never drift or go negative. A stored
// negative counter means corrupted data; it is logged and repaired
// rather than propagated.
func syncReactionCounters(review *Review) {
	if review.Likes < 0 || review.Dislikes < 0 {
		logger.Warn("Negative reaction counter on review, repairing",
			zap.String("reviewId", review.ReviewId),
			zap.Int("likes", review.Likes),
			zap.Int("dislikes", review.Dislikes))
	}
	review.Likes = len(review.LikedBy)
	review.Dislikes = len(review.DislikedBy)
}

func containsId(ids []string, id string) bool {
	for _, existing := range ids {
		if existing == id {
			return true
		}
	}
	return false
}

func removeId(ids []string, id string) []string {
	result := ids[:0]
	for _, existing := range ids {
		if existing != id {
			result = append(result, existing)
		}
	}
	return result
}
