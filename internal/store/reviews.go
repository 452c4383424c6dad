package store

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"go.uber.org/zap"
	"google.golang.org/api/iterator"
)

const (
	minRating = 1
	maxRating = 5
)

func validateRating(rating float64) error {
	if rating < minRating || rating > maxRating {
		return invalidArgf("rating %g out of range [%d,%d]", rating, minRating, maxRating)
	}
	return nil
}

// CreateReview appends a review document, adds its id to the author's
// reviews list, and folds the rating into the target's running score and
// review count. All three writes commit in one transaction; the target
// entity must already be materialized in the store. Nothing stops a user
// from reviewing the same target more than once.
func (s *Store) CreateReview(ctx context.Context, userId string, targetType TargetType, targetId string, rating float64, text string) (*Review, error) {
	if userId == "" {
		return nil, invalidArgf("missing user id")
	}
	if targetId == "" {
		return nil, invalidArgf("missing target id")
	}
	if err := validateRating(rating); err != nil {
		return nil, err
	}
	collection, err := targetCollection(targetType)
	if err != nil {
		return nil, err
	}

	userRef := s.users().Doc(userId)
	targetRef := s.client.Collection(collection).Doc(targetId)
	reviewRef := s.reviews().NewDoc()

	review := &Review{
		ReviewId:   reviewRef.ID,
		UserId:     userId,
		TargetType: targetType,
		TargetId:   targetId,
		Rating:     rating,
		Text:       text,
		CreatedAt:  time.Now().UTC(),
	}

	err = s.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		if _, err := tx.Get(userRef); err != nil {
			return wrapStoreErr("get user", err)
		}
		if _, err := tx.Get(targetRef); err != nil {
			return wrapStoreErr("get "+collection, err)
		}

		if err := tx.Create(reviewRef, review); err != nil {
			return wrapStoreErr("create review", err)
		}
		if err := tx.Update(userRef, []firestore.Update{
			{Path: "reviews", Value: firestore.ArrayUnion(reviewRef.ID)},
		}); err != nil {
			return wrapStoreErr("update user reviews", err)
		}
		if err := tx.Update(targetRef, []firestore.Update{
			{Path: "reviewScore", Value: firestore.Increment(rating)},
			{Path: "numReviews", Value: firestore.Increment(1)},
		}); err != nil {
			return wrapStoreErr("update target aggregates", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.Info("Created review",
		zap.String("reviewId", review.ReviewId),
		zap.String("userId", userId),
		zap.String("targetType", string(targetType)),
		zap.String("targetId", targetId))
	return review, nil
}

func (s *Store) GetReview(ctx context.Context, reviewId string) (*Review, error) {
	var review Review
	if err := s.getDoc(ctx, reviewsCollection, reviewId, &review); err != nil {
		return nil, err
	}
	return &review, nil
}

// ReviewsByUser returns all reviews authored by userId, newest first.
func (s *Store) ReviewsByUser(ctx context.Context, userId string) ([]*Review, error) {
	if userId == "" {
		return nil, invalidArgf("missing user id")
	}
	query := s.reviews().
		Where("userId", "==", userId).
		OrderBy("createdAt", firestore.Desc)
	return s.collectReviews(ctx, query)
}

// ReviewsForTarget returns all reviews of one catalog entity, newest first.
func (s *Store) ReviewsForTarget(ctx context.Context, targetType TargetType, targetId string) ([]*Review, error) {
	if targetId == "" {
		return nil, invalidArgf("missing target id")
	}
	if _, err := targetCollection(targetType); err != nil {
		return nil, err
	}
	query := s.reviews().
		Where("targetType", "==", string(targetType)).
		Where("targetId", "==", targetId).
		OrderBy("createdAt", firestore.Desc)
	return s.collectReviews(ctx, query)
}

func (s *Store) collectReviews(ctx context.Context, query firestore.Query) ([]*Review, error) {
	iter := query.Documents(ctx)
	defer iter.Stop()

	reviews := []*Review{}
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, wrapStoreErr("query reviews", err)
		}
		var review Review
		if err := doc.DataTo(&review); err != nil {
			return nil, wrapStoreErr("decode review", err)
		}
		reviews = append(reviews, &review)
	}
	return reviews, nil
}
