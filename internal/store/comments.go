package store

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"go.uber.org/zap"
	"google.golang.org/api/iterator"
)

// AddComment appends a comment to a review. Comments are append-only;
// there is no edit or delete.
func (s *Store) AddComment(ctx context.Context, reviewId, userId, text string) (*Comment, error) {
	if reviewId == "" {
		return nil, invalidArgf("missing review id")
	}
	if userId == "" {
		return nil, invalidArgf("missing user id")
	}
	if text == "" {
		return nil, invalidArgf("empty comment text")
	}

	// The review must exist; a comment on a missing review is a 404,
	// not an orphaned document.
	if _, err := s.GetReview(ctx, reviewId); err != nil {
		return nil, err
	}

	ref := s.comments().NewDoc()
	comment := &Comment{
		CommentId: ref.ID,
		ReviewId:  reviewId,
		UserId:    userId,
		Text:      text,
		CreatedAt: time.Now().UTC(),
	}
	if _, err := ref.Create(ctx, comment); err != nil {
		return nil, wrapStoreErr("create comment", err)
	}

	logger.Debug("Added comment",
		zap.String("commentId", comment.CommentId),
		zap.String("reviewId", reviewId),
		zap.String("userId", userId))
	return comment, nil
}

// Comments returns a review's comments oldest first.
func (s *Store) Comments(ctx context.Context, reviewId string) ([]*Comment, error) {
	if reviewId == "" {
		return nil, invalidArgf("missing review id")
	}

	iter := s.comments().
		Where("reviewId", "==", reviewId).
		OrderBy("createdAt", firestore.Asc).
		Documents(ctx)
	defer iter.Stop()

	comments := []*Comment{}
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, wrapStoreErr("query comments", err)
		}
		var comment Comment
		if err := doc.DataTo(&comment); err != nil {
			return nil, wrapStoreErr("decode comment", err)
		}
		comments = append(comments, &comment)
	}
	return comments, nil
}
