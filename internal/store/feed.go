package store

import (
	"context"
	"sort"

	"go.uber.org/zap"
)

// FriendReviews assembles the social feed for userId: every review
// authored by a followed user, merged newest first. An empty following
// set yields an empty slice, not an error.
func (s *Store) FriendReviews(ctx context.Context, userId string) ([]*Review, error) {
	user, err := s.GetUser(ctx, userId)
	if err != nil {
		return nil, err
	}

	feed := []*Review{}
	for _, followedId := range user.Following {
		reviews, err := s.ReviewsByUser(ctx, followedId)
		if err != nil {
			// A missing followed user should not take down the whole
			// feed; anything else is surfaced.
			if IsInvalidArgument(err) {
				logger.Warn("Skipping invalid followed user id",
					zap.String("userId", userId),
					zap.String("followedId", followedId))
				continue
			}
			return nil, err
		}
		feed = append(feed, reviews...)
	}

	sortReviewsNewestFirst(feed)
	return feed, nil
}

// sortReviewsNewestFirst orders a merged feed by creation time
// descending. Per-author queries are already ordered, so this is a
// cheap pass over mostly-sorted data.
func sortReviewsNewestFirst(reviews []*Review) {
	sort.SliceStable(reviews, func(i, j int) bool {
		return reviews[i].CreatedAt.After(reviews[j].CreatedAt)
	})
}
