package store

import (
	"os"
	"testing"

	"go.uber.org/zap"
)

func TestMain(m *testing.M) {
	InitializeLogger(zap.NewNop())
	os.Exit(m.Run())
}

func checkCountersMatchSets(t *testing.T, review *Review) {
	t.Helper()
	if review.Likes != len(review.LikedBy) {
		t.Errorf("likes=%d but |likedBy|=%d", review.Likes, len(review.LikedBy))
	}
	if review.Dislikes != len(review.DislikedBy) {
		t.Errorf("dislikes=%d but |dislikedBy|=%d", review.Dislikes, len(review.DislikedBy))
	}
	if review.Likes < 0 || review.Dislikes < 0 {
		t.Errorf("negative counters: likes=%d dislikes=%d", review.Likes, review.Dislikes)
	}
	for _, id := range review.LikedBy {
		if containsId(review.DislikedBy, id) {
			t.Errorf("user %s in both likedBy and dislikedBy", id)
		}
	}
}

func TestApplyReactionLikeFromNone(t *testing.T) {
	review := &Review{ReviewId: "r1"}

	if !applyReaction(review, "u1", ReactionLike) {
		t.Fatal("expected like from none to change the review")
	}
	if review.Likes != 1 || review.Dislikes != 0 {
		t.Errorf("expected likes=1 dislikes=0, got likes=%d dislikes=%d", review.Likes, review.Dislikes)
	}
	checkCountersMatchSets(t, review)
}

func TestApplyReactionIsIdempotent(t *testing.T) {
	review := &Review{ReviewId: "r1"}

	applyReaction(review, "u1", ReactionLike)
	if applyReaction(review, "u1", ReactionLike) {
		t.Error("second like should be a no-op")
	}
	if review.Likes != 1 {
		t.Errorf("double like must not double count, got likes=%d", review.Likes)
	}
	checkCountersMatchSets(t, review)

	applyReaction(review, "u1", ReactionNone)
	if applyReaction(review, "u1", ReactionNone) {
		t.Error("repeated clear should be a no-op")
	}
	if review.Likes != 0 || review.Dislikes != 0 {
		t.Errorf("expected zero counters after clear, got likes=%d dislikes=%d", review.Likes, review.Dislikes)
	}
	checkCountersMatchSets(t, review)
}

func TestApplyReactionMutualExclusion(t *testing.T) {
	review := &Review{ReviewId: "r1"}

	applyReaction(review, "u2", ReactionLike)
	if !applyReaction(review, "u2", ReactionDislike) {
		t.Fatal("dislike after like should change the review")
	}
	if review.Likes != 0 || review.Dislikes != 1 {
		t.Errorf("expected likes=0 dislikes=1, got likes=%d dislikes=%d", review.Likes, review.Dislikes)
	}
	checkCountersMatchSets(t, review)
}

func TestApplyReactionSequenceProperties(t *testing.T) {
	review := &Review{ReviewId: "r1"}
	users := []string{"u1", "u2", "u3"}
	sequence := []Reaction{
		ReactionLike, ReactionDislike, ReactionLike, ReactionNone,
		ReactionDislike, ReactionDislike, ReactionNone, ReactionNone,
		ReactionLike,
	}

	for _, user := range users {
		for _, reaction := range sequence {
			applyReaction(review, user, reaction)
			checkCountersMatchSets(t, review)
		}
	}

	// Every user's last applied reaction was a like.
	if review.Likes != len(users) {
		t.Errorf("expected likes=%d, got %d", len(users), review.Likes)
	}
	if review.Dislikes != 0 {
		t.Errorf("expected dislikes=0, got %d", review.Dislikes)
	}
}

func TestSyncReactionCountersRepairsCorruption(t *testing.T) {
	review := &Review{
		ReviewId: "r1",
		Likes:    -3,
		Dislikes: 7,
		LikedBy:  []string{"u1"},
	}

	syncReactionCounters(review)
	if review.Likes != 1 {
		t.Errorf("expected repaired likes=1, got %d", review.Likes)
	}
	if review.Dislikes != 0 {
		t.Errorf("expected repaired dislikes=0, got %d", review.Dislikes)
	}
}

func TestParseReaction(t *testing.T) {
	for _, valid := range []string{"like", "dislike", "none"} {
		if _, err := ParseReaction(valid); err != nil {
			t.Errorf("ParseReaction(%q) returned error: %v", valid, err)
		}
	}
	if _, err := ParseReaction("love"); err == nil {
		t.Error("expected error for unknown reaction")
	} else if !IsInvalidArgument(err) {
		t.Errorf("expected InvalidArgumentError, got %v", err)
	}
}

func TestRemoveIdPreservesOthers(t *testing.T) {
	ids := []string{"a", "b", "c"}
	got := removeId(ids, "b")
	if len(got) != 2 || got[0] != "a" || got[1] != "c" {
		t.Errorf("removeId left %v", got)
	}
	if got := removeId(nil, "a"); len(got) != 0 {
		t.Errorf("removeId on nil left %v", got)
	}
}
