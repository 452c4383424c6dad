package store

import "testing"

func TestValidateRating(t *testing.T) {
	for _, rating := range []float64{1, 2.5, 4, 5} {
		if err := validateRating(rating); err != nil {
			t.Errorf("validateRating(%g) returned error: %v", rating, err)
		}
	}
	for _, rating := range []float64{0, 0.5, 5.1, -1, 100} {
		err := validateRating(rating)
		if err == nil {
			t.Errorf("validateRating(%g) should fail", rating)
			continue
		}
		if !IsInvalidArgument(err) {
			t.Errorf("validateRating(%g): expected InvalidArgumentError, got %v", rating, err)
		}
	}
}

func TestAverageScore(t *testing.T) {
	song := &Song{ReviewScore: 9, NumReviews: 2}
	if got := song.AverageScore(); got != 4.5 {
		t.Errorf("expected average 4.5, got %g", got)
	}

	empty := &Song{}
	if got := empty.AverageScore(); got != 0 {
		t.Errorf("expected 0 average for unreviewed song, got %g", got)
	}

	album := &Album{ReviewScore: 12, NumReviews: 3}
	if got := album.AverageScore(); got != 4 {
		t.Errorf("expected average 4, got %g", got)
	}
}

func TestTargetCollection(t *testing.T) {
	if c, err := targetCollection(TargetSong); err != nil || c != songsCollection {
		t.Errorf("targetCollection(song) = %q, %v", c, err)
	}
	if c, err := targetCollection(TargetAlbum); err != nil || c != albumsCollection {
		t.Errorf("targetCollection(album) = %q, %v", c, err)
	}
	if _, err := targetCollection(TargetType("artist")); err == nil {
		t.Error("expected error for unreviewable target type")
	} else if !IsInvalidArgument(err) {
		t.Errorf("expected InvalidArgumentError, got %v", err)
	}
}
