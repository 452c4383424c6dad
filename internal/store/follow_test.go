package store

import "testing"

func TestValidateFollowRejectsSelfFollow(t *testing.T) {
	err := validateFollow("u1", "u1")
	if err == nil {
		t.Fatal("expected self-follow to be rejected")
	}
	if !IsInvalidArgument(err) {
		t.Errorf("expected InvalidArgumentError, got %v", err)
	}
}

func TestValidateFollowRejectsMissingIds(t *testing.T) {
	if err := validateFollow("", "u2"); err == nil || !IsInvalidArgument(err) {
		t.Errorf("expected InvalidArgumentError for empty user id, got %v", err)
	}
	if err := validateFollow("u1", ""); err == nil || !IsInvalidArgument(err) {
		t.Errorf("expected InvalidArgumentError for empty target id, got %v", err)
	}
}

func TestValidateFollowAllowsDistinctUsers(t *testing.T) {
	if err := validateFollow("u1", "u2"); err != nil {
		t.Errorf("expected no error, got %v", err)
	}
}
