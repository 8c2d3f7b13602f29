package token

import (
	"errors"
	"testing"
)

func TestIssueVerifyRoundTrip(t *testing.T) {
	s := NewService("test-secret")

	tok, err := s.Issue(42)
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	userID, err := s.Verify(tok)
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}
	if userID != 42 {
		t.Errorf("Verify returned user id %d, want 42", userID)
	}
}

func TestVerifyRejectsMalformedToken(t *testing.T) {
	s := NewService("test-secret")

	if _, err := s.Verify("not.a.token"); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("Verify(garbage) = %v, want ErrInvalidToken", err)
	}
	if _, err := s.Verify(""); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("Verify(empty) = %v, want ErrInvalidToken", err)
	}
}

func TestVerifyRejectsForeignSecret(t *testing.T) {
	tok, err := NewService("secret-a").Issue(7)
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	if _, err := NewService("secret-b").Verify(tok); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("Verify with a different secret = %v, want ErrInvalidToken", err)
	}
}
