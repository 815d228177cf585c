package auth

import "testing"

func TestHashPassword_Deterministic(t *testing.T) {
	t.Parallel()

	a := HashPassword("pw1")
	b := HashPassword("pw1")
	if a != b {
		t.Fatalf("digest not deterministic: %q vs %q", a, b)
	}
	if len(a) != 64 {
		t.Fatalf("expected 64 hex chars, got %d", len(a))
	}
	if a == HashPassword("pw2") {
		t.Fatalf("distinct passwords must not collide on trivial inputs")
	}
}

func TestCheckPassword(t *testing.T) {
	t.Parallel()

	digest := HashPassword("hunter2")
	if !CheckPassword(digest, "hunter2") {
		t.Fatalf("correct password rejected")
	}
	if CheckPassword(digest, "hunter3") {
		t.Fatalf("wrong password accepted")
	}
}
