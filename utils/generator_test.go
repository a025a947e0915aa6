package utils

import (
	"strings"
	"testing"
)

func TestGeneratePasswordLength(t *testing.T) {
	tests := []struct {
		requested int
		want      int
	}{
		{8, 8},
		{10, 10},
		{12, 12},
		{3, 8},   // clamped up
		{40, 12}, // clamped down
	}
	for _, tt := range tests {
		got, err := GeneratePassword(tt.requested)
		if err != nil {
			t.Fatalf("GeneratePassword(%d) returned error: %v", tt.requested, err)
		}
		if len(got) != tt.want {
			t.Errorf("GeneratePassword(%d) length = %d, want %d", tt.requested, len(got), tt.want)
		}
	}
}

func TestGeneratePasswordCharset(t *testing.T) {
	for i := 0; i < 50; i++ {
		p, err := GeneratePassword(12)
		if err != nil {
			t.Fatalf("GeneratePassword returned error: %v", err)
		}
		for _, ch := range p {
			if !strings.ContainsRune(passwordCharset, ch) {
				t.Fatalf("password %q contains %q outside charset", p, ch)
			}
		}
	}
}

func TestGeneratePasswordVaries(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 20; i++ {
		p, err := GeneratePassword(12)
		if err != nil {
			t.Fatalf("GeneratePassword returned error: %v", err)
		}
		if seen[p] {
			t.Fatalf("duplicate password generated: %q", p)
		}
		seen[p] = true
	}
}

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("s3cret!pass")
	if err != nil {
		t.Fatalf("HashPassword returned error: %v", err)
	}
	if hash == "s3cret!pass" {
		t.Fatal("hash equals plaintext")
	}
	if !CheckPassword("s3cret!pass", hash) {
		t.Fatal("correct password does not verify")
	}
	if CheckPassword("wrong", hash) {
		t.Fatal("wrong password verifies")
	}
	if CheckPassword("s3cret!pass", "not-a-hash") {
		t.Fatal("malformed hash verifies")
	}
}
