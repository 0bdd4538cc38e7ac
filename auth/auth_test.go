// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package auth

import (
	"bytes"
	"testing"
)

func TestGenerateSigningKey(t *testing.T) {
	tests := []struct {
		name    string
		byteLen int
	}{
		{"16 bytes", 16},
		{"32 bytes", 32},
		{"64 bytes", 64},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			key, err := GenerateSigningKey(tt.byteLen)
			if err != nil {
				t.Fatalf("GenerateSigningKey() error = %v", err)
			}
			if len(key) != tt.byteLen {
				t.Errorf("GenerateSigningKey() length = %d, want %d", len(key), tt.byteLen)
			}
		})
	}

	// Test randomness - two keys should be different
	k1, _ := GenerateSigningKey(32)
	k2, _ := GenerateSigningKey(32)
	if bytes.Equal(k1, k2) {
		t.Error("GenerateSigningKey() produced duplicate keys (extremely unlikely)")
	}
}

func TestSecretsMatch(t *testing.T) {
	tests := []struct {
		name      string
		presented string
		expected  string
		want      bool
	}{
		{"exact match", "password123", "password123", true},
		{"wrong secret", "password124", "password123", false},
		{"prefix only", "password", "password123", false},
		{"case differs", "PASSWORD123", "password123", false},
		{"empty presented", "", "password123", false},
		{"both empty", "", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SecretsMatch(tt.presented, tt.expected); got != tt.want {
				t.Errorf("SecretsMatch(%q, %q) = %v, want %v", tt.presented, tt.expected, got, tt.want)
			}
		})
	}
}

func TestBearerToken(t *testing.T) {
	tests := []struct {
		name   string
		header string
		want   string
	}{
		{"with prefix", "Bearer abc.def.ghi", "abc.def.ghi"},
		{"lowercase prefix", "bearer abc.def.ghi", "abc.def.ghi"},
		{"no prefix", "abc.def.ghi", "abc.def.ghi"},
		{"surrounding space", "  Bearer abc.def.ghi  ", "abc.def.ghi"},
		{"empty", "", ""},
		{"prefix only", "Bearer ", ""},
		{"prefix with padding", "  bearer   ", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := BearerToken(tt.header); got != tt.want {
				t.Errorf("BearerToken(%q) = %q, want %q", tt.header, got, tt.want)
			}
		})
	}
}

func TestFingerprint(t *testing.T) {
	fp := Fingerprint("some.token.value")

	// Should be 16 hex characters (8 bytes * 2)
	if len(fp) != 16 {
		t.Errorf("Fingerprint() length = %d, want 16", len(fp))
	}
	for _, c := range fp {
		if !((c >= '0' && c <= '9') || (c >= 'a' && c <= 'f')) {
			t.Errorf("Fingerprint() contains invalid hex char: %c", c)
		}
	}

	// Should be deterministic
	if Fingerprint("some.token.value") != fp {
		t.Error("Fingerprint() is not deterministic")
	}
	if Fingerprint("other.token.value") == fp {
		t.Error("Fingerprint() produced same digest for different tokens")
	}
}

func BenchmarkSecretsMatch(b *testing.B) {
	for i := 0; i < b.N; i++ {
		SecretsMatch("password123", "password123")
	}
}
