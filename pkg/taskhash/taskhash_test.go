package taskhash

import (
	"strings"
	"testing"
)

func TestDeriveKnownVectors(t *testing.T) {
	tests := []struct {
		name      string
		title     string
		address   string
		timestamp int64
		want      string
	}{
		{
			name:      "pay rent",
			title:     "Pay rent",
			address:   "0xAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAA1111",
			timestamp: 1700000000,
			want:      "0x0cfa4be7bd13c5f13cf32b77cdb0c05388cdc13e9865990a0220f5dd906ef12e",
		},
		{
			name:      "buy milk",
			title:     "Buy Milk",
			address:   "0xABCDEF0123456789ABCDEF0123456789ABCDEF01",
			timestamp: 100,
			want:      "0x6027b314345f09a4f46725cfd771377d54ecc8901ef1f0b9ea5ff177dc9d0328",
		},
		{
			name:      "pay rent tampered timestamp",
			title:     "Pay rent",
			address:   "0xAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAA1111",
			timestamp: 1700000001,
			want:      "0x9812f45dcd5d35c181896ac5cb38382ab4809e1b1161c75ce157eb28db5d0975",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Derive(tt.title, tt.address, tt.timestamp)
			if err != nil {
				t.Fatalf("Derive failed: %v", err)
			}
			if got != tt.want {
				t.Errorf("Derive(%q, %q, %d) = %s, want %s", tt.title, tt.address, tt.timestamp, got, tt.want)
			}
		})
	}
}

func TestDeriveIsDeterministic(t *testing.T) {
	first, err := Derive("Write report", "0xABCDEF0123456789ABCDEF0123456789ABCDEF01", 1700000000)
	if err != nil {
		t.Fatalf("Derive failed: %v", err)
	}
	second, err := Derive("Write report", "0xABCDEF0123456789ABCDEF0123456789ABCDEF01", 1700000000)
	if err != nil {
		t.Fatalf("Derive failed: %v", err)
	}
	if first != second {
		t.Errorf("expected identical hashes, got %s and %s", first, second)
	}
}

func TestDeriveNormalizesCase(t *testing.T) {
	upper, err := Derive("  Buy Milk ", "0xABCDEF0123456789ABCDEF0123456789ABCDEF01", 100)
	if err != nil {
		t.Fatalf("Derive failed: %v", err)
	}
	lower, err := Derive("buy milk", "0xabcdef0123456789abcdef0123456789abcdef01", 100)
	if err != nil {
		t.Fatalf("Derive failed: %v", err)
	}
	if upper != lower {
		t.Errorf("expected normalized inputs to hash identically, got %s and %s", upper, lower)
	}
}

func TestDeriveChangesWithEachInput(t *testing.T) {
	base, err := Derive("buy milk", "0xabcdef0123456789abcdef0123456789abcdef01", 100)
	if err != nil {
		t.Fatalf("Derive failed: %v", err)
	}

	variants := []struct {
		name      string
		title     string
		address   string
		timestamp int64
	}{
		{"different title", "buy bread", "0xabcdef0123456789abcdef0123456789abcdef01", 100},
		{"different address", "buy milk", "0x1111111111111111111111111111111111111111", 100},
		{"different timestamp", "buy milk", "0xabcdef0123456789abcdef0123456789abcdef01", 101},
	}

	for _, v := range variants {
		t.Run(v.name, func(t *testing.T) {
			got, err := Derive(v.title, v.address, v.timestamp)
			if err != nil {
				t.Fatalf("Derive failed: %v", err)
			}
			if got == base {
				t.Errorf("expected a different hash for %s, got %s", v.name, got)
			}
		})
	}
}

func TestDeriveOutputFormat(t *testing.T) {
	hash, err := Derive("buy milk", "0xabcdef0123456789abcdef0123456789abcdef01", 100)
	if err != nil {
		t.Fatalf("Derive failed: %v", err)
	}
	if !strings.HasPrefix(hash, "0x") || len(hash) != 66 {
		t.Errorf("expected 0x-prefixed 32-byte hex digest, got %q", hash)
	}
}

func TestDeriveRejectsMalformedAddress(t *testing.T) {
	for _, addr := range []string{"", "0x123", "not-an-address", "0xZZZZEF0123456789ABCDEF0123456789ABCDEF01"} {
		if _, err := Derive("buy milk", addr, 100); err == nil {
			t.Errorf("expected error for address %q", addr)
		}
	}
}
