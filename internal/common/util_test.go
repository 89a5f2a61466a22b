package common

import (
	"testing"
)

// ---------- WipeByteArray ----------

func TestWipeByteArray_ZerosBuffer(t *testing.T) {
	buf := []byte{1, 2, 3, 4, 5}
	WipeByteArray(buf)
	for i, v := range buf {
		if v != 0 {
			t.Fatalf("expected buf[%d]==0, got %d", i, v)
		}
	}
}

func TestWipeByteArray_NilSafe(t *testing.T) {
	WipeByteArray(nil)
}

// ---------- UsernameFromEmail ----------

func TestUsernameFromEmail(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"a@b.com", "a"},
		{"john.doe@example.org", "john.doe"},
		{"  alice@example.org ", "alice"},
		{"no-at-sign", "no-at-sign"},
		{"first@second@host", "first"},
		{"", ""},
	}

	for _, tc := range tests {
		if got := UsernameFromEmail(tc.in); got != tc.want {
			t.Fatalf("UsernameFromEmail(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
