package id

import (
	"encoding/hex"
	"regexp"
	"strings"
	"testing"
)

var reHex32 = regexp.MustCompile(`^[a-f0-9]{32}$`)

func TestNewID32_FormatAndDecode(t *testing.T) {
	got := NewID32()

	// length
	if len(got) != 32 {
		t.Fatalf("length = %d, want 32 (got=%q)", len(got), got)
	}
	// lowercase hex only (no separators/prefixes)
	if !reHex32.MatchString(got) {
		t.Fatalf("not 32-char lowercase hex: %q", got)
	}
	// decodes to exactly 16 bytes
	b, err := hex.DecodeString(got)
	if err != nil {
		t.Fatalf("hex.DecodeString error: %v", err)
	}
	if len(b) != 16 {
		t.Fatalf("decoded bytes = %d, want 16", len(b))
	}
}

func TestNewID32_Uniqueness(t *testing.T) {
	const n = 200
	seen := make(map[string]struct{}, n)
	for i := 0; i < n; i++ {
		id := NewID32()
		if _, ok := seen[id]; ok {
			t.Fatalf("duplicate id after %d iterations: %q", i, id)
		}
		seen[id] = struct{}{}
	}
}

func TestNewDocNumber_Format(t *testing.T) {
	got := NewDocNumber("ao")
	if !strings.HasPrefix(got, "AO-") {
		t.Fatalf("missing uppercased prefix: %q", got)
	}
	rest := strings.TrimPrefix(got, "AO-")
	if len(rest) != 16 {
		t.Fatalf("suffix length = %d, want 16 (got=%q)", len(rest), got)
	}
	if rest != strings.ToUpper(rest) {
		t.Fatalf("suffix not uppercase: %q", got)
	}
	if _, err := hex.DecodeString(rest); err != nil {
		t.Fatalf("suffix not hex: %q (%v)", got, err)
	}
}
