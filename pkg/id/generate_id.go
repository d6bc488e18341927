package id

import (
	"crypto/rand"
	"encoding/hex"
	"strings"
)

// NewID32 returns exactly 32 hex characters (no separators/prefixes).
func NewID32() string {
	b := make([]byte, 16)
	_, _ = rand.Read(b)
	return hex.EncodeToString(b)
}

// NewDocNumber returns a paperwork document number like "AO-1A2B3C4D5E6F7081".
func NewDocNumber(prefix string) string {
	b := make([]byte, 8)
	_, _ = rand.Read(b)
	return strings.ToUpper(prefix) + "-" + strings.ToUpper(hex.EncodeToString(b))
}
