package id

import (
	"crypto/rand"
	"encoding/hex"
	"regexp"
)

var reHex32 = regexp.MustCompile(`^[a-f0-9]{32}$`)

// NewID32 returns exactly 32 hex characters (no separators/prefixes).
// All public identifiers (lenders, applications) use this format.
func NewID32() string {
	b := make([]byte, 16)
	_, _ = rand.Read(b)
	return hex.EncodeToString(b)
}

// Valid32 reports whether s is a well-formed 32-char lowercase hex id.
// A malformed id is a client error, distinct from an unknown one.
func Valid32(s string) bool { return reHex32.MatchString(s) }
