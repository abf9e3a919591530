package service

import (
	"crypto/rand"
	"fmt"
	"strings"
)

const (
	joinCodeLength   = 6
	joinCodeAlphabet = "0123456789abcdefghijklmnopqrstuvwxyz"
)

// newJoinCode returns a 6-character lowercase alphanumeric code. Codes are
// not unique across workspaces: a code is only ever compared against the one
// workspace the caller is joining, so collisions are harmless.
func newJoinCode() (string, error) {
	buf := make([]byte, joinCodeLength)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("generating join code: %w", err)
	}
	for i, b := range buf {
		buf[i] = joinCodeAlphabet[int(b)%len(joinCodeAlphabet)]
	}
	return string(buf), nil
}

// normalizeJoinCode lowercases a submitted code so the comparison against the
// stored code is case-insensitive.
func normalizeJoinCode(code string) string {
	return strings.ToLower(strings.TrimSpace(code))
}
