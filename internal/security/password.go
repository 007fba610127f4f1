// Package security holds the credential hashing and token plumbing the API
// boundary depends on.
package security

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"

	"golang.org/x/crypto/pbkdf2"
)

const (
	pbkdf2Iterations = 4096
	digestLen        = 32
)

// Hasher derives deterministic password digests. The per-user salt is
// pepper + "_" + username, so the same (password, username) pair always
// yields the same hex digest and signin can compare bit-for-bit.
type Hasher struct {
	pepper string
}

func NewHasher(pepper string) *Hasher {
	return &Hasher{pepper: pepper}
}

// Hash returns the fixed-length hex digest of password under the user's salt.
func (h *Hasher) Hash(password, username string) string {
	salt := []byte(h.pepper + "_" + username)
	sum := pbkdf2.Key([]byte(password), salt, pbkdf2Iterations, digestLen, sha256.New)
	return hex.EncodeToString(sum)
}

// Verify recomputes the digest and compares it to stored in constant time.
func (h *Hasher) Verify(password, username, stored string) bool {
	digest := h.Hash(password, username)
	return subtle.ConstantTimeCompare([]byte(digest), []byte(stored)) == 1
}
