package service

import (
	"crypto/sha256"
	"encoding/hex"

	"golang.org/x/crypto/argon2"
)

// Argon2Params tunes the argon2id hasher.
type Argon2Params struct {
	Time    uint32
	Memory  uint32 // KiB
	Threads uint8
	KeyLen  uint32
}

// DefaultArgon2Params follows the x/crypto recommendation for interactive logins.
var DefaultArgon2Params = Argon2Params{Time: 1, Memory: 64 * 1024, Threads: 4, KeyLen: 32}

// Argon2Hasher derives a memory-hard hash. The salt is fixed per deployment (derived from the
// pepper) so that the same password always yields the same hash and can be matched in a query.
type Argon2Hasher struct {
	salt   []byte
	params Argon2Params
}

// NewArgon2Hasher returns an argon2id hasher salted with pepper.
func NewArgon2Hasher(pepper string, params Argon2Params) *Argon2Hasher {
	if params.Time == 0 {
		params = DefaultArgon2Params
	}
	sum := sha256.Sum256([]byte("tradeco:password:" + pepper))
	return &Argon2Hasher{salt: sum[:16], params: params}
}

func (h *Argon2Hasher) Hash(plaintext string) string {
	key := argon2.IDKey([]byte(plaintext), h.salt, h.params.Time, h.params.Memory, h.params.Threads, h.params.KeyLen)
	return hex.EncodeToString(key)
}

// SHA256Hasher reproduces the legacy unsalted hex digest. Only use it to serve accounts
// imported from the old site.
type SHA256Hasher struct{}

func (SHA256Hasher) Hash(plaintext string) string {
	sum := sha256.Sum256([]byte(plaintext))
	return hex.EncodeToString(sum[:])
}
