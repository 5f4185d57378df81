// Package password hashes and verifies user passwords with argon2id.
package password

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"fmt"
	"strings"

	"golang.org/x/crypto/argon2"

	"github.com/dtroode/accounts-server/internal/apierrors"
)

// MaxLength is the longest accepted plaintext password, in bytes.
const MaxLength = 64

const (
	argonTime    = 1
	argonMemory  = 64 * 1024
	argonThreads = 4
	argonKeyLen  = 32
	saltLen      = 16
)

// Hash derives an argon2id hash of plaintext with a fresh random salt and
// returns it in PHC string form. Two calls on the same input produce
// different strings that both verify.
func Hash(plaintext string) (string, error) {
	if err := checkLength(plaintext); err != nil {
		return "", err
	}

	salt := make([]byte, saltLen)
	if _, err := rand.Read(salt); err != nil {
		return "", fmt.Errorf("failed to generate salt: %w", err)
	}

	key := argon2.IDKey([]byte(plaintext), salt, argonTime, argonMemory, argonThreads, argonKeyLen)

	encoded := fmt.Sprintf("$argon2id$v=%d$m=%d,t=%d,p=%d$%s$%s",
		argon2.Version, argonMemory, argonTime, argonThreads,
		base64.RawStdEncoding.EncodeToString(salt),
		base64.RawStdEncoding.EncodeToString(key),
	)

	return encoded, nil
}

// Verify reports whether plaintext matches the stored hash. The comparison
// uses crypto/subtle and always derives the full candidate key, so it does
// not short-circuit on the first mismatched byte.
func Verify(plaintext, stored string) (bool, error) {
	if err := checkLength(plaintext); err != nil {
		return false, err
	}

	salt, key, params, err := decode(stored)
	if err != nil {
		return false, err
	}

	candidate := argon2.IDKey([]byte(plaintext), salt, params.time, params.memory, params.threads, uint32(len(key)))

	return subtle.ConstantTimeCompare(key, candidate) == 1, nil
}

func checkLength(plaintext string) error {
	if plaintext == "" {
		return apierrors.NewErrEmptyPassword()
	}
	if len(plaintext) > MaxLength {
		return apierrors.NewErrExceededMaxPasswordLength(MaxLength)
	}
	return nil
}

type argonParams struct {
	memory  uint32
	time    uint32
	threads uint8
}

func decode(stored string) (salt, key []byte, params argonParams, err error) {
	parts := strings.Split(stored, "$")
	if len(parts) != 6 || parts[1] != "argon2id" {
		return nil, nil, params, apierrors.NewErrInvalidHashFormat()
	}

	var version int
	if _, err := fmt.Sscanf(parts[2], "v=%d", &version); err != nil || version != argon2.Version {
		return nil, nil, params, apierrors.NewErrInvalidHashFormat()
	}

	if _, err := fmt.Sscanf(parts[3], "m=%d,t=%d,p=%d", &params.memory, &params.time, &params.threads); err != nil {
		return nil, nil, params, apierrors.NewErrHashingError()
	}

	// argon2.IDKey panics on zero rounds or zero threads, so a stored
	// hash carrying them is treated as malformed, not computed.
	if params.time < 1 || params.threads < 1 {
		return nil, nil, params, apierrors.NewErrInvalidHashFormat()
	}

	salt, err = base64.RawStdEncoding.DecodeString(parts[4])
	if err != nil {
		return nil, nil, params, apierrors.NewErrInvalidHashFormat()
	}
	key, err = base64.RawStdEncoding.DecodeString(parts[5])
	if err != nil {
		return nil, nil, params, apierrors.NewErrInvalidHashFormat()
	}
	// an empty digest would ask argon2 for a zero-length key
	if len(key) == 0 {
		return nil, nil, params, apierrors.NewErrInvalidHashFormat()
	}

	return salt, key, params, nil
}
