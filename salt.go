package argon2

import (
	"crypto/rand"
	"fmt"
)

// GenerateSalt returns n cryptographically random bytes suitable for use
// as an Argon2 salt. RFC 9106 recommends at least 16 bytes for password
// hashing.
func GenerateSalt(n int) ([]byte, error) {
	if n < 8 {
		return nil, fmt.Errorf("%w: salt length must be >= 8 bytes", ErrInvalidParameter)
	}

	salt := make([]byte, n)
	if _, err := rand.Read(salt); err != nil {
		return nil, fmt.Errorf("argon2: generating salt: %w", err)
	}
	return salt, nil
}
