package argon2_test

import (
	"bytes"
	"math/rand"
	"testing"

	refargon2 "golang.org/x/crypto/argon2"

	"github.com/mooncloak/argon2"
)

// TestConformsToReferenceImplementation checks Key and IDKey against
// golang.org/x/crypto/argon2 across a spread of cost parameters, the
// same way the BLAKE2b layer is cross-checked: agreement with a widely
// deployed implementation on many inputs, not just the RFC vectors.
func TestConformsToReferenceImplementation(t *testing.T) {
	r := rand.New(rand.NewSource(2))

	type cost struct {
		time, memory uint32
		threads      uint8
		keyLen       uint32
	}
	costs := []cost{
		{1, 8 * 1024, 1, 32},
		{2, 8 * 1024, 2, 32},
		{3, 64 * 1024, 4, 16},
		{4, 32 * 1024, 1, 64},
	}

	for _, c := range costs {
		password := make([]byte, 1+r.Intn(64))
		r.Read(password)
		salt := make([]byte, 16)
		r.Read(salt)

		gotI, err := argon2.Key(password, salt, c.time, c.memory, c.threads, c.keyLen)
		if err != nil {
			t.Fatalf("Key: %v", err)
		}
		wantI := refargon2.Key(password, salt, c.time, c.memory, c.threads, c.keyLen)
		if !bytes.Equal(gotI, wantI) {
			t.Errorf("Argon2i cost=%+v: got %x, want %x", c, gotI, wantI)
		}

		gotID, err := argon2.IDKey(password, salt, c.time, c.memory, c.threads, c.keyLen)
		if err != nil {
			t.Fatalf("IDKey: %v", err)
		}
		wantID := refargon2.IDKey(password, salt, c.time, c.memory, c.threads, c.keyLen)
		if !bytes.Equal(gotID, wantID) {
			t.Errorf("Argon2id cost=%+v: got %x, want %x", c, gotID, wantID)
		}
	}
}
