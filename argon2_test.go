package argon2

import (
	"bytes"
	"context"
	"encoding/hex"
	"errors"
	"testing"
	"time"
)

func TestVectorsVersion13(t *testing.T) {
	password := bytes.Repeat([]byte{0x01}, 32)
	salt := bytes.Repeat([]byte{0x02}, 16)
	secret := bytes.Repeat([]byte{0x03}, 8)
	ad := bytes.Repeat([]byte{0x04}, 12)

	cases := []struct {
		name    string
		variant Variant
		want    string
	}{
		{"argon2d", VariantD, "512b391b6f1162975371d30919734294f868e3be3984f3c1a13a4db9fabe4acb"},
		{"argon2i", VariantI, "c814d9d1dc7f37aa13f0d77f2494bda1c8de6b016dd388d29952a4c4672b6ce8"},
		{"argon2id", VariantID, "0d640df58d78766c08c037a34a8b53c9d01ef0452d75b65eb52520e96b01e659"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			tag, err := HashWithSecret(password, salt, secret, ad, Params{
				Variant: c.variant, Version: Version13,
				Time: 3, MemoryKiB: 32, Parallelism: 4, KeyLength: 32,
			})
			if err != nil {
				t.Fatalf("HashWithSecret: %v", err)
			}
			want, _ := hex.DecodeString(c.want)
			if !bytes.Equal(tag, want) {
				t.Errorf("got %x, want %x", tag, want)
			}
		})
	}
}

func TestIDKeyMatchesHash(t *testing.T) {
	password := []byte("correct horse battery staple")
	salt := bytes.Repeat([]byte{0x07}, 16)

	a, err := IDKey(password, salt, 2, 8*1024, 2, 32)
	if err != nil {
		t.Fatalf("IDKey: %v", err)
	}
	b, err := Hash(password, salt, Params{
		Variant: VariantID, Version: Version13,
		Time: 2, MemoryKiB: 8 * 1024, Parallelism: 2, KeyLength: 32,
	})
	if err != nil {
		t.Fatalf("Hash: %v", err)
	}
	if !bytes.Equal(a, b) {
		t.Errorf("IDKey and equivalent Hash call diverged")
	}
}

func TestKeyUsesArgon2i(t *testing.T) {
	password := []byte("password")
	salt := bytes.Repeat([]byte{0x09}, 16)

	viaKey, err := Key(password, salt, 2, 8*1024, 2, 32)
	if err != nil {
		t.Fatalf("Key: %v", err)
	}
	viaHash, err := Hash(password, salt, Params{
		Variant: VariantI, Version: Version13,
		Time: 2, MemoryKiB: 8 * 1024, Parallelism: 2, KeyLength: 32,
	})
	if err != nil {
		t.Fatalf("Hash: %v", err)
	}
	if !bytes.Equal(viaKey, viaHash) {
		t.Errorf("Key did not use Argon2i")
	}
}

func TestDKeyDiffersFromIDKey(t *testing.T) {
	password := []byte("password")
	salt := bytes.Repeat([]byte{0x0a}, 16)

	d, err := DKey(password, salt, 2, 8*1024, 2, 32)
	if err != nil {
		t.Fatalf("DKey: %v", err)
	}
	id, err := IDKey(password, salt, 2, 8*1024, 2, 32)
	if err != nil {
		t.Fatalf("IDKey: %v", err)
	}
	if bytes.Equal(d, id) {
		t.Errorf("Argon2d and Argon2id produced identical tags")
	}
}

func TestInvalidParameterIsClassified(t *testing.T) {
	_, err := Hash([]byte("x"), []byte("y"), Params{
		Variant: VariantID, Version: Version13,
		Time: 0, MemoryKiB: 1024, Parallelism: 1, KeyLength: 32,
	})
	if !errors.Is(err, ErrInvalidParameter) {
		t.Errorf("expected ErrInvalidParameter, got %v", err)
	}
}

func TestHashContextCancellation(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Nanosecond)
	defer cancel()
	time.Sleep(time.Millisecond)

	_, err := HashContext(ctx, []byte("x"), bytes.Repeat([]byte{0x01}, 16), nil, nil, Params{
		Variant: VariantID, Version: Version13,
		Time: 10, MemoryKiB: 256 * 1024, Parallelism: 4, KeyLength: 32,
	})
	if !errors.Is(err, ErrCancelled) {
		t.Errorf("expected ErrCancelled, got %v", err)
	}
}

func TestDefaultParamsAreValid(t *testing.T) {
	_, err := Hash([]byte("password"), bytes.Repeat([]byte{0x01}, 16), DefaultParams())
	if err != nil {
		t.Errorf("DefaultParams() rejected by Hash: %v", err)
	}
}
