// Package argon2 computes the Argon2 memory-hard key derivation
// function (RFC 9106) in its d, i, and id variants, together with the
// BLAKE2b hash it is built on.
//
// Argon2 won the Password Hashing Competition and is recommended for
// deriving keys from low-entropy secrets such as passwords. This
// package implements the full algorithm, including the parallel
// memory-fill schedule; it does not implement PHC string encoding,
// constant-time hash comparison, or multi-algorithm negotiation — those
// belong in a layer above, the way callers of golang.org/x/crypto/argon2
// build their own encoded-hash format on top of IDKey.
//
// Example:
//
//	salt, err := argon2.GenerateSalt(16)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	tag, err := argon2.IDKey([]byte("correct horse battery staple"), salt, 3, 64*1024, 4, 32)
//	if err != nil {
//	    log.Fatal(err)
//	}
package argon2
