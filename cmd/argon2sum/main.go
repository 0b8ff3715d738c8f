// Command argon2sum hashes a password read from the command line (or
// stdin) with Argon2 and prints the resulting tag as hex.
package main

import (
	"bufio"
	"encoding/hex"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/mooncloak/argon2"
)

func main() {
	variant := flag.String("variant", "id", "Argon2 variant: d, i, or id")
	version := flag.Uint("version", 0x13, "Argon2 version: 0x10 or 0x13")
	time := flag.Uint("time", 3, "iterations")
	memory := flag.Uint("memory", 64*1024, "memory cost in KiB")
	parallelism := flag.Uint("parallelism", 4, "lanes")
	keyLen := flag.Uint("length", 32, "tag length in bytes")
	saltHex := flag.String("salt", "", "salt as hex; a random 16-byte salt is generated if omitted")

	flag.Parse()

	var v argon2.Variant
	switch *variant {
	case "d":
		v = argon2.VariantD
	case "i":
		v = argon2.VariantI
	case "id":
		v = argon2.VariantID
	default:
		log.Fatalf("invalid variant %q (use d, i, or id)", *variant)
	}

	var salt []byte
	if *saltHex != "" {
		var err error
		salt, err = hex.DecodeString(*saltHex)
		if err != nil {
			log.Fatalf("invalid -salt: %v", err)
		}
	} else {
		var err error
		salt, err = argon2.GenerateSalt(16)
		if err != nil {
			log.Fatalf("generating salt: %v", err)
		}
	}

	password, err := readPassword()
	if err != nil {
		log.Fatalf("reading password: %v", err)
	}

	tag, err := argon2.Hash(password, salt, argon2.Params{
		Variant:     v,
		Version:     argon2.Version(*version),
		Time:        uint32(*time),
		MemoryKiB:   uint32(*memory),
		Parallelism: uint32(*parallelism),
		KeyLength:   uint32(*keyLen),
	})
	if err != nil {
		log.Fatalf("argon2: %v", err)
	}

	fmt.Printf("salt=%s tag=%s\n", hex.EncodeToString(salt), hex.EncodeToString(tag))
}

func readPassword() ([]byte, error) {
	if flag.NArg() > 0 {
		return []byte(flag.Arg(0)), nil
	}

	scanner := bufio.NewScanner(os.Stdin)
	if !scanner.Scan() {
		return nil, scanner.Err()
	}
	return scanner.Bytes(), nil
}
