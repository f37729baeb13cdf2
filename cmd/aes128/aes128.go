// Command aes128 encrypts a single 16-byte block with a 16-byte key and prints the ciphertext in hex.
package main

import (
	"bytes"
	"crypto/aes"
	"encoding/hex"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/codahale/rijndael"
	"golang.org/x/sys/cpu"
)

func main() {
	var (
		key    = flag.String("key", "Thats my Kung Fu", "the 16-byte key")
		block  = flag.String("block", "Two One Nine Two", "the 16-byte plaintext block")
		isHex  = flag.Bool("hex", false, "decode -key and -block as hex instead of raw bytes")
		verify = flag.Bool("verify", false, "check the ciphertext against crypto/aes")
	)
	flag.Parse()

	log := slog.New(slog.Default().Handler())

	ct, err := run(log, *key, *block, *isHex, *verify)
	if err != nil {
		log.Error("failed to encrypt block", "err", err)
		os.Exit(1)
	}

	fmt.Println(hex.EncodeToString(ct))
}

func run(log *slog.Logger, key, block string, isHex, verify bool) ([]byte, error) {
	k, err := decodeArg(key, isHex)
	if err != nil {
		return nil, fmt.Errorf("invalid key: %w", err)
	}

	pt, err := decodeArg(block, isHex)
	if err != nil {
		return nil, fmt.Errorf("invalid block: %w", err)
	}

	c, err := rijndael.New(k)
	if err != nil {
		return nil, err
	}

	ct, err := c.EncryptBlock(nil, pt)
	if err != nil {
		return nil, err
	}

	if verify {
		log.Info("verifying against crypto/aes", "hardware", hasHardwareAES())

		ref, err := aes.NewCipher(k)
		if err != nil {
			return nil, err
		}
		want := make([]byte, aes.BlockSize)
		ref.Encrypt(want, pt)

		if !bytes.Equal(ct, want) {
			return nil, fmt.Errorf("ciphertext mismatch: got %x, want %x", ct, want)
		}
	}

	return ct, nil
}

func decodeArg(s string, isHex bool) ([]byte, error) {
	if isHex {
		return hex.DecodeString(s)
	}
	return []byte(s), nil
}

// hasHardwareAES reports whether crypto/aes is likely backed by AES instructions on this CPU.
func hasHardwareAES() bool {
	return cpu.X86.HasAES || cpu.ARM64.HasAES || cpu.S390X.HasAES
}
