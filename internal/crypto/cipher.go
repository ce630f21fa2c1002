// Package crypto protects the stored mail app-password at rest.
//
// Secrets are stored as "ivHex:cipherHex" (AES-256-CBC with a fresh random
// 16-byte IV per encryption). The format must stay stable so previously
// stored secrets keep decrypting. The scrypt salt is a fixed literal for the
// same reason; a per-deployment salt would resist offline dictionary attacks
// better but would invalidate every existing secret.
package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/scrypt"
)

const ivSize = aes.BlockSize

var kdfSalt = []byte("fitledger-mail-secret")

// DecryptionError reports a stored secret that could not be decrypted:
// malformed format, corrupted data, or a key mismatch. Unlike a parse
// decline this is operationally significant and must not be swallowed.
type DecryptionError struct {
	Reason string
	Err    error
}

func (e *DecryptionError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("decrypt secret: %s: %v", e.Reason, e.Err)
	}
	return "decrypt secret: " + e.Reason
}

func (e *DecryptionError) Unwrap() error { return e.Err }

// Cipher encrypts and decrypts short secrets under a key derived once from
// the configured passphrase. A Cipher is immutable and safe for concurrent
// use; construct it at startup and inject it where needed.
type Cipher struct {
	key []byte
}

// New derives a 32-byte AES key from the passphrase using scrypt. The same
// passphrase always yields the same key.
func New(passphrase string) (*Cipher, error) {
	key, err := scrypt.Key([]byte(passphrase), kdfSalt, 1<<15, 8, 1, 32)
	if err != nil {
		return nil, fmt.Errorf("derive key: %w", err)
	}
	return &Cipher{key: key}, nil
}

// Encrypt returns "ivHex:cipherHex" with a fresh random IV, so encrypting
// the same plaintext twice yields different stored strings.
func (c *Cipher) Encrypt(plaintext string) (string, error) {
	block, err := aes.NewCipher(c.key)
	if err != nil {
		return "", err
	}

	iv := make([]byte, ivSize)
	if _, err := rand.Read(iv); err != nil {
		return "", fmt.Errorf("generate iv: %w", err)
	}

	padded := pad([]byte(plaintext))
	out := make([]byte, len(padded))
	cipher.NewCBCEncrypter(block, iv).CryptBlocks(out, padded)

	return hex.EncodeToString(iv) + ":" + hex.EncodeToString(out), nil
}

// Decrypt reverses Encrypt. It returns a *DecryptionError when stored is not
// in the expected two-part hex format or the ciphertext does not decrypt
// cleanly under the derived key.
func (c *Cipher) Decrypt(stored string) (string, error) {
	ivHex, cipherHex, found := strings.Cut(stored, ":")
	if !found {
		return "", &DecryptionError{Reason: "missing iv separator"}
	}
	iv, err := hex.DecodeString(ivHex)
	if err != nil {
		return "", &DecryptionError{Reason: "invalid iv encoding", Err: err}
	}
	data, err := hex.DecodeString(cipherHex)
	if err != nil {
		return "", &DecryptionError{Reason: "invalid ciphertext encoding", Err: err}
	}
	if len(iv) != ivSize {
		return "", &DecryptionError{Reason: "unexpected iv length"}
	}
	if len(data) == 0 || len(data)%aes.BlockSize != 0 {
		return "", &DecryptionError{Reason: "ciphertext is not block aligned"}
	}

	block, err := aes.NewCipher(c.key)
	if err != nil {
		return "", err
	}

	plain := make([]byte, len(data))
	cipher.NewCBCDecrypter(block, iv).CryptBlocks(plain, data)

	unpadded, err := unpad(plain)
	if err != nil {
		return "", &DecryptionError{Reason: "invalid padding", Err: err}
	}
	return string(unpadded), nil
}

// pad applies PKCS#7 padding up to a full block multiple.
func pad(data []byte) []byte {
	n := aes.BlockSize - len(data)%aes.BlockSize
	padded := make([]byte, len(data)+n)
	copy(padded, data)
	for i := len(data); i < len(padded); i++ {
		padded[i] = byte(n)
	}
	return padded
}

// unpad validates and strips PKCS#7 padding. A wrong key or corrupted
// ciphertext almost always surfaces here.
func unpad(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, errors.New("empty plaintext")
	}
	n := int(data[len(data)-1])
	if n == 0 || n > aes.BlockSize || n > len(data) {
		return nil, errors.New("bad padding length")
	}
	for _, b := range data[len(data)-n:] {
		if int(b) != n {
			return nil, errors.New("inconsistent padding")
		}
	}
	return data[:len(data)-n], nil
}
