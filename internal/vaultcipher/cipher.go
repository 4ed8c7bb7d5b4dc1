// Package vaultcipher encrypts vault item secrets for at-rest storage.
//
// The envelope format is hex(iv) + ":" + hex(ciphertext), a single string
// suitable for a text column. Only the envelope is ever persisted; plaintext
// is recovered transiently on each read.
package vaultcipher

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
)

const (
	keyLength = 32 // AES-256
	ivLength  = aes.BlockSize
)

// ErrInvalidKey is returned by NewCipher for keys shorter than 32 bytes.
var ErrInvalidKey = errors.New("vaultcipher: key must be at least 32 bytes")

// ErrDecryption is returned for any envelope that cannot be decrypted:
// malformed format, bad hex, wrong IV size, or invalid padding. Callers treat
// it as "no password available" rather than an internal failure.
var ErrDecryption = errors.New("vaultcipher: cannot decrypt envelope")

// Cipher performs symmetric encryption of vault secrets with a single
// injected key. There is no per-item key derivation.
type Cipher struct {
	key []byte
}

// NewCipher builds a Cipher from the configured secret key. Only the first 32
// bytes of the key are used.
func NewCipher(key string) (*Cipher, error) {
	if len(key) < keyLength {
		return nil, ErrInvalidKey
	}
	return &Cipher{key: []byte(key[:keyLength])}, nil
}

// Encrypt encrypts plaintext with AES-256-CBC under a fresh random IV and
// returns the storage envelope. An empty plaintext produces an empty envelope.
func (c *Cipher) Encrypt(plaintext string) (string, error) {
	if plaintext == "" {
		return "", nil
	}

	block, err := aes.NewCipher(c.key)
	if err != nil {
		return "", err
	}

	iv := make([]byte, ivLength)
	if _, err := rand.Read(iv); err != nil {
		return "", err
	}

	padded := pkcs7Pad([]byte(plaintext), aes.BlockSize)
	ciphertext := make([]byte, len(padded))
	cipher.NewCBCEncrypter(block, iv).CryptBlocks(ciphertext, padded)

	return hex.EncodeToString(iv) + ":" + hex.EncodeToString(ciphertext), nil
}

// Decrypt recovers the plaintext from a storage envelope. An empty envelope
// decrypts to an empty string; anything else that does not round-trip yields
// ErrDecryption.
func (c *Cipher) Decrypt(envelope string) (string, error) {
	if envelope == "" {
		return "", nil
	}

	parts := strings.Split(envelope, ":")
	if len(parts) != 2 {
		return "", fmt.Errorf("%w: expected iv:ciphertext", ErrDecryption)
	}

	iv, err := hex.DecodeString(parts[0])
	if err != nil || len(iv) != ivLength {
		return "", fmt.Errorf("%w: bad iv", ErrDecryption)
	}

	ciphertext, err := hex.DecodeString(parts[1])
	if err != nil || len(ciphertext) == 0 || len(ciphertext)%aes.BlockSize != 0 {
		return "", fmt.Errorf("%w: bad ciphertext", ErrDecryption)
	}

	block, err := aes.NewCipher(c.key)
	if err != nil {
		return "", err
	}

	plaintext := make([]byte, len(ciphertext))
	cipher.NewCBCDecrypter(block, iv).CryptBlocks(plaintext, ciphertext)

	unpadded, err := pkcs7Unpad(plaintext, aes.BlockSize)
	if err != nil {
		return "", fmt.Errorf("%w: bad padding", ErrDecryption)
	}
	return string(unpadded), nil
}

func pkcs7Pad(data []byte, blockSize int) []byte {
	padding := blockSize - len(data)%blockSize
	padded := make([]byte, len(data)+padding)
	copy(padded, data)
	for i := len(data); i < len(padded); i++ {
		padded[i] = byte(padding)
	}
	return padded
}

func pkcs7Unpad(data []byte, blockSize int) ([]byte, error) {
	if len(data) == 0 || len(data)%blockSize != 0 {
		return nil, errors.New("invalid padded length")
	}
	padding := int(data[len(data)-1])
	if padding == 0 || padding > blockSize || padding > len(data) {
		return nil, errors.New("invalid padding byte")
	}
	for _, b := range data[len(data)-padding:] {
		if int(b) != padding {
			return nil, errors.New("inconsistent padding")
		}
	}
	return data[:len(data)-padding], nil
}
