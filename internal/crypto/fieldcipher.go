// Package crypto implements the per-field encryption scheme used for
// sensitive profile attributes. Fields are encrypted with AES-256-CBC under
// one process-wide key; every ciphertext is stored alongside its own
// hex-encoded 16-byte IV. There is no authentication tag, so a corrupted
// ciphertext or mismatched IV surfaces as a padding error, not a tamper
// signal.
package crypto

import (
	"bytes"
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/hex"
	"fmt"
)

type FieldCipher struct {
	key []byte
}

// New returns a FieldCipher holding the 32-byte process-wide key.
func New(key []byte) (*FieldCipher, error) {
	if len(key) != 32 {
		return nil, fmt.Errorf("field cipher key must be 32 bytes, got %d", len(key))
	}
	return &FieldCipher{key: key}, nil
}

// GenerateIV returns 16 cryptographically random bytes, hex-encoded for
// storage next to the ciphertext.
func GenerateIV() (string, error) {
	iv := make([]byte, aes.BlockSize)
	if _, err := rand.Read(iv); err != nil {
		return "", fmt.Errorf("failed to generate IV: %v", err)
	}
	return hex.EncodeToString(iv), nil
}

// Encrypt encrypts plaintext with the caller-supplied IV and returns the
// ciphertext hex-encoded. Encryption is deterministic for a fixed key+IV.
func (fc *FieldCipher) Encrypt(plaintext, ivHex string) (string, error) {
	iv, err := hex.DecodeString(ivHex)
	if err != nil {
		return "", fmt.Errorf("invalid IV encoding: %v", err)
	}
	if len(iv) != aes.BlockSize {
		return "", fmt.Errorf("IV must be %d bytes, got %d", aes.BlockSize, len(iv))
	}

	block, err := aes.NewCipher(fc.key)
	if err != nil {
		return "", err
	}

	padded := pkcs7Pad([]byte(plaintext), aes.BlockSize)
	out := make([]byte, len(padded))
	cipher.NewCBCEncrypter(block, iv).CryptBlocks(out, padded)

	return hex.EncodeToString(out), nil
}

// Decrypt reverses Encrypt. The same key+IV pair that produced the
// ciphertext must be supplied; anything else fails with a padding error.
func (fc *FieldCipher) Decrypt(cipherHex, ivHex string) (string, error) {
	iv, err := hex.DecodeString(ivHex)
	if err != nil {
		return "", fmt.Errorf("invalid IV encoding: %v", err)
	}
	if len(iv) != aes.BlockSize {
		return "", fmt.Errorf("IV must be %d bytes, got %d", aes.BlockSize, len(iv))
	}

	data, err := hex.DecodeString(cipherHex)
	if err != nil {
		return "", fmt.Errorf("invalid ciphertext encoding: %v", err)
	}
	if len(data) == 0 || len(data)%aes.BlockSize != 0 {
		return "", fmt.Errorf("ciphertext length must be a multiple of %d bytes", aes.BlockSize)
	}

	block, err := aes.NewCipher(fc.key)
	if err != nil {
		return "", err
	}

	out := make([]byte, len(data))
	cipher.NewCBCDecrypter(block, iv).CryptBlocks(out, data)

	unpadded, err := pkcs7Unpad(out, aes.BlockSize)
	if err != nil {
		return "", err
	}
	return string(unpadded), nil
}

func pkcs7Pad(data []byte, blockSize int) []byte {
	n := blockSize - len(data)%blockSize
	return append(data, bytes.Repeat([]byte{byte(n)}, n)...)
}

func pkcs7Unpad(data []byte, blockSize int) ([]byte, error) {
	if len(data) == 0 || len(data)%blockSize != 0 {
		return nil, fmt.Errorf("invalid padded data length %d", len(data))
	}
	n := int(data[len(data)-1])
	if n == 0 || n > blockSize {
		return nil, fmt.Errorf("invalid padding")
	}
	for _, b := range data[len(data)-n:] {
		if int(b) != n {
			return nil, fmt.Errorf("invalid padding")
		}
	}
	return data[:len(data)-n], nil
}
