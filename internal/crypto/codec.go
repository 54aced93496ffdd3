// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"bytes"
	"crypto/aes"
	"crypto/cipher"
	"encoding/base64"
	"fmt"
	"unicode/utf8"
)

// KeySize is the required byte length of both the key and the IV.
const KeySize = 16

// paramCodec is the private implementation of [Codec].
type paramCodec struct {
	block cipher.Block
	iv    []byte
}

// NewParamCodec constructs a [Codec] from the UTF-8 bytes of key and iv.
// Both must be exactly [KeySize] bytes; they are never padded or truncated.
func NewParamCodec(key, iv string) (Codec, error) {
	if len(key) != KeySize {
		return nil, fmt.Errorf("%w: key has %d bytes", ErrInvalidKeyLength, len(key))
	}
	if len(iv) != KeySize {
		return nil, fmt.Errorf("%w: iv has %d bytes", ErrInvalidKeyLength, len(iv))
	}

	block, err := aes.NewCipher([]byte(key))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConfig, err)
	}

	return &paramCodec{
		block: block,
		iv:    []byte(iv),
	}, nil
}

// Encrypt implements [Codec].
func (c *paramCodec) Encrypt(plaintext string) string {
	padded := pkcs7Pad([]byte(plaintext), aes.BlockSize)

	out := make([]byte, len(padded))
	// a fresh BlockMode per call: CBC modes carry chaining state
	cipher.NewCBCEncrypter(c.block, c.iv).CryptBlocks(out, padded)

	return base64.StdEncoding.EncodeToString(out)
}

// Decrypt implements [Codec].
func (c *paramCodec) Decrypt(ciphertext string) (string, error) {
	raw, err := base64.StdEncoding.DecodeString(ciphertext)
	if err != nil {
		return "", fmt.Errorf("%w: decode base64: %w", ErrDecryption, err)
	}
	if len(raw) == 0 || len(raw)%aes.BlockSize != 0 {
		return "", fmt.Errorf("%w: ciphertext length %d is not a multiple of %d", ErrDecryption, len(raw), aes.BlockSize)
	}

	out := make([]byte, len(raw))
	cipher.NewCBCDecrypter(c.block, c.iv).CryptBlocks(out, raw)

	plain, err := pkcs7Unpad(out, aes.BlockSize)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrDecryption, err)
	}
	if !utf8.Valid(plain) {
		return "", fmt.Errorf("%w: plaintext is not valid UTF-8", ErrDecryption)
	}

	return string(plain), nil
}

func pkcs7Pad(data []byte, blockSize int) []byte {
	n := blockSize - len(data)%blockSize
	return append(data, bytes.Repeat([]byte{byte(n)}, n)...)
}

func pkcs7Unpad(data []byte, blockSize int) ([]byte, error) {
	n := int(data[len(data)-1])
	if n == 0 || n > blockSize || n > len(data) {
		return nil, fmt.Errorf("invalid padding size %d", n)
	}
	for _, b := range data[len(data)-n:] {
		if int(b) != n {
			return nil, fmt.Errorf("invalid padding byte")
		}
	}
	return data[:len(data)-n], nil
}
