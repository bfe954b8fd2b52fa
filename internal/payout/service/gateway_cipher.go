// Package service implements the payout gateway's request cipher.
package service

import (
	"bytes"
	"crypto/aes"
	"crypto/cipher"
	"encoding/base64"
	"fmt"

	payoutDomain "github.com/bitesapp/security/internal/payout/domain"
)

// GatewayCipher encrypts payout bodies with AES-128-CBC and PKCS#7 padding, using the
// merchant identifier as a fixed IV.
//
// The fixed IV makes the cipher deterministic: equal plaintexts produce equal
// ciphertexts for a merchant. The gateway requires this layout and it must not be
// changed to a random IV. Do not use this type for anything but payout bodies.
type GatewayCipher struct {
	block cipher.Block
	iv    []byte
}

// NewGatewayCipher validates key and merchantID lengths before any cipher setup and
// returns a ready GatewayCipher.
func NewGatewayCipher(key, merchantID []byte) (*GatewayCipher, error) {
	if len(key) != payoutDomain.GatewayKeySize {
		return nil, fmt.Errorf("%w: got %d bytes", payoutDomain.ErrInvalidGatewayKey, len(key))
	}
	if len(merchantID) != payoutDomain.MerchantIDSize {
		return nil, fmt.Errorf("%w: got %d bytes", payoutDomain.ErrInvalidMerchantID, len(merchantID))
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("failed to create AES cipher: %w", err)
	}

	iv := make([]byte, len(merchantID))
	copy(iv, merchantID)

	return &GatewayCipher{block: block, iv: iv}, nil
}

// Encrypt pads plaintext and returns the CBC ciphertext as standard base64.
func (g *GatewayCipher) Encrypt(plaintext []byte) string {
	padded := pkcs7Pad(plaintext, aes.BlockSize)

	ciphertext := make([]byte, len(padded))
	cipher.NewCBCEncrypter(g.block, g.iv).CryptBlocks(ciphertext, padded)

	return base64.StdEncoding.EncodeToString(ciphertext)
}

// Decrypt reverses Encrypt. CBC carries no authentication, so a wrong key usually
// surfaces as a padding failure, reported as ErrInvalidCiphertext.
func (g *GatewayCipher) Decrypt(encoded string) ([]byte, error) {
	ciphertext, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", payoutDomain.ErrInvalidCiphertext, err)
	}
	if len(ciphertext) == 0 || len(ciphertext)%aes.BlockSize != 0 {
		return nil, fmt.Errorf("%w: length %d is not a positive multiple of %d",
			payoutDomain.ErrInvalidCiphertext, len(ciphertext), aes.BlockSize)
	}

	plaintext := make([]byte, len(ciphertext))
	cipher.NewCBCDecrypter(g.block, g.iv).CryptBlocks(plaintext, ciphertext)

	unpadded, err := pkcs7Unpad(plaintext, aes.BlockSize)
	if err != nil {
		return nil, err
	}
	return unpadded, nil
}

func pkcs7Pad(data []byte, blockSize int) []byte {
	n := blockSize - len(data)%blockSize
	return append(bytes.Clone(data), bytes.Repeat([]byte{byte(n)}, n)...)
}

func pkcs7Unpad(data []byte, blockSize int) ([]byte, error) {
	if len(data) == 0 || len(data)%blockSize != 0 {
		return nil, payoutDomain.ErrInvalidCiphertext
	}

	n := int(data[len(data)-1])
	if n == 0 || n > blockSize {
		return nil, payoutDomain.ErrInvalidCiphertext
	}
	for _, b := range data[len(data)-n:] {
		if int(b) != n {
			return nil, payoutDomain.ErrInvalidCiphertext
		}
	}
	return data[:len(data)-n], nil
}
