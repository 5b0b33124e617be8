package hybrid

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/ecdh"
	"crypto/rand"
	"crypto/sha256"
	"fmt"
	"io"

	"golang.org/x/crypto/hkdf"
)

const (
	aeadKeySize  = 32
	gcmNonceSize = 12
)

// eciesHKDFEncrypt implements HybridEncrypt for a recipient P-256 public key.
// Ciphertext layout: ephemeral point (65 bytes) | nonce (12 bytes) | AES-GCM
// ciphertext+tag.
type eciesHKDFEncrypt struct {
	recipient *ecdh.PublicKey
}

func (e *eciesHKDFEncrypt) Encrypt(plaintext, contextInfo []byte) ([]byte, error) {
	ephemeral, err := ecdh.P256().GenerateKey(rand.Reader)
	if err != nil {
		return nil, fmt.Errorf("hybrid: ephemeral key generation failed: %w", err)
	}
	shared, err := ephemeral.ECDH(e.recipient)
	if err != nil {
		return nil, fmt.Errorf("hybrid: key agreement failed: %w", err)
	}
	defer clear(shared)

	aead, err := newAEAD(shared, contextInfo)
	if err != nil {
		return nil, err
	}

	nonce := make([]byte, gcmNonceSize)
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return nil, fmt.Errorf("hybrid: nonce generation failed: %w", err)
	}

	ephemeralBytes := ephemeral.PublicKey().Bytes()
	out := make([]byte, 0, len(ephemeralBytes)+gcmNonceSize+len(plaintext)+16)
	out = append(out, ephemeralBytes...)
	out = append(out, nonce...)
	return aead.Seal(out, nonce, plaintext, nil), nil
}

// eciesHKDFDecrypt implements HybridDecrypt for a P-256 private key.
type eciesHKDFDecrypt struct {
	priv *ecdh.PrivateKey
}

func (d *eciesHKDFDecrypt) Decrypt(ciphertext, contextInfo []byte) ([]byte, error) {
	if len(ciphertext) < p256PointSize+gcmNonceSize {
		return nil, fmt.Errorf("hybrid: ciphertext too short")
	}
	ephemeral, err := ecdh.P256().NewPublicKey(ciphertext[:p256PointSize])
	if err != nil {
		return nil, fmt.Errorf("hybrid: invalid ephemeral point: %w", err)
	}
	shared, err := d.priv.ECDH(ephemeral)
	if err != nil {
		return nil, fmt.Errorf("hybrid: key agreement failed: %w", err)
	}
	defer clear(shared)

	aead, err := newAEAD(shared, contextInfo)
	if err != nil {
		return nil, err
	}

	nonce := ciphertext[p256PointSize : p256PointSize+gcmNonceSize]
	plaintext, err := aead.Open(nil, nonce, ciphertext[p256PointSize+gcmNonceSize:], nil)
	if err != nil {
		return nil, fmt.Errorf("hybrid: decryption failed")
	}
	return plaintext, nil
}

// newAEAD derives an AES-256-GCM AEAD from the ECDH shared secret using
// HKDF-SHA256, with contextInfo as the HKDF info parameter. Mismatched
// context info yields a different key and therefore an authentication
// failure, binding ciphertexts to their context.
func newAEAD(shared, contextInfo []byte) (cipher.AEAD, error) {
	key := make([]byte, aeadKeySize)
	if _, err := io.ReadFull(hkdf.New(sha256.New, shared, nil, contextInfo), key); err != nil {
		return nil, fmt.Errorf("hybrid: key derivation failed: %w", err)
	}
	defer clear(key)

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("hybrid: cipher construction failed: %w", err)
	}
	aead, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("hybrid: GCM construction failed: %w", err)
	}
	return aead, nil
}
