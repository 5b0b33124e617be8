// Package hybrid provides hybrid-encryption key managers and the catalogues
// that resolve them.
//
// The scheme is ECIES over NIST P-256 with HKDF-SHA256 key derivation and
// AES-256-GCM as the data-encapsulation AEAD.
package hybrid

// HybridEncrypt encrypts plaintext bound to contextInfo. Decryption only
// succeeds with the same contextInfo.
type HybridEncrypt interface {
	Encrypt(plaintext, contextInfo []byte) ([]byte, error)
}

// HybridDecrypt decrypts ciphertext produced by the matching HybridEncrypt
// under the same contextInfo.
type HybridDecrypt interface {
	Decrypt(ciphertext, contextInfo []byte) ([]byte, error)
}
