// Package signature provides digital-signature key managers and the
// catalogues that resolve them.
//
// Two key types are registered per catalogue: Ed25519 and Dilithium3
// (post-quantum).
package signature

// Signer produces signatures over messages.
type Signer interface {
	Sign(message []byte) ([]byte, error)
}

// Verifier checks signatures over messages.
type Verifier interface {
	Verify(message, sig []byte) error
}
