package signature

import (
	"crypto/ed25519"
	"crypto/rand"
	"fmt"
	"io"

	"google.golang.org/protobuf/types/known/anypb"

	"xdao.co/keyreg/registry"
)

const (
	Ed25519PrivateKeyTypeURL = "type.xdao.co/keyreg.Ed25519PrivateKey"
	Ed25519PublicKeyTypeURL  = "type.xdao.co/keyreg.Ed25519PublicKey"
)

const ed25519KeyManagerVersion = 0

type ed25519Signer struct {
	priv ed25519.PrivateKey
}

func (s *ed25519Signer) Sign(message []byte) ([]byte, error) {
	return ed25519.Sign(s.priv, message), nil
}

type ed25519Verifier struct {
	pub ed25519.PublicKey
}

func (v *ed25519Verifier) Verify(message, sig []byte) error {
	if !ed25519.Verify(v.pub, message, sig) {
		return fmt.Errorf("signature: verification failed")
	}
	return nil
}

type ed25519PrivateKeyManager struct{}

var _ registry.KeyManager = (*ed25519PrivateKeyManager)(nil)

func (km *ed25519PrivateKeyManager) Primitive(serializedKey []byte) (any, error) {
	keyVersion, seed, err := parseKey(serializedKey, rolePrivate, ed25519.SeedSize)
	if err != nil {
		return nil, err
	}
	if keyVersion > ed25519KeyManagerVersion {
		return nil, fmt.Errorf("signature: key version %d is newer than key manager version %d", keyVersion, ed25519KeyManagerVersion)
	}
	return &ed25519Signer{priv: ed25519.NewKeyFromSeed(seed)}, nil
}

func (km *ed25519PrivateKeyManager) NewKey(serializedFormat []byte) ([]byte, error) {
	if err := validateKeyFormat(serializedFormat); err != nil {
		return nil, err
	}
	seed := make([]byte, ed25519.SeedSize)
	if _, err := io.ReadFull(rand.Reader, seed); err != nil {
		return nil, fmt.Errorf("signature: key generation failed: %w", err)
	}
	return marshalKey(rolePrivate, ed25519KeyManagerVersion, seed), nil
}

func (km *ed25519PrivateKeyManager) NewKeyData(serializedFormat []byte) (*anypb.Any, error) {
	serializedKey, err := km.NewKey(serializedFormat)
	if err != nil {
		return nil, err
	}
	return &anypb.Any{TypeUrl: Ed25519PrivateKeyTypeURL, Value: serializedKey}, nil
}

func (km *ed25519PrivateKeyManager) DoesSupport(typeURL string) bool {
	return typeURL == Ed25519PrivateKeyTypeURL
}

func (km *ed25519PrivateKeyManager) TypeURL() string {
	return Ed25519PrivateKeyTypeURL
}

func (km *ed25519PrivateKeyManager) Version() uint32 {
	return ed25519KeyManagerVersion
}

type ed25519PublicKeyManager struct{}

var _ registry.KeyManager = (*ed25519PublicKeyManager)(nil)

func (km *ed25519PublicKeyManager) Primitive(serializedKey []byte) (any, error) {
	keyVersion, pub, err := parseKey(serializedKey, rolePublic, ed25519.PublicKeySize)
	if err != nil {
		return nil, err
	}
	if keyVersion > ed25519KeyManagerVersion {
		return nil, fmt.Errorf("signature: key version %d is newer than key manager version %d", keyVersion, ed25519KeyManagerVersion)
	}
	return &ed25519Verifier{pub: ed25519.PublicKey(pub)}, nil
}

func (km *ed25519PublicKeyManager) NewKey(serializedFormat []byte) ([]byte, error) {
	return nil, fmt.Errorf("signature: public key manager does not generate keys")
}

func (km *ed25519PublicKeyManager) NewKeyData(serializedFormat []byte) (*anypb.Any, error) {
	return nil, fmt.Errorf("signature: public key manager does not generate keys")
}

func (km *ed25519PublicKeyManager) DoesSupport(typeURL string) bool {
	return typeURL == Ed25519PublicKeyTypeURL
}

func (km *ed25519PublicKeyManager) TypeURL() string {
	return Ed25519PublicKeyTypeURL
}

func (km *ed25519PublicKeyManager) Version() uint32 {
	return ed25519KeyManagerVersion
}
