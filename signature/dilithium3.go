package signature

import (
	"crypto/rand"
	"fmt"
	"io"

	"github.com/cloudflare/circl/sign/dilithium/mode3"
	"google.golang.org/protobuf/types/known/anypb"

	"xdao.co/keyreg/registry"
)

const (
	Dilithium3PrivateKeyTypeURL = "type.xdao.co/keyreg.Dilithium3PrivateKey"
	Dilithium3PublicKeyTypeURL  = "type.xdao.co/keyreg.Dilithium3PublicKey"
)

const dilithium3KeyManagerVersion = 0

type dilithium3Signer struct {
	priv *mode3.PrivateKey
}

func (s *dilithium3Signer) Sign(message []byte) ([]byte, error) {
	sig := make([]byte, mode3.SignatureSize)
	mode3.SignTo(s.priv, message, sig)
	return sig, nil
}

type dilithium3Verifier struct {
	pub *mode3.PublicKey
}

func (v *dilithium3Verifier) Verify(message, sig []byte) error {
	if len(sig) != mode3.SignatureSize {
		return fmt.Errorf("signature: invalid dilithium3 signature length")
	}
	if !mode3.Verify(v.pub, message, sig) {
		return fmt.Errorf("signature: verification failed")
	}
	return nil
}

type dilithium3PrivateKeyManager struct{}

var _ registry.KeyManager = (*dilithium3PrivateKeyManager)(nil)

// Private keys are serialized as the mode3 seed; signing keys are expanded
// with NewKeyFromSeed on parse.
func (km *dilithium3PrivateKeyManager) Primitive(serializedKey []byte) (any, error) {
	keyVersion, seedBytes, err := parseKey(serializedKey, rolePrivate, mode3.SeedSize)
	if err != nil {
		return nil, err
	}
	if keyVersion > dilithium3KeyManagerVersion {
		return nil, fmt.Errorf("signature: key version %d is newer than key manager version %d", keyVersion, dilithium3KeyManagerVersion)
	}
	var seed [mode3.SeedSize]byte
	copy(seed[:], seedBytes)
	_, priv := mode3.NewKeyFromSeed(&seed)
	return &dilithium3Signer{priv: priv}, nil
}

func (km *dilithium3PrivateKeyManager) NewKey(serializedFormat []byte) ([]byte, error) {
	if err := validateKeyFormat(serializedFormat); err != nil {
		return nil, err
	}
	seed := make([]byte, mode3.SeedSize)
	if _, err := io.ReadFull(rand.Reader, seed); err != nil {
		return nil, fmt.Errorf("signature: key generation failed: %w", err)
	}
	return marshalKey(rolePrivate, dilithium3KeyManagerVersion, seed), nil
}

func (km *dilithium3PrivateKeyManager) NewKeyData(serializedFormat []byte) (*anypb.Any, error) {
	serializedKey, err := km.NewKey(serializedFormat)
	if err != nil {
		return nil, err
	}
	return &anypb.Any{TypeUrl: Dilithium3PrivateKeyTypeURL, Value: serializedKey}, nil
}

func (km *dilithium3PrivateKeyManager) DoesSupport(typeURL string) bool {
	return typeURL == Dilithium3PrivateKeyTypeURL
}

func (km *dilithium3PrivateKeyManager) TypeURL() string {
	return Dilithium3PrivateKeyTypeURL
}

func (km *dilithium3PrivateKeyManager) Version() uint32 {
	return dilithium3KeyManagerVersion
}

type dilithium3PublicKeyManager struct{}

var _ registry.KeyManager = (*dilithium3PublicKeyManager)(nil)

func (km *dilithium3PublicKeyManager) Primitive(serializedKey []byte) (any, error) {
	keyVersion, packed, err := parseKey(serializedKey, rolePublic, mode3.PublicKeySize)
	if err != nil {
		return nil, err
	}
	if keyVersion > dilithium3KeyManagerVersion {
		return nil, fmt.Errorf("signature: key version %d is newer than key manager version %d", keyVersion, dilithium3KeyManagerVersion)
	}
	var pub mode3.PublicKey
	if err := pub.UnmarshalBinary(packed); err != nil {
		return nil, fmt.Errorf("signature: invalid dilithium3 public key: %w", err)
	}
	return &dilithium3Verifier{pub: &pub}, nil
}

func (km *dilithium3PublicKeyManager) NewKey(serializedFormat []byte) ([]byte, error) {
	return nil, fmt.Errorf("signature: public key manager does not generate keys")
}

func (km *dilithium3PublicKeyManager) NewKeyData(serializedFormat []byte) (*anypb.Any, error) {
	return nil, fmt.Errorf("signature: public key manager does not generate keys")
}

func (km *dilithium3PublicKeyManager) DoesSupport(typeURL string) bool {
	return typeURL == Dilithium3PublicKeyTypeURL
}

func (km *dilithium3PublicKeyManager) TypeURL() string {
	return Dilithium3PublicKeyTypeURL
}

func (km *dilithium3PublicKeyManager) Version() uint32 {
	return dilithium3KeyManagerVersion
}

// validateKeyFormat accepts an empty format (default parameters).
func validateKeyFormat(serializedFormat []byte) error {
	if len(serializedFormat) != 0 {
		return fmt.Errorf("signature: unsupported key format")
	}
	return nil
}
