package hybrid

import (
	"crypto/ecdh"
	"crypto/rand"
	"fmt"

	"google.golang.org/protobuf/types/known/anypb"

	"xdao.co/keyreg/registry"
)

// Type URLs handled by this package. Type URLs are opaque, immutable
// identifiers; they are compared byte-exactly and must never be reused for a
// different key format.
const (
	ECIESAEADHKDFPrivateKeyTypeURL = "type.xdao.co/keyreg.EciesAeadHkdfPrivateKey"
	ECIESAEADHKDFPublicKeyTypeURL  = "type.xdao.co/keyreg.EciesAeadHkdfPublicKey"
)

const eciesKeyManagerVersion = 0

type eciesAEADHKDFPrivateKeyManager struct{}

var _ registry.KeyManager = (*eciesAEADHKDFPrivateKeyManager)(nil)

func (km *eciesAEADHKDFPrivateKeyManager) Primitive(serializedKey []byte) (any, error) {
	keyVersion, scalar, err := parseKey(serializedKey, rolePrivate, p256ScalarSize)
	if err != nil {
		return nil, err
	}
	if keyVersion > eciesKeyManagerVersion {
		return nil, fmt.Errorf("hybrid: key version %d is newer than key manager version %d", keyVersion, eciesKeyManagerVersion)
	}
	priv, err := ecdh.P256().NewPrivateKey(scalar)
	if err != nil {
		return nil, fmt.Errorf("hybrid: invalid private key: %w", err)
	}
	return &eciesHKDFDecrypt{priv: priv}, nil
}

func (km *eciesAEADHKDFPrivateKeyManager) NewKey(serializedFormat []byte) ([]byte, error) {
	if err := validateKeyFormat(serializedFormat); err != nil {
		return nil, err
	}
	priv, err := ecdh.P256().GenerateKey(rand.Reader)
	if err != nil {
		return nil, fmt.Errorf("hybrid: key generation failed: %w", err)
	}
	return marshalKey(rolePrivate, eciesKeyManagerVersion, priv.Bytes()), nil
}

func (km *eciesAEADHKDFPrivateKeyManager) NewKeyData(serializedFormat []byte) (*anypb.Any, error) {
	serializedKey, err := km.NewKey(serializedFormat)
	if err != nil {
		return nil, err
	}
	return &anypb.Any{TypeUrl: ECIESAEADHKDFPrivateKeyTypeURL, Value: serializedKey}, nil
}

func (km *eciesAEADHKDFPrivateKeyManager) DoesSupport(typeURL string) bool {
	return typeURL == ECIESAEADHKDFPrivateKeyTypeURL
}

func (km *eciesAEADHKDFPrivateKeyManager) TypeURL() string {
	return ECIESAEADHKDFPrivateKeyTypeURL
}

func (km *eciesAEADHKDFPrivateKeyManager) Version() uint32 {
	return eciesKeyManagerVersion
}

type eciesAEADHKDFPublicKeyManager struct{}

var _ registry.KeyManager = (*eciesAEADHKDFPublicKeyManager)(nil)

func (km *eciesAEADHKDFPublicKeyManager) Primitive(serializedKey []byte) (any, error) {
	keyVersion, point, err := parseKey(serializedKey, rolePublic, p256PointSize)
	if err != nil {
		return nil, err
	}
	if keyVersion > eciesKeyManagerVersion {
		return nil, fmt.Errorf("hybrid: key version %d is newer than key manager version %d", keyVersion, eciesKeyManagerVersion)
	}
	pub, err := ecdh.P256().NewPublicKey(point)
	if err != nil {
		return nil, fmt.Errorf("hybrid: invalid public key: %w", err)
	}
	return &eciesHKDFEncrypt{recipient: pub}, nil
}

func (km *eciesAEADHKDFPublicKeyManager) NewKey(serializedFormat []byte) ([]byte, error) {
	return nil, fmt.Errorf("hybrid: public key manager does not generate keys")
}

func (km *eciesAEADHKDFPublicKeyManager) NewKeyData(serializedFormat []byte) (*anypb.Any, error) {
	return nil, fmt.Errorf("hybrid: public key manager does not generate keys")
}

func (km *eciesAEADHKDFPublicKeyManager) DoesSupport(typeURL string) bool {
	return typeURL == ECIESAEADHKDFPublicKeyTypeURL
}

func (km *eciesAEADHKDFPublicKeyManager) TypeURL() string {
	return ECIESAEADHKDFPublicKeyTypeURL
}

func (km *eciesAEADHKDFPublicKeyManager) Version() uint32 {
	return eciesKeyManagerVersion
}

// validateKeyFormat accepts an empty format (default parameters). There is
// a single parameter set today; a non-empty format is rejected rather than
// silently ignored.
func validateKeyFormat(serializedFormat []byte) error {
	if len(serializedFormat) != 0 {
		return fmt.Errorf("hybrid: unsupported key format")
	}
	return nil
}

// PublicKeyDataFromPrivate derives the public key data for an
// ECIES-AEAD-HKDF private key data envelope.
func PublicKeyDataFromPrivate(privateKeyData *anypb.Any) (*anypb.Any, error) {
	if privateKeyData == nil {
		return nil, fmt.Errorf("hybrid: nil key data")
	}
	if privateKeyData.TypeUrl != ECIESAEADHKDFPrivateKeyTypeURL {
		return nil, fmt.Errorf("hybrid: key data has type_url %q, want %q", privateKeyData.TypeUrl, ECIESAEADHKDFPrivateKeyTypeURL)
	}
	keyVersion, scalar, err := parseKey(privateKeyData.Value, rolePrivate, p256ScalarSize)
	if err != nil {
		return nil, err
	}
	priv, err := ecdh.P256().NewPrivateKey(scalar)
	if err != nil {
		return nil, fmt.Errorf("hybrid: invalid private key: %w", err)
	}
	return &anypb.Any{
		TypeUrl: ECIESAEADHKDFPublicKeyTypeURL,
		Value:   marshalKey(rolePublic, keyVersion, priv.PublicKey().Bytes()),
	}, nil
}
