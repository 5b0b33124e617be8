package signature

import (
	"crypto/ed25519"
	"fmt"

	"github.com/cloudflare/circl/sign/dilithium/mode3"
	"google.golang.org/protobuf/types/known/anypb"

	"xdao.co/keyreg/registry"
)

// NewSignCatalogue returns the catalogue serving the "publickeysign"
// primitive kind.
func NewSignCatalogue() (*registry.Catalogue, error) {
	return registry.NewCatalogue("PublicKeySign",
		func() registry.KeyManager { return new(ed25519PrivateKeyManager) },
		func() registry.KeyManager { return new(dilithium3PrivateKeyManager) },
	)
}

// NewVerifyCatalogue returns the catalogue serving the "publickeyverify"
// primitive kind.
func NewVerifyCatalogue() (*registry.Catalogue, error) {
	return registry.NewCatalogue("PublicKeyVerify",
		func() registry.KeyManager { return new(ed25519PublicKeyManager) },
		func() registry.KeyManager { return new(dilithium3PublicKeyManager) },
	)
}

// PublicKeyDataFromPrivate derives the public key data for a private key
// data envelope of either registered signature key type.
func PublicKeyDataFromPrivate(privateKeyData *anypb.Any) (*anypb.Any, error) {
	if privateKeyData == nil {
		return nil, fmt.Errorf("signature: nil key data")
	}
	switch privateKeyData.TypeUrl {
	case Ed25519PrivateKeyTypeURL:
		keyVersion, seed, err := parseKey(privateKeyData.Value, rolePrivate, ed25519.SeedSize)
		if err != nil {
			return nil, err
		}
		pub := ed25519.NewKeyFromSeed(seed).Public().(ed25519.PublicKey)
		return &anypb.Any{
			TypeUrl: Ed25519PublicKeyTypeURL,
			Value:   marshalKey(rolePublic, keyVersion, pub),
		}, nil
	case Dilithium3PrivateKeyTypeURL:
		keyVersion, seedBytes, err := parseKey(privateKeyData.Value, rolePrivate, mode3.SeedSize)
		if err != nil {
			return nil, err
		}
		var seed [mode3.SeedSize]byte
		copy(seed[:], seedBytes)
		pub, _ := mode3.NewKeyFromSeed(&seed)
		packed, err := pub.MarshalBinary()
		if err != nil {
			return nil, fmt.Errorf("signature: public key serialization failed: %w", err)
		}
		return &anypb.Any{
			TypeUrl: Dilithium3PublicKeyTypeURL,
			Value:   marshalKey(rolePublic, keyVersion, packed),
		}, nil
	default:
		return nil, fmt.Errorf("signature: key data has unsupported type_url %q", privateKeyData.TypeUrl)
	}
}
