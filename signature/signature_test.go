package signature

import (
	"strings"
	"testing"

	"xdao.co/keyreg/registry"
)

func signCatalogue(t *testing.T) *registry.Catalogue {
	t.Helper()
	cat, err := NewSignCatalogue()
	if err != nil {
		t.Fatalf("NewSignCatalogue: %v", err)
	}
	return cat
}

func verifyCatalogue(t *testing.T) *registry.Catalogue {
	t.Helper()
	cat, err := NewVerifyCatalogue()
	if err != nil {
		t.Fatalf("NewVerifyCatalogue: %v", err)
	}
	return cat
}

func TestSignCatalogue_ServesBothKeyTypes(t *testing.T) {
	cat := signCatalogue(t)

	for _, typeURL := range []string{Ed25519PrivateKeyTypeURL, Dilithium3PrivateKeyTypeURL} {
		km, err := cat.Resolve(typeURL, "PublicKeySign", 0)
		if err != nil {
			t.Fatalf("Resolve(%q): %v", typeURL, err)
		}
		if km.TypeURL() != typeURL {
			t.Errorf("Resolve(%q): TypeURL %q", typeURL, km.TypeURL())
		}
	}
}

func TestSignCatalogue_RejectsVerifyKeyTypes(t *testing.T) {
	cat := signCatalogue(t)

	for _, typeURL := range []string{Ed25519PublicKeyTypeURL, Dilithium3PublicKeyTypeURL} {
		if _, err := cat.Resolve(typeURL, "PublicKeySign", 0); !registry.IsNotFound(err) {
			t.Errorf("Resolve(%q): expected NOT_FOUND, got %v", typeURL, err)
		}
	}
}

func TestSignCatalogue_RejectsOtherPrimitives(t *testing.T) {
	cat := signCatalogue(t)

	_, err := cat.Resolve(Ed25519PrivateKeyTypeURL, "PublicKeyVerify", 0)
	if !registry.IsNotFound(err) {
		t.Fatalf("expected NOT_FOUND, got %v", err)
	}
	if !strings.Contains(err.Error(), "does not support primitive PublicKeyVerify") {
		t.Errorf("unexpected message: %v", err)
	}
}

func TestSignCatalogue_VersionFloor(t *testing.T) {
	cat := signCatalogue(t)

	if _, err := cat.Resolve(Ed25519PrivateKeyTypeURL, "publickeysign", 1); !registry.IsNotFound(err) {
		t.Fatalf("expected NOT_FOUND for min version 1, got %v", err)
	}
}

func TestSignVerifyRoundTrip(t *testing.T) {
	signCat := signCatalogue(t)
	verifyCat := verifyCatalogue(t)

	cases := []struct {
		name        string
		privTypeURL string
	}{
		{"ed25519", Ed25519PrivateKeyTypeURL},
		{"dilithium3", Dilithium3PrivateKeyTypeURL},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			privKM, err := signCat.Resolve(tc.privTypeURL, "publickeysign", 0)
			if err != nil {
				t.Fatalf("Resolve private: %v", err)
			}
			privKeyData, err := privKM.NewKeyData(nil)
			if err != nil {
				t.Fatalf("NewKeyData: %v", err)
			}
			pubKeyData, err := PublicKeyDataFromPrivate(privKeyData)
			if err != nil {
				t.Fatalf("PublicKeyDataFromPrivate: %v", err)
			}
			pubKM, err := verifyCat.Resolve(pubKeyData.TypeUrl, "publickeyverify", 0)
			if err != nil {
				t.Fatalf("Resolve public: %v", err)
			}

			signerAny, err := privKM.Primitive(privKeyData.Value)
			if err != nil {
				t.Fatalf("private Primitive: %v", err)
			}
			verifierAny, err := pubKM.Primitive(pubKeyData.Value)
			if err != nil {
				t.Fatalf("public Primitive: %v", err)
			}
			signer := signerAny.(Signer)
			verifier := verifierAny.(Verifier)

			message := []byte("resolution must be deterministic")
			sig, err := signer.Sign(message)
			if err != nil {
				t.Fatalf("Sign: %v", err)
			}
			if err := verifier.Verify(message, sig); err != nil {
				t.Errorf("Verify: %v", err)
			}
			if err := verifier.Verify([]byte("another message"), sig); err == nil {
				t.Error("Verify should fail for a different message")
			}
			if len(sig) > 0 {
				sig[0] ^= 0x01
				if err := verifier.Verify(message, sig); err == nil {
					t.Error("Verify should fail for a corrupted signature")
				}
			}
		})
	}
}

func TestPrivateKeyManagers_RejectBadKeys(t *testing.T) {
	managers := []registry.KeyManager{
		new(ed25519PrivateKeyManager),
		new(dilithium3PrivateKeyManager),
	}
	for _, km := range managers {
		valid, err := km.NewKey(nil)
		if err != nil {
			t.Fatalf("%s: NewKey: %v", km.TypeURL(), err)
		}
		bad := [][]byte{
			nil,
			valid[:3],
			append([]byte("XX"), valid[2:]...),
			valid[:len(valid)-1],
			append(append([]byte(nil), valid...), 0x00),
		}
		for i, key := range bad {
			if _, err := km.Primitive(key); err == nil {
				t.Errorf("%s: case %d: Primitive should fail", km.TypeURL(), i)
			}
		}
	}
}

func TestPublicKeyManagers_DoNotGenerateKeys(t *testing.T) {
	managers := []registry.KeyManager{
		new(ed25519PublicKeyManager),
		new(dilithium3PublicKeyManager),
	}
	for _, km := range managers {
		if _, err := km.NewKey(nil); err == nil {
			t.Errorf("%s: NewKey should fail", km.TypeURL())
		}
		if _, err := km.NewKeyData(nil); err == nil {
			t.Errorf("%s: NewKeyData should fail", km.TypeURL())
		}
	}
}

func TestPublicKeyDataFromPrivate_UnsupportedTypeURL(t *testing.T) {
	if _, err := PublicKeyDataFromPrivate(nil); err == nil {
		t.Error("expected error for nil key data")
	}
	km := new(ed25519PrivateKeyManager)
	keyData, err := km.NewKeyData(nil)
	if err != nil {
		t.Fatal(err)
	}
	keyData.TypeUrl = "type.xdao.co/keyreg.Unknown"
	if _, err := PublicKeyDataFromPrivate(keyData); err == nil {
		t.Error("expected error for unsupported type_url")
	}
}
