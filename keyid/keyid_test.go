package keyid

import (
	"strings"
	"testing"

	"google.golang.org/protobuf/types/known/anypb"
)

func TestFingerprint_Deterministic(t *testing.T) {
	keyData := &anypb.Any{TypeUrl: "type.xdao.co/keyreg.Ed25519PrivateKey", Value: []byte{1, 2, 3}}

	a, err := Fingerprint(keyData)
	if err != nil {
		t.Fatalf("Fingerprint: %v", err)
	}
	b, err := Fingerprint(keyData)
	if err != nil {
		t.Fatalf("Fingerprint: %v", err)
	}
	if a != b {
		t.Errorf("fingerprint not deterministic: %q vs %q", a, b)
	}
	// CIDv1 strings are lowercase base32 and start with "b".
	if !strings.HasPrefix(a, "b") {
		t.Errorf("unexpected CID form: %q", a)
	}
}

func TestFingerprint_SensitiveToInputs(t *testing.T) {
	base := &anypb.Any{TypeUrl: "type.xdao.co/keyreg.A", Value: []byte{1, 2, 3}}
	otherValue := &anypb.Any{TypeUrl: "type.xdao.co/keyreg.A", Value: []byte{1, 2, 4}}
	otherType := &anypb.Any{TypeUrl: "type.xdao.co/keyreg.B", Value: []byte{1, 2, 3}}

	fpBase, err := Fingerprint(base)
	if err != nil {
		t.Fatal(err)
	}
	fpValue, err := Fingerprint(otherValue)
	if err != nil {
		t.Fatal(err)
	}
	fpType, err := Fingerprint(otherType)
	if err != nil {
		t.Fatal(err)
	}
	if fpBase == fpValue {
		t.Error("fingerprint ignored value change")
	}
	if fpBase == fpType {
		t.Error("fingerprint ignored type_url change")
	}
}

func TestFingerprint_BoundaryIsUnambiguous(t *testing.T) {
	// Moving bytes between type URL and value must change the fingerprint.
	a := &anypb.Any{TypeUrl: "type.xdao.co/keyreg.AB", Value: []byte("C")}
	b := &anypb.Any{TypeUrl: "type.xdao.co/keyreg.A", Value: []byte("BC")}

	fpA, err := Fingerprint(a)
	if err != nil {
		t.Fatal(err)
	}
	fpB, err := Fingerprint(b)
	if err != nil {
		t.Fatal(err)
	}
	if fpA == fpB {
		t.Error("fingerprint collided across the type_url/value boundary")
	}
}

func TestFingerprint_InvalidInputs(t *testing.T) {
	if _, err := Fingerprint(nil); err == nil {
		t.Error("expected error for nil key data")
	}
	if _, err := Fingerprint(&anypb.Any{Value: []byte{1}}); err == nil {
		t.Error("expected error for missing type_url")
	}
}
