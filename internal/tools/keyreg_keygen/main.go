// keyreg_keygen generates key data for a named template, prints its
// fingerprint to stderr and writes the proto-serialized key data envelope to
// stdout or a file.
package main

import (
	"flag"
	"fmt"
	"os"

	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/anypb"

	"xdao.co/keyreg/hybrid"
	"xdao.co/keyreg/keyid"
	"xdao.co/keyreg/registry"
	"xdao.co/keyreg/signature"
)

func main() {
	out := flag.String("out", "", "write key data to this file instead of stdout")
	flag.Usage = func() {
		fmt.Fprintln(os.Stderr, "usage: keyreg_keygen [-out file] <ecies-p256|ed25519|dilithium3>")
		flag.PrintDefaults()
	}
	flag.Parse()
	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}

	keyData, err := generate(flag.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "generate: %v\n", err)
		os.Exit(1)
	}

	fp, err := keyid.Fingerprint(keyData)
	if err != nil {
		fmt.Fprintf(os.Stderr, "fingerprint: %v\n", err)
		os.Exit(1)
	}
	fmt.Fprintf(os.Stderr, "type_url:    %s\n", keyData.TypeUrl)
	fmt.Fprintf(os.Stderr, "fingerprint: %s\n", fp)

	b, err := proto.Marshal(keyData)
	if err != nil {
		fmt.Fprintf(os.Stderr, "marshal: %v\n", err)
		os.Exit(1)
	}
	if *out == "" {
		if _, err := os.Stdout.Write(b); err != nil {
			fmt.Fprintf(os.Stderr, "write: %v\n", err)
			os.Exit(1)
		}
		return
	}
	if err := os.WriteFile(*out, b, 0o600); err != nil {
		fmt.Fprintf(os.Stderr, "write: %v\n", err)
		os.Exit(1)
	}
}

func generate(template string) (*anypb.Any, error) {
	var (
		cat     *registry.Catalogue
		err     error
		typeURL string
		kind    string
	)
	switch template {
	case "ecies-p256":
		cat, err = hybrid.NewDecryptCatalogue()
		typeURL = hybrid.ECIESAEADHKDFPrivateKeyTypeURL
		kind = "HybridDecrypt"
	case "ed25519":
		cat, err = signature.NewSignCatalogue()
		typeURL = signature.Ed25519PrivateKeyTypeURL
		kind = "PublicKeySign"
	case "dilithium3":
		cat, err = signature.NewSignCatalogue()
		typeURL = signature.Dilithium3PrivateKeyTypeURL
		kind = "PublicKeySign"
	default:
		return nil, fmt.Errorf("unknown template %q", template)
	}
	if err != nil {
		return nil, err
	}
	km, err := cat.Resolve(typeURL, kind, 0)
	if err != nil {
		return nil, err
	}
	return km.NewKeyData(nil)
}
