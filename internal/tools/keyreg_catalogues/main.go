// keyreg_catalogues lists the built-in catalogues with their registered
// key-type URLs and key-manager versions.
package main

import (
	"fmt"
	"os"

	"xdao.co/keyreg/hybrid"
	"xdao.co/keyreg/registry"
	"xdao.co/keyreg/signature"
)

func main() {
	type build struct {
		name string
		fn   func() (*registry.Catalogue, error)
	}
	builds := []build{
		{"hybrid decrypt", hybrid.NewDecryptCatalogue},
		{"hybrid encrypt", hybrid.NewEncryptCatalogue},
		{"signature sign", signature.NewSignCatalogue},
		{"signature verify", signature.NewVerifyCatalogue},
	}

	for _, b := range builds {
		cat, err := b.fn()
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s: %v\n", b.name, err)
			os.Exit(1)
		}
		fmt.Printf("%s (primitive %q)\n", b.name, cat.Primitive())
		for _, typeURL := range cat.TypeURLs() {
			km, err := cat.Resolve(typeURL, cat.Primitive(), 0)
			if err != nil {
				fmt.Fprintf(os.Stderr, "%s: resolve %s: %v\n", b.name, typeURL, err)
				os.Exit(1)
			}
			fmt.Printf("  %s (version %d)\n", typeURL, km.Version())
		}
	}
}
