package hybrid

import (
	"xdao.co/keyreg/registry"
)

// NewDecryptCatalogue returns the catalogue serving the "hybriddecrypt"
// primitive kind.
func NewDecryptCatalogue() (*registry.Catalogue, error) {
	return registry.NewCatalogue("HybridDecrypt",
		func() registry.KeyManager { return new(eciesAEADHKDFPrivateKeyManager) },
	)
}

// NewEncryptCatalogue returns the catalogue serving the "hybridencrypt"
// primitive kind.
func NewEncryptCatalogue() (*registry.Catalogue, error) {
	return registry.NewCatalogue("HybridEncrypt",
		func() registry.KeyManager { return new(eciesAEADHKDFPublicKeyManager) },
	)
}
