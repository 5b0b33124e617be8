package registry

import (
	"fmt"
	"sort"
	"strings"
)

// Catalogue resolves key-type URLs to key managers for a single primitive
// kind. The type-URL mapping is fixed at construction and never mutated, so
// a Catalogue is safe for unsynchronized concurrent use.
type Catalogue struct {
	primitive    string
	constructors map[string]Constructor
}

// NewCatalogue builds a catalogue serving the given primitive kind from an
// explicit list of key-manager constructors.
//
// Each constructor is invoked once here to learn its type URL; composition
// mistakes (nil constructor, empty or duplicate type URL, a manager that
// does not support its own type URL) fail at build time rather than at
// resolve time.
func NewCatalogue(primitiveName string, constructors ...Constructor) (*Catalogue, error) {
	if strings.TrimSpace(primitiveName) == "" {
		return nil, fmt.Errorf("registry: catalogue primitive name is required")
	}

	m := make(map[string]Constructor, len(constructors))
	for i, ctor := range constructors {
		if ctor == nil {
			return nil, fmt.Errorf("registry: constructor %d is nil", i)
		}
		km := ctor()
		if km == nil {
			return nil, fmt.Errorf("registry: constructor %d returned nil key manager", i)
		}
		typeURL := km.TypeURL()
		if typeURL == "" {
			return nil, fmt.Errorf("registry: constructor %d returned key manager with empty type_url", i)
		}
		if !km.DoesSupport(typeURL) {
			return nil, fmt.Errorf("registry: key manager for %q does not support its own type_url", typeURL)
		}
		if _, exists := m[typeURL]; exists {
			return nil, fmt.Errorf("registry: duplicate key manager for type_url %q", typeURL)
		}
		m[typeURL] = ctor
	}

	return &Catalogue{
		primitive:    strings.ToLower(primitiveName),
		constructors: m,
	}, nil
}

// Primitive returns the lower-cased primitive kind this catalogue serves.
func (c *Catalogue) Primitive() string {
	return c.primitive
}

// TypeURLs returns the registered key-type URLs, sorted.
func (c *Catalogue) TypeURLs() []string {
	urls := make([]string, 0, len(c.constructors))
	for u := range c.constructors {
		urls = append(urls, u)
	}
	sort.Strings(urls)
	return urls
}

// newKeyManager maps a type URL to a fresh manager instance.
//
// Dispatch is exact-match only: no prefix matching, no fallback. A
// permissive match could let an attacker substitute a different key type's
// handler for key material claiming to be another type.
func (c *Catalogue) newKeyManager(typeURL string) (KeyManager, error) {
	ctor, ok := c.constructors[typeURL]
	if !ok {
		return nil, notFoundf("no key manager for type_url %q", typeURL)
	}
	return ctor(), nil
}

// Resolve returns the key manager for typeURL, provided primitiveName
// matches (case-insensitively) the kind this catalogue serves and the
// manager's version is at least minVersion.
//
// All three failure conditions return a NOT_FOUND error; they differ only
// in message text.
func (c *Catalogue) Resolve(typeURL, primitiveName string, minVersion uint32) (KeyManager, error) {
	if strings.ToLower(primitiveName) != c.primitive {
		return nil, notFoundf("this catalogue does not support primitive %s", primitiveName)
	}
	km, err := c.newKeyManager(typeURL)
	if err != nil {
		return nil, err
	}
	if km.Version() < minVersion {
		return nil, notFoundf("no key manager for type_url %q with version at least %d", typeURL, minVersion)
	}
	return km, nil
}
