package registry

import (
	"google.golang.org/protobuf/types/known/anypb"
)

// KeyManager binds one key-type URL to the logic that parses, validates and
// instantiates keys of that type.
//
// Implementations must be stateless or internally immutable: a manager is
// shared across goroutines without synchronization, and TypeURL/Version must
// return the same values for every instance of the same manager. Version
// numbers are monotonic across releases; a later release must never report a
// lower version for the same type URL, or the minimum-version floor callers
// rely on would silently stop excluding deprecated implementations.
type KeyManager interface {
	// Primitive constructs a ready-to-use primitive from serialized key
	// material. The input may come from untrusted sources and must be fully
	// validated before use.
	Primitive(serializedKey []byte) (any, error)

	// NewKey generates fresh serialized key material from a serialized key
	// format.
	NewKey(serializedFormat []byte) ([]byte, error)

	// NewKeyData is like NewKey but wraps the result in a type-URL-tagged
	// envelope suitable for storage and later resolution.
	NewKeyData(serializedFormat []byte) (*anypb.Any, error)

	// DoesSupport reports whether typeURL is byte-exactly the type URL this
	// manager handles.
	DoesSupport(typeURL string) bool

	// TypeURL returns the key-type URL this manager handles.
	TypeURL() string

	// Version returns the manager's version.
	Version() uint32
}

// Constructor produces a KeyManager. Constructors must be pure: no I/O, no
// mutation of shared state, safe to call concurrently and repeatedly.
type Constructor func() KeyManager
