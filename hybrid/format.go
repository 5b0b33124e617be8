package hybrid

import "fmt"

// Serialized key layout: magic(2) | format version(1) | key version(1) |
// role(1) | key bytes. Private keys carry the 32-byte P-256 scalar, public
// keys the 65-byte uncompressed point.
const (
	keyMagic = "HK"

	keyFormatVersion = 0x01

	rolePrivate = 0x01
	rolePublic  = 0x02

	headerSize = 5

	p256ScalarSize = 32
	p256PointSize  = 65
)

func marshalKey(role byte, keyVersion uint32, keyBytes []byte) []byte {
	out := make([]byte, 0, headerSize+len(keyBytes))
	out = append(out, keyMagic...)
	out = append(out, keyFormatVersion, byte(keyVersion), role)
	out = append(out, keyBytes...)
	return out
}

// parseKey validates the header and returns the key version and a copy of
// the key bytes. wantSize guards against truncated or padded key material.
func parseKey(data []byte, role byte, wantSize int) (uint32, []byte, error) {
	if len(data) < headerSize {
		return 0, nil, fmt.Errorf("hybrid: serialized key too short")
	}
	if string(data[0:2]) != keyMagic {
		return 0, nil, fmt.Errorf("hybrid: invalid serialized key magic")
	}
	if data[2] != keyFormatVersion {
		return 0, nil, fmt.Errorf("hybrid: unsupported serialized key format version %d", data[2])
	}
	if data[4] != role {
		return 0, nil, fmt.Errorf("hybrid: serialized key has wrong role %d", data[4])
	}
	keyBytes := data[headerSize:]
	if len(keyBytes) != wantSize {
		return 0, nil, fmt.Errorf("hybrid: serialized key has %d key bytes, want %d", len(keyBytes), wantSize)
	}
	out := make([]byte, wantSize)
	copy(out, keyBytes)
	return uint32(data[3]), out, nil
}
