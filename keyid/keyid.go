// Package keyid derives content-addressed fingerprints for key data
// envelopes.
//
// Fingerprints name key material in audit trails and operator tooling
// without embedding the material itself. A fingerprint of secret key data is
// still a hash of that secret; treat it accordingly.
package keyid

import (
	"encoding/binary"
	"fmt"

	"github.com/ipfs/go-cid"
	"github.com/multiformats/go-multihash"
	"google.golang.org/protobuf/types/known/anypb"
)

// Fingerprint returns a CIDv1 string (raw multicodec, sha2-256 multihash)
// over the key data's type URL and value.
//
// The type URL is length-prefixed so that (type URL, value) pairs cannot
// collide by moving bytes across the boundary.
func Fingerprint(keyData *anypb.Any) (string, error) {
	if keyData == nil {
		return "", fmt.Errorf("keyid: nil key data")
	}
	if keyData.TypeUrl == "" {
		return "", fmt.Errorf("keyid: key data missing type_url")
	}

	buf := binary.AppendUvarint(nil, uint64(len(keyData.TypeUrl)))
	buf = append(buf, keyData.TypeUrl...)
	buf = append(buf, keyData.Value...)

	sum, err := multihash.Sum(buf, multihash.SHA2_256, -1)
	if err != nil {
		return "", fmt.Errorf("keyid: multihash failed: %w", err)
	}
	return cid.NewCidV1(cid.Raw, sum).String(), nil
}
