package utils

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"

	"github.com/gowebpki/jcs"
	"github.com/modern-go/reflect2"
)

// HashData provides a sha256 hash for arbitrary data.
// Byte slices and strings are hashed as they are, everything else
// is marshalled to JSON and canonicalized (RFC 8785) first, so that
// structurally equal documents get identical hashes.
func HashData(d interface{}) (string, error) {
	if reflect2.IsNil(d) {
		return "", nil
	}
	var err error
	var data []byte
	switch b := d.(type) {
	case []byte:
		data = b
	case string:
		data = []byte(b)
	default:
		data, err = json.Marshal(d)
		if err != nil {
			return "", err
		}
		data, err = jcs.Transform(data)
		if err != nil {
			return "", err
		}
	}
	h := sha256.Sum256(data)
	return hex.EncodeToString(h[:]), nil
}

// HashJSON hashes the canonical form of a JSON document.
func HashJSON(data []byte) (string, error) {
	data, err := jcs.Transform(data)
	if err != nil {
		return "", err
	}
	return HashData(data)
}
