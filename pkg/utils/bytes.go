package utils

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
)

// Bytes wraps a byte slice with the digest and encoding helpers used when
// comparing certificate hashes against anchored payloads.
type Bytes []byte

func AsBytes(data []byte) Bytes {
	return Bytes(data)
}

// MakeBytesFromHexString decodes a hex string.
func MakeBytesFromHexString(hexString string) (Bytes, error) {
	b, err := hex.DecodeString(hexString)
	if err != nil {
		return nil, err
	}
	return AsBytes(b), nil
}

func (b Bytes) Slice() []byte {
	return ([]byte)(b)
}

func (b Bytes) Len() int {
	return len(b.Slice())
}

func (b Bytes) HexString() string {
	return hex.EncodeToString(b.Slice())
}

func (b Bytes) Sha256() Bytes {
	hash := sha256.Sum256(b.Slice())
	return AsBytes(hash[:])
}

func (b Bytes) String() string {
	return b.Summary(8)
}

// Summary renders a short hex preview for logging.
func (b Bytes) Summary(affixLen int) string {
	if b.Len() == 0 {
		return "empty"
	}
	if b.Len() <= 2*affixLen {
		return b.HexString()
	}

	prefix := AsBytes(b.Slice()[:affixLen])
	suffix := AsBytes(b.Slice()[b.Len()-affixLen:])
	return fmt.Sprintf("%s..%s", prefix.HexString(), suffix.HexString())
}
