package hashutil

import (
	"crypto/sha256"
	"errors"
	"fmt"

	"golang.org/x/crypto/ripemd160"
)

// Digest names accepted by Digest.
const (
	DigestNone    = "none"
	DigestSha256  = "sha256"
	DigestHash256 = "hash256"
	DigestHash160 = "hash160"
)

// ErrUnknownDigest is returned for a digest name Digest does not know.
var ErrUnknownDigest = errors.New("unknown digest")

// Hash160 returns hash160 of input data bytes.
func Hash160(data []byte) []byte {
	return Ripemd160(Sha256(data))
}

// Hash256 returns hash256 of input data bytes.
func Hash256(data []byte) []byte {
	return Sha256(Sha256(data))
}

// Sha256 returns sha256 of input data bytes.
func Sha256(data []byte) []byte {
	sum := sha256.Sum256(data)
	return sum[:]
}

// Ripemd160 returns RIPEMD-160 hash bytes.
func Ripemd160(data []byte) []byte {
	ripemd160H := ripemd160.New()
	ripemd160H.Write(data)
	return ripemd160H.Sum(nil)
}

// IsDigest tells if name is a known digest.
func IsDigest(name string) bool {
	switch name {
	case "", DigestNone, DigestSha256, DigestHash256, DigestHash160:
		return true
	}
	return false
}

// Digest applies the named digest to data. The empty name and "none"
// return data itself.
func Digest(name string, data []byte) ([]byte, error) {
	switch name {
	case "", DigestNone:
		return data, nil
	case DigestSha256:
		return Sha256(data), nil
	case DigestHash256:
		return Hash256(data), nil
	case DigestHash160:
		return Hash160(data), nil
	}

	return nil, fmt.Errorf("%w: %q", ErrUnknownDigest, name)
}
