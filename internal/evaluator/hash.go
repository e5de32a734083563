package evaluator

import (
	"crypto/md5"
	"crypto/sha1"
	"crypto/sha256"
	"crypto/sha512"
	"encoding/hex"

	"github.com/nixlang/nixeval/internal/config"
)

// hashFunc computes a digest over data.
type hashFunc func(data []byte) []byte

// hashRegistry maps an algorithm name to its digest function, the way
// the original evaluator's hash backends were pluggable per algorithm
// (see SPEC_FULL.md §6) — kept as a small registry even though only
// these four are ever registered, so an unregistered name (UnknownHash)
// and a registered-but-disabled one (NotEnabled) are distinct, testable
// failure paths.
var hashRegistry = map[string]hashFunc{
	config.HashMD5: func(data []byte) []byte {
		sum := md5.Sum(data)
		return sum[:]
	},
	config.HashSHA1: func(data []byte) []byte {
		sum := sha1.Sum(data)
		return sum[:]
	},
	config.HashSHA256: func(data []byte) []byte {
		sum := sha256.Sum256(data)
		return sum[:]
	},
	config.HashSHA512: func(data []byte) []byte {
		sum := sha512.Sum512(data)
		return sum[:]
	},
}

func hashHex(algo string, data []byte) (string, error) {
	fn, ok := hashRegistry[algo]
	if !ok {
		return "", &EvalError{Kind: KindUnknownHash, Name: algo}
	}
	return hex.EncodeToString(fn(data)), nil
}

// capabilityEnabled reports whether algo's capability flag is set.
func (e *Evaluator) capabilityEnabled(algo string) bool {
	switch algo {
	case config.HashMD5:
		return e.Caps.MD5
	case config.HashSHA1:
		return e.Caps.SHA1
	case config.HashSHA256:
		return e.Caps.SHA256
	case config.HashSHA512:
		return e.Caps.SHA512
	}
	return false
}
