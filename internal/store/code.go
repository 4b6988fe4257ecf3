package store

import (
	crand "crypto/rand"
	"math/big"
	"math/rand"
)

const (
	// CodeLength is the length of generated room codes.
	CodeLength = 4

	// codeChars excludes ambiguous characters (0/O, 1/I).
	codeChars = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"
)

// GenerateCode creates a random room code.
func GenerateCode() string {
	code := make([]byte, CodeLength)
	for i := range CodeLength {
		n, err := crand.Int(crand.Reader, big.NewInt(int64(len(codeChars))))
		if err != nil {
			// fallback to math/rand if crypto fails
			code[i] = codeChars[rand.Intn(len(codeChars))]
			continue
		}
		code[i] = codeChars[n.Int64()]
	}
	return string(code)
}
