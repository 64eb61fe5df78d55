package util

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

var codeSpace = big.NewInt(1000000)

// GenerateVerifyCode returns a uniformly random integer in [0, 999999]
// formatted as a zero-padded 6-digit string. crypto/rand is mandatory here:
// a guessable code defeats the whole scheme.
func GenerateVerifyCode() string {
	n, err := rand.Int(rand.Reader, codeSpace)
	if err != nil {
		// No entropy means no safe code. The request-level recover turns
		// this into a structured error response.
		panic(fmt.Sprintf("crypto/rand unavailable: %v", err))
	}
	return fmt.Sprintf("%06d", n.Int64())
}
