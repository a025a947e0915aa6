package utils

import (
	"crypto/rand"
	"math/big"
)

const passwordCharset = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789!@#$%&*"

const (
	minPasswordLength = 8
	maxPasswordLength = 12
)

// GeneratePassword returns a random secret of the given length drawn from a
// mixed alphanumeric+symbol charset. Lengths outside 8..12 are clamped.
func GeneratePassword(length int) (string, error) {
	if length < minPasswordLength {
		length = minPasswordLength
	}
	if length > maxPasswordLength {
		length = maxPasswordLength
	}

	max := big.NewInt(int64(len(passwordCharset)))
	b := make([]byte, length)
	for i := range b {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", err
		}
		b[i] = passwordCharset[n.Int64()]
	}
	return string(b), nil
}
