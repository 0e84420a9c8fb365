package shortid

import (
	"crypto/rand"
	"math/big"
)

const (
	alphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"

	// Length of every public event identifier.
	Length = 10
)

var alphabetSize = big.NewInt(int64(len(alphabet)))

// New returns a 10-character URL-safe identifier drawn from a
// 62-symbol alphabet. These are the IDs that appear in share links,
// distinct from the serial primary keys.
func New() (string, error) {
	buf := make([]byte, Length)
	for i := range buf {
		n, err := rand.Int(rand.Reader, alphabetSize)
		if err != nil {
			return "", err
		}
		buf[i] = alphabet[n.Int64()]
	}
	return string(buf), nil
}

// Valid reports whether s is a well-formed public identifier.
// Checked before touching storage so malformed IDs map to 400, not 404.
func Valid(s string) bool {
	if len(s) != Length {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= '0' && c <= '9':
		case c >= 'A' && c <= 'Z':
		case c >= 'a' && c <= 'z':
		default:
			return false
		}
	}
	return true
}
