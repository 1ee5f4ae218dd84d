package security

import (
	"crypto/rand"
	"encoding/base32"
	"strings"
)

var accessCodeEncoding = base32.StdEncoding.WithPadding(base32.NoPadding)

// NewAccessCode returns a 160-bit random code encoded as 32 lowercase base32
// characters. The code is the only credential an end client holds for the
// tracking and extension endpoints, so it is treated like a bearer token.
func NewAccessCode() (string, error) {
	buf := make([]byte, 20)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return strings.ToLower(accessCodeEncoding.EncodeToString(buf)), nil
}
