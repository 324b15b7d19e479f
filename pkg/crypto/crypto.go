package crypto

import (
	"crypto/rand"
	"encoding/base64"
)

// GenerateRandomString returns a random URL-safe string. It is used for OAuth
// state values, so it must be unique across concurrent attempts but does not
// need to resist more than CSRF linking.
func GenerateRandomString() (string, error) {
	b := make([]byte, 16)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}

	return base64.RawURLEncoding.EncodeToString(b), nil
}
