package auth

import (
	"errors"
	"net/http"
	"strings"
)

// ErrMalformedAuthHeader covers a missing Authorization header, a wrong
// scheme, and an empty credential alike.
var ErrMalformedAuthHeader = errors.New("missing or malformed authorization header")

// GetBearerToken extracts the token from an exact "Bearer <token>" header.
// The scheme is case-sensitive and followed by a single space.
func GetBearerToken(h http.Header) (string, error) {
	return credential(h, "Bearer ")
}

// GetAPIKey extracts the key from an "ApiKey <key>" header.
func GetAPIKey(h http.Header) (string, error) {
	return credential(h, "ApiKey ")
}

func credential(h http.Header, scheme string) (string, error) {
	value := h.Get("Authorization")
	token, ok := strings.CutPrefix(value, scheme)
	if !ok || token == "" {
		return "", ErrMalformedAuthHeader
	}
	return token, nil
}
