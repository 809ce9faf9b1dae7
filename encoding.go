package uuidv7

import (
	"encoding/base64"
	"encoding/hex"
	"fmt"
)

// EncodeToHex encodes the UUID to 32 lowercase hex digits without hyphens.
// The result sorts in the same order as the UUID.
func (u UUID) EncodeToHex() string {
	return hex.EncodeToString(u[:])
}

// EncodeToBase64 encodes the UUID to 22 characters of URL-safe base64 without
// padding, for URLs and log lines. Unlike the hex forms it does not preserve order.
func (u UUID) EncodeToBase64() string {
	return base64.RawURLEncoding.EncodeToString(u[:])
}

// DecodeFromHex decodes 32 hex digits, in either letter case, to a UUID.
func DecodeFromHex(s string) (UUID, error) {
	var u UUID
	if len(s) != 32 {
		return Nil, fmt.Errorf("%w: want 32 hex digits, got %d characters", ErrInvalidFormat, len(s))
	}
	if _, err := hex.Decode(u[:], []byte(s)); err != nil {
		return Nil, fmt.Errorf("%w: %v", ErrInvalidFormat, err)
	}
	return u, nil
}

// DecodeFromBase64 decodes the form produced by EncodeToBase64.
func DecodeFromBase64(s string) (UUID, error) {
	data, err := base64.RawURLEncoding.DecodeString(s)
	if err != nil {
		return Nil, fmt.Errorf("%w: %v", ErrInvalidFormat, err)
	}
	return FromBytes(data)
}
