// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package auth

import (
	"crypto/hmac"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"
)

// AdminKeyHeader carries the admin key on privileged requests.
const AdminKeyHeader = "X-Admin-Key"

var (
	ErrAdminKeyNotConfigured = errors.New("admin key not configured")
	ErrInvalidAdminKey       = errors.New("invalid admin key")
)

// GenerateAdminKey creates a random secret suitable for ADMIN_KEY
func GenerateAdminKey() (string, error) {
	b := make([]byte, 24) // 24 bytes = 192 bits of entropy
	_, err := rand.Read(b)
	if err != nil {
		return "", fmt.Errorf("failed to generate admin key: %w", err)
	}
	// URL-safe base64 without padding
	return strings.TrimRight(base64.URLEncoding.EncodeToString(b), "="), nil
}

// ValidateAdminKey compares the provided key against the configured one in
// constant time. An empty configured key disables the check entirely.
func ValidateAdminKey(provided, expected string) error {
	if expected == "" {
		return ErrAdminKeyNotConfigured
	}
	if !hmac.Equal([]byte(provided), []byte(expected)) {
		return ErrInvalidAdminKey
	}
	return nil
}
