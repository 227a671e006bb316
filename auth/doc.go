// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package auth guards the privileged database endpoints.

# Admin Key

Raw SQL execution requires the X-Admin-Key header to match the configured
ADMIN_KEY:

	err := auth.ValidateAdminKey(r.Header.Get(auth.AdminKeyHeader), cfg.AdminKey)

The comparison is constant time. When no key is configured the check always
fails with ErrAdminKeyNotConfigured, which keeps the endpoint disabled.

A fresh key can be minted with:

	key, err := auth.GenerateAdminKey()

Keys are 24 random bytes, URL-safe base64 encoded without padding.
*/
package auth
