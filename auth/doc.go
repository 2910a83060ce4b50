// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package auth provides session keys, share slugs and ID generation.

# Session Keys

Every survey session gets a bearer key derived with HMAC-SHA256:

	key := auth.GenerateSessionKey(sessionID, salt)
	err := auth.ValidateSessionKey(sessionID, key, salt)

The key is URL-safe base64 without padding and is sent back in the
X-Session-Key header. It is deterministic, so the registry never stores it.
This only keeps one browser tab from driving another's session; it is not
user authentication.

# Share Slugs

Archived exports are fetched by a short base62 slug:

	slug := auth.GenerateShareSlug(snapshotID, salt)

# ID Generation

Random hex IDs for export snapshots:

	id, err := auth.GenerateID(16)  // 32 hex characters

# Address Hashing

Export snapshots record a salted hash of the client address:

	hash := auth.HashIP(ipAddress, salt)

Returns the first 8 bytes (16 hex chars) of HMAC-SHA256.
*/
package auth
