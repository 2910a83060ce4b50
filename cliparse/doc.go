// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles configuration from CLI flags, environment variables
and an optional env file.

# Precedence

CLI flags take precedence over environment variables, which take precedence
over the env file (default .env, loaded with godotenv; a missing file is
ignored), which takes precedence over defaults.

# Configuration Options

	Flag            Env Variable       Default   Description
	-p              PORT               3318      Server port
	-d              DATABASE_URL       (none)    Export archive database URL
	-t              DATABASE_TYPE      sqlite    sqlite or postgres
	-catalog        CATALOG_PATH       (none)    YAML/JSON catalog file
	-session-ttl    SESSION_TTL        30m       Idle time before a session is dropped
	-session-salt   SESSION_KEY_SALT   required  Secret for session keys
	-slug-salt      EXPORT_SLUG_SALT   required  Secret for export share slugs
	-env            -                  .env      Env file to load

Without a database URL, exports are returned but not archived.

# Usage

	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		slog.Error("Error parsing flags", "error", err)
		os.Exit(1)
	}
*/
package cliparse
