package config

import (
	"net/url"
	"strings"
)

const redacted = "[REDACTED]"

// redactSecret hides a credential while still showing whether it is set
func redactSecret(v string) string {
	if v == "" {
		return ""
	}
	return redacted
}

// redactDSN removes the password from a connection string. URL DSNs keep
// their host and database, key/value DSNs carrying a password are hidden entirely.
func redactDSN(dsn string) string {
	if dsn == "" {
		return ""
	}

	if u, err := url.Parse(dsn); err == nil && u.Scheme != "" && u.Host != "" {
		q := u.Query()
		if q.Has("password") {
			q.Set("password", redacted)
			u.RawQuery = q.Encode()
		}
		return u.Redacted()
	}

	if strings.Contains(strings.ToLower(dsn), "password") {
		return redacted
	}
	return dsn
}
