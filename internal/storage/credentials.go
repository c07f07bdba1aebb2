package storage

import (
	"net/url"
	"os"
	"strings"

	"github.com/julianstephens/ritual/internal/constants"
	"github.com/julianstephens/ritual/internal/keyring"
)

// IsPostgresConnString reports whether the config value selects the
// PostgreSQL backend.
func IsPostgresConnString(s string) bool {
	return strings.HasPrefix(s, "postgres://") || strings.HasPrefix(s, "postgresql://")
}

// HasEmbeddedCredentials reports whether a connection string carries a
// password inline. Such strings are rejected; credentials belong in the
// environment, .pgpass, or the OS keyring.
func HasEmbeddedCredentials(connStr string) bool {
	if u, err := url.Parse(connStr); err == nil && u.User != nil {
		if _, set := u.User.Password(); set {
			return true
		}
	}
	// DSN-style "password=..." pairs
	for _, part := range strings.Fields(connStr) {
		kv := strings.SplitN(part, "=", 2)
		if len(kv) == 2 && strings.EqualFold(kv[0], "password") {
			return true
		}
	}
	return false
}

// ResolveConnectionString returns the PostgreSQL connection string to
// use, preferring the environment variable, then the OS keyring, then
// the credential-free string from the command line.
func ResolveConnectionString(fromFlag string) string {
	if env := os.Getenv(constants.EnvDBConnection); env != "" {
		return env
	}
	if stored, err := keyring.GetConnectionString(); err == nil && stored != "" {
		return stored
	}
	return fromFlag
}
