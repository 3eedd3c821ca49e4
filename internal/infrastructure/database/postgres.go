package database

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
)

// PostgresSettings describes a Postgres server when no DSN URL is configured.
type PostgresSettings struct {
	URL        string
	Host       string
	Port       int
	Name       string
	Username   string
	Password   string
	SecretID   string
	SSLDisable bool
}

// DSN returns s.URL when set, otherwise a postgres:// URL built from the parts.
// secrets is only called when username or password is missing.
func (s PostgresSettings) DSN(ctx context.Context, secrets SecretsAPI) (string, error) {
	if s.URL != "" {
		return s.URL, nil
	}
	if s.Host == "" {
		return "", fmt.Errorf("postgres host not configured")
	}
	creds, err := RetrieveCredentials(ctx, secrets, s.Username, s.Password, s.SecretID)
	if err != nil {
		return "", err
	}

	port := s.Port
	if port <= 0 {
		port = 5432
	}
	u := url.URL{
		Scheme: "postgres",
		User:   url.UserPassword(creds.Username, creds.Password),
		Host:   s.Host + ":" + strconv.Itoa(port),
		Path:   "/" + s.Name,
	}
	if s.SSLDisable {
		u.RawQuery = "sslmode=disable"
	}
	return u.String(), nil
}

// NeedsSecrets reports whether DSN would have to read AWS Secrets Manager.
func (s PostgresSettings) NeedsSecrets() bool {
	return s.URL == "" && (s.Username == "" || s.Password == "") && s.SecretID != ""
}
