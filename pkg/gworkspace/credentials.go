package gworkspace

import (
	"context"
	"fmt"
	"os"
	"strings"

	"golang.org/x/oauth2/google"
	"google.golang.org/api/drive/v3"
	"google.golang.org/api/forms/v1"
	"google.golang.org/api/option"
)

// FormScopes is what publishing and sharing a quiz form needs.
var FormScopes = []string{
	forms.FormsBodyScope,
	drive.DriveScope,
}

// Credentials is an opaque capability handed from form creation to sharing.
// It never serialises: the only way to learn anything about it is Type,
// Source and Scopes.
type Credentials struct {
	creds  *google.Credentials
	kind   string
	source string
	scopes []string
}

// LoadServiceAccount reads a service account key file. With an empty path
// the application default credentials are used.
func LoadServiceAccount(ctx context.Context, path string, scopes ...string) (*Credentials, error) {
	if strings.TrimSpace(path) == "" {
		creds, err := google.FindDefaultCredentials(ctx, scopes...)
		if err != nil {
			return nil, fmt.Errorf("find default google credentials: %w", err)
		}
		return &Credentials{creds: creds, kind: "default", source: "application_default", scopes: scopes}, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read service account file: %w", err)
	}
	creds, err := google.CredentialsFromJSON(ctx, data, scopes...)
	if err != nil {
		return nil, fmt.Errorf("parse service account file: %w", err)
	}
	return &Credentials{creds: creds, kind: "service_account", source: path, scopes: scopes}, nil
}

// WrapCredentials adopts credentials built elsewhere.
func WrapCredentials(creds *google.Credentials, kind, source string, scopes ...string) *Credentials {
	return &Credentials{creds: creds, kind: kind, source: source, scopes: scopes}
}

func (c *Credentials) Type() string     { return c.kind }
func (c *Credentials) Source() string   { return c.source }
func (c *Credentials) Scopes() []string { return append([]string(nil), c.scopes...) }

// ClientOption authenticates a Google API client with these credentials.
func (c *Credentials) ClientOption() option.ClientOption {
	return option.WithCredentials(c.creds)
}

// String hides the credential material from %v and loggers.
func (c *Credentials) String() string {
	return fmt.Sprintf("gworkspace.Credentials(%s)", c.kind)
}

// MarshalJSON refuses to serialise: a credential must never reach a payload.
func (c *Credentials) MarshalJSON() ([]byte, error) {
	return nil, fmt.Errorf("gworkspace: credentials are not serialisable")
}
