package gworkspace

import (
	"context"
)

// Connector opens authenticated Forms and Drive clients from the
// configured service account.
type Connector struct {
	ServiceAccountFile string
}

func NewConnector(serviceAccountFile string) *Connector {
	return &Connector{ServiceAccountFile: serviceAccountFile}
}

func (c *Connector) Credentials(ctx context.Context) (*Credentials, error) {
	return LoadServiceAccount(ctx, c.ServiceAccountFile, FormScopes...)
}

func (c *Connector) Forms(ctx context.Context, creds *Credentials) (FormsAPI, error) {
	return NewFormsClient(ctx, creds)
}

func (c *Connector) Drive(ctx context.Context, creds *Credentials) (DriveAPI, error) {
	return NewDriveClient(ctx, creds)
}
