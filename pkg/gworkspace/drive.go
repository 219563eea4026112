package gworkspace

import (
	"context"
	"fmt"

	"google.golang.org/api/drive/v3"
)

// DriveAPI grants access to the file backing a form.
type DriveAPI interface {
	// GrantWriter gives email edit rights and lets Google send its own
	// notification email.
	GrantWriter(ctx context.Context, fileID, email string) error
}

type driveClient struct {
	svc *drive.Service
}

func NewDriveClient(ctx context.Context, creds *Credentials) (DriveAPI, error) {
	svc, err := drive.NewService(ctx, creds.ClientOption())
	if err != nil {
		return nil, fmt.Errorf("create drive service: %w", err)
	}
	return &driveClient{svc: svc}, nil
}

func (c *driveClient) GrantWriter(ctx context.Context, fileID, email string) error {
	perm := &drive.Permission{
		Type:         "user",
		Role:         "writer",
		EmailAddress: email,
	}
	_, err := c.svc.Permissions.Create(fileID, perm).
		SendNotificationEmail(true).
		Fields("id").
		Context(ctx).
		Do()
	return err
}
