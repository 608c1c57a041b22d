package gsuite

import (
	"context"
	"errors"
	"fmt"
	"strings"

	drive "google.golang.org/api/drive/v3"
)

// ErrDuplicateSnapshots is returned when more than one snapshot file with
// the same name exists in the shared folder; that state needs manual
// cleanup before updates can proceed.
var ErrDuplicateSnapshots = errors.New("duplicate signature snapshot files exist")

// FindSignatureFile looks up an existing snapshot file by name in the
// shared drive folder. It returns "" when no file exists.
func FindSignatureFile(ctx context.Context, svc *drive.Service, fileName, driveId, folderId string) (string, error) {
	query := fmt.Sprintf("name='%s' and trashed=false and mimeType='text/html' and '%s' in parents",
		strings.ReplaceAll(fileName, "'", "\\'"), folderId)

	resp, err := svc.Files.List().
		Q(query).
		DriveId(driveId).
		Corpora("drive").
		Spaces("drive").
		SupportsAllDrives(true).
		IncludeItemsFromAllDrives(true).
		Context(ctx).
		Do()
	if err != nil {
		return "", fmt.Errorf("failed to search for %s: %w", fileName, err)
	}

	switch len(resp.Files) {
	case 0:
		return "", nil
	case 1:
		return resp.Files[0].Id, nil
	default:
		return "", fmt.Errorf("%w: %s", ErrDuplicateSnapshots, fileName)
	}
}

// CreateSignatureFile creates a new snapshot file and returns its id.
func CreateSignatureFile(ctx context.Context, svc *drive.Service, fileName, driveId, folderId, content string) (string, error) {
	meta := &drive.File{
		Name:     fileName,
		MimeType: "text/html",
		Parents:  []string{folderId},
		DriveId:  driveId,
	}

	file, err := svc.Files.Create(meta).
		Media(strings.NewReader(content)).
		SupportsAllDrives(true).
		Fields("id").
		Context(ctx).
		Do()
	if err != nil {
		return "", fmt.Errorf("failed to create %s: %w", fileName, err)
	}

	return file.Id, nil
}

// UpdateSignatureFile replaces the content of an existing snapshot file.
func UpdateSignatureFile(ctx context.Context, svc *drive.Service, fileId, content string) error {
	_, err := svc.Files.Update(fileId, &drive.File{}).
		Media(strings.NewReader(content)).
		SupportsAllDrives(true).
		Context(ctx).
		Do()
	if err != nil {
		return fmt.Errorf("failed to update snapshot %s: %w", fileId, err)
	}
	return nil
}

// WriteSignatureFile creates or updates the snapshot for an employee and
// returns the file id.
func WriteSignatureFile(ctx context.Context, svc *drive.Service, employeeId, driveId, folderId, content string) (string, error) {
	fileName := employeeId + ".html"

	fileId, err := FindSignatureFile(ctx, svc, fileName, driveId, folderId)
	if err != nil {
		return "", err
	}

	if fileId == "" {
		return CreateSignatureFile(ctx, svc, fileName, driveId, folderId, content)
	}

	if err := UpdateSignatureFile(ctx, svc, fileId, content); err != nil {
		return "", err
	}
	return fileId, nil
}
