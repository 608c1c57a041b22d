package gsuite

import (
	"context"
	"fmt"
	"io"

	"golang.org/x/oauth2"
	drive "google.golang.org/api/drive/v3"
	"google.golang.org/api/option"
)

func NewDriveService(ctx context.Context, ts oauth2.TokenSource) (*drive.Service, error) {
	svc, err := drive.NewService(ctx, option.WithTokenSource(ts))
	if err != nil {
		return nil, fmt.Errorf("failed to create drive service: %w", err)
	}
	return svc, nil
}

// ExportTemplate downloads a Google Doc template as plain text. The doc
// holds the signature HTML with its markers verbatim.
func ExportTemplate(ctx context.Context, svc *drive.Service, docId string) (string, error) {
	resp, err := svc.Files.Export(docId, "text/plain").Context(ctx).Download()
	if err != nil {
		return "", fmt.Errorf("failed to export template doc %s: %w", docId, err)
	}
	defer resp.Body.Close()

	content, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read template doc %s: %w", docId, err)
	}

	return string(content), nil
}
