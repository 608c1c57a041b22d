// Package gsuite wraps the Google Workspace APIs the signature pipeline
// talks to: Admin Directory for records, Drive for template export and
// snapshot storage, Gmail for applying the signature.
package gsuite

import (
	"context"
	"fmt"
	"os"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	admin "google.golang.org/api/admin/directory/v1"
	drive "google.golang.org/api/drive/v3"
	gmail "google.golang.org/api/gmail/v1"
)

// SenderScopes are the read-only scopes of the batch sender run.
var SenderScopes = []string{
	admin.AdminDirectoryUserReadonlyScope,
	drive.DriveReadonlyScope,
}

// EmployeeScopes are the per-employee scopes of the receiving side.
var EmployeeScopes = []string{
	gmail.GmailSettingsBasicScope,
	drive.DriveFileScope,
}

// TokenSource builds a domain-wide-delegation token source from the
// service account key file, impersonating subject.
func TokenSource(ctx context.Context, keyFile, subject string, scopes []string) (oauth2.TokenSource, error) {
	key, err := os.ReadFile(keyFile)
	if err != nil {
		return nil, fmt.Errorf("failed to read service account key %s: %w", keyFile, err)
	}

	conf, err := google.JWTConfigFromJSON(key, scopes...)
	if err != nil {
		return nil, fmt.Errorf("failed to parse service account key: %w", err)
	}
	conf.Subject = subject

	return conf.TokenSource(ctx), nil
}
