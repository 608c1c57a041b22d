package gsuite

import (
	"context"
	"fmt"

	"golang.org/x/oauth2"
	gmail "google.golang.org/api/gmail/v1"
	"google.golang.org/api/option"
)

func NewGmailService(ctx context.Context, ts oauth2.TokenSource) (*gmail.Service, error) {
	svc, err := gmail.NewService(ctx, option.WithTokenSource(ts))
	if err != nil {
		return nil, fmt.Errorf("failed to create gmail service: %w", err)
	}
	return svc, nil
}

// UpdateSendAsSignature sets the rendered signature on the employee's
// primary send-as address.
func UpdateSendAsSignature(ctx context.Context, svc *gmail.Service, employeeId, signatureHTML string) error {
	sendAs := &gmail.SendAs{
		SendAsEmail:    employeeId,
		DisplayName:    "",
		ReplyToAddress: "",
		Signature:      signatureHTML,
		IsPrimary:      true,
		IsDefault:      true,
	}

	if _, err := svc.Users.Settings.SendAs.Update(employeeId, employeeId, sendAs).Context(ctx).Do(); err != nil {
		return fmt.Errorf("failed to update gmail signature for %s: %w", employeeId, err)
	}

	return nil
}
