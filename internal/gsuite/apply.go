package gsuite

import (
	"context"
	"fmt"

	"github.com/KaiserXLabs/kxl-gmail-signature-update/internal/config"
	"go.uber.org/zap"
)

// Applier delivers rendered signatures: Gmail first, then a best-effort
// snapshot on the shared drive. Each employee gets their own delegated
// credentials, so one Applier serves any number of deliveries.
type Applier struct {
	cfg    config.GoogleConfig
	logger *zap.SugaredLogger
}

func NewApplier(cfg config.GoogleConfig, logger *zap.SugaredLogger) *Applier {
	return &Applier{cfg: cfg, logger: logger}
}

// Apply sets the signature on the employee's Gmail account and writes the
// snapshot file. A Gmail failure is fatal for the delivery; a snapshot
// failure is only logged, matching the delivery-first priority.
func (a *Applier) Apply(ctx context.Context, employeeId, signatureHTML string) error {
	ts, err := TokenSource(ctx, a.cfg.ServiceAccountKeyFile, employeeId, EmployeeScopes)
	if err != nil {
		return fmt.Errorf("failed to get credentials for %s: %w", employeeId, err)
	}

	gmailSvc, err := NewGmailService(ctx, ts)
	if err != nil {
		return err
	}

	if err := UpdateSendAsSignature(ctx, gmailSvc, employeeId, signatureHTML); err != nil {
		return err
	}

	driveSvc, err := NewDriveService(ctx, ts)
	if err != nil {
		a.logger.Errorf("Skipping drive snapshot for %s: %v", employeeId, err)
		return nil
	}

	if _, err := WriteSignatureFile(ctx, driveSvc, employeeId, a.cfg.SharedDriveID, a.cfg.SharedDriveFolderID, signatureHTML); err != nil {
		a.logger.Errorf("Failed to write drive snapshot for %s: %v", employeeId, err)
	}

	return nil
}
