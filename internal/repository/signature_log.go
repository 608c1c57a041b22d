package repository

import (
	"context"

	constant "github.com/KaiserXLabs/kxl-gmail-signature-update/internal/constant"
	"github.com/KaiserXLabs/kxl-gmail-signature-update/internal/model"
	"gorm.io/gorm"
)

type SignatureLogRepository struct {
	*baseRepository
}

func (slr SignatureLogRepository) Save(ctx context.Context, tx *gorm.DB, log *model.SignatureLog) error {
	slr.logger.Debugf("Save signature log for employee: %s, run: %s, status: %s", log.EmployeeID, log.RunID, log.Status)

	db := slr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	return db.WithContext(ctx).Create(log).Error
}

func (slr SignatureLogRepository) GetByRunId(ctx context.Context, tx *gorm.DB, runId string) ([]*model.SignatureLog, error) {
	slr.logger.Debugf("Get signature logs by run id: %s", runId)

	db := slr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	var logs []*model.SignatureLog
	if err := db.WithContext(ctx).Model(&model.SignatureLog{}).Where(model.SignatureLog{
		RunID: runId,
	}).Order("timestamp asc").Find(&logs).Error; err != nil {
		return logs, err
	}

	return logs, nil
}

func (slr SignatureLogRepository) GetLatestByEmployeeId(ctx context.Context, tx *gorm.DB, employeeId string) (*model.SignatureLog, error) {
	slr.logger.Debugf("Get latest signature log for employee: %s", employeeId)

	db := slr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	var log model.SignatureLog
	if err := db.WithContext(ctx).Model(&model.SignatureLog{}).Where(model.SignatureLog{
		EmployeeID: employeeId,
	}).Order("timestamp desc").First(&log).Error; err != nil {
		return nil, err
	}

	return &log, nil
}
