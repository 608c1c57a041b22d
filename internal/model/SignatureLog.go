package model

import "github.com/KaiserXLabs/kxl-gmail-signature-update/internal/constant"

// SignatureLog records the outcome of one signature delivery attempt. The
// rendered signature itself is never persisted here; the Drive snapshot
// and the run archive hold the documents.
type SignatureLog struct {
	BaseModel

	RunID      string                `gorm:"type:text;not null;index" json:"runId" form:"runId"`
	EmployeeID string                `gorm:"type:text;not null;index" json:"employeeId" form:"employeeId" binding:"required,email"`
	Status     constant.UpdateStatus `gorm:"type:text;not null" json:"status" form:"status" binding:"required"`
	Detail     string                `gorm:"type:text;not null" json:"detail" form:"detail"`
	Timestamp  string                `gorm:"type:timestamp;not null" json:"timestamp" form:"timestamp" binding:"required"`
}

func (sl SignatureLog) TableName() string {
	return "signature_logs"
}
