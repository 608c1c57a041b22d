package constant

// UpdateStatus is the persisted outcome of one signature delivery.
type UpdateStatus string

const (
	UpdateStatusApplied UpdateStatus = "applied"
	UpdateStatusFailed  UpdateStatus = "failed"
)
