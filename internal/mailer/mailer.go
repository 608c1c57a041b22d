package mailer

import "embed"

const (
	FROM_NAME           = "KXL Signature Update"
	MAX_RETRY           = 3
	RUN_REPORT_TEMPLATE = "run_report.tmpl"
)

//go:embed "templates"
var FS embed.FS

type Client interface {
	Send(templateFile, toUsername, toEmail string, data any) (int, error)
}

// RunReportData feeds the run report template sent after every sender
// batch.
type RunReportData struct {
	RunID     string
	Fetched   int
	Relevant  int
	Published int
	Failed    int
	Duration  string
}
