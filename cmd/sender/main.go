package main

import (
	"context"
	"time"

	"github.com/KaiserXLabs/kxl-gmail-signature-update/internal/config"
	"github.com/KaiserXLabs/kxl-gmail-signature-update/internal/env"
	filestorage "github.com/KaiserXLabs/kxl-gmail-signature-update/internal/file_storage"
	"github.com/KaiserXLabs/kxl-gmail-signature-update/internal/gsuite"
	"github.com/KaiserXLabs/kxl-gmail-signature-update/internal/mailer"
	"github.com/KaiserXLabs/kxl-gmail-signature-update/internal/queue"
	"github.com/KaiserXLabs/kxl-gmail-signature-update/internal/util"
	"github.com/KaiserXLabs/kxl-gmail-signature-update/pkg/signature"
	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
)

// this function run before main
func init() {
	env.LoadEnv(".env")
}

const RUN_ID_LENGTH = 12

func main() {
	cfg := config.GetConfig()
	logger := util.NewLogger(cfg.ENV)

	start := time.Now()
	ctx := context.Background()

	runId, err := util.GenerateNChar(RUN_ID_LENGTH)
	if err != nil {
		logger.Panicf("Failed to generate run id: %v", err)
	}
	logger.Infof("Starting signature run %s for domain %s", runId, cfg.Google.Domain)

	ts, err := gsuite.TokenSource(ctx, cfg.Google.ServiceAccountKeyFile, cfg.Google.AdminSubject, gsuite.SenderScopes)
	if err != nil {
		logger.Panicf("Failed to get directory credentials: %v", err)
	}

	driveSvc, err := gsuite.NewDriveService(ctx, ts)
	if err != nil {
		logger.Panicf("Failed to create drive service: %v", err)
	}

	standardTemplate, err := gsuite.ExportTemplate(ctx, driveSvc, cfg.Google.TemplateDocID)
	if err != nil {
		logger.Panicf("Failed to export standard template: %v", err)
	}

	technicalTemplate, err := gsuite.ExportTemplate(ctx, driveSvc, cfg.Google.TechnicalTemplateDocID)
	if err != nil {
		logger.Panicf("Failed to export technical template: %v", err)
	}

	dirSvc, err := gsuite.NewDirectoryService(ctx, ts)
	if err != nil {
		logger.Panicf("Failed to create directory service: %v", err)
	}

	records, err := gsuite.ListEmployees(ctx, dirSvc, cfg.Google.Domain)
	if err != nil {
		logger.Panicf("Failed to list employees: %v", err)
	}
	logger.Infof("Fetched %d directory records", len(records))

	relevant := signature.FilterRelevant(records)
	logger.Infof("%d records are relevant for signature updates", len(relevant))

	s3, err := filestorage.NewMinioClient(&cfg.Minio)
	if err != nil {
		logger.Error("Error connecting to minio")
		logger.Panic(err)
	}
	logger.Info("Minio connected \n")

	rabbitMQ, err := queue.NewRabbitMQ(cfg.RabbitMQ.GetConnectionString())
	if err != nil {
		logger.Panic("Error connecting to RabbitMQ: ", err)
	}
	logger.Info("RabbitMQ connected \n")
	defer func() {
		if err := rabbitMQ.Close(); err != nil {
			logger.Errorf("Failed to close RabbitMQ connection: %v", err)
		}
	}()

	builder := signature.NewBuilder(standardTemplate, technicalTemplate, cfg.Company.Name, cfg.Company.Website)

	published := 0
	failed := 0
	for _, record := range relevant {
		profile := signature.Normalize(record)

		html, err := builder.Build(profile)
		if err != nil {
			logger.Errorf("Failed to build signature for %s: %v", profile.Email(), err)
			failed++
			continue
		}

		archiveSignature(ctx, logger, s3, &cfg, runId, profile.Email(), html)

		payload := queue.NewSignatureJobPayload(runId, profile.Email(), html)
		if err := queue.PublishSignatureUpdateJob(rabbitMQ, payload); err != nil {
			logger.Errorf("Failed to publish signature job for %s: %v", profile.Email(), err)
			failed++
			continue
		}

		published++
	}

	duration := time.Since(start)
	logger.Infof("Run %s finished: %d fetched, %d relevant, %d published, %d failed in %s",
		runId, len(records), len(relevant), published, failed, duration)

	sendRunReport(logger, &cfg, mailer.RunReportData{
		RunID:     runId,
		Fetched:   len(records),
		Relevant:  len(relevant),
		Published: published,
		Failed:    failed,
		Duration:  duration.String(),
	})
}

// archiveSignature keeps a copy of the rendered document in the run
// archive bucket. Failures are logged and do not stop the run.
func archiveSignature(ctx context.Context, logger *zap.SugaredLogger, s3 *minio.Client, cfg *config.Config, runId, employeeId, html string) {
	_, err := util.UploadBytesToS3(ctx, employeeId+".html", []byte(html), &util.FileUploadOptions{
		DirectoryPath: util.GetRunArchiveDirectoryPath(runId),
		ContentType:   "text/html",
		Bucket:        cfg.Minio.BUCKET,
		S3:            s3,
	})
	if err != nil {
		logger.Errorf("Failed to archive signature for %s: %v", employeeId, err)
	}
}

func sendRunReport(logger *zap.SugaredLogger, cfg *config.Config, data mailer.RunReportData) {
	if cfg.Mail.REPORT_EMAIL == "" {
		logger.Info("No report email configured, skipping run report")
		return
	}

	mail := mailer.NewSendgrid(cfg.Mail.SEND_GRID.API_KEY, cfg.Mail.FROM_EMAIL, cfg.IsProduction(), logger)
	statusCode, err := mail.Send(mailer.RUN_REPORT_TEMPLATE, "Ops", cfg.Mail.REPORT_EMAIL, data)
	if err != nil {
		logger.Errorf("Failed to send run report: %v", err)
		return
	}

	logger.Infof("Run report sent, status code: %d", statusCode)
}
