package main

import (
	"context"
	"time"

	"github.com/KaiserXLabs/kxl-gmail-signature-update/internal/config"
	"github.com/KaiserXLabs/kxl-gmail-signature-update/internal/constant"
	"github.com/KaiserXLabs/kxl-gmail-signature-update/internal/database"
	"github.com/KaiserXLabs/kxl-gmail-signature-update/internal/env"
	"github.com/KaiserXLabs/kxl-gmail-signature-update/internal/gsuite"
	"github.com/KaiserXLabs/kxl-gmail-signature-update/internal/model"
	"github.com/KaiserXLabs/kxl-gmail-signature-update/internal/queue"
	"github.com/KaiserXLabs/kxl-gmail-signature-update/internal/repository"
	"github.com/KaiserXLabs/kxl-gmail-signature-update/internal/util"
)

// this function run before main
func init() {
	env.LoadEnv(".env")
}

func main() {
	cfg := config.GetConfig()
	logger := util.NewLogger(cfg.ENV)

	db, err := database.ConnectReturnGormDB(cfg.DB)
	if err != nil {
		logger.Panic(err)
	}

	sqlDb, err := db.DB()
	if err != nil {
		logger.Panic(err)
	}
	defer sqlDb.Close()
	logger.Info("Database connected \n")

	repo := repository.NewRepository(db, logger)
	applier := gsuite.NewApplier(cfg.Google, logger)
	app := queue.SignatureConsumerContext{
		Config:     &cfg,
		Repository: repo,
		Logger:     logger,
		Applier:    applier,
	}

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

	ctx := context.Background()

	maxWorkers := cfg.Receiver.MaxWorkers
	if maxWorkers <= 0 {
		maxWorkers = util.DetermineWorkers(0)
	}

	if err := rabbitMQ.ConsumeSignatureUpdateJob(ctx, signatureUpdateJobHandler, maxWorkers, &app); err != nil {
		logger.Fatalf("Failed to consume signature update job: %v", err)
	}

	logger.Infof("Started consuming signature update job with %d workers", maxWorkers)

	// Block forever to keep the consumer running
	select {}
}

// Return shouldRequeue, err
func signatureUpdateJobHandler(ctx context.Context, jobPayload queue.SignatureJobPayload, app *queue.SignatureConsumerContext) (bool, error) {
	var queueWaitDuration string
	createdAtTime, err := time.Parse(time.RFC3339, jobPayload.CreatedAt)
	if err != nil {
		app.Logger.Errorf("Failed to parse created_at time: %v", err)
		queueWaitDuration = "unknown"
	} else {
		queueWaitDuration = time.Since(createdAtTime).String()
	}

	app.Logger.Infof("Applying signature for employee: %s (run: %s, waited: %s)",
		jobPayload.EmployeeID, jobPayload.RunID, queueWaitDuration)

	if err := app.Applier.Apply(ctx, jobPayload.EmployeeID, jobPayload.Signature); err != nil {
		// Only the final attempt leaves a failure row.
		if jobPayload.Try >= queue.MAX_QUEUE_RETRY {
			saveSignatureLog(ctx, app, jobPayload, constant.UpdateStatusFailed, err.Error())
		}
		return true, err
	}

	saveSignatureLog(ctx, app, jobPayload, constant.UpdateStatusApplied, "")
	return false, nil
}

func saveSignatureLog(ctx context.Context, app *queue.SignatureConsumerContext, jobPayload queue.SignatureJobPayload, status constant.UpdateStatus, detail string) {
	log := &model.SignatureLog{
		RunID:      jobPayload.RunID,
		EmployeeID: jobPayload.EmployeeID,
		Status:     status,
		Detail:     detail,
		Timestamp:  time.Now().UTC().Format(time.RFC3339),
	}

	if err := app.Repository.SignatureLog.Save(ctx, nil, log); err != nil {
		app.Logger.Errorf("Failed to save signature log for employee: %s: %v", jobPayload.EmployeeID, err)
	}
}
