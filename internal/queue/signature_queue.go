package queue

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/KaiserXLabs/kxl-gmail-signature-update/internal/config"
	"github.com/KaiserXLabs/kxl-gmail-signature-update/internal/gsuite"
	"github.com/KaiserXLabs/kxl-gmail-signature-update/internal/repository"
	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

// SignatureConsumerContext carries the dependencies of the receiving side.
type SignatureConsumerContext struct {
	Config     *config.Config
	Logger     *zap.SugaredLogger
	Repository *repository.Repository
	Applier    *gsuite.Applier
}

// SignatureJobPayload is one "signature ready" event: the employee it
// belongs to and the rendered HTML, opaque to the queue.
type SignatureJobPayload struct {
	RunID      string `json:"run_id"`
	EmployeeID string `json:"employee_id"`
	Signature  string `json:"signature"`
	CreatedAt  string `json:"created_at"`
	Try        int    `json:"try" default:"0"`
}

func NewSignatureJobPayload(runId, employeeId, signatureHTML string) SignatureJobPayload {
	return SignatureJobPayload{
		RunID:      runId,
		EmployeeID: employeeId,
		Signature:  signatureHTML,
		CreatedAt:  time.Now().Format(time.RFC3339),
		Try:        0,
	}
}

func PublishSignatureUpdateJob(r *RabbitMQ, payload SignatureJobPayload) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal signature job: %w", err)
	}

	return r.Publish(QueueSignatureUpdate, body)
}

// Return shouldRequeue, err
type SignatureJobHandler func(ctx context.Context, jobPayload SignatureJobPayload, app *SignatureConsumerContext) (bool, error)

func (r *RabbitMQ) ConsumeSignatureUpdateJob(ctx context.Context, handler SignatureJobHandler, maxWorker int, app *SignatureConsumerContext) error {
	msgs, err := r.Consume(QueueSignatureUpdate)
	if err != nil {
		return fmt.Errorf("failed to start consuming signature jobs: %w", err)
	}

	for i := 0; i < maxWorker; i++ {
		go func(workerNumber int) {
			runSignatureWorker(ctx, r, workerNumber, msgs, handler, app)
		}(i + 1)
	}

	return nil
}

func runSignatureWorker(ctx context.Context, rabbitMQ *RabbitMQ, workerNumber int, msgs <-chan amqp.Delivery, handler SignatureJobHandler, app *SignatureConsumerContext) {
	for {
		select {
		case <-ctx.Done():
			app.Logger.Infof("[Signature Worker %d] Shutting down", workerNumber)
			return
		case msg, ok := <-msgs:
			if !ok {
				app.Logger.Infof("[Signature Worker %d] Message channel closed", workerNumber)
				return
			}
			processSignatureJob(ctx, rabbitMQ, workerNumber, msg, handler, app)
		}
	}
}

func processSignatureJob(ctx context.Context, rabbitMQ *RabbitMQ, workerNumber int, msg amqp.Delivery, handler SignatureJobHandler, app *SignatureConsumerContext) {
	if msg.Body == nil {
		app.Logger.Errorf("[Signature Worker %d] Received empty message body", workerNumber)
		rabbitMQ.Nack(msg, false)
		return
	}

	var jobPayload SignatureJobPayload
	if err := json.Unmarshal(msg.Body, &jobPayload); err != nil {
		app.Logger.Errorf("[Signature Worker %d] Invalid payload: %v", workerNumber, err)
		rabbitMQ.Nack(msg, false)
		return
	}

	workerPrefix := fmt.Sprintf("[Signature Worker %d: Retry %d]", workerNumber, jobPayload.Try)

	shouldRequeue, err := handler(ctx, jobPayload, app)
	if err != nil {
		app.Logger.Errorf("%s Handler error processing signature job for employee: %s: %v",
			workerPrefix, jobPayload.EmployeeID, err)

		if !shouldRequeue || jobPayload.Try >= MAX_QUEUE_RETRY {
			app.Logger.Errorf("%s Not requeuing signature job for employee: %s after error (retry: %d, shouldRequeue: %v)",
				workerPrefix, jobPayload.EmployeeID, jobPayload.Try, shouldRequeue)
			rabbitMQ.Nack(msg, false)
			return
		}

		requeueSignatureJob(rabbitMQ, workerPrefix, msg, jobPayload, app)
		return
	}

	app.Logger.Infof("%s Successfully processed signature job for employee: %s",
		workerPrefix, jobPayload.EmployeeID)
	rabbitMQ.Ack(msg)
}

func requeueSignatureJob(rabbitMQ *RabbitMQ, workerPrefix string, msg amqp.Delivery, jobPayload SignatureJobPayload, app *SignatureConsumerContext) {
	jobPayload.Try++
	payloadBytes, err := json.Marshal(jobPayload)
	if err != nil {
		app.Logger.Errorf("%s Failed to marshal signature payload for requeue: %v", workerPrefix, err)
		rabbitMQ.Nack(msg, false)
		return
	}

	if err := rabbitMQ.Publish(QueueSignatureUpdate, payloadBytes); err != nil {
		app.Logger.Errorf("%s Failed to requeue signature job for employee: %s: %v",
			workerPrefix, jobPayload.EmployeeID, err)
		rabbitMQ.Nack(msg, false)
		return
	}

	app.Logger.Infof("%s Requeued signature job for employee: %s", workerPrefix, jobPayload.EmployeeID)
	rabbitMQ.Ack(msg)
}
