package controller

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/KaiserXLabs/kxl-gmail-signature-update/internal/constant"
	"github.com/KaiserXLabs/kxl-gmail-signature-update/internal/model"
	"github.com/KaiserXLabs/kxl-gmail-signature-update/internal/util"
	"github.com/gin-gonic/gin"
)

type SignatureController struct {
	*baseController
}

const (
	ErrRunIdRequired = "run id is required"
)

// PushEnvelope is the body a Pub/Sub push subscription posts: the message
// payload arrives base64 encoded inside the envelope.
type PushEnvelope struct {
	Message struct {
		Data        string `json:"data" binding:"required,base64"`
		MessageId   string `json:"message_id"`
		PublishTime string `json:"publish_time"`
	} `json:"message" binding:"required"`
	Subscription string `json:"subscription" binding:"required"`
}

// SignatureMessage is the decoded payload carried inside a push envelope.
type SignatureMessage struct {
	EmployeeID string `json:"employee_id"`
	Signature  string `json:"signature"`
}

// DecodePushMessage unwraps the base64 message data of a push envelope into
// the signature payload.
func DecodePushMessage(envelope PushEnvelope) (*SignatureMessage, error) {
	decoded, err := base64.StdEncoding.DecodeString(envelope.Message.Data)
	if err != nil {
		return nil, fmt.Errorf("failed to decode message data: %w", err)
	}

	var msg SignatureMessage
	if err := json.Unmarshal(decoded, &msg); err != nil {
		return nil, fmt.Errorf("failed to parse message data: %w", err)
	}

	if msg.EmployeeID == "" || msg.Signature == "" {
		return nil, fmt.Errorf("message is missing employee_id or signature")
	}

	return &msg, nil
}

func (sc SignatureController) PushSignature(ctx *gin.Context) {
	var envelope PushEnvelope
	if err := ctx.ShouldBindJSON(&envelope); err != nil {
		sc.app.Logger.Errorf("Failed to bind push envelope: %v", err)
		util.ResponseFailed(ctx, http.StatusBadRequest, "Invalid push envelope", util.GenerateErrorMessages(err), nil)
		return
	}

	msg, err := DecodePushMessage(envelope)
	if err != nil {
		sc.app.Logger.Errorf("Failed to decode push message: %v", err)
		util.ResponseFailed(ctx, http.StatusBadRequest, "Invalid message data", util.GenerateErrorMessages(err, "message"), nil)
		return
	}

	runId := envelope.Message.MessageId
	if runId == "" {
		runId = "push"
	}

	status := constant.UpdateStatusApplied
	detail := ""
	applyErr := sc.app.Applier.Apply(ctx, msg.EmployeeID, msg.Signature)
	if applyErr != nil {
		status = constant.UpdateStatusFailed
		detail = applyErr.Error()
	}

	log := &model.SignatureLog{
		RunID:      runId,
		EmployeeID: msg.EmployeeID,
		Status:     status,
		Detail:     detail,
		Timestamp:  time.Now().UTC().Format(time.RFC3339),
	}
	if err := sc.app.Repository.SignatureLog.Save(ctx, nil, log); err != nil {
		sc.app.Logger.Errorf("Failed to save signature log for %s: %v", msg.EmployeeID, err)
	}

	if applyErr != nil {
		sc.app.Logger.Errorf("Failed to apply signature for %s: %v", msg.EmployeeID, applyErr)
		util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to update signature", util.GenerateErrorMessages(applyErr), gin.H{
			"employeeId": msg.EmployeeID,
		})
		return
	}

	util.ResponseSuccess(ctx, gin.H{
		"status":     "Signature updated successfully",
		"employeeId": msg.EmployeeID,
	})
}

func (sc SignatureController) GetRunLogs(ctx *gin.Context) {
	runId := ctx.Param("runId")
	if runId == "" {
		util.ResponseFailed(ctx, http.StatusBadRequest, ErrRunIdRequired, nil, nil)
		return
	}

	logs, err := sc.app.Repository.SignatureLog.GetByRunId(ctx, nil, runId)
	if err != nil {
		sc.app.Logger.Errorf("Failed to get signature logs for run %s: %v", runId, err)
		util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to get run logs", util.GenerateErrorMessages(err), nil)
		return
	}

	util.ResponseSuccess(ctx, gin.H{
		"runId": runId,
		"logs":  logs,
	})
}
