package controller

import (
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pushEnvelope(data string) PushEnvelope {
	var envelope PushEnvelope
	envelope.Message.Data = data
	envelope.Message.MessageId = "msg-1"
	envelope.Subscription = "projects/kxl/subscriptions/signature-push"
	return envelope
}

func TestDecodePushMessage(t *testing.T) {
	payload := `{"employee_id":"ana.schmidt@kaiser-x.com","signature":"<html>sig</html>"}`
	envelope := pushEnvelope(base64.StdEncoding.EncodeToString([]byte(payload)))

	msg, err := DecodePushMessage(envelope)
	require.NoError(t, err)
	assert.Equal(t, "ana.schmidt@kaiser-x.com", msg.EmployeeID)
	assert.Equal(t, "<html>sig</html>", msg.Signature)
}

func TestDecodePushMessageInvalidBase64(t *testing.T) {
	_, err := DecodePushMessage(pushEnvelope("not-base64!!"))
	assert.Error(t, err)
}

func TestDecodePushMessageInvalidJson(t *testing.T) {
	envelope := pushEnvelope(base64.StdEncoding.EncodeToString([]byte("not json")))
	_, err := DecodePushMessage(envelope)
	assert.Error(t, err)
}

func TestDecodePushMessageMissingFields(t *testing.T) {
	envelope := pushEnvelope(base64.StdEncoding.EncodeToString([]byte(`{"employee_id":"a@b.com"}`)))
	_, err := DecodePushMessage(envelope)
	assert.Error(t, err)
}
