package log

import (
	"bytes"
	"context"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func captureOutput(t *testing.T) *bytes.Buffer {
	t.Helper()
	buf := &bytes.Buffer{}
	previous := logrus.StandardLogger().Out
	logrus.SetOutput(buf)
	logrus.SetFormatter(&logrus.TextFormatter{DisableColors: true, DisableTimestamp: true})
	t.Cleanup(func() { logrus.SetOutput(previous) })
	return buf
}

func TestForContext_CarriesRunFields(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	buf := captureOutput(t)

	ctx, correlationID := WithCorrelationID(context.Background())
	ctx = WithRunID(ctx, "abc12345")

	ForContext(ctx).Info("budget run started")

	out := buf.String()
	assert.Contains(t, out, "correlation_id="+correlationID)
	assert.Contains(t, out, "run_id=abc12345")
	assert.Equal(t, correlationID, GetCorrelationID(ctx))
}

func TestWithFields_FiltersInDevelopment(t *testing.T) {
	t.Setenv("APP_ENV", "dev")
	buf := captureOutput(t)

	L.WithFields(Fields{
		"campaign_id": "c1",
		"noise":       "ignored",
	}).Info("campaign processed")

	out := buf.String()
	assert.Contains(t, out, "campaign_id=c1")
	assert.NotContains(t, out, "noise")
}

func TestWithField_KeepsBudgetFieldsInDevelopment(t *testing.T) {
	t.Setenv("APP_ENV", "")
	buf := captureOutput(t)

	L.WithField("budget_roas", 2.0).Info("no budget change")

	assert.Contains(t, buf.String(), "budget_roas=2")
}

func TestGetCorrelationID_Empty(t *testing.T) {
	assert.Empty(t, GetCorrelationID(context.Background()))
}
