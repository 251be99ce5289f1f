package log

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestForContext_IncludesIDs(t *testing.T) {
	t.Setenv("APP_ENV", "production")

	var out bytes.Buffer
	Configure("debug", &out)

	ctx, correlationID := WithCorrelationID(context.Background())
	ctx = WithDispatchID(ctx, "abc123")

	ForContext(ctx).WithField("rule_path", "/tags").Info("despacho")

	assert.Equal(t, correlationID, GetCorrelationID(ctx))
	assert.Contains(t, out.String(), "correlation_id="+correlationID)
	assert.Contains(t, out.String(), "dispatch_id=abc123")
	assert.Contains(t, out.String(), "rule_path=/tags")
}

func TestWithFields_DevelopmentKeepsEssentialOnly(t *testing.T) {
	t.Setenv("APP_ENV", "development")

	var out bytes.Buffer
	Configure("info", &out)

	L.WithFields(Fields{"method": "GET", "user_agent": "curl"}).Info("requisição")

	assert.Contains(t, out.String(), "method=GET")
	assert.NotContains(t, out.String(), "user_agent")
}

func TestConfigure_InvalidLevelFallsBackToInfo(t *testing.T) {
	var out bytes.Buffer
	Configure("verbose", &out)

	L.Debug("não aparece")
	L.Info("aparece")

	assert.NotContains(t, out.String(), "não aparece")
	assert.Contains(t, out.String(), "aparece")
}
