package tracing

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
)

func TestNew_Enabled(t *testing.T) {
	buf := &bytes.Buffer{}
	tp, shutdown, err := New(buf, "launchgate", true)
	require.NoError(t, err)

	_, span := tp.Tracer("launchgate/test").Start(context.Background(), "audit.run")
	span.SetAttributes(attribute.Bool("audit.compliant", true))
	span.End()
	require.NoError(t, shutdown(context.Background()))

	out := buf.String()
	assert.Contains(t, out, `"audit.run"`)
	assert.Contains(t, out, `"audit.compliant"`)
	assert.Contains(t, out, `"launchgate"`)
}

func TestNew_Disabled(t *testing.T) {
	buf := &bytes.Buffer{}
	tp, shutdown, err := New(buf, "launchgate", false)
	require.NoError(t, err)

	_, span := tp.Tracer("launchgate/test").Start(context.Background(), "audit.run")
	span.End()
	require.NoError(t, shutdown(context.Background()))

	assert.Empty(t, buf.String())
}
