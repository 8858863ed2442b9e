package cmdlog

import (
	"bytes"
	"errors"
	"fmt"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"

	"twminer/internal/logger"
	"twminer/internal/metrics"
	"twminer/internal/xclient"
)

func TestRunSuccess(t *testing.T) {
	var buf bytes.Buffer
	before := testutil.ToFloat64(metrics.Queries.WithLabelValues("cmdlog_ok_test"))

	err := Run(logger.New(&buf, "test", "info"), "cmdlog_ok_test", func() error { return nil })

	assert.NoError(t, err)
	assert.Equal(t, before+1, testutil.ToFloat64(metrics.Queries.WithLabelValues("cmdlog_ok_test")))
	assert.Contains(t, buf.String(), `"message":"cmdlog_ok_test_ok"`)
}

func TestRunFailure(t *testing.T) {
	var buf bytes.Buffer
	want := fmt.Errorf("show user: %w", xclient.ErrNotFound)

	err := Run(logger.New(&buf, "test", "info"), "cmdlog_err_test", func() error { return want })

	assert.True(t, errors.Is(err, xclient.ErrNotFound))
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.QueryErrors.WithLabelValues("cmdlog_err_test", "not_found")))
	assert.Contains(t, buf.String(), `"kind":"not_found"`)
	assert.Contains(t, buf.String(), `"level":"error"`)
}
