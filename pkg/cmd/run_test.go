package cmd_test

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/klwxsrx/go-token-service/pkg/cmd"
	"github.com/klwxsrx/go-token-service/pkg/log"
)

func TestRun(t *testing.T) {
	t.Parallel()
	errFailed := errors.New("failed")
	blocking := func(ctx context.Context) error {
		<-ctx.Done()
		return ctx.Err()
	}

	tests := []struct {
		name        string
		job         func(context.Context) error
		expectedErr error
	}{
		{"completed job stops the others", func(context.Context) error { return nil }, nil},
		{"failed job is reported", func(context.Context) error { return errFailed }, errFailed},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			err := cmd.Run(context.Background(), log.NewStub(), tc.job, blocking)
			if tc.expectedErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tc.expectedErr)
		})
	}
}

func TestHandleAppPanic(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	logger := log.NewWithWriter(log.LevelError, &buf)

	assert.NotPanics(t, func() {
		defer cmd.HandleAppPanic(context.Background(), logger)
		panic("boom")
	})
	assert.Contains(t, buf.String(), "app failed with panic")
	assert.Contains(t, buf.String(), "boom")
}

func TestHandleAppPanic_LogsPanicError(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	logger := log.NewWithWriter(log.LevelError, &buf)
	errSettings := fmt.Errorf("invalid token settings: %w", errors.New("dataease.login_timeout must be positive"))

	assert.NotPanics(t, func() {
		defer cmd.HandleAppPanic(context.Background(), logger)
		panic(errSettings)
	})
	assert.Contains(t, buf.String(), "app failed with panic")
	assert.Contains(t, buf.String(), `"error":"invalid token settings: dataease.login_timeout must be positive"`)
}
