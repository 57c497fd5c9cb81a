package circuitbreaker

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"prospect-finder/internal/common/errors"
	"prospect-finder/internal/common/logging"
)

func TestGoBreakerAdapter(t *testing.T) {
	logger := logging.GetGlobalLogger()

	t.Run("basic operation", func(t *testing.T) {
		cb := NewGoBreaker("test-basic", Config{
			MaxFailures:           2,
			Timeout:               100 * time.Millisecond,
			MaxConcurrentRequests: 1,
		}, logger)

		assert.Equal(t, "closed", cb.State())

		err := cb.Execute(context.Background(), func() error { return nil })
		assert.NoError(t, err)
		assert.Equal(t, "closed", cb.State())
	})

	t.Run("circuit opens after timeouts", func(t *testing.T) {
		cb := NewGoBreaker("test-failures", Config{
			MaxFailures:           3,
			Timeout:               time.Minute,
			MaxConcurrentRequests: 1,
		}, logger)

		for i := 0; i < 3; i++ {
			err := cb.Execute(context.Background(), func() error {
				return errors.TimeoutError(6*time.Second, "/api/linkedin/get/user/posts")
			})
			assert.Error(t, err)
		}

		assert.Equal(t, "open", cb.State())

		called := false
		err := cb.Execute(context.Background(), func() error {
			called = true
			return nil
		})
		require.Error(t, err)
		assert.False(t, called)
		assert.True(t, errors.IsType(err, errors.ErrTypeInternal))
		assert.Contains(t, err.Error(), "circuit breaker 'test-failures' is open")
	})

	t.Run("client errors do not trip the breaker", func(t *testing.T) {
		cb := NewGoBreaker("test-4xx", Config{
			MaxFailures:           2,
			Timeout:               time.Minute,
			MaxConcurrentRequests: 1,
		}, logger)

		for i := 0; i < 5; i++ {
			err := cb.Execute(context.Background(), func() error {
				return errors.UpstreamError(http.StatusNotFound, "user not found")
			})
			assert.True(t, errors.IsType(err, errors.ErrTypeUpstream))
		}

		assert.Equal(t, "closed", cb.State())
		assert.Equal(t, 5, cb.Stats().Successes)
	})

	t.Run("server errors trip the breaker", func(t *testing.T) {
		cb := NewGoBreaker("test-5xx", Config{
			MaxFailures:           2,
			Timeout:               time.Minute,
			MaxConcurrentRequests: 1,
		}, logger)

		for i := 0; i < 2; i++ {
			_ = cb.Execute(context.Background(), func() error {
				return errors.UpstreamError(http.StatusBadGateway, "Bad Gateway")
			})
		}

		assert.Equal(t, "open", cb.State())
	})

	t.Run("half-open after timeout and recovers", func(t *testing.T) {
		cb := NewGoBreaker("test-recovery", Config{
			MaxFailures:           1,
			Timeout:               20 * time.Millisecond,
			MaxConcurrentRequests: 1,
		}, logger)

		_ = cb.Execute(context.Background(), func() error { return fmt.Errorf("down") })
		assert.Equal(t, "open", cb.State())

		time.Sleep(40 * time.Millisecond)
		assert.Equal(t, "half-open", cb.State())

		require.NoError(t, cb.Execute(context.Background(), func() error { return nil }))
		assert.Equal(t, "closed", cb.State())
	})

	t.Run("invalid config falls back to defaults", func(t *testing.T) {
		cb := NewGoBreaker("test-invalid", Config{}, logger)
		assert.Equal(t, "closed", cb.State())
	})
}

func TestGoBreakerManager(t *testing.T) {
	manager := NewGoBreakerManager(Config{
		MaxFailures:           1,
		Timeout:               time.Minute,
		MaxConcurrentRequests: 1,
	}, nil)

	first := manager.GetOrCreate("/api/linkedin/get/profile")
	assert.Same(t, first, manager.GetOrCreate("/api/linkedin/get/profile"))

	err := manager.Execute(context.Background(), "/api/linkedin/search/users", func() error {
		return errors.ConnectionError("dial failed", fmt.Errorf("refused"))
	})
	require.Error(t, err)

	stats := manager.AllStats()
	require.Len(t, stats, 2)
	assert.Equal(t, "/api/linkedin/get/profile", stats[0].Name)
	assert.Equal(t, "closed", stats[0].State)
	assert.Equal(t, "/api/linkedin/search/users", stats[1].Name)
	assert.Equal(t, "open", stats[1].State)
}

func TestGoBreakerAdapter_LogsStateChange(t *testing.T) {
	var buf bytes.Buffer
	logger, err := logging.NewZapLogger(logging.LogConfig{Level: logging.InfoLevel, Format: logging.FormatJSON, Output: &buf})
	require.NoError(t, err)

	cb := NewGoBreaker("/api/linkedin/get/profile", Config{
		MaxFailures:           1,
		Timeout:               time.Minute,
		MaxConcurrentRequests: 1,
	}, logger)
	_ = cb.Execute(context.Background(), func() error {
		return errors.ConnectionError("dial failed", fmt.Errorf("refused"))
	})
	require.Equal(t, "open", cb.State())

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &entry))
	assert.Equal(t, "Circuit breaker state changed", entry["msg"])
	assert.Equal(t, "/api/linkedin/get/profile", entry["breaker"])
	assert.Equal(t, "closed", entry["from"])
	assert.Equal(t, "open", entry["to"])
}
