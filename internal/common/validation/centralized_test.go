package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"prospect-finder/internal/common/errors"
)

type lookupRequest struct {
	Name string `json:"name" validate:"not_blank"`
}

type providerSettings struct {
	BaseURL string `json:"base_url" validate:"required,url"`
	Port    string `json:"port" validate:"required,numeric"`
}

func TestValidateStruct(t *testing.T) {
	v := NewCentralizedValidator()

	t.Run("valid request", func(t *testing.T) {
		assert.NoError(t, v.ValidateStruct(lookupRequest{Name: "Jane Doe"}))
	})

	t.Run("blank name is rejected with json field name", func(t *testing.T) {
		err := v.ValidateStruct(lookupRequest{Name: "   "})
		require.Error(t, err)
		assert.True(t, errors.IsType(err, errors.ErrTypeValidation))
		assert.Contains(t, err.Error(), "field 'name' is required")
	})

	t.Run("multiple failures are joined", func(t *testing.T) {
		err := v.ValidateStruct(providerSettings{BaseURL: "not a url", Port: "http"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "validation failed")
		assert.Contains(t, err.Error(), "field 'base_url' must be a valid URL")
		assert.Contains(t, err.Error(), "field 'port' must be a number")
	})
}

func TestValidateVar(t *testing.T) {
	v := NewCentralizedValidator()

	assert.NoError(t, v.ValidateVar("https://api.horizondatawave.ai", "url"))
	err := v.ValidateVar("production-ish", "oneof=development production test")
	require.Error(t, err)
	assert.True(t, errors.IsType(err, errors.ErrTypeValidation))
}
