package failure_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"hotel-booking/pkg/failure"
)

func TestGetCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"validation", failure.Validation("bad input"), http.StatusBadRequest},
		{"conflict", failure.Conflict("room taken"), http.StatusConflict},
		{"not found", failure.NotFound("booking"), http.StatusNotFound},
		{"invalid state", failure.InvalidState("already started"), http.StatusBadRequest},
		{"upstream", failure.Upstream(errors.New("timeout")), http.StatusBadGateway},
		{"plain error", errors.New("boom"), http.StatusInternalServerError},
		{"wrapped failure", fmt.Errorf("confirm payment: %w", failure.Conflict("gone")), http.StatusConflict},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, failure.GetCode(tt.err))
		})
	}
}

func TestIs(t *testing.T) {
	err := fmt.Errorf("create booking: %w", failure.Conflict("room taken"))

	assert.True(t, failure.Is(err, http.StatusConflict))
	assert.False(t, failure.Is(err, http.StatusBadRequest))
	assert.False(t, failure.Is(errors.New("boom"), http.StatusConflict))
}

func TestInternal_NilPassthrough(t *testing.T) {
	assert.NoError(t, failure.Internal(nil))
	assert.Error(t, failure.Internal(errors.New("db down")))
}
