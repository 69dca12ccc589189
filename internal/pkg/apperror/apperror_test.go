package apperror

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorIs(t *testing.T) {
	err := NotFound("ride %s not found", "abc")

	assert.True(t, errors.Is(err, ErrNotFound))
	assert.False(t, errors.Is(err, ErrForbidden))

	wrapped := fmt.Errorf("accept ride: %w", err)
	assert.True(t, errors.Is(wrapped, ErrNotFound))
	assert.Equal(t, KindNotFound, KindOf(wrapped))
	assert.Equal(t, "ride abc not found", err.Error())
}

func TestInvalidTransition(t *testing.T) {
	err := InvalidTransition("STARTED", "REQUESTED")

	assert.True(t, errors.Is(err, ErrInvalidTransition))
	assert.Equal(t, "STARTED", err.Current)
	assert.Equal(t, "REQUESTED", err.Expected)
	assert.Contains(t, err.Error(), "STARTED")
	assert.Contains(t, err.Error(), "REQUESTED")
}

func TestInternal(t *testing.T) {
	cause := errors.New("connection reset")
	err := Internal(cause, "failed to load ride")

	assert.ErrorIs(t, err, cause)
	assert.Equal(t, KindInternal, KindOf(err))
	assert.Equal(t, "failed to load ride: connection reset", err.Error())
	assert.Equal(t, KindInternal, KindOf(cause))
}

func TestHTTPStatus(t *testing.T) {
	tests := []struct {
		kind Kind
		want int
	}{
		{KindNotFound, http.StatusNotFound},
		{KindInvalidTransition, http.StatusConflict},
		{KindForbidden, http.StatusForbidden},
		{KindAlreadyPaid, http.StatusConflict},
		{KindValidation, http.StatusBadRequest},
		{KindConflict, http.StatusConflict},
		{KindInternal, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(string(tt.kind), func(t *testing.T) {
			assert.Equal(t, tt.want, HTTPStatus(tt.kind))
		})
	}
}
