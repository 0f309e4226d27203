package errorutil

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToDomainError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantCode   string
		wantStatus int
	}{
		{"domain error passes through", NewValidationError("bad", nil), CodeValidation, http.StatusBadRequest},
		{"wrapped domain error", fmt.Errorf("ctx: %w", NewUnauthorized("no")), CodeUnauthorized, http.StatusUnauthorized},
		{"fiber error", fiber.NewError(http.StatusNotFound, "Cannot GET /x"), CodeNotFound, http.StatusNotFound},
		{"sentinel not found", fmt.Errorf("lookup: %w", ErrNotFound), CodeNotFound, http.StatusNotFound},
		{"unavailable", NewUnavailable("upstream down", errors.New("dial")), CodeUnavailable, http.StatusBadGateway},
		{"plain error", errors.New("boom"), CodeInternal, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ToDomainError(tt.err)
			require.NotNil(t, got)
			assert.Equal(t, tt.wantCode, got.Code)
			assert.Equal(t, tt.wantStatus, got.HTTPStatus)
		})
	}

	assert.Nil(t, ToDomainError(nil))
}

func TestDomainErrorUnwrapAndDetails(t *testing.T) {
	cause := errors.New("connection refused")
	err := NewUnavailable("fetch roster", cause)
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "connection refused")

	nf := NewNotFound("employee", nil).(*DomainError).WithDetail("id", 7)
	assert.Equal(t, "employee not found", nf.Message)
	assert.Equal(t, 7, nf.Details["id"])
	assert.ErrorIs(t, nf, ErrNotFound)
}
