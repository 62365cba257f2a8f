package apperr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHTTPStatus(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{NotFound("product %s not found", "p1"), http.StatusNotFound},
		{Validation("bad input"), http.StatusBadRequest},
		{ValidationFields("validation failed", map[string]string{"name": "required"}), http.StatusBadRequest},
		{Unauthorized("no token"), http.StatusUnauthorized},
		{Forbidden("admin only"), http.StatusForbidden},
		{Conflict("email taken"), http.StatusConflict},
		{errors.New("boom"), http.StatusInternalServerError},
		{nil, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, HTTPStatus(tt.err))
	}
}

func TestKindOfSeesThroughWrapping(t *testing.T) {
	err := fmt.Errorf("add review: %w", NotFound("product p1 not found"))

	assert.Equal(t, KindNotFound, KindOf(err))
	assert.Equal(t, http.StatusNotFound, HTTPStatus(err))
}

func TestErrorMessage(t *testing.T) {
	assert.Equal(t, "product p1 not found", NotFound("product %s not found", "p1").Error())

	wrapped := &Error{Kind: KindInternal, Message: "query failed", Err: errors.New("timeout")}
	assert.Equal(t, "query failed: timeout", wrapped.Error())
	assert.Equal(t, "timeout", errors.Unwrap(wrapped).Error())
}
