package apperr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindOfUnwrapsWrappedErrors(t *testing.T) {
	base := NotFound("exam not found")
	wrapped := fmt.Errorf("starting exam: %w", base)

	assert.Equal(t, KindNotFound, KindOf(wrapped))
	assert.Equal(t, KindInternal, KindOf(errors.New("plain")))
	assert.Equal(t, KindInternal, KindOf(nil))
}

func TestHTTPStatusMapping(t *testing.T) {
	assert.Equal(t, http.StatusNotFound, HTTPStatus(NotFound("x")))
	assert.Equal(t, http.StatusForbidden, HTTPStatus(Forbidden("x")))
	assert.Equal(t, http.StatusBadRequest, HTTPStatus(InvalidState("x")))
	assert.Equal(t, http.StatusBadRequest, HTTPStatus(AttemptsExceeded("x")))
	assert.Equal(t, http.StatusBadRequest, HTTPStatus(Expired("x")))
	assert.Equal(t, http.StatusInternalServerError, HTTPStatus(errors.New("boom")))
}

func TestErrorStringIncludesCause(t *testing.T) {
	cause := errors.New("connection refused")
	err := Wrap(KindInternal, "loading exam", cause)

	assert.Equal(t, "loading exam: connection refused", err.Error())
	assert.ErrorIs(t, err, cause)
}
