package errors

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetPassesThroughAppError(t *testing.T) {
	orig := New(KindNotFound, "book not found")
	wrapped := fmt.Errorf("loading book: %w", orig)

	got := Get(wrapped)
	assert.Equal(t, KindNotFound, got.Kind)
	assert.Equal(t, "book not found", got.Message)
}

func TestGetClassifiesDeadlineAsCapacity(t *testing.T) {
	got := Get(fmt.Errorf("query: %w", context.DeadlineExceeded))
	assert.Equal(t, KindCapacity, got.Kind)
}

func TestGetWrapsUnknownAsInternal(t *testing.T) {
	got := Get(errors.New("driver: bad connection"))
	require.Equal(t, KindInternal, got.Kind)
	assert.Equal(t, "internal server error", got.Message)
	assert.Error(t, got.Err)
}

func TestWrapHidesCauseFromMessage(t *testing.T) {
	cause := errors.New("dial tcp: connection refused")
	err := Wrap(cause, "failed to load cart")

	assert.Equal(t, "failed to load cart", err.Message)
	assert.ErrorIs(t, err, cause)
}

func TestHTTPStatus(t *testing.T) {
	cases := map[Kind]int{
		KindValidation:     http.StatusBadRequest,
		KindAuthentication: http.StatusUnauthorized,
		KindAuthorization:  http.StatusForbidden,
		KindNotFound:       http.StatusNotFound,
		KindConflict:       http.StatusConflict,
		KindCapacity:       http.StatusServiceUnavailable,
		KindInternal:       http.StatusInternalServerError,
	}
	for kind, want := range cases {
		assert.Equal(t, want, HTTPStatus(kind))
	}
}

func TestIsKind(t *testing.T) {
	err := Newf(KindConflict, "isbn %q already exists", "123")
	assert.True(t, IsKind(err, KindConflict))
	assert.False(t, IsKind(err, KindNotFound))
	assert.False(t, IsKind(nil, KindConflict))
}
