package errors

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConstructorsCarryCodeAndStatus(t *testing.T) {
	assert.Equal(t, CodeConfiguration, Configuration("no backend").Code)
	assert.Equal(t, http.StatusInternalServerError, Configuration("no backend").StatusCode)

	assert.Equal(t, CodeConnection, Connection("unreachable").Code)
	assert.Equal(t, http.StatusBadGateway, Connection("unreachable").StatusCode)

	assert.Equal(t, CodeQuery, Query("rejected").Code)
	assert.Equal(t, CodeValidation, Validation("bad input").Code)
	assert.Equal(t, http.StatusBadRequest, Validation("bad input").StatusCode)

	notFound := NotFound("place")
	assert.Equal(t, "place not found", notFound.Message)
	assert.Equal(t, http.StatusNotFound, notFound.StatusCode)
}

func TestPredicates(t *testing.T) {
	assert.True(t, IsConfiguration(Configuration("x")))
	assert.True(t, IsConnection(Connection("x")))
	assert.True(t, IsQuery(Query("x")))
	assert.True(t, IsNotFound(NotFound("x")))
	assert.True(t, IsValidation(Validation("x")))

	assert.False(t, IsQuery(Connection("x")))
	assert.False(t, IsQuery(fmt.Errorf("plain")))
	assert.False(t, IsQuery(nil))
}

func TestPredicatesSeeThroughWrapping(t *testing.T) {
	wrapped := fmt.Errorf("selecting backend: %w", Configuration("no backend"))
	assert.True(t, IsConfiguration(wrapped))
}

func TestWithErrorPreservesCause(t *testing.T) {
	cause := fmt.Errorf("dial tcp: refused")
	err := Connection("postgres unreachable").WithError(cause)

	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "CONNECTION_ERROR")
	assert.Contains(t, err.Error(), "refused")
}

func TestWithDetail(t *testing.T) {
	err := Validation("bad sort field").WithDetail("field", "password")
	assert.Equal(t, "password", err.Details["field"])
}

func TestGetStatusCode(t *testing.T) {
	assert.Equal(t, http.StatusNotFound, GetStatusCode(NotFound("place")))
	assert.Equal(t, http.StatusInternalServerError, GetStatusCode(fmt.Errorf("plain")))
}
