package pkg

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppError(t *testing.T) {
	t.Run("simple error has no cause", func(t *testing.T) {
		e := NewDomainErrorSimple("LEAD_NOT_FOUND", "Lead não encontrado", http.StatusNotFound)

		assert.Equal(t, http.StatusNotFound, e.HTTPStatus)
		assert.Nil(t, errors.Unwrap(e))
		assert.Equal(t, "LEAD_NOT_FOUND: Lead não encontrado", e.Error())
		assert.Equal(t, HTTPError{Code: "LEAD_NOT_FOUND", Message: "Lead não encontrado"}, e.ToHTTPError())
	})

	t.Run("cause is unwrapped but never exposed", func(t *testing.T) {
		cause := errors.New("connection reset")
		e := NewDomainError("INTERNAL_ERROR", "An internal error occurred", cause, http.StatusInternalServerError)

		assert.ErrorIs(t, e, cause)
		assert.Contains(t, e.Error(), "connection reset")
		assert.NotContains(t, e.ToHTTPError().Message, "connection reset")
	})
}
