package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"spesegen/internal/core"
	"spesegen/internal/services"
)

func TestJSONResponseBuilder(t *testing.T) {
	rec := httptest.NewRecorder()
	NewJSONResponse().
		Status(http.StatusCreated).
		Header("X-Custom", "1").
		Body(map[string]int{"n": 3}).
		Write(rec)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "1", rec.Header().Get("X-Custom"))
	assert.Equal(t, "application/json; charset=utf-8", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"n":3}`, rec.Body.String())
}

func TestErrorResponse(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantKind   ErrorKind
		wantText   string
	}{
		{"invalid argument", fmt.Errorf("%w: empty query", core.ErrInvalidArgument), http.StatusBadRequest, KindInvalidArgument, "empty query"},
		{"query", &core.QueryError{SQL: "x", Err: errors.New("near x: syntax error")}, http.StatusBadRequest, KindQuery, "syntax error"},
		{"unknown", fmt.Errorf("%w: nope", core.ErrUnknownQuery), http.StatusNotFound, KindUnknownQuery, "nope"},
		{"store", fmt.Errorf("%w: locked", core.ErrStoreUnavailable), http.StatusServiceUnavailable, KindStoreUnavailable, "locked"},
		{"export disabled", services.ErrExportDisabled, http.StatusNotImplemented, KindExportDisabled, "not configured"},
		{"internal hides text", errors.New("secret detail"), http.StatusInternalServerError, KindInternal, "Internal Server Error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/x", nil)
			rec := httptest.NewRecorder()
			ErrorResponse(req, tt.err).Write(rec)

			assert.Equal(t, tt.wantStatus, rec.Code)
			var body ErrorBody
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, tt.wantKind, body.Kind)
			assert.Contains(t, body.Error, tt.wantText)
			if tt.wantKind == KindInternal {
				assert.NotContains(t, body.Error, "secret")
			}
		})
	}
}
