package http

import (
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeJSON(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		want    GenerateRequest
		wantErr bool
	}{
		{"empty body", "", GenerateRequest{}, false},
		{"valid", `{"month":"May","count":80}`, GenerateRequest{Month: "May", Count: 80}, false},
		{"unknown field", `{"months":"May"}`, GenerateRequest{}, true},
		{"wrong type", `{"count":"80"}`, GenerateRequest{}, true},
		{"trailing data", `{"count":80}{"count":1}`, GenerateRequest{Count: 80}, true},
		{"oversized", `{"month":"` + strings.Repeat("a", maxBodyBytes) + `"}`, GenerateRequest{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest("POST", "/", strings.NewReader(tt.body))
			var got GenerateRequest
			err := decodeJSON(r, &got)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSanitizeInput(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"  March  ", "March"},
		{"Mar\x00ch", "March"},
		{"line\nbreak", "line\nbreak"},
		{"tab\there", "tab\there"},
		{"", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, sanitizeInput(tt.in), "%q", tt.in)
	}
}
