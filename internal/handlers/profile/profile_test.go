package profile

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/nickmuds954-code/Nexus-trade/internal/dto"
	"github.com/nickmuds954-code/Nexus-trade/internal/service/ledgerservice"
	"github.com/nickmuds954-code/Nexus-trade/internal/service/profileservice"
)

func newHandler() *ProfileHandler {
	return New(profileservice.New(ledgerservice.New()))
}

func TestGetHandler(t *testing.T) {
	handler := newHandler()

	w := httptest.NewRecorder()
	handler.Get(w, httptest.NewRequest(http.MethodGet, "/profile", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	var body dto.ProfileResponseDTO
	_ = json.NewDecoder(w.Body).Decode(&body)
	assert.Empty(t, body.Name)
	assert.False(t, body.Verified)
}

func TestUpdateHandler(t *testing.T) {
	tests := []struct {
		name             string
		body             string
		expectedCode     int
		expectedVerified bool
		expectedError    string
	}{
		{
			name:             "Full identity verifies",
			body:             `{"name":"Jane Trader","email":"jane@example.com","mobile":"0712345678"}`,
			expectedCode:     http.StatusOK,
			expectedVerified: true,
		},
		{
			name:             "Short name stays unverified",
			body:             `{"name":"Jan","email":"jan@example.com"}`,
			expectedCode:     http.StatusOK,
			expectedVerified: false,
		},
		{
			name:          "Invalid request body",
			body:          `{"name":`,
			expectedCode:  http.StatusBadRequest,
			expectedError: "invalid request body",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := newHandler()

			r := httptest.NewRequest(http.MethodPut, "/profile", bytes.NewBufferString(tt.body))
			w := httptest.NewRecorder()

			handler.Update(w, r)

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedError != "" {
				assert.Contains(t, w.Body.String(), tt.expectedError)
				return
			}
			var body dto.ProfileResponseDTO
			_ = json.NewDecoder(w.Body).Decode(&body)
			assert.Equal(t, tt.expectedVerified, body.Verified)

			w = httptest.NewRecorder()
			handler.Get(w, httptest.NewRequest(http.MethodGet, "/profile", nil))
			var stored dto.ProfileResponseDTO
			_ = json.NewDecoder(w.Body).Decode(&stored)
			assert.Equal(t, body, stored)
		})
	}
}
