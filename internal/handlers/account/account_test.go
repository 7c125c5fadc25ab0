package account

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/nickmuds954-code/Nexus-trade/internal/dto"
	"github.com/nickmuds954-code/Nexus-trade/internal/service/ledgerservice"
)

func TestSwitchHandler(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		expectedCode   int
		expectedActive string
		expectedError  string
	}{
		{
			name:           "Switch to REAL",
			body:           `{"account":"REAL"}`,
			expectedCode:   http.StatusOK,
			expectedActive: "REAL",
		},
		{
			name:           "Switch back to DEMO",
			body:           `{"account":"DEMO"}`,
			expectedCode:   http.StatusOK,
			expectedActive: "DEMO",
		},
		{
			name:          "Unknown account type",
			body:          `{"account":"MARGIN"}`,
			expectedCode:  http.StatusBadRequest,
			expectedError: "unknown account type",
		},
		{
			name:          "Invalid request body",
			body:          `{"account":`,
			expectedCode:  http.StatusBadRequest,
			expectedError: "invalid request body",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := New(ledgerservice.New())

			r := httptest.NewRequest(http.MethodPost, "/switch", bytes.NewBufferString(tt.body))
			w := httptest.NewRecorder()

			handler.Switch(w, r)

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedError != "" {
				assert.Contains(t, w.Body.String(), tt.expectedError)
				return
			}
			var body dto.BalancesResponseDTO
			_ = json.NewDecoder(w.Body).Decode(&body)
			assert.Equal(t, tt.expectedActive, body.Active)
		})
	}
}

func TestGetBalancesHandler(t *testing.T) {
	handler := New(ledgerservice.New())

	r := httptest.NewRequest(http.MethodGet, "/balances", nil)
	w := httptest.NewRecorder()

	handler.GetBalances(w, r)

	assert.Equal(t, http.StatusOK, w.Code)
	var body dto.BalancesResponseDTO
	_ = json.NewDecoder(w.Body).Decode(&body)
	assert.Equal(t, "DEMO", body.Active)
	assert.Equal(t, 10000.0, body.USDDemo)
	assert.Equal(t, 10000.0, body.ActiveUSD)
	assert.Equal(t, 0.0, body.USDReal)
	assert.False(t, body.MiningSubscribed)
}
