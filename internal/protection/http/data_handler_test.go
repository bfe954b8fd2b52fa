package http

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitesapp/security/internal/protection/http/dto"
	protectionService "github.com/bitesapp/security/internal/protection/service"
)

// TestMain sets Gin to test mode for all tests in this package.
func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

func createTestContext(method, path, body string) (*gin.Context, *httptest.ResponseRecorder) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	req := httptest.NewRequest(method, path, bytes.NewReader([]byte(body)))
	req.Header.Set("Content-Type", "application/json")
	c.Request = req

	return c, w
}

func setupTestDataHandler() *DataHandler {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewDataHandler(protectionService.NewMasker(nil), logger)
}

func TestDataHandler_MaskHandler(t *testing.T) {
	handler := setupTestDataHandler()

	c, w := createTestContext(http.MethodPost, "/v1/data/mask",
		`{"data":{"username":"joao","password":"supersecretpassword","cvv":"123","orderTotal":42.5}}`)
	handler.MaskHandler(c)

	require.Equal(t, http.StatusOK, w.Code)

	var response dto.RecordResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, "joao", response.Data["username"])
	assert.Equal(t, "***************word", response.Data["password"])
	assert.Equal(t, "[REDACTED]", response.Data["cvv"])
	assert.Equal(t, 42.5, response.Data["orderTotal"])
	assert.NotContains(t, w.Body.String(), "supersecret")
}

func TestDataHandler_AnonymizeHandler(t *testing.T) {
	handler := setupTestDataHandler()

	c, w := createTestContext(http.MethodPost, "/v1/data/anonymize",
		`{"data":{"email":"john@example.com","firstName":"John","businessData":{"revenue":1200}}}`)
	handler.AnonymizeHandler(c)

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t,
		`{"data":{"email":"[ANONYMIZED]","firstName":"[ANONYMIZED]","businessData":{"revenue":1200}}}`,
		w.Body.String())
}

func TestDataHandler_RecordValidation(t *testing.T) {
	handler := setupTestDataHandler()

	tests := []struct {
		name           string
		body           string
		expectedStatus int
	}{
		{name: "missing data", body: `{}`, expectedStatus: http.StatusUnprocessableEntity},
		{name: "null data", body: `{"data":null}`, expectedStatus: http.StatusUnprocessableEntity},
		{name: "array instead of object", body: `{"data":[1,2]}`, expectedStatus: http.StatusBadRequest},
		{name: "invalid json", body: `{"data":`, expectedStatus: http.StatusBadRequest},
		{name: "empty record", body: `{"data":{}}`, expectedStatus: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, w := createTestContext(http.MethodPost, "/v1/data/mask", tt.body)
			handler.MaskHandler(c)

			assert.Equal(t, tt.expectedStatus, w.Code)
		})
	}
}

func TestDataHandler_MaskCardHandler(t *testing.T) {
	handler := setupTestDataHandler()

	tests := []struct {
		name     string
		card     string
		expected string
	}{
		{name: "visa", card: "4111111111111111", expected: "************1111"},
		{name: "spaced", card: "4242 4242 4242 4242", expected: "**** **** **** 4242"},
		{name: "too short", card: "123", expected: "[INVALID]"},
		{name: "empty", card: "", expected: "[INVALID]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			body, err := json.Marshal(dto.MaskCardRequest{CardNumber: tt.card})
			require.NoError(t, err)

			c, w := createTestContext(http.MethodPost, "/v1/data/mask-card", string(body))
			handler.MaskCardHandler(c)

			require.Equal(t, http.StatusOK, w.Code)

			var response dto.MaskCardResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
			assert.Equal(t, tt.expected, response.Masked)
		})
	}
}
