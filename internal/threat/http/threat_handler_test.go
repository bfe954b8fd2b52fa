package http

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitesapp/security/internal/metrics"
	threatDomain "github.com/bitesapp/security/internal/threat/domain"
	"github.com/bitesapp/security/internal/threat/http/dto"
	threatService "github.com/bitesapp/security/internal/threat/service"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func createTestContext(method, path string, body any) (*gin.Context, *httptest.ResponseRecorder) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	var reader io.Reader
	switch v := body.(type) {
	case nil:
	case string:
		reader = bytes.NewBufferString(v)
	default:
		data, _ := json.Marshal(v)
		reader = bytes.NewBuffer(data)
	}

	c.Request = httptest.NewRequest(method, path, reader)
	c.Request.Header.Set("Content-Type", "application/json")
	return c, w
}

func setupThreatHandler() *ThreatHandler {
	return NewThreatHandler(threatService.NewDetector(), threatDomain.DefaultHeaderPolicy(), discardLogger())
}

func TestThreatHandler_InspectHandler(t *testing.T) {
	t.Run("Success_Suspicious", func(t *testing.T) {
		handler := setupThreatHandler()
		c, w := createTestContext(http.MethodPost, "/v1/threats/inspect", dto.InspectRequest{
			Method: "GET",
			Path:   "/orders",
			Query:  "id=1%27%20OR%20%271%27%3D%271",
		})

		handler.InspectHandler(c)

		require.Equal(t, http.StatusOK, w.Code)
		var resp dto.InspectResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.True(t, resp.IsSuspicious)
		assert.NotEmpty(t, resp.Reasons)
		assert.Contains(t, resp.Categories, string(threatDomain.SQLInjection))
	})

	t.Run("Success_Clean", func(t *testing.T) {
		handler := setupThreatHandler()
		c, w := createTestContext(http.MethodPost, "/v1/threats/inspect", dto.InspectRequest{
			Method: "POST",
			Path:   "/orders",
			Body:   `{"items":[{"name":"Jollof rice","qty":2}],"note":"extra pepper"}`,
		})

		handler.InspectHandler(c)

		require.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"is_suspicious":false,"reasons":[],"categories":[]}`, w.Body.String())
	})

	t.Run("Success_PayloadAfterPadding", func(t *testing.T) {
		handler := setupThreatHandler()
		c, w := createTestContext(http.MethodPost, "/v1/threats/inspect", dto.InspectRequest{
			Method: "POST",
			Path:   "/orders",
			Body:   strings.Repeat("a", 70000) + "id=1' OR '1'='1",
		})

		handler.InspectHandler(c)

		require.Equal(t, http.StatusOK, w.Code)
		var resp dto.InspectResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.True(t, resp.IsSuspicious)
		assert.Equal(t, []string{"sql injection: boolean tautology"}, resp.Reasons)
	})

	t.Run("Error_MissingPath", func(t *testing.T) {
		handler := setupThreatHandler()
		c, w := createTestContext(http.MethodPost, "/v1/threats/inspect", dto.InspectRequest{Method: "GET"})

		handler.InspectHandler(c)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	})

	t.Run("Error_InvalidJSON", func(t *testing.T) {
		handler := setupThreatHandler()
		c, w := createTestContext(http.MethodPost, "/v1/threats/inspect", "{bad")

		handler.InspectHandler(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestThreatHandler_SecurityHeadersHandler(t *testing.T) {
	handler := setupThreatHandler()
	c, w := createTestContext(http.MethodGet, "/v1/security-headers", nil)

	handler.SecurityHeadersHandler(c)

	require.Equal(t, http.StatusOK, w.Code)
	var resp dto.SecurityHeadersResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, threatDomain.SecurityHeaders(), resp.Headers)
}

func TestSecurityHeadersMiddleware(t *testing.T) {
	router := gin.New()
	router.Use(SecurityHeadersMiddleware(threatDomain.DefaultHeaderPolicy()))
	router.GET("/ping", func(c *gin.Context) { c.String(http.StatusOK, "pong") })

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	for name, value := range threatDomain.SecurityHeaders() {
		assert.Equal(t, value, w.Header().Get(name), name)
	}
}

func TestThreatGuardMiddleware(t *testing.T) {
	newRouter := func() *gin.Engine {
		router := gin.New()
		router.Use(ThreatGuardMiddleware(
			threatService.NewDetector(),
			metrics.NewNoOpBusinessMetrics(),
			discardLogger(),
		))
		router.GET("/orders", func(c *gin.Context) { c.String(http.StatusOK, "ok") })
		router.POST("/orders", func(c *gin.Context) {
			body, _ := io.ReadAll(c.Request.Body)
			c.String(http.StatusOK, string(body))
		})
		return router
	}

	t.Run("Blocks_SuspiciousQuery", func(t *testing.T) {
		w := httptest.NewRecorder()
		newRouter().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/orders?file=../../etc/passwd", nil))

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "suspicious_request")
		assert.NotContains(t, w.Body.String(), "passwd")
	})

	t.Run("Blocks_ScannerUserAgent", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/orders", nil)
		req.Header.Set("User-Agent", "sqlmap/1.7")
		w := httptest.NewRecorder()
		newRouter().ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Allows_CleanRequest", func(t *testing.T) {
		w := httptest.NewRecorder()
		newRouter().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/orders?page=2&status=delivered", nil))

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("Ignores_Body", func(t *testing.T) {
		body := `{"password":"x' OR '1'='1"}`
		w := httptest.NewRecorder()
		newRouter().ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/orders", bytes.NewBufferString(body)))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, body, w.Body.String())
	})

	t.Run("Ignores_AuthorizationHeader", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/orders", nil)
		req.Header.Set("Authorization", "Bearer <script>")
		w := httptest.NewRecorder()
		newRouter().ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})
}
