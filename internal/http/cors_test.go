package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestCreateCORSMiddleware(t *testing.T) {
	tests := []struct {
		name    string
		enabled bool
		origins string
		wantNil bool
	}{
		{name: "Disabled", enabled: false, origins: "https://ops.bites.app", wantNil: true},
		{name: "EnabledWithoutOrigins", enabled: true, origins: "", wantNil: true},
		{name: "OnlyWildcard", enabled: true, origins: " * ", wantNil: true},
		{name: "CommaSeparated", enabled: true, origins: "https://ops.bites.app,https://admin.bites.app"},
		{name: "Whitespace", enabled: true, origins: " https://ops.bites.app , https://admin.bites.app "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			middleware := createCORSMiddleware(tt.enabled, tt.origins, discardLogger())
			if tt.wantNil {
				assert.Nil(t, middleware)
				return
			}
			assert.NotNil(t, middleware)
		})
	}
}

func TestParseOrigins(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{name: "Empty", input: "", want: nil},
		{
			name:  "CommaSeparated",
			input: "https://ops.bites.app,https://admin.bites.app",
			want:  []string{"https://ops.bites.app", "https://admin.bites.app"},
		},
		{
			name:  "TrimsWhitespaceAndTrailingSlash",
			input: " https://ops.bites.app/ , https://admin.bites.app ",
			want:  []string{"https://ops.bites.app", "https://admin.bites.app"},
		},
		{
			name:  "DropsBlanksAndWildcard",
			input: "https://ops.bites.app,,*",
			want:  []string{"https://ops.bites.app"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := parseOrigins(tt.input)
			if tt.want == nil {
				assert.Empty(t, got)
				return
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func newCORSRouter(enabled bool) *gin.Engine {
	router := gin.New()
	if middleware := createCORSMiddleware(enabled, "https://ops.bites.app", discardLogger()); middleware != nil {
		router.Use(middleware)
	}
	router.POST("/v1/data/mask", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	return router
}

func TestCORSIntegration(t *testing.T) {
	t.Run("AllowedOrigin", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/v1/data/mask", nil)
		req.Header.Set("Origin", "https://ops.bites.app")
		w := httptest.NewRecorder()
		newCORSRouter(true).ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "https://ops.bites.app", w.Header().Get("Access-Control-Allow-Origin"))
		assert.Empty(t, w.Header().Get("Access-Control-Allow-Credentials"))
	})

	t.Run("Disabled", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/v1/data/mask", nil)
		req.Header.Set("Origin", "https://ops.bites.app")
		w := httptest.NewRecorder()
		newCORSRouter(false).ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("Preflight", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodOptions, "/v1/data/mask", nil)
		req.Header.Set("Origin", "https://ops.bites.app")
		req.Header.Set("Access-Control-Request-Method", http.MethodPost)
		w := httptest.NewRecorder()
		newCORSRouter(true).ServeHTTP(w, req)

		assert.Equal(t, http.StatusNoContent, w.Code)
		assert.Contains(t, w.Header().Get("Access-Control-Allow-Methods"), http.MethodPost)
	})
}
