package http

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bitesapp/security/internal/httputil"
	"github.com/bitesapp/security/internal/metrics"
	threatDomain "github.com/bitesapp/security/internal/threat/domain"
	threatService "github.com/bitesapp/security/internal/threat/service"
)

// skippedHeaders carry credentials and are never inspected.
var skippedHeaders = map[string]struct{}{
	"Authorization": {},
	"Cookie":        {},
}

// SecurityHeadersMiddleware attaches the policy's hardening headers to every response.
func SecurityHeadersMiddleware(policy threatDomain.HeaderPolicy) gin.HandlerFunc {
	headers := policy.Headers()

	return func(c *gin.Context) {
		for name, value := range headers {
			c.Header(name, value)
		}
		c.Next()
	}
}

// ThreatGuardMiddleware rejects requests whose method, path, query or headers match an
// injection signature with 400 Bad Request.
//
// Bodies are not inspected: the API's own payloads are opaque plaintext, passwords and
// tokens. Callers that want body inspection use the inspect endpoint.
func ThreatGuardMiddleware(
	detector threatService.Detector,
	businessMetrics metrics.BusinessMetrics,
	logger *slog.Logger,
) gin.HandlerFunc {
	return func(c *gin.Context) {
		finding := detector.Detect(requestFromGin(c))
		if !finding.IsSuspicious {
			c.Next()
			return
		}

		businessMetrics.RecordOperation(c.Request.Context(), "threat", "request_guard", metrics.StatusBlocked)
		logger.Warn("suspicious request blocked",
			slog.String("method", c.Request.Method),
			slog.String("path", c.Request.URL.Path),
			slog.String("client_ip", c.ClientIP()),
			slog.Any("reasons", finding.Reasons),
		)

		c.AbortWithStatusJSON(http.StatusBadRequest, httputil.ErrorResponse{
			Error:   "suspicious_request",
			Message: "The request was rejected",
		})
	}
}

func requestFromGin(c *gin.Context) threatDomain.Request {
	headers := make(map[string]string, len(c.Request.Header))
	for name, values := range c.Request.Header {
		if _, skip := skippedHeaders[name]; skip || len(values) == 0 {
			continue
		}
		headers[name] = values[0]
	}

	return threatDomain.Request{
		Method:  c.Request.Method,
		Path:    c.Request.URL.Path,
		Query:   c.Request.URL.RawQuery,
		Headers: headers,
	}
}
