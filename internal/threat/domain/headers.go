// Package domain defines the security response headers and the request shape inspected
// for injection signatures.
package domain

import (
	"strconv"
	"time"
)

// Header names attached to every response.
const (
	HeaderContentTypeOptions      = "X-Content-Type-Options"
	HeaderFrameOptions            = "X-Frame-Options"
	HeaderStrictTransportSecurity = "Strict-Transport-Security"
	HeaderContentSecurityPolicy   = "Content-Security-Policy"
	HeaderXSSProtection           = "X-XSS-Protection"
	HeaderReferrerPolicy          = "Referrer-Policy"
	HeaderPermissionsPolicy       = "Permissions-Policy"
)

const (
	// DefaultHSTSMaxAge is one year, the minimum accepted by browser preload lists.
	DefaultHSTSMaxAge = 365 * 24 * time.Hour

	DefaultContentSecurityPolicy = "default-src 'self'; frame-ancestors 'none'; object-src 'none'; base-uri 'self'"
	DefaultReferrerPolicy        = "strict-origin-when-cross-origin"
	DefaultPermissionsPolicy     = "camera=(), microphone=(), geolocation=(self)"
)

// HeaderPolicy describes the hardening headers for HTTP responses.
type HeaderPolicy struct {
	HSTSMaxAge            time.Duration
	HSTSIncludeSubdomains bool
	ContentSecurityPolicy string
	ReferrerPolicy        string
	PermissionsPolicy     string
}

// DefaultHeaderPolicy returns the baseline policy used by the HTTP server.
func DefaultHeaderPolicy() HeaderPolicy {
	return HeaderPolicy{
		HSTSMaxAge:            DefaultHSTSMaxAge,
		HSTSIncludeSubdomains: true,
		ContentSecurityPolicy: DefaultContentSecurityPolicy,
		ReferrerPolicy:        DefaultReferrerPolicy,
		PermissionsPolicy:     DefaultPermissionsPolicy,
	}
}

// Headers returns a fresh header-name to value map. Empty policy fields fall back to
// the defaults, so the result always carries the full set.
func (p HeaderPolicy) Headers() map[string]string {
	maxAge := p.HSTSMaxAge
	if maxAge <= 0 {
		maxAge = DefaultHSTSMaxAge
	}
	hsts := "max-age=" + strconv.FormatInt(int64(maxAge/time.Second), 10)
	if p.HSTSIncludeSubdomains {
		hsts += "; includeSubDomains"
	}

	return map[string]string{
		HeaderContentTypeOptions:      "nosniff",
		HeaderFrameOptions:            "DENY",
		HeaderStrictTransportSecurity: hsts,
		HeaderContentSecurityPolicy:   orDefault(p.ContentSecurityPolicy, DefaultContentSecurityPolicy),
		HeaderXSSProtection:           "1; mode=block",
		HeaderReferrerPolicy:          orDefault(p.ReferrerPolicy, DefaultReferrerPolicy),
		HeaderPermissionsPolicy:       orDefault(p.PermissionsPolicy, DefaultPermissionsPolicy),
	}
}

// SecurityHeaders returns the default header set.
func SecurityHeaders() map[string]string {
	return DefaultHeaderPolicy().Headers()
}

func orDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
