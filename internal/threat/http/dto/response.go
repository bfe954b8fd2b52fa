package dto

import (
	threatDomain "github.com/bitesapp/security/internal/threat/domain"
)

// InspectResponse reports the detector outcome.
type InspectResponse struct {
	IsSuspicious bool     `json:"is_suspicious"`
	Reasons      []string `json:"reasons"`
	Categories   []string `json:"categories"`
}

// MapFindingToResponse converts a finding to its response form. Empty results are
// encoded as empty arrays, not null.
func MapFindingToResponse(f threatDomain.Finding) InspectResponse {
	resp := InspectResponse{
		IsSuspicious: f.IsSuspicious,
		Reasons:      make([]string, 0, len(f.Reasons)),
		Categories:   make([]string, 0, len(f.Categories)),
	}
	resp.Reasons = append(resp.Reasons, f.Reasons...)
	for _, c := range f.Categories {
		resp.Categories = append(resp.Categories, string(c))
	}
	return resp
}

// SecurityHeadersResponse lists the hardening headers the service recommends.
type SecurityHeadersResponse struct {
	Headers map[string]string `json:"headers"`
}
