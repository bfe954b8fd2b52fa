// Package service matches requests against known injection signatures.
package service

import (
	"regexp"
	"slices"

	threatDomain "github.com/bitesapp/security/internal/threat/domain"
)

// DefaultMaxScanBytes bounds how much of a serialized request is inspected. It sits
// above the largest request body the API accepts, so anything the HTTP layer lets in
// is scanned whole.
const DefaultMaxScanBytes = 2 << 20

// OversizedReason is reported when a request is longer than the scan limit. The
// prefix is still scanned, but the tail cannot be vouched for.
const OversizedReason = "input exceeds scan limit"

// Signature is one named pattern within an attack category.
type Signature struct {
	Category threatDomain.Category
	Reason   string
	Pattern  *regexp.Regexp
}

// Detector reports whether a request carries textbook injection strings. It is a
// heuristic tripwire, not a web application firewall.
type Detector interface {
	Detect(req threatDomain.Request) threatDomain.Finding
}

var defaultSignatures = []Signature{
	{
		Category: threatDomain.SQLInjection,
		Reason:   "sql injection: UNION SELECT",
		Pattern:  regexp.MustCompile(`(?i)\bunion\b(\s|/\*.*?\*/)+(all\s+)?select\b`),
	},
	{
		Category: threatDomain.SQLInjection,
		Reason:   "sql injection: boolean tautology",
		Pattern:  regexp.MustCompile(`(?i)('|")\s*or\s+('|")?\w+('|")?\s*=\s*('|")?\w+|\bor\s+1\s*=\s*1\b`),
	},
	{
		Category: threatDomain.SQLInjection,
		Reason:   "sql injection: stacked statement",
		Pattern:  regexp.MustCompile(`(?i);\s*(drop|delete|truncate|alter|insert|update|exec)\s+\w+`),
	},
	{
		Category: threatDomain.SQLInjection,
		Reason:   "sql injection: comment sequence",
		Pattern:  regexp.MustCompile(`'\s*(--|#|/\*)`),
	},
	{
		Category: threatDomain.SQLInjection,
		Reason:   "sql injection: time delay",
		Pattern:  regexp.MustCompile(`(?i)\b(sleep|benchmark|pg_sleep)\s*\(|\bwaitfor\s+delay\b`),
	},
	{
		Category: threatDomain.CrossSiteScript,
		Reason:   "xss: script tag",
		Pattern:  regexp.MustCompile(`(?i)<\s*/?\s*script\b`),
	},
	{
		Category: threatDomain.CrossSiteScript,
		Reason:   "xss: javascript url",
		Pattern:  regexp.MustCompile(`(?i)\bjavascript\s*:`),
	},
	{
		Category: threatDomain.CrossSiteScript,
		Reason:   "xss: inline event handler",
		Pattern:  regexp.MustCompile(`(?i)\bon(error|load|click|mouseover|focus|submit)\s*=`),
	},
	{
		Category: threatDomain.CrossSiteScript,
		Reason:   "xss: embedded frame",
		Pattern:  regexp.MustCompile(`(?i)<\s*(iframe|object|embed)\b`),
	},
	{
		Category: threatDomain.PathTraversal,
		Reason:   "path traversal: parent directory",
		Pattern:  regexp.MustCompile(`\.\.[/\\]`),
	},
	{
		Category: threatDomain.PathTraversal,
		Reason:   "path traversal: system file",
		Pattern:  regexp.MustCompile(`(?i)/etc/(passwd|shadow)\b|\bwin\.ini\b`),
	},
	{
		Category: threatDomain.CommandInjection,
		Reason:   "command injection: chained shell command",
		Pattern:  regexp.MustCompile(`(?i)(;|&&|\|\|?)\s*(rm\s+-|wget\s|curl\s|nc\s+-|bash\s+-|/bin/(ba)?sh\b|chmod\s|whoami\b|cat\s+/)`),
	},
	{
		Category: threatDomain.CommandInjection,
		Reason:   "command injection: command substitution",
		Pattern:  regexp.MustCompile("\\$\\([^)]*\\)|`[^`]+`"),
	},
	{
		Category: threatDomain.ScannerProbe,
		Reason:   "scanner: known attack tool",
		Pattern:  regexp.MustCompile(`(?i)\b(sqlmap|nikto|acunetix|masscan|nmap)\b`),
	},
}

type detector struct {
	signatures   []Signature
	maxScanBytes int
}

// NewDetector creates a Detector with the built-in signature set.
func NewDetector() Detector {
	return NewDetectorWithSignatures(defaultSignatures, DefaultMaxScanBytes)
}

// NewDetectorWithSignatures creates a Detector that checks only signatures. A
// non-positive maxScanBytes selects DefaultMaxScanBytes.
func NewDetectorWithSignatures(signatures []Signature, maxScanBytes int) Detector {
	if maxScanBytes <= 0 {
		maxScanBytes = DefaultMaxScanBytes
	}
	return &detector{signatures: slices.Clone(signatures), maxScanBytes: maxScanBytes}
}

// Detect checks both the raw and the decoded request text. Each matching signature
// contributes one reason. A request longer than the scan limit is always suspicious.
func (d *detector) Detect(req threatDomain.Request) threatDomain.Finding {
	finding := threatDomain.Finding{}

	raw := req.Serialize()
	if len(raw) > d.maxScanBytes {
		raw = raw[:d.maxScanBytes]
		finding.IsSuspicious = true
		finding.Reasons = append(finding.Reasons, OversizedReason)
		finding.Categories = append(finding.Categories, threatDomain.OversizedInput)
	}
	decoded := threatDomain.Decoded(raw)

	for _, sig := range d.signatures {
		if !sig.Pattern.MatchString(raw) && (decoded == raw || !sig.Pattern.MatchString(decoded)) {
			continue
		}
		finding.IsSuspicious = true
		finding.Reasons = append(finding.Reasons, sig.Reason)
		if !slices.Contains(finding.Categories, sig.Category) {
			finding.Categories = append(finding.Categories, sig.Category)
		}
	}
	return finding
}
