// Package party attributes counterparty names to income transactions from
// narration text. The patterns are heuristics over the slash-delimited
// narration formats banks use for NEFT/RTGS/IMPS style transfers; extraction
// is best-effort and an empty result is a normal outcome.
package party

import (
	"regexp"
	"strings"
)

// Narration patterns in match-preference order. Each captures the party
// segment of a slash-delimited transfer narration.
var patterns = []*regexp.Regexp{
	// NEFT/REFERENCE/PARTY/BANK/...
	regexp.MustCompile(`NEFT/[^/]+/([^/]+)/[^/]+`),
	// RTGS/REFERENCE/PARTY/BANK/...
	regexp.MustCompile(`RTGS/[^/]+/([^/]+)/[^/]+`),
	// IMPS/REFERENCE/PARTY/...
	regexp.MustCompile(`IMPS/[^/]+/([^/]+)/`),
	// TRF/PARTY/transfer
	regexp.MustCompile(`TRF/([^/]+)/transfer`),
	// IFT/BRANCH/REFERENCE/PARTY/...
	regexp.MustCompile(`IFT/[^/]+/[^/]+/([^/]+)/`),
	// MOB/TPFT/PARTY/REFERENCE
	regexp.MustCompile(`MOB/TPFT/([^/]+)/`),
}

// bankKeywords reject captures that name a bank rather than a counterparty.
var bankKeywords = []string{
	"BANK", "HDFC", "ICICI", "SBI", "STATE BANK", "AXIS", "KOTAK",
	"YES BANK", "IDFC", "IDBI", "CANARA", "BARODA", "INDUSIND",
	"STANDARD CHARTERED", "CITI", "HSBC", "CORPORATION",
}

// suffixes stripped from accepted party names.
var suffixes = []string{
	" PVT LTD", " PRIVATE LIMITED", " LIMITED", " LTD",
	" PVT", " PRIVATE", " CORPORATION", " CORP",
}

var (
	numericOnly   = regexp.MustCompile(`^[0-9\s\-_.]+$`)
	referenceLike = regexp.MustCompile(`^[A-Z0-9]+$`)
	multiSpace    = regexp.MustCompile(`\s+`)
)

// Extractor implements the usecase PartyExtractor port.
type Extractor struct{}

func NewExtractor() *Extractor {
	return &Extractor{}
}

// ExtractParty returns the counterparty name found in the narration, or an
// empty string when no valid party can be attributed.
func (e *Extractor) ExtractParty(narration string) string {
	narration = strings.TrimSpace(narration)
	if narration == "" {
		return ""
	}

	for _, pattern := range patterns {
		m := pattern.FindStringSubmatch(narration)
		if m == nil {
			continue
		}
		candidate := strings.TrimSpace(m[1])
		if isValidPartyName(candidate) {
			return cleanPartyName(candidate)
		}
	}
	return ""
}

// isValidPartyName filters captures that are bank names, bare reference
// numbers, or too short to mean anything.
func isValidPartyName(name string) bool {
	if len(name) < 5 {
		return false
	}

	upper := strings.ToUpper(name)
	for _, keyword := range bankKeywords {
		if strings.Contains(upper, keyword) {
			return false
		}
	}

	if numericOnly.MatchString(name) {
		return false
	}
	// All-caps alphanumerics with no spaces look like reference codes.
	if referenceLike.MatchString(name) {
		return false
	}

	return true
}

func cleanPartyName(name string) string {
	name = multiSpace.ReplaceAllString(strings.TrimSpace(name), " ")

	upper := strings.ToUpper(name)
	for _, suffix := range suffixes {
		if strings.HasSuffix(upper, suffix) {
			name = strings.TrimSpace(name[:len(name)-len(suffix)])
			break
		}
	}
	return name
}
