package notify

import "strings"

const defaultCountryCode = "+91"

// NormalizePhone rewrites a customer-supplied number into international
// format for WhatsApp delivery. A national trunk "0" is replaced with the
// country code, bare numbers get the code prepended, and numbers already
// carrying the target code pass through unchanged.
func NormalizePhone(raw, countryCode string) string {
	p := strings.TrimSpace(raw)
	if p == "" {
		return ""
	}

	cc := strings.TrimSpace(countryCode)
	if cc == "" {
		cc = defaultCountryCode
	}

	if strings.HasPrefix(p, "0") {
		return cc + p[1:]
	}
	if !strings.HasPrefix(p, cc) {
		return cc + p
	}
	return p
}
