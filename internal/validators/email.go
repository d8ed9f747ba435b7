// Package validators holds signup checks that need more than a binding
// tag.
package validators

import (
	"net"
	"strings"
)

// IsEmailDomainValid reports whether the address's domain resolves to a
// mail host. Salon signups with unroutable domains are rejected before
// an account row is written.
func IsEmailDomainValid(email string) bool {
	domain, ok := emailDomain(email)
	if !ok {
		return false
	}

	if mx, err := net.LookupMX(domain); err == nil && len(mx) > 0 {
		return true
	}

	// No MX record: a plain host lookup still covers domains that
	// receive mail on an A/AAAA record.
	ips, err := net.LookupIP(domain)
	return err == nil && len(ips) > 0
}

func emailDomain(email string) (string, bool) {
	at := strings.LastIndex(email, "@")
	if at < 0 || at == len(email)-1 {
		return "", false
	}
	return email[at+1:], true
}
