package validators

import (
	"net"
	"net/mail"
	"strings"
)

// ValidEmail valida el formato del correo y, además, que el dominio
// tenga registros MX. La consulta DNS se salta en dominios de prueba.
func ValidEmail(email string) bool {
	addr, err := mail.ParseAddress(email)
	if err != nil {
		return false
	}

	parts := strings.Split(addr.Address, "@")
	if len(parts) != 2 {
		return false
	}
	domain := parts[1]

	if domain == "example.com" || strings.HasSuffix(domain, ".test") || strings.HasSuffix(domain, ".local") {
		return true
	}

	mx, err := net.LookupMX(domain)
	if err != nil || len(mx) == 0 {
		return false
	}
	return true
}
