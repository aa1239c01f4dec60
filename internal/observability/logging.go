package observability

import (
	"strings"

	"github.com/ecobytes/site-api/internal/logging"
)

// Logger returns the global safe logger instance
func Logger() *logging.SafeLogger {
	return logging.Logger
}

// MaskDocument masks a CPF or CNPJ (digits only) for logging
func MaskDocument(digits string) string {
	switch len(digits) {
	case 11:
		return digits[:3] + ".***." + digits[6:9] + "-**"
	case 14:
		return digits[:2] + ".***.***/" + digits[8:12] + "-**"
	default:
		return "***"
	}
}

// MaskEmail keeps the first character of the local part and the domain
func MaskEmail(email string) string {
	at := strings.LastIndex(email, "@")
	if at < 1 {
		return "***"
	}
	return email[:1] + "***" + email[at:]
}
