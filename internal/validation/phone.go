package validation

import (
	"fmt"
	"strings"

	"github.com/ecobytes/site-api/internal/document"
	"github.com/nyaruka/phonenumbers"
)

// DefaultRegion is used when the number carries no country code.
const DefaultRegion = "BR"

var (
	landlineMask = document.Mask{Prefix: "(", Groups: []int{2, 4, 4}, Separators: []string{") ", "-"}}
	mobileMask   = document.Mask{Prefix: "(", Groups: []int{2, 5, 4}, Separators: []string{") ", "-"}}
)

// PhoneComponents represents the parsed components of a phone number
type PhoneComponents struct {
	DDI   string `json:"ddi"`
	DDD   string `json:"ddd"`
	Valor string `json:"valor"`
	Full  string `json:"full"`
}

// ParsePhone parses a phone number and returns its components. Numbers with
// 10 or 11 digits are read as national numbers; longer ones must carry the
// country code.
func ParsePhone(raw string) (*PhoneComponents, error) {
	clean := strings.TrimSpace(raw)
	digits := document.Digits(clean)
	if digits == "" {
		return nil, fmt.Errorf("invalid phone number: %q", raw)
	}

	var input string
	switch {
	case strings.HasPrefix(clean, "+"):
		input = "+" + digits
	case len(digits) <= 11:
		input = digits
	default:
		input = "+" + digits
	}

	num, err := phonenumbers.Parse(input, DefaultRegion)
	if err != nil {
		return nil, fmt.Errorf("failed to parse phone number: %w", err)
	}
	if !phonenumbers.IsValidNumber(num) {
		return nil, fmt.Errorf("invalid phone number: %s", raw)
	}

	national := phonenumbers.GetNationalSignificantNumber(num)
	components := &PhoneComponents{
		DDI:   fmt.Sprintf("%d", num.GetCountryCode()),
		Valor: national,
		Full:  phonenumbers.Format(num, phonenumbers.E164),
	}
	if num.GetCountryCode() == 55 && len(national) >= 2 {
		components.DDD = national[:2]
		components.Valor = national[2:]
	}
	return components, nil
}

// FormatPhone live-formats a Brazilian phone number: (XX) XXXX-XXXX up to ten
// digits and (XX) XXXXX-XXXX at eleven. Output never exceeds 15 characters.
func FormatPhone(s string) string {
	digits := document.Digits(s)
	if len(digits) <= 10 {
		return landlineMask.Apply(digits)
	}
	return mobileMask.Apply(digits)
}

// FormatCEP live-formats a postal code as 00000-000.
func FormatCEP(s string) string {
	return document.CEPMask.Apply(s)
}
