// Package document classifies, formats and verifies Brazilian taxpayer
// documents (CPF and CNPJ).
//
// Every function in this package is a pure function of its input: malformed
// input yields KindInvalid or false, never an error or a panic.
package document

import "strings"

// Kind is the classification of a document by its digit count.
type Kind int

const (
	KindInvalid Kind = iota
	KindCPF
	KindCNPJ
)

const (
	// CPFLength is the digit count of a CPF.
	CPFLength = 11
	// CNPJLength is the digit count of a CNPJ.
	CNPJLength = 14
)

func (k Kind) String() string {
	switch k {
	case KindCPF:
		return "CPF"
	case KindCNPJ:
		return "CNPJ"
	default:
		return "Invalid"
	}
}

// MarshalText renders the kind as CPF, CNPJ or Invalid in JSON payloads.
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// Result is the outcome of Validate.
type Result struct {
	Kind      Kind   `json:"kind"`
	Digits    string `json:"digits"`
	Formatted string `json:"formatted"`
	Valid     bool   `json:"valid"`
}

// Digits returns the ASCII decimal digits of s, in order.
func Digits(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if c := s[i]; c >= '0' && c <= '9' {
			b.WriteByte(c)
		}
	}
	return b.String()
}

// Classify reports whether s holds a CPF (11 digits) or a CNPJ (14 digits).
func Classify(s string) Kind {
	switch len(Digits(s)) {
	case CPFLength:
		return KindCPF
	case CNPJLength:
		return KindCNPJ
	default:
		return KindInvalid
	}
}

// Format applies the CPF mask while the input has up to 11 digits and the CNPJ
// mask after that. It is meant for live formatting: partial input is formatted
// as far as it goes and the output never exceeds 18 characters.
func Format(s string) string {
	digits := Digits(s)
	if len(digits) <= CPFLength {
		return CPFMask.Apply(digits)
	}
	return CNPJMask.Apply(digits)
}

// FormatCPF formats s as 000.000.000-00.
func FormatCPF(s string) string {
	return CPFMask.Apply(s)
}

// FormatCNPJ formats s as 00.000.000/0000-00.
func FormatCNPJ(s string) string {
	return CNPJMask.Apply(s)
}

// Validate classifies s and verifies its check digits.
func Validate(s string) Result {
	digits := Digits(s)
	res := Result{Digits: digits}

	switch len(digits) {
	case CPFLength:
		res.Kind = KindCPF
		res.Formatted = CPFMask.Apply(digits)
		res.Valid = validCPF(digits)
	case CNPJLength:
		res.Kind = KindCNPJ
		res.Formatted = CNPJMask.Apply(digits)
		res.Valid = validCNPJ(digits)
	default:
		res.Kind = KindInvalid
		res.Formatted = Format(digits)
	}
	return res
}

// IsValid reports whether s is a valid CPF or CNPJ.
func IsValid(s string) bool {
	return Validate(s).Valid
}

// ValidateCPF reports whether s holds a CPF with correct check digits.
// Formatting characters are ignored.
func ValidateCPF(s string) bool {
	digits := Digits(s)
	return len(digits) == CPFLength && validCPF(digits)
}

// ValidateCNPJ reports whether s holds a CNPJ with correct check digits.
// Formatting characters are ignored.
func ValidateCNPJ(s string) bool {
	digits := Digits(s)
	return len(digits) == CNPJLength && validCNPJ(digits)
}

func validCPF(d string) bool {
	if allSame(d) {
		return false
	}
	return cpfCheckDigit(d[:9]) == d[9] && cpfCheckDigit(d[:10]) == d[10]
}

func validCNPJ(d string) bool {
	if allSame(d) {
		return false
	}
	return cnpjCheckDigit(d[:12]) == d[12] && cnpjCheckDigit(d[:13]) == d[13]
}

// cpfCheckDigit weights the digits from len+1 down to 2 and maps
// (sum*10) mod 11 of 10 to 0.
func cpfCheckDigit(d string) byte {
	sum := 0
	weight := len(d) + 1
	for i := 0; i < len(d); i++ {
		sum += int(d[i]-'0') * weight
		weight--
	}
	r := (sum * 10) % 11
	if r >= 10 {
		r = 0
	}
	return byte('0' + r)
}

// cnpjCheckDigit weights the digits right to left with the cycle 2..9.
func cnpjCheckDigit(d string) byte {
	sum := 0
	weight := 2
	for i := len(d) - 1; i >= 0; i-- {
		sum += int(d[i]-'0') * weight
		weight++
		if weight > 9 {
			weight = 2
		}
	}
	r := sum % 11
	if r < 2 {
		return '0'
	}
	return byte('0' + 11 - r)
}

func allSame(d string) bool {
	for i := 1; i < len(d); i++ {
		if d[i] != d[0] {
			return false
		}
	}
	return true
}
