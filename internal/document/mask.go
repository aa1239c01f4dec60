package document

import "strings"

// Mask is a positional formatting mask over a digit sequence. Groups holds the
// size of each digit group, Separators[i] is written between group i and i+1
// and Prefix is written before the first digit.
type Mask struct {
	Prefix     string
	Groups     []int
	Separators []string
}

// Masks used by the site forms.
var (
	CPFMask  = Mask{Groups: []int{3, 3, 3, 2}, Separators: []string{".", ".", "-"}}
	CNPJMask = Mask{Groups: []int{2, 3, 3, 4, 2}, Separators: []string{".", ".", "/", "-"}}
	CEPMask  = Mask{Groups: []int{5, 3}, Separators: []string{"-"}}
)

// Capacity returns how many digits the mask holds.
func (m Mask) Capacity() int {
	n := 0
	for _, g := range m.Groups {
		n += g
	}
	return n
}

// Len returns the length of a fully formatted value.
func (m Mask) Len() int {
	n := len(m.Prefix) + m.Capacity()
	for _, s := range m.Separators {
		n += len(s)
	}
	return n
}

// Apply formats digits with the mask. Partial input is allowed: a separator is
// only written once a digit follows it, and digits beyond Capacity are dropped.
// Non-digit characters in the input are ignored.
func (m Mask) Apply(s string) string {
	digits := Digits(s)
	if digits == "" {
		return ""
	}
	if c := m.Capacity(); len(digits) > c {
		digits = digits[:c]
	}

	var b strings.Builder
	b.Grow(m.Len())
	b.WriteString(m.Prefix)

	pos := 0
	for i, size := range m.Groups {
		if pos >= len(digits) {
			break
		}
		if i > 0 && i-1 < len(m.Separators) {
			b.WriteString(m.Separators[i-1])
		}
		end := pos + size
		if end > len(digits) {
			end = len(digits)
		}
		b.WriteString(digits[pos:end])
		pos = end
	}
	return b.String()
}
