package document

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDigits(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"empty", "", ""},
		{"only digits", "52998224725", "52998224725"},
		{"formatted CPF", "529.982.247-25", "52998224725"},
		{"formatted CNPJ", "11.222.333/0001-81", "11222333000181"},
		{"letters and symbols", "a1b2@3#", "123"},
		{"no digits", "abc-./", ""},
		{"non-ASCII digits are ignored", "١٢٣45", "45"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Digits(tt.input))
		})
	}
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  Kind
	}{
		{"CPF digits", "52998224725", KindCPF},
		{"CPF formatted", "529.982.247-25", KindCPF},
		{"CNPJ digits", "11222333000181", KindCNPJ},
		{"CNPJ formatted", "11.222.333/0001-81", KindCNPJ},
		{"empty", "", KindInvalid},
		{"too short", "1234567890", KindInvalid},
		{"between CPF and CNPJ", "123456789012", KindInvalid},
		{"too long", "123456789012345", KindInvalid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.input))
		})
	}
}

func TestClassify_OtherLengthsAreInvalid(t *testing.T) {
	for n := 0; n <= 20; n++ {
		if n == CPFLength || n == CNPJLength {
			continue
		}
		digits := strings.Repeat("7", n)
		assert.Equal(t, KindInvalid, Classify(digits), "length %d", n)
		assert.False(t, IsValid(digits), "length %d", n)
	}
}

func TestKind_String(t *testing.T) {
	assert.Equal(t, "CPF", KindCPF.String())
	assert.Equal(t, "CNPJ", KindCNPJ.String())
	assert.Equal(t, "Invalid", KindInvalid.String())
	assert.Equal(t, "Invalid", Kind(42).String())

	text, err := KindCNPJ.MarshalText()
	assert.NoError(t, err)
	assert.Equal(t, "CNPJ", string(text))
}

func TestValidateCPF(t *testing.T) {
	tests := []struct {
		name  string
		cpf   string
		valid bool
	}{
		{"known valid formatted", "529.982.247-25", true},
		{"known valid digits", "52998224725", true},
		{"valid 12345678909", "123.456.789-09", true},
		{"valid 11144477735", "11144477735", true},
		{"valid leading zeros", "00000000191", true},
		{"valid 03561350712", "03561350712", true},

		{"all ones", "111.111.111-11", false},
		{"all zeros", "00000000000", false},
		{"wrong first check digit", "52998224735", false},
		{"wrong second check digit", "52998224726", false},
		{"sequential", "12345678910", false},
		{"too short", "123456789", false},
		{"too long", "123456789012", false},
		{"empty", "", false},
		{"letters only", "abcdefghijk", false},
		{"CNPJ is not a CPF", "11222333000181", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.valid, ValidateCPF(tt.cpf), "ValidateCPF(%q)", tt.cpf)
		})
	}
}

func TestValidateCNPJ(t *testing.T) {
	tests := []struct {
		name  string
		cnpj  string
		valid bool
	}{
		{"known valid formatted", "11.222.333/0001-81", true},
		{"known valid digits", "11222333000181", true},
		{"valid 60746948000112", "60746948000112", true},
		{"valid 11444777000161", "11.444.777/0001-61", true},
		{"valid leading zeros", "00000000000191", true},

		{"all ones", "11111111111111", false},
		{"all zeros", "00.000.000/0000-00", false},
		{"wrong last digit", "11222333000182", false},
		{"wrong first check digit", "11222333000171", false},
		{"too short", "1122233300018", false},
		{"too long", "112223330001811", false},
		{"empty", "", false},
		{"CPF is not a CNPJ", "52998224725", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.valid, ValidateCNPJ(tt.cnpj), "ValidateCNPJ(%q)", tt.cnpj)
		})
	}
}

func TestValidate_AllSameDigits(t *testing.T) {
	for d := '0'; d <= '9'; d++ {
		cpf := strings.Repeat(string(d), CPFLength)
		cnpj := strings.Repeat(string(d), CNPJLength)

		res := Validate(cpf)
		assert.Equal(t, KindCPF, res.Kind)
		assert.False(t, res.Valid, "CPF %s", cpf)

		res = Validate(cnpj)
		assert.Equal(t, KindCNPJ, res.Kind)
		assert.False(t, res.Valid, "CNPJ %s", cnpj)
	}
}

func TestValidate(t *testing.T) {
	res := Validate("529.982.247-25")
	assert.Equal(t, Result{
		Kind:      KindCPF,
		Digits:    "52998224725",
		Formatted: "529.982.247-25",
		Valid:     true,
	}, res)

	res = Validate("11222333000181")
	assert.Equal(t, Result{
		Kind:      KindCNPJ,
		Digits:    "11222333000181",
		Formatted: "11.222.333/0001-81",
		Valid:     true,
	}, res)

	res = Validate("123.45")
	assert.Equal(t, KindInvalid, res.Kind)
	assert.Equal(t, "12345", res.Digits)
	assert.Equal(t, "123.45", res.Formatted)
	assert.False(t, res.Valid)
}

func TestValidate_SpecialCharactersDoNotPanic(t *testing.T) {
	inputs := []string{
		"123@456#789$0",
		"(123)456.789-09",
		"[11]222.333/0001-81",
		"\x00\xff\xfe",
		strings.Repeat("9", 1000),
	}
	for _, in := range inputs {
		assert.NotPanics(t, func() { Validate(in) })
	}
}
