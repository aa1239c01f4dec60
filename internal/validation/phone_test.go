package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePhone(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantDDI   string
		wantDDD   string
		wantValor string
		wantFull  string
		wantErr   bool
	}{
		{
			name:      "mobile formatted",
			input:     "(21) 98765-4321",
			wantDDI:   "55",
			wantDDD:   "21",
			wantValor: "987654321",
			wantFull:  "+5521987654321",
		},
		{
			name:      "mobile with country code",
			input:     "+55 11 99988-7766",
			wantDDI:   "55",
			wantDDD:   "11",
			wantValor: "999887766",
			wantFull:  "+5511999887766",
		},
		{
			name:      "country code without plus",
			input:     "5521987654321",
			wantDDI:   "55",
			wantDDD:   "21",
			wantValor: "987654321",
			wantFull:  "+5521987654321",
		},
		{
			name:      "landline",
			input:     "2133334444",
			wantDDI:   "55",
			wantDDD:   "21",
			wantValor: "33334444",
			wantFull:  "+552133334444",
		},
		{
			name:      "area code 55 is not mistaken for the country code",
			input:     "55999887766",
			wantDDI:   "55",
			wantDDD:   "55",
			wantValor: "999887766",
			wantFull:  "+5555999887766",
		},
		{
			name:      "US number",
			input:     "+1 212 555 1234",
			wantDDI:   "1",
			wantValor: "2125551234",
			wantFull:  "+12125551234",
		},
		{name: "empty", input: "", wantErr: true},
		{name: "letters", input: "abc", wantErr: true},
		{name: "too short", input: "12345", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParsePhone(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				assert.Nil(t, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantDDI, got.DDI)
			assert.Equal(t, tt.wantDDD, got.DDD)
			assert.Equal(t, tt.wantValor, got.Valor)
			assert.Equal(t, tt.wantFull, got.Full)
		})
	}
}

func TestFormatPhone(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"", ""},
		{"1", "(1"},
		{"11", "(11"},
		{"119", "(11) 9"},
		{"119876", "(11) 9876"},
		{"1198765", "(11) 9876-5"},
		{"1133334444", "(11) 3333-4444"},
		{"11987654321", "(11) 98765-4321"},
		{"119876543219999", "(11) 98765-4321"},
		{"(11) 98765-4321", "(11) 98765-4321"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := FormatPhone(tt.input)
			assert.Equal(t, tt.want, got)
			assert.LessOrEqual(t, len(got), 15)
		})
	}
}

func TestFormatPhone_Idempotent(t *testing.T) {
	for _, in := range []string{"11", "1198765", "1133334444", "11987654321"} {
		once := FormatPhone(in)
		assert.Equal(t, once, FormatPhone(once))
	}
}

func TestFormatCEP(t *testing.T) {
	assert.Equal(t, "", FormatCEP(""))
	assert.Equal(t, "01001", FormatCEP("01001"))
	assert.Equal(t, "01001-0", FormatCEP("010010"))
	assert.Equal(t, "01001-000", FormatCEP("01001000"))
	assert.Equal(t, "01001-000", FormatCEP("01001-000"))
}
