package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	c := Default()

	assert.Len(t, c.Products(), 12)
	assert.Equal(t, []string{"caixas", "kg", "pacotes", "unidades"}, c.Units())

	p, ok := c.Product("copos")
	require.True(t, ok)
	assert.Equal(t, "pacotes", p.Unit)
	assert.False(t, p.Variable())

	p, ok = c.Product("personalizado")
	require.True(t, ok)
	assert.True(t, p.Variable())

	_, ok = c.Product("inexistente")
	assert.False(t, ok)
}

func TestResolve(t *testing.T) {
	c := Default()

	tests := []struct {
		name      string
		product   string
		unit      string
		wantUnit  string
		wantHint  string
		wantFixed bool
	}{
		{"kg product ignores selection", "sacolas", "unidades", "kg", "Quantidade em quilogramas (kg)", true},
		{"kg product without selection", "embalagens-plasticas", "", "kg", "Quantidade em quilogramas (kg)", true},
		{"package product", "talheres", "kg", "pacotes", "Quantidade em pacotes (100 unidades cada)", true},
		{"variable with kg", "variados", "kg", "kg", "Quantidade em quilogramas (kg)", false},
		{"variable with unidades", "personalizado", "unidades", "unidades", "Quantidade em unidades individuais", false},
		{"variable with caixas", "variados", "caixas", "caixas", "Quantidade em caixas", false},
		{"variable without selection", "variados", "", "", "Informe a quantidade", false},
		{"variable with unknown unit", "personalizado", "litros", "litros", "Informe a quantidade", false},
		{"unknown product", "", "kg", "kg", "Informe a quantidade", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			info := c.Resolve(tt.product, tt.unit)
			assert.Equal(t, tt.product, info.Product)
			assert.Equal(t, tt.wantUnit, info.Unit)
			assert.Equal(t, tt.wantHint, info.Hint)
			assert.Equal(t, tt.wantFixed, info.Fixed)
		})
	}
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"invalid yaml", "products: [\n"},
		{"no products", "units:\n  kg: Kg\n"},
		{"missing id", "products:\n  - name: Sem id\n"},
		{"duplicate id", "products:\n  - id: a\n  - id: a\n"},
		{"unknown unit", "units:\n  kg: Kg\nproducts:\n  - id: a\n    unit: litros\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := Parse([]byte(tt.data))
			assert.Error(t, err)
			assert.Nil(t, c)
		})
	}
}

func TestLoad(t *testing.T) {
	c, err := Load("")
	require.NoError(t, err)
	assert.NotEmpty(t, c.Products())

	path := filepath.Join(t.TempDir(), "catalog.yaml")
	data := "default_hint: Quanto?\nunits:\n  kg: Em kg\nproducts:\n  - id: composto\n    name: Composto\n    unit: kg\n"
	require.NoError(t, os.WriteFile(path, []byte(data), 0o600))

	c, err = Load(path)
	require.NoError(t, err)
	assert.Equal(t, UnitInfo{Product: "composto", Unit: "kg", Hint: "Em kg", Fixed: true}, c.Resolve("composto", ""))
	assert.Equal(t, "Quanto?", c.Resolve("outro", "").Hint)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
