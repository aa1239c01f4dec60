// Package catalog lists the products accepted by the quote form and resolves
// the unit a quantity is expressed in.
package catalog

import (
	_ "embed"
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"
)

//go:embed catalog.yaml
var embedded []byte

// Product is a catalog entry. Unit is empty for products quoted in any unit.
type Product struct {
	ID   string `yaml:"id" json:"id"`
	Name string `yaml:"name" json:"name"`
	Unit string `yaml:"unit,omitempty" json:"unit,omitempty"`
}

// Variable reports whether the customer chooses the unit.
func (p Product) Variable() bool {
	return p.Unit == ""
}

// UnitInfo is the effective unit for a product and the hint shown next to the
// quantity field.
type UnitInfo struct {
	Product string `json:"produto"`
	Unit    string `json:"unidade"`
	Hint    string `json:"mensagem"`
	Fixed   bool   `json:"fixa"`
}

type file struct {
	DefaultHint string            `yaml:"default_hint"`
	Units       map[string]string `yaml:"units"`
	Products    []Product         `yaml:"products"`
}

// Catalog is immutable after Load and safe for concurrent use.
type Catalog struct {
	defaultHint string
	units       map[string]string
	products    []Product
	byID        map[string]Product
}

// Default returns the catalog compiled into the binary.
func Default() *Catalog {
	c, err := Parse(embedded)
	if err != nil {
		panic(fmt.Sprintf("catalog: embedded catalog is invalid: %v", err))
	}
	return c
}

// Load reads a catalog from path, or returns the embedded one when path is empty.
func Load(path string) (*Catalog, error) {
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog %s: %w", path, err)
	}
	return Parse(data)
}

// Parse decodes a YAML catalog.
func Parse(data []byte) (*Catalog, error) {
	var f file
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to decode catalog: %w", err)
	}
	if len(f.Products) == 0 {
		return nil, fmt.Errorf("catalog has no products")
	}

	c := &Catalog{
		defaultHint: f.DefaultHint,
		units:       f.Units,
		products:    f.Products,
		byID:        make(map[string]Product, len(f.Products)),
	}
	if c.units == nil {
		c.units = map[string]string{}
	}
	for _, p := range f.Products {
		if p.ID == "" {
			return nil, fmt.Errorf("catalog product without id")
		}
		if _, dup := c.byID[p.ID]; dup {
			return nil, fmt.Errorf("duplicate catalog product %q", p.ID)
		}
		if p.Unit != "" {
			if _, ok := c.units[p.Unit]; !ok {
				return nil, fmt.Errorf("product %q uses unknown unit %q", p.ID, p.Unit)
			}
		}
		c.byID[p.ID] = p
	}
	return c, nil
}

// Products returns the products in catalog order.
func (c *Catalog) Products() []Product {
	out := make([]Product, len(c.products))
	copy(out, c.products)
	return out
}

// Units returns the known unit names, sorted.
func (c *Catalog) Units() []string {
	out := make([]string, 0, len(c.units))
	for u := range c.units {
		out = append(out, u)
	}
	sort.Strings(out)
	return out
}

// Product looks up a product by id.
func (c *Catalog) Product(id string) (Product, bool) {
	p, ok := c.byID[id]
	return p, ok
}

// HasUnit reports whether unit is a known unit.
func (c *Catalog) HasUnit(unit string) bool {
	_, ok := c.units[unit]
	return ok
}

// Resolve returns the unit a quantity of product is expressed in. Products
// with a fixed unit override the selected one; variable products keep the
// selection. Unknown products and units fall back to the default hint.
func (c *Catalog) Resolve(product, unit string) UnitInfo {
	info := UnitInfo{Product: product, Unit: unit, Hint: c.defaultHint}

	p, ok := c.byID[product]
	if !ok {
		return info
	}
	if !p.Variable() {
		info.Unit = p.Unit
		info.Fixed = true
	}
	if hint, ok := c.units[info.Unit]; ok {
		info.Hint = hint
	}
	return info
}
