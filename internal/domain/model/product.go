// Package model defines the core domain entities for the storefront.
package model

import (
	"strings"

	"github.com/shopspring/decimal"
)

// ProductKind tags a catalog row as a sellable product or an add-on.
type ProductKind string

const (
	// KindNormal is a regular menu product.
	KindNormal ProductKind = "normal"
	// KindAddon is an extra priced additively on top of a product.
	KindAddon ProductKind = "adicional"
)

// AddonCategory is the category assigned to every add-on row.
const AddonCategory = "adicional"

// Product is a normalized catalog row.
//
// @Description Catalog product
type Product struct {
	ID          string          `json:"id" example:"42"`
	Name        string          `json:"nome" example:"Pizza Calabresa"`
	Description string          `json:"descricao,omitempty"`
	Price       decimal.Decimal `json:"preco" swaggertype:"string" example:"30.00"`
	Quantity    int             `json:"quantidade" example:"10"`
	Category    string          `json:"categoria" example:"comida"`
	ImageURL    string          `json:"imagem_url,omitempty"`
	Active      bool            `json:"ativo"`
	Kind        ProductKind     `json:"tipo" example:"normal"`
	MaxFlavors  int             `json:"max_sabores" example:"2"`
	Size        string          `json:"peso,omitempty" example:"grande"`
	// AddonCategories restricts an add-on to these product categories. Empty means unrestricted.
	AddonCategories []string `json:"categorias_adicionais,omitempty"`
}

// IsAddon reports whether the product is an add-on.
func (p Product) IsAddon() bool {
	return p.Kind == KindAddon
}

// InStock reports whether at least one unit is available.
func (p Product) InStock() bool {
	return p.Quantity > 0
}

// SupportsFlavors reports whether the product can be composed from several flavors.
func (p Product) SupportsFlavors() bool {
	return !p.IsAddon() && p.MaxFlavors > 1
}

// AppliesTo reports whether an add-on may be attached to a product of the given category.
func (p Product) AppliesTo(category string) bool {
	if len(p.AddonCategories) == 0 {
		return true
	}
	for _, c := range p.AddonCategories {
		if strings.EqualFold(c, category) {
			return true
		}
	}
	return false
}

// Addon returns the snapshot of an add-on taken at selection time.
func (p Product) Addon() AddonSnapshot {
	return AddonSnapshot{ID: p.ID, Name: p.Name, Price: p.Price}
}
