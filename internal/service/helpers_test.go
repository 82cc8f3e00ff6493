//go:build !integration

package service

import (
	"time"

	"github.com/guttosm/cardapio-service/internal/domain/model"
	"github.com/shopspring/decimal"
)

var fixedNow = time.Date(2025, 6, 20, 22, 45, 30, 0, time.UTC)

func price(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func product(id, name, p string, qty int) model.Product {
	return model.Product{
		ID:         id,
		Name:       name,
		Price:      price(p),
		Quantity:   qty,
		Category:   "comida",
		Active:     true,
		Kind:       model.KindNormal,
		MaxFlavors: 1,
	}
}

func pizza(id, name, p string, qty, maxFlavors int) model.Product {
	pr := product(id, name, p, qty)
	pr.MaxFlavors = maxFlavors
	return pr
}

func addon(id, name, p string, qty int, categories ...string) model.Product {
	return model.Product{
		ID:              id,
		Name:            name,
		Price:           price(p),
		Quantity:        qty,
		Category:        model.AddonCategory,
		Active:          true,
		Kind:            model.KindAddon,
		MaxFlavors:      1,
		AddonCategories: categories,
	}
}

// flavorSelection starts a composed selection seeded with one base instance.
func flavorSelection(base model.Product, candidates ...model.Product) *model.Selection {
	return &model.Selection{
		ID:         "sess-1",
		Base:       base,
		FlavorMode: base.SupportsFlavors(),
		Flavors:    []model.Product{base},
		Candidates: candidates,
	}
}

func simpleSelection(base model.Product) *model.Selection {
	return &model.Selection{ID: "sess-1", Base: base}
}
