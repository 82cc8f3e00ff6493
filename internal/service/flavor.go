package service

import (
	"strconv"
	"strings"

	"github.com/guttosm/cardapio-service/internal/domain/model"
	"github.com/shopspring/decimal"
)

// AddFlavor appends one instance of candidate to the selection's flavor multiset.
func AddFlavor(sel *model.Selection, candidate model.Product) error {
	if !sel.FlavorMode {
		return ErrFlavorModeDisabled
	}
	if len(sel.Flavors) >= sel.Base.MaxFlavors {
		return ErrFlavorLimitReached.WithMax(sel.Base.MaxFlavors)
	}
	if !candidate.InStock() {
		return ErrFlavorOutOfStock.WithItem(candidate.Name)
	}
	sel.Flavors = append(sel.Flavors, candidate)
	return nil
}

// RemoveFlavor removes the most recently added instance of the flavor id.
// When that leaves no instance of the base product, ErrSessionAbandoned is returned and the
// selection must be discarded.
func RemoveFlavor(sel *model.Selection, id string) error {
	if !sel.FlavorMode {
		return ErrFlavorModeDisabled
	}
	last := -1
	for i := len(sel.Flavors) - 1; i >= 0; i-- {
		if sel.Flavors[i].ID == id {
			last = i
			break
		}
	}
	if last < 0 {
		return ErrFlavorNotSelected
	}

	sel.Flavors = append(sel.Flavors[:last], sel.Flavors[last+1:]...)
	if id == sel.Base.ID && sel.BaseCount() == 0 {
		return ErrSessionAbandoned
	}
	return nil
}

// ComposedPrice is the arithmetic mean of the flavor instance prices.
func ComposedPrice(flavors []model.Product) decimal.Decimal {
	if len(flavors) == 0 {
		return decimal.Zero
	}
	sum := decimal.Zero
	for _, f := range flavors {
		sum = sum.Add(f.Price)
	}
	return sum.Div(decimal.NewFromInt(int64(len(flavors))))
}

// FlavorLabel describes a flavor multiset as "A (2x), B".
func FlavorLabel(flavors []model.Product) string {
	groups := model.GroupFlavors(flavors)
	parts := make([]string, len(groups))
	for i, g := range groups {
		if g.Count > 1 {
			parts[i] = g.Name + " (" + strconv.Itoa(g.Count) + "x)"
		} else {
			parts[i] = g.Name
		}
	}
	return strings.Join(parts, ", ")
}

// ValidateComposition checks that a composed selection can be added to the cart:
// at least one flavor, the base flavor present and every distinct flavor in stock.
// stock overrides the quantities captured in the selection when it knows the id.
func ValidateComposition(sel *model.Selection, stock StockLevels) error {
	if len(sel.Flavors) == 0 || sel.BaseCount() == 0 {
		return ErrBaseFlavorRequired
	}
	seen := make(map[string]struct{}, len(sel.Flavors))
	for _, f := range sel.Flavors {
		if _, ok := seen[f.ID]; ok {
			continue
		}
		seen[f.ID] = struct{}{}
		if qty := stock.Of(f); qty <= 0 {
			return ErrFlavorOutOfStock.WithItem(f.Name)
		}
	}
	return nil
}

// StockLevels is a snapshot of current stock by product id.
// A nil snapshot defers to the quantities carried by the products themselves.
type StockLevels map[string]int

// Of returns the current stock of p. Ids absent from a non-nil snapshot no longer resolve and count as zero.
func (s StockLevels) Of(p model.Product) int {
	if s == nil {
		return p.Quantity
	}
	return s[p.ID]
}

// StockFrom builds a snapshot from catalog rows.
func StockFrom(products []model.Product) StockLevels {
	s := make(StockLevels, len(products))
	for _, p := range products {
		s[p.ID] = p.Quantity
	}
	return s
}
