package service

import (
	"strconv"
	"time"

	"github.com/guttosm/cardapio-service/internal/domain/model"
)

// BuildLineItem turns a selection into a priced cart line with quantity 1.
// stock is the current catalog snapshot; token makes composed line ids unique.
// Nothing is mutated when an error is returned.
func BuildLineItem(sel *model.Selection, stock StockLevels, token string, now time.Time) (model.LineItem, error) {
	base := sel.Base
	baseStock := stock.Of(base)
	if baseStock <= 0 {
		return model.LineItem{}, ErrProductOutOfStock.WithItem(base.Name)
	}

	limit := baseStock
	if sel.FlavorMode {
		if err := ValidateComposition(sel, stock); err != nil {
			return model.LineItem{}, err
		}
		for _, f := range sel.Flavors {
			limit = min(limit, stock.Of(f))
		}
	}

	addons := make([]model.AddonSnapshot, 0, len(sel.Addons))
	for _, a := range sel.Addons {
		qty, ok := addonStock(sel, stock, a.ID)
		if !ok || qty <= 0 {
			return model.LineItem{}, ErrAddonUnavailable.WithItem(a.Name)
		}
		limit = min(limit, qty)
		addons = append(addons, a)
	}

	item := model.LineItem{
		ID:          base.ID,
		ProductID:   base.ID,
		Name:        base.Name,
		ImageURL:    base.ImageURL,
		Size:        base.Size,
		UnitPrice:   base.Price.Add(sel.AddonTotal()),
		Quantity:    1,
		MaxQuantity: limit,
		Addons:      addons,
		Notes:       sel.Notes,
		AddedAt:     now,
	}

	if sel.FlavorMode {
		item.ID = base.ID + model.ComposedMarker + token
		item.Name = base.Name + " (" + strconv.Itoa(len(sel.Flavors)) + " sabores)"
		item.UnitPrice = ComposedPrice(sel.Flavors).Add(sel.AddonTotal())
		item.Flavors = model.GroupFlavors(sel.Flavors)
		item.Composed = true
	}

	return item, nil
}

// addonStock resolves an add-on's current stock, first from the snapshot and then from the
// add-ons offered to the session. Unresolvable add-ons report ok=false.
func addonStock(sel *model.Selection, stock StockLevels, id string) (int, bool) {
	if stock != nil {
		qty, ok := stock[id]
		return qty, ok
	}
	for _, p := range sel.Available {
		if p.ID == id {
			return p.Quantity, true
		}
	}
	return 0, false
}
