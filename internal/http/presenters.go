package http

import (
	"github.com/guttosm/cardapio-service/internal/domain/dto"
	"github.com/guttosm/cardapio-service/internal/domain/model"
	"github.com/guttosm/cardapio-service/internal/service"
	"github.com/shopspring/decimal"
)

// money renders an amount rounded half-up to cents.
func money(d decimal.Decimal) string {
	return d.StringFixed(2)
}

func productView(p model.Product) dto.ProductResponse {
	return dto.ProductResponse{
		ID:              p.ID,
		Name:            p.Name,
		Description:     p.Description,
		Price:           money(p.Price),
		Quantity:        p.Quantity,
		Category:        p.Category,
		ImageURL:        p.ImageURL,
		Active:          p.Active,
		Kind:            string(p.Kind),
		MaxFlavors:      p.MaxFlavors,
		Size:            p.Size,
		AddonCategories: p.AddonCategories,
		Available:       p.Active && p.InStock(),
	}
}

func productViews(products []model.Product) []dto.ProductResponse {
	out := make([]dto.ProductResponse, 0, len(products))
	for _, p := range products {
		out = append(out, productView(p))
	}
	return out
}

func addonViews(addons []model.AddonSnapshot) []dto.AddonResponse {
	out := make([]dto.AddonResponse, 0, len(addons))
	for _, a := range addons {
		out = append(out, dto.AddonResponse{ID: a.ID, Name: a.Name, Price: money(a.Price)})
	}
	return out
}

func flavorViews(flavors []model.FlavorSnapshot) []dto.FlavorResponse {
	if len(flavors) == 0 {
		return nil
	}
	out := make([]dto.FlavorResponse, 0, len(flavors))
	for _, f := range flavors {
		out = append(out, dto.FlavorResponse{ID: f.ID, Name: f.Name, Price: money(f.Price), Count: f.Count})
	}
	return out
}

func cartItemView(index int, li model.LineItem) dto.CartItemResponse {
	return dto.CartItemResponse{
		Index:       index,
		ID:          li.ID,
		ProductID:   li.BaseProductID(),
		Name:        li.Name,
		ImageURL:    li.ImageURL,
		Size:        li.Size,
		UnitPrice:   money(li.UnitPrice),
		Quantity:    li.Quantity,
		MaxQuantity: li.MaxQuantity,
		LineTotal:   money(li.LineTotal()),
		Addons:      addonViews(li.Addons),
		Flavors:     flavorViews(li.Flavors),
		Notes:       li.Notes,
		Composed:    li.Composed,
		AddedAt:     li.AddedAt,
	}
}

func cartView(cart *model.Cart, totals service.CartTotals) dto.CartResponse {
	items := make([]dto.CartItemResponse, 0, len(cart.Items))
	for i, li := range cart.Items {
		items = append(items, cartItemView(i, li))
	}
	return dto.CartResponse{
		ID:    cart.ID,
		Items: items,
		Totals: dto.CartTotalsResponse{
			ItemCount:   totals.ItemCount,
			Subtotal:    money(totals.Subtotal),
			DeliveryFee: money(totals.DeliveryFee),
			Total:       money(totals.Total),
		},
		Version: cart.Version,
	}
}

// indexOfLine finds where a just-added line ended up, so the client can address it.
func indexOfLine(cart *model.Cart, item model.LineItem) int {
	for i, li := range cart.Items {
		if li.SameEntry(item) {
			return i
		}
	}
	return -1
}

func summaryView(s *service.SelectionSummary) dto.SelectionSummaryResponse {
	return dto.SelectionSummaryResponse{
		Label:         s.Label,
		FlavorCount:   s.FlavorCount,
		MaxFlavors:    s.MaxFlavors,
		ComposedPrice: money(s.ComposedPrice),
		AddonTotal:    money(s.AddonTotal),
		UnitPrice:     money(s.UnitPrice),
		CanAddToCart:  s.CanAddToCart,
	}
}

func selectionView(sel *model.Selection) dto.SelectionResponse {
	return dto.SelectionResponse{
		ID:         sel.ID,
		Product:    productView(sel.Base),
		FlavorMode: sel.FlavorMode,
		Flavors:    flavorViews(model.GroupFlavors(sel.Flavors)),
		Candidates: productViews(sel.Candidates),
		Available:  productViews(sel.Available),
		Addons:     addonViews(sel.Addons),
		Notes:      sel.Notes,
		Summary:    summaryView(service.Summarize(sel)),
	}
}

func orderView(o model.Order) dto.OrderResponse {
	items := make([]dto.OrderItemResponse, 0, len(o.Items))
	for _, it := range o.Items {
		items = append(items, dto.OrderItemResponse{
			ProductID: it.ProductID,
			Name:      it.Name,
			UnitPrice: money(it.UnitPrice),
			Quantity:  it.Quantity,
			LineTotal: money(it.LineTotal),
			Addons:    addonViews(it.Addons),
			Flavors:   flavorViews(it.Flavors),
			Notes:     it.Notes,
			Composed:  it.Composed,
		})
	}
	return dto.OrderResponse{
		ID:          o.ID,
		Items:       items,
		Subtotal:    money(o.Subtotal),
		DeliveryFee: money(o.DeliveryFee),
		Total:       money(o.Total),
		Date:        o.Date,
		Time:        o.Time,
		Status:      string(o.Status),
	}
}

func orderViews(orders []model.Order) []dto.OrderResponse {
	out := make([]dto.OrderResponse, 0, len(orders))
	for _, o := range orders {
		out = append(out, orderView(o))
	}
	return out
}
