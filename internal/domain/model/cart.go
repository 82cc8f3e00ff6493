package model

import (
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// ComposedMarker separates a base product id from the per-composition token in a line id.
const ComposedMarker = "_multisabores_"

// AddonSnapshot is an add-on as it was when the customer picked it.
// The price is not re-synced if the catalog changes before checkout.
type AddonSnapshot struct {
	ID    string          `json:"id"`
	Name  string          `json:"nome"`
	Price decimal.Decimal `json:"preco" swaggertype:"string"`
}

// FlavorSnapshot groups the instances of one flavor inside a composition.
type FlavorSnapshot struct {
	ID    string          `json:"id"`
	Name  string          `json:"nome"`
	Price decimal.Decimal `json:"preco" swaggertype:"string"`
	Count int             `json:"quantidade"`
}

// GroupFlavors collapses a flavor multiset into per-identity counts, in order of first appearance.
func GroupFlavors(instances []Product) []FlavorSnapshot {
	out := make([]FlavorSnapshot, 0, len(instances))
	index := make(map[string]int, len(instances))
	for _, p := range instances {
		if i, ok := index[p.ID]; ok {
			out[i].Count++
			continue
		}
		index[p.ID] = len(out)
		out = append(out, FlavorSnapshot{ID: p.ID, Name: p.Name, Price: p.Price, Count: 1})
	}
	return out
}

// LineItem is one entry of a cart.
//
// @Description Cart line item
type LineItem struct {
	// ID is the line identity. Composed lines carry a unique token after the base product id.
	ID          string           `json:"id" example:"42_multisabores_1718900000000"`
	ProductID   string           `json:"produto_id" example:"42"`
	Name        string           `json:"nome" example:"Pizza Calabresa (2 sabores)"`
	ImageURL    string           `json:"imagem_url,omitempty"`
	Size        string           `json:"peso,omitempty"`
	UnitPrice   decimal.Decimal  `json:"preco" swaggertype:"string" example:"40.00"`
	Quantity    int              `json:"quantidade" example:"1"`
	MaxQuantity int              `json:"max_quantidade" example:"8"`
	Addons      []AddonSnapshot  `json:"adicionais"`
	Flavors     []FlavorSnapshot `json:"sabores,omitempty"`
	Notes       string           `json:"observacoes"`
	Composed    bool             `json:"tem_multi_sabores"`
	AddedAt     time.Time        `json:"data_adicao"`
}

// BaseProductID returns the catalog id behind the line, stripping any composition token.
func (li LineItem) BaseProductID() string {
	if li.ProductID != "" {
		return li.ProductID
	}
	if i := strings.Index(li.ID, ComposedMarker); i >= 0 {
		return li.ID[:i]
	}
	return li.ID
}

// LineTotal returns unit price times quantity.
func (li LineItem) LineTotal() decimal.Decimal {
	return li.UnitPrice.Mul(decimal.NewFromInt(int64(li.Quantity)))
}

// Limit returns the maximum allowed quantity, falling back to def when the line carries none.
func (li LineItem) Limit(def int) int {
	if li.MaxQuantity > 0 {
		return li.MaxQuantity
	}
	return def
}

// SameEntry reports whether two lines are the same logical cart entry: same base product,
// same add-on set, same note and, for compositions, the same flavor multiset.
func (li LineItem) SameEntry(other LineItem) bool {
	if li.BaseProductID() != other.BaseProductID() || li.Composed != other.Composed {
		return false
	}
	if li.Notes != other.Notes || !sameAddons(li.Addons, other.Addons) {
		return false
	}
	if li.Composed {
		return sameFlavors(li.Flavors, other.Flavors)
	}
	return true
}

func sameAddons(a, b []AddonSnapshot) bool {
	if len(a) != len(b) {
		return false
	}
	byID := make(map[string]decimal.Decimal, len(a))
	for _, x := range a {
		byID[x.ID] = x.Price
	}
	for _, y := range b {
		price, ok := byID[y.ID]
		if !ok || !price.Equal(y.Price) {
			return false
		}
		delete(byID, y.ID)
	}
	return len(byID) == 0
}

func sameFlavors(a, b []FlavorSnapshot) bool {
	return flavorKey(a) == flavorKey(b)
}

func flavorKey(flavors []FlavorSnapshot) string {
	counts := make(map[string]int, len(flavors))
	prices := make(map[string]string, len(flavors))
	for _, f := range flavors {
		counts[f.ID] += f.Count
		prices[f.ID] = f.Price.String()
	}
	ids := make([]string, 0, len(counts))
	for id := range counts {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	var sb strings.Builder
	for _, id := range ids {
		sb.WriteString(id)
		sb.WriteByte('@')
		sb.WriteString(prices[id])
		sb.WriteByte('x')
		sb.WriteString(strconv.Itoa(counts[id]))
		sb.WriteByte(';')
	}
	return sb.String()
}

// Cart is an ordered list of line items plus the order history of its owner.
// Version increases on every successful save.
//
// @Description Shopping cart
type Cart struct {
	ID        string     `json:"id" example:"b7f1c1e0-3c55-4d6b-9d1a-1f0f3c1e2a11"`
	Items     []LineItem `json:"itens"`
	Orders    []Order    `json:"-"`
	Version   int64      `json:"versao" example:"3"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// ItemCount returns the total number of units in the cart.
func (c *Cart) ItemCount() int {
	n := 0
	for _, it := range c.Items {
		n += it.Quantity
	}
	return n
}

// Subtotal returns the sum of every line total.
func (c *Cart) Subtotal() decimal.Decimal {
	total := decimal.Zero
	for _, it := range c.Items {
		total = total.Add(it.LineTotal())
	}
	return total
}

// IsEmpty reports whether the cart has no lines.
func (c *Cart) IsEmpty() bool {
	return len(c.Items) == 0
}

// Clone returns a deep copy so mutations never leak into a stored value.
func (c *Cart) Clone() *Cart {
	cp := *c
	cp.Items = make([]LineItem, len(c.Items))
	for i, it := range c.Items {
		it.Addons = append([]AddonSnapshot(nil), it.Addons...)
		if it.Flavors != nil {
			it.Flavors = append([]FlavorSnapshot(nil), it.Flavors...)
		}
		cp.Items[i] = it
	}
	cp.Orders = append([]Order(nil), c.Orders...)
	return &cp
}
