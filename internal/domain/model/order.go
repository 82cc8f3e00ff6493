package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderStatus is the lifecycle tag of an order.
type OrderStatus string

// StatusPending is the status of every freshly submitted order.
const StatusPending OrderStatus = "pendente"

// OrderItem is a line of a submitted order.
type OrderItem struct {
	ProductID string           `json:"produto_id" example:"42"`
	Name      string           `json:"nome" example:"Pizza Calabresa (2 sabores)"`
	UnitPrice decimal.Decimal  `json:"preco" swaggertype:"string" example:"40.00"`
	Quantity  int              `json:"quantidade" example:"2"`
	LineTotal decimal.Decimal  `json:"total_item" swaggertype:"string" example:"80.00"`
	Addons    []AddonSnapshot  `json:"adicionais"`
	Flavors   []FlavorSnapshot `json:"sabores,omitempty"`
	Notes     string           `json:"observacoes"`
	Composed  bool             `json:"tem_multi_sabores"`
}

// Order is the record produced by a successful checkout.
//
// @Description Submitted order
type Order struct {
	ID          string          `json:"id" example:"PED123456789"`
	CartID      string          `json:"carrinho_id,omitempty"`
	Items       []OrderItem     `json:"itens"`
	Subtotal    decimal.Decimal `json:"subtotal" swaggertype:"string" example:"80.00"`
	DeliveryFee decimal.Decimal `json:"taxa_entrega" swaggertype:"string" example:"5.00"`
	Total       decimal.Decimal `json:"total" swaggertype:"string" example:"85.00"`
	Date        string          `json:"data" example:"2025-06-20"`
	Time        string          `json:"hora" example:"19:45"`
	Status      OrderStatus     `json:"status" example:"pendente"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// NewOrderItem snapshots a cart line into an order line.
func NewOrderItem(li LineItem) OrderItem {
	item := OrderItem{
		ProductID: li.BaseProductID(),
		Name:      li.Name,
		UnitPrice: li.UnitPrice,
		Quantity:  li.Quantity,
		LineTotal: li.LineTotal(),
		Addons:    append([]AddonSnapshot{}, li.Addons...),
		Notes:     li.Notes,
		Composed:  li.Composed,
	}
	if li.Composed {
		item.Flavors = append([]FlavorSnapshot(nil), li.Flavors...)
	}
	return item
}
