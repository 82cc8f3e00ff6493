package repository

import (
	"time"

	"github.com/guttosm/cardapio-service/internal/domain/model"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Persistent shapes of carts and orders. Money is stored as Decimal128.

type addonDocument struct {
	ID    string               `bson:"id"`
	Name  string               `bson:"nome"`
	Price primitive.Decimal128 `bson:"preco"`
}

type flavorDocument struct {
	ID    string               `bson:"id"`
	Name  string               `bson:"nome"`
	Price primitive.Decimal128 `bson:"preco"`
	Count int                  `bson:"quantidade"`
}

type lineItemDocument struct {
	ID          string               `bson:"id"`
	ProductID   string               `bson:"produto_id"`
	Name        string               `bson:"nome"`
	ImageURL    string               `bson:"imagem_url,omitempty"`
	Size        string               `bson:"peso,omitempty"`
	UnitPrice   primitive.Decimal128 `bson:"preco"`
	Quantity    int                  `bson:"quantidade"`
	MaxQuantity int                  `bson:"max_quantidade"`
	Addons      []addonDocument      `bson:"adicionais"`
	Flavors     []flavorDocument     `bson:"sabores,omitempty"`
	Notes       string               `bson:"observacoes"`
	Composed    bool                 `bson:"tem_multi_sabores"`
	AddedAt     time.Time            `bson:"data_adicao"`
}

type orderItemDocument struct {
	ProductID string               `bson:"produto_id"`
	Name      string               `bson:"nome"`
	UnitPrice primitive.Decimal128 `bson:"preco"`
	Quantity  int                  `bson:"quantidade"`
	LineTotal primitive.Decimal128 `bson:"total_item"`
	Addons    []addonDocument      `bson:"adicionais"`
	Flavors   []flavorDocument     `bson:"sabores,omitempty"`
	Notes     string               `bson:"observacoes"`
	Composed  bool                 `bson:"tem_multi_sabores"`
}

type orderDocument struct {
	ID          string               `bson:"_id"`
	CartID      string               `bson:"carrinho_id,omitempty"`
	Items       []orderItemDocument  `bson:"itens"`
	Subtotal    primitive.Decimal128 `bson:"subtotal"`
	DeliveryFee primitive.Decimal128 `bson:"taxa_entrega"`
	Total       primitive.Decimal128 `bson:"total"`
	Date        string               `bson:"data"`
	Time        string               `bson:"hora"`
	Status      string               `bson:"status"`
	CreatedAt   time.Time            `bson:"created_at"`
	UpdatedAt   time.Time            `bson:"updated_at"`
}

type cartDocument struct {
	ID        string             `bson:"_id"`
	Items     []lineItemDocument `bson:"itens"`
	Orders    []orderDocument    `bson:"pedidos"`
	Version   int64              `bson:"versao"`
	CreatedAt time.Time          `bson:"created_at"`
	UpdatedAt time.Time          `bson:"updated_at"`
}

func addonsToDocuments(addons []model.AddonSnapshot) []addonDocument {
	out := make([]addonDocument, len(addons))
	for i, a := range addons {
		out[i] = addonDocument{ID: a.ID, Name: a.Name, Price: toDecimal128(a.Price)}
	}
	return out
}

func addonsFromDocuments(docs []addonDocument) []model.AddonSnapshot {
	out := make([]model.AddonSnapshot, len(docs))
	for i, d := range docs {
		out[i] = model.AddonSnapshot{ID: d.ID, Name: d.Name, Price: decimalOf(d.Price)}
	}
	return out
}

func flavorsToDocuments(flavors []model.FlavorSnapshot) []flavorDocument {
	if flavors == nil {
		return nil
	}
	out := make([]flavorDocument, len(flavors))
	for i, f := range flavors {
		out[i] = flavorDocument{ID: f.ID, Name: f.Name, Price: toDecimal128(f.Price), Count: f.Count}
	}
	return out
}

func flavorsFromDocuments(docs []flavorDocument) []model.FlavorSnapshot {
	if docs == nil {
		return nil
	}
	out := make([]model.FlavorSnapshot, len(docs))
	for i, d := range docs {
		out[i] = model.FlavorSnapshot{ID: d.ID, Name: d.Name, Price: decimalOf(d.Price), Count: d.Count}
	}
	return out
}

func lineItemToDocument(li model.LineItem) lineItemDocument {
	return lineItemDocument{
		ID:          li.ID,
		ProductID:   li.ProductID,
		Name:        li.Name,
		ImageURL:    li.ImageURL,
		Size:        li.Size,
		UnitPrice:   toDecimal128(li.UnitPrice),
		Quantity:    li.Quantity,
		MaxQuantity: li.MaxQuantity,
		Addons:      addonsToDocuments(li.Addons),
		Flavors:     flavorsToDocuments(li.Flavors),
		Notes:       li.Notes,
		Composed:    li.Composed,
		AddedAt:     li.AddedAt,
	}
}

func lineItemFromDocument(d lineItemDocument) model.LineItem {
	return model.LineItem{
		ID:          d.ID,
		ProductID:   d.ProductID,
		Name:        d.Name,
		ImageURL:    d.ImageURL,
		Size:        d.Size,
		UnitPrice:   decimalOf(d.UnitPrice),
		Quantity:    d.Quantity,
		MaxQuantity: d.MaxQuantity,
		Addons:      addonsFromDocuments(d.Addons),
		Flavors:     flavorsFromDocuments(d.Flavors),
		Notes:       d.Notes,
		Composed:    d.Composed,
		AddedAt:     d.AddedAt,
	}
}

func orderToDocument(o *model.Order) orderDocument {
	items := make([]orderItemDocument, len(o.Items))
	for i, it := range o.Items {
		items[i] = orderItemDocument{
			ProductID: it.ProductID,
			Name:      it.Name,
			UnitPrice: toDecimal128(it.UnitPrice),
			Quantity:  it.Quantity,
			LineTotal: toDecimal128(it.LineTotal),
			Addons:    addonsToDocuments(it.Addons),
			Flavors:   flavorsToDocuments(it.Flavors),
			Notes:     it.Notes,
			Composed:  it.Composed,
		}
	}
	return orderDocument{
		ID:          o.ID,
		CartID:      o.CartID,
		Items:       items,
		Subtotal:    toDecimal128(o.Subtotal),
		DeliveryFee: toDecimal128(o.DeliveryFee),
		Total:       toDecimal128(o.Total),
		Date:        o.Date,
		Time:        o.Time,
		Status:      string(o.Status),
		CreatedAt:   o.CreatedAt,
		UpdatedAt:   o.UpdatedAt,
	}
}

func orderFromDocument(d orderDocument) model.Order {
	items := make([]model.OrderItem, len(d.Items))
	for i, it := range d.Items {
		items[i] = model.OrderItem{
			ProductID: it.ProductID,
			Name:      it.Name,
			UnitPrice: decimalOf(it.UnitPrice),
			Quantity:  it.Quantity,
			LineTotal: decimalOf(it.LineTotal),
			Addons:    addonsFromDocuments(it.Addons),
			Flavors:   flavorsFromDocuments(it.Flavors),
			Notes:     it.Notes,
			Composed:  it.Composed,
		}
	}
	return model.Order{
		ID:          d.ID,
		CartID:      d.CartID,
		Items:       items,
		Subtotal:    decimalOf(d.Subtotal),
		DeliveryFee: decimalOf(d.DeliveryFee),
		Total:       decimalOf(d.Total),
		Date:        d.Date,
		Time:        d.Time,
		Status:      model.OrderStatus(d.Status),
		CreatedAt:   d.CreatedAt,
		UpdatedAt:   d.UpdatedAt,
	}
}

func cartToDocument(c *model.Cart) cartDocument {
	items := make([]lineItemDocument, len(c.Items))
	for i, it := range c.Items {
		items[i] = lineItemToDocument(it)
	}
	orders := make([]orderDocument, len(c.Orders))
	for i := range c.Orders {
		orders[i] = orderToDocument(&c.Orders[i])
	}
	return cartDocument{
		ID:        c.ID,
		Items:     items,
		Orders:    orders,
		Version:   c.Version,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

func cartFromDocument(d cartDocument) *model.Cart {
	items := make([]model.LineItem, len(d.Items))
	for i, it := range d.Items {
		items[i] = lineItemFromDocument(it)
	}
	orders := make([]model.Order, len(d.Orders))
	for i, o := range d.Orders {
		orders[i] = orderFromDocument(o)
	}
	return &model.Cart{
		ID:        d.ID,
		Items:     items,
		Orders:    orders,
		Version:   d.Version,
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
	}
}
