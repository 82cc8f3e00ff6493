package dto

import "time"

// Money values are rendered as fixed two-decimal strings.

// ProductResponse is a catalog product as shown to clients.
//
// @Description Catalog product
type ProductResponse struct {
	ID              string   `json:"id" example:"42"`
	Name            string   `json:"nome" example:"Pizza Calabresa"`
	Description     string   `json:"descricao,omitempty"`
	Price           string   `json:"preco" example:"40.00"`
	Quantity        int      `json:"quantidade" example:"10"`
	Category        string   `json:"categoria" example:"comida"`
	ImageURL        string   `json:"imagem_url,omitempty"`
	Active          bool     `json:"ativo" example:"true"`
	Kind            string   `json:"tipo" example:"normal"`
	MaxFlavors      int      `json:"max_sabores" example:"2"`
	Size            string   `json:"peso,omitempty" example:"Grande"`
	AddonCategories []string `json:"categorias_adicionais,omitempty"`
	Available       bool     `json:"disponivel" example:"true"`
	HasAddons       *bool    `json:"tem_adicionais,omitempty"`
} // @name ProductResponse

// AddonResponse is an add-on snapshot.
type AddonResponse struct {
	ID    string `json:"id" example:"7"`
	Name  string `json:"nome" example:"Bacon"`
	Price string `json:"preco" example:"4.00"`
} // @name AddonResponse

// FlavorResponse is one flavor of a composition with its instance count.
type FlavorResponse struct {
	ID    string `json:"id" example:"43"`
	Name  string `json:"nome" example:"Margherita"`
	Price string `json:"preco" example:"35.00"`
	Count int    `json:"quantidade" example:"1"`
} // @name FlavorResponse

// CartItemResponse is a cart line. Index is the position used by the line endpoints.
type CartItemResponse struct {
	Index       int              `json:"indice" example:"0"`
	ID          string           `json:"id" example:"42_multisabores_1718900000000"`
	ProductID   string           `json:"produto_id" example:"42"`
	Name        string           `json:"nome" example:"Pizza Calabresa (2 sabores)"`
	ImageURL    string           `json:"imagem_url,omitempty"`
	Size        string           `json:"peso,omitempty"`
	UnitPrice   string           `json:"preco" example:"37.50"`
	Quantity    int              `json:"quantidade" example:"2"`
	MaxQuantity int              `json:"max_quantidade" example:"8"`
	LineTotal   string           `json:"total_item" example:"75.00"`
	Addons      []AddonResponse  `json:"adicionais"`
	Flavors     []FlavorResponse `json:"sabores,omitempty"`
	Notes       string           `json:"observacoes"`
	Composed    bool             `json:"tem_multi_sabores"`
	AddedAt     time.Time        `json:"data_adicao"`
} // @name CartItemResponse

// CartTotalsResponse are the totals derived from the cart lines.
type CartTotalsResponse struct {
	ItemCount   int    `json:"quantidade_itens" example:"3"`
	Subtotal    string `json:"subtotal" example:"80.00"`
	DeliveryFee string `json:"taxa_entrega" example:"5.00"`
	Total       string `json:"total" example:"85.00"`
} // @name CartTotalsResponse

// CartResponse is a cart with its totals.
//
// @Description Shopping cart with totals
type CartResponse struct {
	ID      string             `json:"id" example:"b7f1c1e0-3c55-4d6b-9d1a-1f0f3c1e2a11"`
	Items   []CartItemResponse `json:"itens"`
	Totals  CartTotalsResponse `json:"totais"`
	Version int64              `json:"versao" example:"3"`
} // @name CartResponse

// AddToCartResponse reports the cart after a session was added and whether the line merged.
type AddToCartResponse struct {
	Cart    CartResponse     `json:"carrinho"`
	Item    CartItemResponse `json:"item"`
	Outcome string           `json:"resultado" example:"merged"`
} // @name AddToCartResponse

// SelectionSummaryResponse is the priced view of a session.
type SelectionSummaryResponse struct {
	Label         string `json:"rotulo" example:"Pizza Calabresa (2 sabores)"`
	FlavorCount   int    `json:"quantidade_sabores" example:"2"`
	MaxFlavors    int    `json:"max_sabores" example:"2"`
	ComposedPrice string `json:"preco_sabores" example:"37.50"`
	AddonTotal    string `json:"total_adicionais" example:"4.00"`
	UnitPrice     string `json:"preco_unitario" example:"41.50"`
	CanAddToCart  bool   `json:"pode_adicionar" example:"true"`
} // @name SelectionSummaryResponse

// SelectionResponse is a customization session.
//
// @Description Product customization session
type SelectionResponse struct {
	ID         string                   `json:"id" example:"0b6f3f0e-6a53-4c8e-a1f7-0b86c1f1a0e2"`
	Product    ProductResponse          `json:"produto"`
	FlavorMode bool                     `json:"modo_sabores"`
	Flavors    []FlavorResponse         `json:"sabores"`
	Candidates []ProductResponse        `json:"sabores_disponiveis"`
	Available  []ProductResponse        `json:"adicionais_disponiveis"`
	Addons     []AddonResponse          `json:"adicionais"`
	Notes      string                   `json:"observacoes"`
	Summary    SelectionSummaryResponse `json:"resumo"`
} // @name SelectionResponse

// OrderItemResponse is a line of a submitted order.
type OrderItemResponse struct {
	ProductID string           `json:"produto_id" example:"42"`
	Name      string           `json:"nome" example:"Pizza Calabresa (2 sabores)"`
	UnitPrice string           `json:"preco" example:"37.50"`
	Quantity  int              `json:"quantidade" example:"2"`
	LineTotal string           `json:"total_item" example:"75.00"`
	Addons    []AddonResponse  `json:"adicionais"`
	Flavors   []FlavorResponse `json:"sabores,omitempty"`
	Notes     string           `json:"observacoes"`
	Composed  bool             `json:"tem_multi_sabores"`
} // @name OrderItemResponse

// OrderResponse is a submitted order.
//
// @Description Submitted order
type OrderResponse struct {
	ID          string              `json:"id" example:"PED123456789"`
	Items       []OrderItemResponse `json:"itens"`
	Subtotal    string              `json:"subtotal" example:"80.00"`
	DeliveryFee string              `json:"taxa_entrega" example:"5.00"`
	Total       string              `json:"total" example:"85.00"`
	Date        string              `json:"data" example:"2025-06-20"`
	Time        string              `json:"hora" example:"19:45"`
	Status      string              `json:"status" example:"pendente"`
} // @name OrderResponse
