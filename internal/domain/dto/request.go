// Package dto defines Data Transfer Objects for HTTP request and response handling.
//
// DTOs decouple the HTTP layer from the domain model. Request validation uses gin's binding
// tags plus the custom rules registered by RegisterValidators.
package dto

import "github.com/shopspring/decimal"

// ValidationError represents a field validation error.
type ValidationError struct {
	Field   string
	Message string
}

// Error returns the error message for ValidationError.
func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

// ErrDeltaZero is returned when a quantity change would not change anything.
var ErrDeltaZero = &ValidationError{Field: "delta", Message: "must not be zero"}

// StartSelectionRequest opens a customization session for a product.
//
// @Description Request to start customizing a product
type StartSelectionRequest struct {
	ProductID string `json:"produto_id" binding:"required,max=64" example:"42"`
} // @name StartSelectionRequest

// FlavorRequest adds one flavor instance to a session.
type FlavorRequest struct {
	ProductID string `json:"produto_id" binding:"required,max=64" example:"43"`
} // @name FlavorRequest

// NotesRequest replaces the free-text note of a session.
type NotesRequest struct {
	Notes string `json:"observacoes" example:"Sem cebola, Pouco sal"`
} // @name NotesRequest

// NotePresetRequest appends a canned phrase to the note.
type NotePresetRequest struct {
	Preset string `json:"preset" binding:"required,oneof=sem_cebola ponto_carne pouco_sal separado" example:"sem_cebola"`
} // @name NotePresetRequest

// AddToCartRequest finishes a session. An empty cart id creates a new cart.
type AddToCartRequest struct {
	CartID string `json:"carrinho_id,omitempty" binding:"omitempty,max=64" example:"b7f1c1e0-3c55-4d6b-9d1a-1f0f3c1e2a11"`
} // @name AddToCartRequest

// UpdateQuantityRequest changes the quantity of a cart line by Delta.
type UpdateQuantityRequest struct {
	Delta int `json:"delta" binding:"required" example:"1"`
} // @name UpdateQuantityRequest

// Validate rejects a zero delta.
func (r *UpdateQuantityRequest) Validate() error {
	if r.Delta == 0 {
		return ErrDeltaZero
	}
	return nil
}

// ProductListQuery filters the catalog listing.
type ProductListQuery struct {
	Category string `form:"categoria" binding:"omitempty,max=60"`
	Size     string `form:"peso" binding:"omitempty,max=40"`
	Search   string `form:"q" binding:"omitempty,max=100"`
}

// ProductRequest creates or replaces a product from the registration panel.
// Price accepts a JSON number or string.
//
// @Description Product registration request
type ProductRequest struct {
	Name            string          `json:"nome" binding:"required,max=120" example:"Pizza Calabresa"`
	Description     string          `json:"descricao" binding:"max=500" example:"Calabresa, cebola e azeitonas"`
	Price           decimal.Decimal `json:"preco" binding:"decimal_gte0" swaggertype:"string" example:"40.00"`
	Quantity        int             `json:"quantidade" binding:"gte=0" example:"10"`
	Category        string          `json:"categoria" binding:"omitempty,category_slug" example:"comida"`
	ImageURL        string          `json:"imagem_url" binding:"omitempty,url" example:"https://cdn.example.com/calabresa.jpg"`
	Active          *bool           `json:"ativo" example:"true"`
	Kind            string          `json:"tipo" binding:"omitempty,oneof=normal adicional" example:"normal"`
	MaxFlavors      int             `json:"max_sabores" binding:"omitempty,min=1,max=10" example:"2"`
	Size            string          `json:"peso" binding:"max=40" example:"Grande"`
	AddonCategories []string        `json:"categorias_adicionais" binding:"omitempty,dive,category_slug" example:"comida,lanches"`
} // @name ProductRequest

// IsActive defaults to active when the field is omitted.
func (r *ProductRequest) IsActive() bool {
	return r.Active == nil || *r.Active
}

// CategoryRequest adds or edits a category.
type CategoryRequest struct {
	Name string `json:"nome" binding:"required,max=60" example:"Lanches Naturais"`
	Icon string `json:"icone,omitempty" binding:"max=16" example:"🥪"`
} // @name CategoryRequest

// SizeRequest adds or renames a size label.
type SizeRequest struct {
	Name string `json:"nome" binding:"required,max=40" example:"Família"`
} // @name SizeRequest

// FlavorConfigRequest sets the store-wide flavor limit.
type FlavorConfigRequest struct {
	MaxFlavors int `json:"max_sabores" binding:"required,min=1,max=10" example:"3"`
} // @name FlavorConfigRequest
