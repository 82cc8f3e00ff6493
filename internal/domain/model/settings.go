package model

import "time"

// Category is a product category managed from the settings panel.
type Category struct {
	ID   string `json:"id" example:"lanches-naturais"`
	Name string `json:"nome" example:"Lanches Naturais"`
	Icon string `json:"icone" example:"🥪"`
}

// SizeOption is a size label offered when registering products.
type SizeOption struct {
	ID   string `json:"id" example:"grande"`
	Name string `json:"nome" example:"Grande"`
}

// FlavorConfig holds the store-wide flavor limit.
type FlavorConfig struct {
	MaxFlavors int       `json:"max_sabores" example:"2"`
	UpdatedAt  time.Time `json:"ultima_atualizacao"`
}

const (
	// MinFlavorLimit is the lowest accepted flavor limit.
	MinFlavorLimit = 1
	// MaxFlavorLimit is the highest accepted flavor limit.
	MaxFlavorLimit = 10
)

// DefaultCategories returns the categories a fresh store starts with.
func DefaultCategories() []Category {
	return []Category{
		{ID: "comida", Name: "Comida", Icon: "🍕"},
		{ID: "bebida", Name: "Bebida", Icon: "🥤"},
		{ID: "sobremesa", Name: "Sobremesa", Icon: "🍰"},
		{ID: "outro", Name: "Outro", Icon: "📦"},
	}
}

// DefaultSizes returns the size labels a fresh store starts with.
func DefaultSizes() []SizeOption {
	return []SizeOption{
		{ID: "pequeno", Name: "Pequeno"},
		{ID: "medio", Name: "Médio"},
		{ID: "grande", Name: "Grande"},
		{ID: "300g", Name: "300g"},
		{ID: "500ml", Name: "500ml"},
	}
}

// DefaultFlavorConfig returns the flavor limit used until the store configures one.
func DefaultFlavorConfig() FlavorConfig {
	return FlavorConfig{MaxFlavors: 2}
}
