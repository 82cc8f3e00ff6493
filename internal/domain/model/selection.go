package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Selection is the working state of one product customization session.
//
// @Description Product customization session
type Selection struct {
	ID         string  `json:"id" example:"0b6f3f0e-6a53-4c8e-a1f7-0b86c1f1a0e2"`
	Base       Product `json:"produto"`
	FlavorMode bool    `json:"modo_sabores"`
	// Flavors is an ordered multiset; a product appears once per selected instance.
	Flavors    []Product       `json:"sabores"`
	Candidates []Product       `json:"sabores_disponiveis"`
	Available  []Product       `json:"adicionais_disponiveis"`
	Addons     []AddonSnapshot `json:"adicionais"`
	Notes      string          `json:"observacoes"`
	StartedAt  time.Time       `json:"iniciado_em"`
	UpdatedAt  time.Time       `json:"atualizado_em"`
}

// BaseCount returns how many instances of the base product are in the flavor multiset.
func (s *Selection) BaseCount() int {
	n := 0
	for _, f := range s.Flavors {
		if f.ID == s.Base.ID {
			n++
		}
	}
	return n
}

// HasAddon reports whether the add-on is currently selected.
func (s *Selection) HasAddon(id string) bool {
	for _, a := range s.Addons {
		if a.ID == id {
			return true
		}
	}
	return false
}

// AddonTotal sums the snapshot prices of the selected add-ons.
func (s *Selection) AddonTotal() decimal.Decimal {
	total := decimal.Zero
	for _, a := range s.Addons {
		total = total.Add(a.Price)
	}
	return total
}

// Clone returns a copy whose slices can be mutated independently.
func (s *Selection) Clone() *Selection {
	cp := *s
	cp.Flavors = append([]Product(nil), s.Flavors...)
	cp.Candidates = append([]Product(nil), s.Candidates...)
	cp.Available = append([]Product(nil), s.Available...)
	cp.Addons = append([]AddonSnapshot(nil), s.Addons...)
	return &cp
}
