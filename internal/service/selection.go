package service

import (
	"context"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/guttosm/cardapio-service/internal/domain/model"
	"github.com/guttosm/cardapio-service/internal/metrics"
	"github.com/guttosm/cardapio-service/internal/repository"
	"github.com/guttosm/cardapio-service/internal/service/cache"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

const (
	// DefaultNotesMaxLength bounds the free-text note of a line, in characters.
	DefaultNotesMaxLength = 200
	// DefaultSessionTTL is how long an idle customization session is kept.
	DefaultSessionTTL = 30 * time.Minute
	// DefaultSessionCapacity is the number of sessions kept before the least recently used is dropped.
	DefaultSessionCapacity = 10000
)

// NotePresets are the canned phrases that can be appended to a note.
var NotePresets = map[string]string{
	"sem_cebola":  "Sem cebola",
	"ponto_carne": "Carne bem passada",
	"pouco_sal":   "Pouco sal",
	"separado":    "Ingredientes separados",
}

// SelectionSummary is the priced view of a session.
type SelectionSummary struct {
	Label         string
	FlavorCount   int
	MaxFlavors    int
	ComposedPrice decimal.Decimal
	AddonTotal    decimal.Decimal
	UnitPrice     decimal.Decimal
	CanAddToCart  bool
}

// AddToCartResult is what a finished session produced.
type AddToCartResult struct {
	Cart    *model.Cart
	Item    model.LineItem
	Outcome AddOutcome
}

// SelectionService runs product customization sessions.
type SelectionService interface {
	Start(ctx context.Context, productID string) (*model.Selection, error)
	Get(ctx context.Context, sessionID string) (*model.Selection, error)
	AddFlavor(ctx context.Context, sessionID, productID string) (*model.Selection, error)
	RemoveFlavor(ctx context.Context, sessionID, productID string) (*model.Selection, error)
	AddAddon(ctx context.Context, sessionID, addonID string) (*model.Selection, error)
	RemoveAddon(ctx context.Context, sessionID, addonID string) (*model.Selection, error)
	SetNotes(ctx context.Context, sessionID, notes string) (*model.Selection, error)
	AppendNotePreset(ctx context.Context, sessionID, preset string) (*model.Selection, error)
	Summary(ctx context.Context, sessionID string) (*SelectionSummary, error)
	Abandon(ctx context.Context, sessionID string) error
	AddToCart(ctx context.Context, sessionID, cartID string) (*AddToCartResult, error)
}

// SelectionOption configures a SelectionServiceImpl.
type SelectionOption func(*SelectionServiceImpl)

// SelectionServiceImpl implements SelectionService.
type SelectionServiceImpl struct {
	products repository.ProductStore
	carts    CartService
	sessions cache.Cache[*model.Selection]
	guard    *InFlight
	notesMax int
	newID    func() string
	newToken func() string
	now      func() time.Time
}

// NewSelectionService creates a selection service. Sessions live in an in-process TTL cache
// unless WithSessionStore is given.
func NewSelectionService(products repository.ProductStore, carts CartService, opts ...SelectionOption) *SelectionServiceImpl {
	s := &SelectionServiceImpl{
		products: products,
		carts:    carts,
		guard:    NewInFlight(),
		notesMax: DefaultNotesMaxLength,
		newID:    uuid.NewString,
		newToken: uuid.NewString,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.sessions == nil {
		s.sessions = cache.NewSharded[*model.Selection]("sessions", DefaultSessionCapacity, DefaultSessionTTL, 16)
	}
	return s
}

// WithSessionStore sets the cache holding sessions.
func WithSessionStore(c cache.Cache[*model.Selection]) SelectionOption {
	return func(s *SelectionServiceImpl) {
		s.sessions = c
	}
}

// WithSelectionGuard sets the in-flight guard.
func WithSelectionGuard(g *InFlight) SelectionOption {
	return func(s *SelectionServiceImpl) {
		if g != nil {
			s.guard = g
		}
	}
}

// WithNotesMaxLength overrides the note length limit.
func WithNotesMaxLength(n int) SelectionOption {
	return func(s *SelectionServiceImpl) {
		if n > 0 {
			s.notesMax = n
		}
	}
}

// WithSelectionIDs replaces the session id and composition token generators.
func WithSelectionIDs(sessionID, token func() string) SelectionOption {
	return func(s *SelectionServiceImpl) {
		if sessionID != nil {
			s.newID = sessionID
		}
		if token != nil {
			s.newToken = token
		}
	}
}

// WithSelectionClock replaces the clock.
func WithSelectionClock(now func() time.Time) SelectionOption {
	return func(s *SelectionServiceImpl) {
		if now != nil {
			s.now = now
		}
	}
}

// Start loads the base product and everything the session offers for it.
func (s *SelectionServiceImpl) Start(ctx context.Context, productID string) (*model.Selection, error) {
	if s.products == nil {
		return nil, ErrRepositoryNotConfigured
	}
	if strings.TrimSpace(productID) == "" {
		return nil, ErrInvalidSession
	}

	base, err := s.products.FindByID(ctx, productID)
	if err != nil {
		return nil, remote(err)
	}
	if base == nil || !base.Active || base.IsAddon() {
		metrics.RecordSelectionOperation("start", "invalid")
		return nil, ErrInvalidSession
	}

	now := s.now()
	sel := &model.Selection{
		ID:         s.newID(),
		Base:       *base,
		FlavorMode: base.SupportsFlavors(),
		Flavors:    []model.Product{},
		Candidates: []model.Product{},
		Available:  []model.Product{},
		Addons:     []model.AddonSnapshot{},
		StartedAt:  now,
		UpdatedAt:  now,
	}

	g, gctx := errgroup.WithContext(ctx)
	if sel.FlavorMode {
		sel.Flavors = append(sel.Flavors, *base)
		g.Go(func() error {
			candidates, err := s.products.FindFlavorCandidates(gctx, *base)
			if err != nil {
				return err
			}
			sel.Candidates = candidates
			return nil
		})
	}
	g.Go(func() error {
		addons, err := s.products.FindActiveAddons(gctx)
		if err != nil {
			return err
		}
		for _, a := range addons {
			if a.InStock() && a.AppliesTo(base.Category) {
				sel.Available = append(sel.Available, a)
			}
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		metrics.RecordSelectionOperation("start", "error")
		return nil, remote(err)
	}

	s.sessions.Set(sel.ID, sel)
	metrics.RecordSelectionOperation("start", "success")
	log.Debug().
		Str("session_id", sel.ID).
		Str("product_id", base.ID).
		Bool("flavor_mode", sel.FlavorMode).
		Int("candidates", len(sel.Candidates)).
		Int("addons", len(sel.Available)).
		Msg("selection started")
	return sel.Clone(), nil
}

func (s *SelectionServiceImpl) Get(_ context.Context, sessionID string) (*model.Selection, error) {
	sel, ok := s.sessions.Get(sessionID)
	if !ok {
		return nil, ErrSessionNotFound
	}
	return sel.Clone(), nil
}

// AddFlavor adds one instance of the base product or of a candidate.
func (s *SelectionServiceImpl) AddFlavor(ctx context.Context, sessionID, productID string) (*model.Selection, error) {
	return s.update(ctx, "add_flavor", sessionID, func(sel *model.Selection) error {
		candidate, ok := flavorCandidate(sel, productID)
		if !ok {
			return ErrFlavorNotCandidate
		}
		return AddFlavor(sel, candidate)
	})
}

// RemoveFlavor removes the last added instance of productID. Removing the last base instance
// ends the session with ErrSessionAbandoned.
func (s *SelectionServiceImpl) RemoveFlavor(ctx context.Context, sessionID, productID string) (*model.Selection, error) {
	sel, err := s.update(ctx, "remove_flavor", sessionID, func(sel *model.Selection) error {
		return RemoveFlavor(sel, productID)
	})
	if IsAbandoned(err) {
		s.sessions.Invalidate(sessionID)
		metrics.RecordSelectionOperation("abandon", "base_removed")
		log.Info().Str("session_id", sessionID).Msg("selection abandoned")
	}
	return sel, err
}

// AddAddon selects an add-on offered to the session. Selecting it twice is a no-op.
func (s *SelectionServiceImpl) AddAddon(ctx context.Context, sessionID, addonID string) (*model.Selection, error) {
	return s.update(ctx, "add_addon", sessionID, func(sel *model.Selection) error {
		if sel.HasAddon(addonID) {
			return nil
		}
		for _, a := range sel.Available {
			if a.ID != addonID {
				continue
			}
			if !a.InStock() {
				return ErrAddonUnavailable.WithItem(a.Name)
			}
			sel.Addons = append(sel.Addons, a.Addon())
			return nil
		}
		return ErrAddonUnavailable.WithItem(addonID)
	})
}

// RemoveAddon deselects an add-on. Removing one that is not selected is a no-op.
func (s *SelectionServiceImpl) RemoveAddon(ctx context.Context, sessionID, addonID string) (*model.Selection, error) {
	return s.update(ctx, "remove_addon", sessionID, func(sel *model.Selection) error {
		kept := sel.Addons[:0]
		for _, a := range sel.Addons {
			if a.ID != addonID {
				kept = append(kept, a)
			}
		}
		sel.Addons = kept
		return nil
	})
}

// SetNotes replaces the free-text note.
func (s *SelectionServiceImpl) SetNotes(ctx context.Context, sessionID, notes string) (*model.Selection, error) {
	notes = strings.TrimSpace(notes)
	if utf8.RuneCountInString(notes) > s.notesMax {
		return nil, ErrNotesTooLong.WithMax(s.notesMax)
	}
	return s.update(ctx, "set_notes", sessionID, func(sel *model.Selection) error {
		sel.Notes = notes
		return nil
	})
}

// AppendNotePreset appends a canned phrase to the note, comma separated.
func (s *SelectionServiceImpl) AppendNotePreset(ctx context.Context, sessionID, preset string) (*model.Selection, error) {
	phrase, ok := NotePresets[preset]
	if !ok {
		return nil, ErrUnknownNotePreset
	}
	return s.update(ctx, "append_note", sessionID, func(sel *model.Selection) error {
		notes := phrase
		if sel.Notes != "" {
			notes = sel.Notes + ", " + phrase
		}
		if utf8.RuneCountInString(notes) > s.notesMax {
			return ErrNotesTooLong.WithMax(s.notesMax)
		}
		sel.Notes = notes
		return nil
	})
}

func (s *SelectionServiceImpl) Summary(ctx context.Context, sessionID string) (*SelectionSummary, error) {
	sel, err := s.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return Summarize(sel), nil
}

// Summarize prices a selection.
func Summarize(sel *model.Selection) *SelectionSummary {
	addonTotal := sel.AddonTotal()
	sum := &SelectionSummary{
		Label:        sel.Base.Name,
		FlavorCount:  len(sel.Flavors),
		MaxFlavors:   sel.Base.MaxFlavors,
		AddonTotal:   addonTotal,
		UnitPrice:    sel.Base.Price.Add(addonTotal),
		CanAddToCart: sel.Base.InStock(),
	}
	if sel.FlavorMode {
		sum.Label = FlavorLabel(sel.Flavors)
		sum.ComposedPrice = ComposedPrice(sel.Flavors)
		sum.UnitPrice = sum.ComposedPrice.Add(addonTotal)
		sum.CanAddToCart = sum.CanAddToCart && ValidateComposition(sel, nil) == nil
	}
	return sum
}

// Abandon discards a session.
func (s *SelectionServiceImpl) Abandon(_ context.Context, sessionID string) error {
	if _, ok := s.sessions.Get(sessionID); !ok {
		return ErrSessionNotFound
	}
	s.sessions.Invalidate(sessionID)
	metrics.RecordSelectionOperation("abandon", "explicit")
	return nil
}

// AddToCart builds the line against fresh stock and adds it to the cart. An empty cartID creates a
// new cart. The session ends only when the cart accepted the line.
func (s *SelectionServiceImpl) AddToCart(ctx context.Context, sessionID, cartID string) (*AddToCartResult, error) {
	if s.products == nil || s.carts == nil {
		return nil, ErrRepositoryNotConfigured
	}
	release, err := s.guard.Acquire(OpSelection, sessionID)
	if err != nil {
		return nil, err
	}
	defer release()

	sel, ok := s.sessions.Get(sessionID)
	if !ok {
		return nil, ErrSessionNotFound
	}

	rows, err := s.products.FindByIDs(ctx, selectionIDs(sel))
	if err != nil {
		return nil, remote(err)
	}
	item, err := BuildLineItem(sel, StockFrom(rows), s.newToken(), s.now().UTC())
	if err != nil {
		metrics.RecordSelectionOperation("add_to_cart", "rejected")
		return nil, err
	}

	if cartID == "" {
		created, err := s.carts.Create(ctx)
		if err != nil {
			return nil, err
		}
		cartID = created.ID
	}

	cart, outcome, err := s.carts.Add(ctx, cartID, item)
	if err != nil {
		metrics.RecordSelectionOperation("add_to_cart", "rejected")
		return nil, err
	}

	s.sessions.Invalidate(sessionID)
	metrics.RecordSelectionOperation("add_to_cart", "success")
	return &AddToCartResult{Cart: cart, Item: item, Outcome: outcome}, nil
}

// update applies fn to a copy of the session and stores it when fn succeeds.
func (s *SelectionServiceImpl) update(_ context.Context, op, sessionID string, fn func(*model.Selection) error) (*model.Selection, error) {
	release, err := s.guard.Acquire(OpSelection, sessionID)
	if err != nil {
		return nil, err
	}
	defer release()

	current, ok := s.sessions.Get(sessionID)
	if !ok {
		return nil, ErrSessionNotFound
	}
	sel := current.Clone()
	if err := fn(sel); err != nil {
		metrics.RecordSelectionOperation(op, "rejected")
		return nil, err
	}
	sel.UpdatedAt = s.now()
	s.sessions.Set(sessionID, sel)
	metrics.RecordSelectionOperation(op, "success")
	return sel.Clone(), nil
}

func flavorCandidate(sel *model.Selection, id string) (model.Product, bool) {
	if id == sel.Base.ID {
		return sel.Base, true
	}
	for _, c := range sel.Candidates {
		if c.ID == id {
			return c, true
		}
	}
	return model.Product{}, false
}

func selectionIDs(sel *model.Selection) []string {
	ids := []string{sel.Base.ID}
	seen := map[string]struct{}{sel.Base.ID: {}}
	for _, f := range sel.Flavors {
		if _, ok := seen[f.ID]; !ok {
			seen[f.ID] = struct{}{}
			ids = append(ids, f.ID)
		}
	}
	for _, a := range sel.Addons {
		if _, ok := seen[a.ID]; !ok {
			seen[a.ID] = struct{}{}
			ids = append(ids, a.ID)
		}
	}
	return ids
}

// IsAbandoned reports whether err ended the session.
func IsAbandoned(err error) bool {
	de, ok := AsDomainError(err)
	return ok && de.Is(ErrSessionAbandoned)
}

var _ SelectionService = (*SelectionServiceImpl)(nil)
