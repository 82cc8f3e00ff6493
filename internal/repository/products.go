package repository

import (
	"context"
	"errors"
	"time"

	"github.com/guttosm/cardapio-service/internal/domain/model"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Fallbacks applied while normalizing catalog rows.
const (
	DefaultProductName = "Produto sem nome"
	DefaultCategory    = "outro"
)

var activeStatuses = bson.A{"on", "ativo", "true", true}

// activeFilter matches rows whose status is on/ativo/true or unset.
func activeFilter() bson.M {
	return bson.M{"$or": bson.A{
		bson.M{"status": bson.M{"$in": activeStatuses}},
		bson.M{"status": nil},
	}}
}

// ProductRepository reads and writes the produtos collection.
type ProductRepository struct {
	collection *mongo.Collection
}

// NewProductRepository creates a product repository.
func NewProductRepository(db *MongoDB) *ProductRepository {
	return &ProductRepository{collection: db.Products}
}

// FindByID returns the product or nil when no row has that id.
func (r *ProductRepository) FindByID(ctx context.Context, id string) (*model.Product, error) {
	raw, err := r.collection.FindOne(ctx, idFilter(id)).Raw()
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	p, ok := productFromRaw(raw)
	if !ok {
		return nil, nil
	}
	return &p, nil
}

// FindByIDs returns the rows that still exist among ids, in no particular order.
func (r *ProductRepository) FindByIDs(ctx context.Context, ids []string) ([]model.Product, error) {
	if len(ids) == 0 {
		return []model.Product{}, nil
	}
	return r.find(ctx, idsFilter(ids), nil)
}

// FindActive returns active, non add-on products ordered by name.
func (r *ProductRepository) FindActive(ctx context.Context) ([]model.Product, error) {
	filter := bson.M{"$and": bson.A{
		activeFilter(),
		bson.M{"tipo": bson.M{"$ne": string(model.KindAddon)}},
	}}
	return r.find(ctx, filter, byName())
}

// FindFlavorCandidates returns active products of the base category that can be combined with it.
func (r *ProductRepository) FindFlavorCandidates(ctx context.Context, base model.Product) ([]model.Product, error) {
	filter := bson.M{"$and": bson.A{
		activeFilter(),
		bson.M{"categoria": base.Category},
		bson.M{"tipo": bson.M{"$ne": string(model.KindAddon)}},
		bson.M{"$nor": bson.A{idFilter(base.ID)}},
	}}
	return r.find(ctx, filter, byName())
}

// FindActiveAddons returns every active add-on ordered by name.
func (r *ProductRepository) FindActiveAddons(ctx context.Context) ([]model.Product, error) {
	filter := bson.M{"$and": bson.A{
		activeFilter(),
		bson.M{"tipo": string(model.KindAddon)},
	}}
	return r.find(ctx, filter, byName())
}

// FindAll returns every row, active or not, ordered by name.
func (r *ProductRepository) FindAll(ctx context.Context) ([]model.Product, error) {
	return r.find(ctx, bson.M{}, byName())
}

// Insert stores a new product. An empty id gets a fresh one.
func (r *ProductRepository) Insert(ctx context.Context, p *model.Product) (*model.Product, error) {
	if p.ID == "" {
		p.ID = primitive.NewObjectID().Hex()
	}
	now := time.Now().UTC()
	doc := newProductWrite(p)
	doc.CreatedAt = now
	doc.UpdatedAt = now

	if _, err := r.collection.InsertOne(ctx, doc); err != nil {
		return nil, err
	}
	return p, nil
}

// Update replaces the editable fields of a product. Returns nil when the id is unknown.
func (r *ProductRepository) Update(ctx context.Context, p *model.Product) (*model.Product, error) {
	doc := newProductWrite(p)
	set := bson.M{
		"nome":                  doc.Name,
		"descricao":             doc.Description,
		"preco":                 doc.Price,
		"quantidade":            doc.Quantity,
		"categoria":             doc.Category,
		"imagem_url":            doc.ImageURL,
		"status":                doc.Status,
		"tipo":                  doc.Kind,
		"max_sabores":           doc.MaxFlavors,
		"peso":                  doc.Size,
		"categorias_adicionais": doc.AddonCategories,
		"updated_at":            time.Now().UTC(),
	}
	return r.findOneAndSet(ctx, p.ID, set)
}

// SetStatus switches a product on or off. Returns nil when the id is unknown.
func (r *ProductRepository) SetStatus(ctx context.Context, id string, active bool) (*model.Product, error) {
	return r.findOneAndSet(ctx, id, bson.M{"status": statusOf(active), "updated_at": time.Now().UTC()})
}

// Delete removes a product and reports whether it existed.
func (r *ProductRepository) Delete(ctx context.Context, id string) (bool, error) {
	res, err := r.collection.DeleteOne(ctx, idFilter(id))
	if err != nil {
		return false, err
	}
	return res.DeletedCount > 0, nil
}

func (r *ProductRepository) findOneAndSet(ctx context.Context, id string, set bson.M) (*model.Product, error) {
	raw, err := r.collection.FindOneAndUpdate(
		ctx,
		idFilter(id),
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Raw()
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	p, ok := productFromRaw(raw)
	if !ok {
		return nil, nil
	}
	return &p, nil
}

func (r *ProductRepository) find(ctx context.Context, filter bson.M, opts *options.FindOptions) ([]model.Product, error) {
	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = cursor.Close(ctx)
	}()

	products := make([]model.Product, 0)
	for cursor.Next(ctx) {
		if p, ok := productFromRaw(cursor.Current); ok {
			products = append(products, p)
		}
	}
	if err := cursor.Err(); err != nil {
		return nil, err
	}
	return products, nil
}

func byName() *options.FindOptions {
	return options.Find().SetSort(bson.D{{Key: "nome", Value: 1}})
}

func statusOf(active bool) string {
	if active {
		return "on"
	}
	return "off"
}

// productWrite is the shape written by this service.
type productWrite struct {
	ID              string               `bson:"_id"`
	Name            string               `bson:"nome"`
	Description     string               `bson:"descricao"`
	Price           primitive.Decimal128 `bson:"preco"`
	Quantity        int                  `bson:"quantidade"`
	Category        string               `bson:"categoria"`
	ImageURL        string               `bson:"imagem_url"`
	Status          string               `bson:"status"`
	Kind            string               `bson:"tipo"`
	MaxFlavors      int                  `bson:"max_sabores"`
	Size            string               `bson:"peso"`
	AddonCategories []string             `bson:"categorias_adicionais"`
	CreatedAt       time.Time            `bson:"created_at"`
	UpdatedAt       time.Time            `bson:"updated_at"`
}

func newProductWrite(p *model.Product) productWrite {
	categories := p.AddonCategories
	if categories == nil {
		categories = []string{}
	}
	return productWrite{
		ID:              p.ID,
		Name:            p.Name,
		Description:     p.Description,
		Price:           toDecimal128(p.Price),
		Quantity:        p.Quantity,
		Category:        p.Category,
		ImageURL:        p.ImageURL,
		Status:          statusOf(p.Active),
		Kind:            string(p.Kind),
		MaxFlavors:      p.MaxFlavors,
		Size:            p.Size,
		AddonCategories: categories,
	}
}

// productFromRaw normalizes a stored row into a Product. Rows without a usable id are skipped.
func productFromRaw(raw bson.Raw) (model.Product, bool) {
	id, ok := rawString(raw.Lookup("_id"))
	if !ok {
		return model.Product{}, false
	}

	p := model.Product{
		ID:         id,
		Name:       DefaultProductName,
		Category:   DefaultCategory,
		Kind:       model.KindNormal,
		MaxFlavors: 1,
		Active:     true,
	}

	if s, ok := rawString(raw.Lookup("nome")); ok {
		p.Name = s
	}
	if s, ok := rawString(raw.Lookup("descricao")); ok {
		p.Description = s
	}
	if d, ok := rawDecimal(raw.Lookup("preco")); ok && !d.IsNegative() {
		p.Price = d
	}

	qty := raw.Lookup("quantidade")
	if !present(qty) {
		qty = raw.Lookup("quantidade_estoque")
	}
	if n, ok := rawInt(qty); ok && n > 0 {
		p.Quantity = n
	}

	if s, ok := rawString(raw.Lookup("categoria")); ok {
		p.Category = s
	}
	if s, ok := rawString(raw.Lookup("imagem_url")); ok {
		p.ImageURL = s
	}
	if s, ok := rawString(raw.Lookup("peso")); ok {
		p.Size = s
	}
	if s, ok := rawString(raw.Lookup("tipo")); ok && s == string(model.KindAddon) {
		p.Kind = model.KindAddon
	}
	if n, ok := rawInt(raw.Lookup("max_sabores")); ok && n >= 1 && !p.IsAddon() {
		p.MaxFlavors = n
	}

	if status := raw.Lookup("status"); present(status) {
		p.Active = isActiveStatus(status)
	}

	if p.IsAddon() {
		p.AddonCategories = rawStringList(raw.Lookup("categorias_adicionais"))
	}

	return p, true
}

func isActiveStatus(v bson.RawValue) bool {
	if b, ok := v.BooleanOK(); ok {
		return b
	}
	s, _ := v.StringValueOK()
	switch s {
	case "on", "ativo", "true":
		return true
	}
	return false
}
