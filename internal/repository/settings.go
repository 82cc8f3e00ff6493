package repository

import (
	"context"
	"errors"
	"time"

	"github.com/guttosm/cardapio-service/internal/domain/model"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Document ids inside the configuracoes collection.
const (
	categoriesKey   = "categorias"
	sizesKey        = "tamanhos"
	flavorConfigKey = "config_sabores"
)

type categoryDocument struct {
	ID   string `bson:"id"`
	Name string `bson:"nome"`
	Icon string `bson:"icone"`
}

type sizeDocument struct {
	ID   string `bson:"id"`
	Name string `bson:"nome"`
}

// SettingsRepository keeps the store settings, one document per setting.
// Getters return nil when the setting was never saved so callers can apply defaults.
type SettingsRepository struct {
	collection *mongo.Collection
}

// NewSettingsRepository creates a settings repository.
func NewSettingsRepository(db *MongoDB) *SettingsRepository {
	return &SettingsRepository{collection: db.Settings}
}

// Categories returns the saved category list.
func (r *SettingsRepository) Categories(ctx context.Context) ([]model.Category, error) {
	var doc struct {
		Values []categoryDocument `bson:"valor"`
	}
	found, err := r.load(ctx, categoriesKey, &doc)
	if err != nil || !found {
		return nil, err
	}
	out := make([]model.Category, len(doc.Values))
	for i, c := range doc.Values {
		out[i] = model.Category{ID: c.ID, Name: c.Name, Icon: c.Icon}
	}
	return out, nil
}

// SaveCategories replaces the category list.
func (r *SettingsRepository) SaveCategories(ctx context.Context, categories []model.Category) error {
	values := make([]categoryDocument, len(categories))
	for i, c := range categories {
		values[i] = categoryDocument{ID: c.ID, Name: c.Name, Icon: c.Icon}
	}
	return r.store(ctx, categoriesKey, bson.M{"valor": values})
}

// Sizes returns the saved size list.
func (r *SettingsRepository) Sizes(ctx context.Context) ([]model.SizeOption, error) {
	var doc struct {
		Values []sizeDocument `bson:"valor"`
	}
	found, err := r.load(ctx, sizesKey, &doc)
	if err != nil || !found {
		return nil, err
	}
	out := make([]model.SizeOption, len(doc.Values))
	for i, s := range doc.Values {
		out[i] = model.SizeOption{ID: s.ID, Name: s.Name}
	}
	return out, nil
}

// SaveSizes replaces the size list.
func (r *SettingsRepository) SaveSizes(ctx context.Context, sizes []model.SizeOption) error {
	values := make([]sizeDocument, len(sizes))
	for i, s := range sizes {
		values[i] = sizeDocument{ID: s.ID, Name: s.Name}
	}
	return r.store(ctx, sizesKey, bson.M{"valor": values})
}

// FlavorConfig returns the saved flavor configuration.
func (r *SettingsRepository) FlavorConfig(ctx context.Context) (*model.FlavorConfig, error) {
	var doc struct {
		MaxFlavors int       `bson:"max_sabores"`
		UpdatedAt  time.Time `bson:"ultima_atualizacao"`
	}
	found, err := r.load(ctx, flavorConfigKey, &doc)
	if err != nil || !found {
		return nil, err
	}
	return &model.FlavorConfig{MaxFlavors: doc.MaxFlavors, UpdatedAt: doc.UpdatedAt}, nil
}

// SaveFlavorConfig replaces the flavor configuration.
func (r *SettingsRepository) SaveFlavorConfig(ctx context.Context, cfg model.FlavorConfig) error {
	return r.store(ctx, flavorConfigKey, bson.M{
		"max_sabores":        cfg.MaxFlavors,
		"ultima_atualizacao": cfg.UpdatedAt,
	})
}

func (r *SettingsRepository) load(ctx context.Context, key string, out interface{}) (bool, error) {
	err := r.collection.FindOne(ctx, bson.M{"_id": key}).Decode(out)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return false, nil
	}
	return err == nil, err
}

func (r *SettingsRepository) store(ctx context.Context, key string, set bson.M) error {
	set["updated_at"] = time.Now().UTC()
	_, err := r.collection.UpdateOne(ctx,
		bson.M{"_id": key},
		bson.M{"$set": set},
		options.Update().SetUpsert(true),
	)
	return err
}
