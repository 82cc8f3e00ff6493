package repository

import (
	"context"
	"errors"
	"time"

	"github.com/guttosm/cardapio-service/internal/domain/model"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// ErrCartVersionConflict is returned when a cart was saved by someone else since it was loaded.
var ErrCartVersionConflict = errors.New("cart version conflict")

// CartRepository persists carts with optimistic concurrency on the versao field.
type CartRepository struct {
	collection *mongo.Collection
}

// NewCartRepository creates a cart repository.
func NewCartRepository(db *MongoDB) *CartRepository {
	return &CartRepository{collection: db.Carts}
}

// Load returns the cart or nil when it was never saved.
func (r *CartRepository) Load(ctx context.Context, id string) (*model.Cart, error) {
	var doc cartDocument
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return cartFromDocument(doc), nil
}

// Save writes the cart if its version still matches the stored one.
// A zero version means the cart is new. On success cart.Version is advanced.
func (r *CartRepository) Save(ctx context.Context, cart *model.Cart) error {
	now := time.Now().UTC()
	doc := cartToDocument(cart)
	doc.Version = cart.Version + 1
	doc.UpdatedAt = now

	if cart.Version == 0 {
		if doc.CreatedAt.IsZero() {
			doc.CreatedAt = now
		}
		if _, err := r.collection.InsertOne(ctx, doc); err != nil {
			if mongo.IsDuplicateKeyError(err) {
				return ErrCartVersionConflict
			}
			return err
		}
	} else {
		res, err := r.collection.UpdateOne(ctx,
			bson.M{"_id": cart.ID, "versao": cart.Version},
			bson.M{"$set": bson.M{
				"itens":      doc.Items,
				"pedidos":    doc.Orders,
				"versao":     doc.Version,
				"updated_at": now,
			}},
		)
		if err != nil {
			return err
		}
		if res.MatchedCount == 0 {
			return ErrCartVersionConflict
		}
	}

	cart.Version = doc.Version
	cart.UpdatedAt = now
	if cart.CreatedAt.IsZero() {
		cart.CreatedAt = doc.CreatedAt
	}
	return nil
}

// Delete removes the cart document.
func (r *CartRepository) Delete(ctx context.Context, id string) error {
	_, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	return err
}
