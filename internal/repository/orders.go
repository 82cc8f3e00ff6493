package repository

import (
	"context"
	"errors"

	"github.com/guttosm/cardapio-service/internal/domain/model"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// OrderRepository stores submitted orders in the pedidos collection.
type OrderRepository struct {
	collection *mongo.Collection
}

// NewOrderRepository creates an order repository.
func NewOrderRepository(db *MongoDB) *OrderRepository {
	return &OrderRepository{collection: db.Orders}
}

// Insert stores a new order.
func (r *OrderRepository) Insert(ctx context.Context, order *model.Order) error {
	_, err := r.collection.InsertOne(ctx, orderToDocument(order))
	return err
}

// FindByID returns the order or nil.
func (r *OrderRepository) FindByID(ctx context.Context, id string) (*model.Order, error) {
	var doc orderDocument
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	order := orderFromDocument(doc)
	return &order, nil
}

// ListByCart returns the orders of a cart, newest first.
func (r *OrderRepository) ListByCart(ctx context.Context, cartID string, limit int) ([]model.Order, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	if limit > 0 {
		opts.SetLimit(int64(limit))
	}

	cursor, err := r.collection.Find(ctx, bson.M{"carrinho_id": cartID}, opts)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = cursor.Close(ctx)
	}()

	var docs []orderDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}

	orders := make([]model.Order, len(docs))
	for i, d := range docs {
		orders[i] = orderFromDocument(d)
	}
	return orders, nil
}

// Delete removes an order. Used to roll back a checkout whose cart save lost a race.
func (r *OrderRepository) Delete(ctx context.Context, id string) error {
	_, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	return err
}
