package store

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/spacial-to-fxa/any-outlet/models"
)

// Products wraps the products collection.
type Products struct {
	col *mongo.Collection
}

func NewProducts(db *mongo.Database) *Products {
	return &Products{col: db.Collection("products")}
}

func (s *Products) Create(ctx context.Context, product *models.Product) error {
	if product.ID.IsZero() {
		product.ID = primitive.NewObjectID()
	}
	_, err := s.col.InsertOne(ctx, product)
	return err
}

// All returns every product in natural order.
func (s *Products) All(ctx context.Context) ([]models.Product, error) {
	cursor, err := s.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	var products []models.Product
	if err := cursor.All(ctx, &products); err != nil {
		return nil, err
	}
	return products, nil
}

func (s *Products) FindByID(ctx context.Context, id primitive.ObjectID) (models.Product, error) {
	var product models.Product
	err := s.col.FindOne(ctx, bson.M{"_id": id}).Decode(&product)
	if err == mongo.ErrNoDocuments {
		return models.Product{}, ErrNotFound
	}
	return product, err
}

// ReserveOne atomically decrements the product's stock by one, but only
// while stock is still positive. Two buyers racing for the last unit can
// both pass a read-side check, so the guard lives in the update filter:
// whoever the database applies first wins, the other gets ErrOutOfStock.
// Returns the product as it was after the decrement.
func (s *Products) ReserveOne(ctx context.Context, id primitive.ObjectID) (models.Product, error) {
	var product models.Product
	err := s.col.FindOneAndUpdate(ctx,
		bson.M{"_id": id, "stock": bson.M{"$gt": 0}},
		bson.M{"$inc": bson.M{"stock": -1}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&product)
	if err == mongo.ErrNoDocuments {
		return models.Product{}, ErrOutOfStock
	}
	return product, err
}
