package storage

import (
	"context"
	"strconv"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/Amirrtadhanasekar/jaithindal-tiles/internal/models"
)

const (
	customersCollection = "customers"
	productsCollection  = "products"
)

// DatabaseBackend stores both collections as MongoDB documents. Aggregates
// are single documents, so per-insert atomicity from the driver is all the
// consistency this backend provides.
type DatabaseBackend struct {
	db *mongo.Database
}

// Connect dials MongoDB and verifies the connection with a ping. The
// caller bounds the attempt through ctx; a failure here is the signal to
// fall back to file storage.
func Connect(ctx context.Context, uri, dbName string) (*DatabaseBackend, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, err
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, err
	}
	return &DatabaseBackend{db: client.Database(dbName)}, nil
}

func (b *DatabaseBackend) ListCustomers(ctx context.Context) ([]models.Customer, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := b.db.Collection(customersCollection).Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	customers := make([]models.Customer, 0)
	if err := cursor.All(ctx, &customers); err != nil {
		return nil, err
	}
	return customers, nil
}

func (b *DatabaseBackend) CreateCustomer(ctx context.Context, c models.Customer) (models.Customer, error) {
	if _, err := b.db.Collection(customersCollection).InsertOne(ctx, c); err != nil {
		return models.Customer{}, err
	}
	return c, nil
}

func (b *DatabaseBackend) ListProducts(ctx context.Context) ([]models.Product, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := b.db.Collection(productsCollection).Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	products := make([]models.Product, 0)
	if err := cursor.All(ctx, &products); err != nil {
		return nil, err
	}
	return products, nil
}

func (b *DatabaseBackend) CreateProduct(ctx context.Context, p models.Product) (models.Product, error) {
	if _, err := b.db.Collection(productsCollection).InsertOne(ctx, p); err != nil {
		return models.Product{}, err
	}
	return p, nil
}

// DeleteProduct matches the custom numeric id field, not the Mongo _id.
// Documents written through the file store and re-imported may carry the
// id as a string, so a string-form match runs when the numeric one finds
// nothing.
func (b *DatabaseBackend) DeleteProduct(ctx context.Context, id int64) error {
	coll := b.db.Collection(productsCollection)

	err := coll.FindOneAndDelete(ctx, bson.M{"id": id}).Err()
	if err == nil {
		return nil
	}
	if err != mongo.ErrNoDocuments {
		return err
	}

	err = coll.FindOneAndDelete(ctx, bson.M{"id": strconv.FormatInt(id, 10)}).Err()
	if err != nil && err != mongo.ErrNoDocuments {
		return err
	}
	return nil
}
