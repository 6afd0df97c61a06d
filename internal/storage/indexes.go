package storage

import (
	"context"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// EnsureIndexes creates the supporting indexes for both collections.
// Index failures are warnings at startup, not fatal.
func (b *DatabaseBackend) EnsureIndexes() error {
	if err := b.ensureProductIndexes(); err != nil {
		return err
	}
	return b.ensureCustomerIndexes()
}

func (b *DatabaseBackend) ensureProductIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	indexes := b.db.Collection(productsCollection).Indexes()

	// Not unique: ids are millisecond timestamps and rapid creates can
	// collide. A unique index would turn that race into insert failures.
	idIndex := mongo.IndexModel{
		Keys:    bson.D{{Key: "id", Value: 1}},
		Options: options.Index().SetName("id_index"),
	}

	log.Println("EnsureIndexes: creating products id_index")
	_, err := indexes.CreateOne(ctx, idIndex)
	if err != nil {
		log.Println("EnsureIndexes: products id index error:", err)
		return err
	}
	return nil
}

func (b *DatabaseBackend) ensureCustomerIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	indexes := b.db.Collection(customersCollection).Indexes()

	createdAtIndex := mongo.IndexModel{
		Keys:    bson.D{{Key: "createdAt", Value: -1}},
		Options: options.Index().SetName("createdAt_index"),
	}

	log.Println("EnsureIndexes: creating customers createdAt_index")
	_, err := indexes.CreateOne(ctx, createdAtIndex)
	if err != nil {
		log.Println("EnsureIndexes: customers createdAt index error:", err)
		return err
	}
	return nil
}
