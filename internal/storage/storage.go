// Package storage persists the two catalog collections behind a uniform
// Backend interface with two implementations: MongoDB and a local JSON
// file per collection.
//
// The backend is chosen once at startup: main attempts the database
// connection with a bounded timeout and falls back to file storage when it
// fails. There is no mid-session failover and no reconciliation between
// the two stores.
package storage

import (
	"context"

	"github.com/Amirrtadhanasekar/jaithindal-tiles/internal/models"
)

// Backend is the persistence contract shared by the database and file
// implementations. Listing order is newest-first for customers in both
// modes; product listing is newest-first in database mode but keeps file
// insertion order (oldest-first) in file mode, matching the behaviour the
// frontend was built against.
type Backend interface {
	ListCustomers(ctx context.Context) ([]models.Customer, error)
	CreateCustomer(ctx context.Context, c models.Customer) (models.Customer, error)

	ListProducts(ctx context.Context) ([]models.Product, error)
	CreateProduct(ctx context.Context, p models.Product) (models.Product, error)

	// DeleteProduct removes the product with the given id. Deleting an
	// absent id is not an error.
	DeleteProduct(ctx context.Context, id int64) error
}
