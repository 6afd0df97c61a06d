package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/Amirrtadhanasekar/jaithindal-tiles/internal/models"
)

// FileBackend keeps each collection in one human-readable JSON array file,
// read fully into memory and rewritten wholesale on every mutation.
//
// Known limitations, documented rather than fixed silently: writes go
// straight to the target path (no temp file and rename, a crash mid-write
// can corrupt the file) and concurrent writers race last-one-wins (no
// locking).
type FileBackend struct {
	customersPath string
	productsPath  string
}

func NewFileBackend(dir string) (*FileBackend, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}
	return &FileBackend{
		customersPath: filepath.Join(dir, "customers.json"),
		productsPath:  filepath.Join(dir, "products.json"),
	}, nil
}

// readCustomers yields an empty collection for a missing or corrupt file;
// no error is surfaced.
func (b *FileBackend) readCustomers() []models.Customer {
	data, err := os.ReadFile(b.customersPath)
	if err != nil {
		return []models.Customer{}
	}
	var customers []models.Customer
	if err := json.Unmarshal(data, &customers); err != nil {
		return []models.Customer{}
	}
	return customers
}

func (b *FileBackend) readProducts() []models.Product {
	data, err := os.ReadFile(b.productsPath)
	if err != nil {
		return []models.Product{}
	}
	var products []models.Product
	if err := json.Unmarshal(data, &products); err != nil {
		return []models.Product{}
	}
	return products
}

func writeJSON(path string, v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encode %s: %w", filepath.Base(path), err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", filepath.Base(path), err)
	}
	return nil
}

// ListCustomers returns file order. Creates prepend, so this is newest
// first without sorting.
func (b *FileBackend) ListCustomers(ctx context.Context) ([]models.Customer, error) {
	return b.readCustomers(), nil
}

func (b *FileBackend) CreateCustomer(ctx context.Context, c models.Customer) (models.Customer, error) {
	customers := append([]models.Customer{c}, b.readCustomers()...)
	if err := writeJSON(b.customersPath, customers); err != nil {
		return models.Customer{}, err
	}
	return c, nil
}

// ListProducts returns file order. Creates append, so file mode lists
// products oldest first while the database backend sorts newest first.
// Existing clients depend on this asymmetry.
func (b *FileBackend) ListProducts(ctx context.Context) ([]models.Product, error) {
	return b.readProducts(), nil
}

func (b *FileBackend) CreateProduct(ctx context.Context, p models.Product) (models.Product, error) {
	products := append(b.readProducts(), p)
	if err := writeJSON(b.productsPath, products); err != nil {
		return models.Product{}, err
	}
	return p, nil
}

// DeleteProduct filters by numeric id, then retries with string comparison
// when nothing matched, tolerating id type drift in hand-edited files.
// Filtering an absent id still rewrites the file and reports success.
func (b *FileBackend) DeleteProduct(ctx context.Context, id int64) error {
	products := b.readProducts()

	kept := make([]models.Product, 0, len(products))
	for _, p := range products {
		if p.ID.Int64() != id {
			kept = append(kept, p)
		}
	}

	if len(kept) == len(products) {
		idStr := strconv.FormatInt(id, 10)
		kept = kept[:0]
		for _, p := range products {
			if strconv.FormatInt(p.ID.Int64(), 10) != idStr {
				kept = append(kept, p)
			}
		}
	}

	return writeJSON(b.productsPath, kept)
}
