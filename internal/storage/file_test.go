package storage

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"reflect"
	"testing"
	"time"

	"github.com/Amirrtadhanasekar/jaithindal-tiles/internal/models"
)

func newTestFileBackend(t *testing.T) *FileBackend {
	t.Helper()
	backend, err := NewFileBackend(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileBackend returned error: %v", err)
	}
	return backend
}

func TestFileBackendMissingFilesReadEmpty(t *testing.T) {
	backend := newTestFileBackend(t)

	customers, err := backend.ListCustomers(context.Background())
	if err != nil {
		t.Fatalf("ListCustomers returned error: %v", err)
	}
	if len(customers) != 0 {
		t.Fatalf("expected empty customers, got %d", len(customers))
	}

	products, err := backend.ListProducts(context.Background())
	if err != nil {
		t.Fatalf("ListProducts returned error: %v", err)
	}
	if len(products) != 0 {
		t.Fatalf("expected empty products, got %d", len(products))
	}
}

func TestFileBackendCorruptFileReadsEmpty(t *testing.T) {
	backend := newTestFileBackend(t)

	if err := os.WriteFile(backend.productsPath, []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}

	products, err := backend.ListProducts(context.Background())
	if err != nil {
		t.Fatalf("ListProducts returned error: %v", err)
	}
	if len(products) != 0 {
		t.Fatalf("expected empty products from corrupt file, got %d", len(products))
	}
}

func TestFileBackendCustomersNewestFirst(t *testing.T) {
	backend := newTestFileBackend(t)
	ctx := context.Background()

	names := []string{"first", "second", "third"}
	for _, name := range names {
		_, err := backend.CreateCustomer(ctx, models.Customer{
			Fullname: name, Phone: "1", Address: "a", Attender: "b", AttenderPhone: "2",
			Rooms: []models.Room{}, CreatedAt: time.Now(),
		})
		if err != nil {
			t.Fatalf("CreateCustomer(%s) returned error: %v", name, err)
		}
	}

	customers, err := backend.ListCustomers(ctx)
	if err != nil {
		t.Fatalf("ListCustomers returned error: %v", err)
	}
	if len(customers) != 3 {
		t.Fatalf("expected 3 customers, got %d", len(customers))
	}
	for i, want := range []string{"third", "second", "first"} {
		if customers[i].Fullname != want {
			t.Fatalf("position %d: expected %s, got %s", i, want, customers[i].Fullname)
		}
	}
}

func TestFileBackendProductsKeepInsertionOrder(t *testing.T) {
	backend := newTestFileBackend(t)
	ctx := context.Background()

	for i, design := range []string{"alpha", "beta"} {
		_, err := backend.CreateProduct(ctx, models.Product{
			ID: models.FlexID(i + 1), Type: models.TileFloor, Design: design, Amount: 100,
		})
		if err != nil {
			t.Fatalf("CreateProduct(%s) returned error: %v", design, err)
		}
	}

	products, err := backend.ListProducts(ctx)
	if err != nil {
		t.Fatalf("ListProducts returned error: %v", err)
	}
	if len(products) != 2 {
		t.Fatalf("expected 2 products, got %d", len(products))
	}
	if products[0].Design != "alpha" || products[1].Design != "beta" {
		t.Fatalf("expected file-mode insertion order alpha,beta, got %s,%s",
			products[0].Design, products[1].Design)
	}
}

func TestFileBackendDeleteIsIdempotent(t *testing.T) {
	backend := newTestFileBackend(t)
	ctx := context.Background()

	if _, err := backend.CreateProduct(ctx, models.Product{
		ID: 42, Type: models.TileWall, Design: "x", Amount: 10,
	}); err != nil {
		t.Fatal(err)
	}

	if err := backend.DeleteProduct(ctx, 42); err != nil {
		t.Fatalf("first delete returned error: %v", err)
	}
	if err := backend.DeleteProduct(ctx, 42); err != nil {
		t.Fatalf("second delete returned error: %v", err)
	}
	if err := backend.DeleteProduct(ctx, 999); err != nil {
		t.Fatalf("deleting an absent id returned error: %v", err)
	}

	products, err := backend.ListProducts(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(products) != 0 {
		t.Fatalf("expected empty products after delete, got %d", len(products))
	}
}

func TestFileBackendDeleteToleratesStringIDs(t *testing.T) {
	backend := newTestFileBackend(t)
	ctx := context.Background()

	// A hand-edited or legacy file can carry the id as a string.
	raw := `[{"id": "1700000000001", "type": "floor", "design": "legacy", "amount": 5, "createdAt": "2023-11-14T00:00:00Z"}]`
	if err := os.WriteFile(backend.productsPath, []byte(raw), 0o644); err != nil {
		t.Fatal(err)
	}

	if err := backend.DeleteProduct(ctx, 1700000000001); err != nil {
		t.Fatalf("DeleteProduct returned error: %v", err)
	}

	products, err := backend.ListProducts(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(products) != 0 {
		t.Fatalf("expected string-id record to be deleted, got %d left", len(products))
	}
}

func TestFileBackendCustomerRoundTrip(t *testing.T) {
	backend := newTestFileBackend(t)
	ctx := context.Background()

	customer := models.Customer{
		Fullname:      "Round Trip",
		Phone:         "12345",
		Address:       "Main St",
		Attender:      "Staff",
		AttenderPhone: "54321",
		TotalAmount:   1500,
		TotalArea:     300,
		Rooms: []models.Room{{
			Name:      "Hall",
			AreaType:  "Living Room",
			TotalArea: 300,
			TotalCost: 1500,
			Items: []models.RoomItem{{
				Type: "floor", Design: "D-101", Area: 300, Boxes: 19,
				Price: 80, Cost: 1500, Weight: 420,
				TilesPerWidth: 8, TilesPerLength: 10,
			}},
		}},
		CreatedAt: time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC),
	}

	if _, err := backend.CreateCustomer(ctx, customer); err != nil {
		t.Fatalf("CreateCustomer returned error: %v", err)
	}

	// Read the file back directly: the persisted structure must decode to
	// the same value, formatting aside.
	data, err := os.ReadFile(filepath.Join(filepath.Dir(backend.customersPath), "customers.json"))
	if err != nil {
		t.Fatal(err)
	}
	var stored []models.Customer
	if err := json.Unmarshal(data, &stored); err != nil {
		t.Fatalf("persisted file is not valid JSON: %v", err)
	}
	if len(stored) != 1 {
		t.Fatalf("expected 1 stored customer, got %d", len(stored))
	}
	if !stored[0].CreatedAt.Equal(customer.CreatedAt) {
		t.Fatalf("createdAt changed across round trip: %v vs %v", stored[0].CreatedAt, customer.CreatedAt)
	}
	stored[0].CreatedAt = customer.CreatedAt
	if !reflect.DeepEqual(stored[0], customer) {
		t.Fatalf("round trip mismatch:\n got %+v\nwant %+v", stored[0], customer)
	}
}
