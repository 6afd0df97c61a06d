package handlers

import (
	"context"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Amirrtadhanasekar/jaithindal-tiles/internal/models"
	"github.com/Amirrtadhanasekar/jaithindal-tiles/internal/storage"
)

/* =========================
   REQUEST DTOs
========================= */

type createProductRequest struct {
	ID     models.FlexID `json:"id"`
	Type   string        `json:"type" binding:"required"`
	Image  string        `json:"image"`
	Size   string        `json:"size"`
	Design string        `json:"design" binding:"required"`
	Amount float64       `json:"amount" binding:"required"`
}

var productFieldNames = map[string]string{
	"Type":   "type",
	"Design": "design",
	"Amount": "amount",
}

/* =========================
   LIST
========================= */

func GetProducts(backend storage.Backend) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "GET /api/products"
		defer handlePanic(c, route)

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		products, err := backend.ListProducts(ctx)
		if err != nil {
			respondWithError(c, http.StatusInternalServerError, route, "Failed to fetch products")
			return
		}

		c.JSON(http.StatusOK, products)
	}
}

/* =========================
   CREATE
========================= */

func CreateProduct(backend storage.Backend) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "POST /api/products"
		defer handlePanic(c, route)

		var req createProductRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondWithError(c, http.StatusBadRequest, route, bindingErrorMessage(err, productFieldNames))
			return
		}

		tileType := models.TileType(req.Type)
		if !tileType.Valid() {
			respondWithError(c, http.StatusBadRequest, route, "type must be floor or wall")
			return
		}

		id := req.ID
		if id == 0 {
			// Millisecond timestamps are not collision-proof under rapid
			// concurrent creates; callers that care supply their own id.
			id = models.FlexID(time.Now().UnixMilli())
		}

		product := models.Product{
			ID:        id,
			Type:      tileType,
			Image:     req.Image,
			Size:      req.Size,
			Design:    req.Design,
			Amount:    req.Amount,
			CreatedAt: time.Now(),
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		saved, err := backend.CreateProduct(ctx, product)
		if err != nil {
			respondWithError(c, http.StatusInternalServerError, route, "Failed to save product")
			return
		}

		c.JSON(http.StatusCreated, gin.H{
			"message": "Product saved",
			"product": saved,
		})
	}
}

/* =========================
   DELETE
========================= */

// DeleteProduct is idempotent: deleting an id that was never stored still
// reports success.
func DeleteProduct(backend storage.Backend) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "DELETE /api/products/:id"
		defer handlePanic(c, route)

		id, err := strconv.ParseInt(c.Param("id"), 10, 64)
		if err != nil {
			// Ids are minted numeric, so a non-numeric id cannot match any
			// stored record; the delete is a successful no-op.
			log.Printf("[%s] non-numeric id %q, nothing to delete", route, c.Param("id"))
			c.JSON(http.StatusOK, gin.H{"message": "Product deleted"})
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		if err := backend.DeleteProduct(ctx, id); err != nil {
			respondWithError(c, http.StatusInternalServerError, route, "Failed to delete product")
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Product deleted"})
	}
}
