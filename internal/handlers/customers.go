package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Amirrtadhanasekar/jaithindal-tiles/internal/models"
	"github.com/Amirrtadhanasekar/jaithindal-tiles/internal/storage"
)

/* =========================
   REQUEST DTOs
========================= */

type createCustomerRequest struct {
	Fullname       string        `json:"fullname" binding:"required"`
	Phone          string        `json:"phone" binding:"required"`
	Address        string        `json:"address" binding:"required"`
	Attender       string        `json:"attender" binding:"required"`
	AttenderPhone  string        `json:"attenderPhone" binding:"required"`
	TotalAmount    float64       `json:"totalAmount"`
	TotalArea      float64       `json:"totalArea"`
	TotalWeight    float64       `json:"totalWeight"`
	LoadingCharges float64       `json:"loadingCharges"`
	TotalTileCost  float64       `json:"totalTileCost"`
	Rooms          []models.Room `json:"rooms"`
}

var customerFieldNames = map[string]string{
	"Fullname":      "fullname",
	"Phone":         "phone",
	"Address":       "address",
	"Attender":      "attender",
	"AttenderPhone": "attenderPhone",
}

/* =========================
   LIST
========================= */

func GetCustomers(backend storage.Backend) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "GET /api/customers"
		defer handlePanic(c, route)

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		customers, err := backend.ListCustomers(ctx)
		if err != nil {
			respondWithError(c, http.StatusInternalServerError, route, "Failed to fetch customers")
			return
		}

		c.JSON(http.StatusOK, customers)
	}
}

/* =========================
   CREATE
========================= */

func CreateCustomer(backend storage.Backend) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "POST /api/customers"
		defer handlePanic(c, route)

		var req createCustomerRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondWithError(c, http.StatusBadRequest, route, bindingErrorMessage(err, customerFieldNames))
			return
		}

		rooms := req.Rooms
		if rooms == nil {
			rooms = []models.Room{}
		}

		customer := models.Customer{
			Fullname:       req.Fullname,
			Phone:          req.Phone,
			Address:        req.Address,
			Attender:       req.Attender,
			AttenderPhone:  req.AttenderPhone,
			TotalAmount:    req.TotalAmount,
			TotalArea:      req.TotalArea,
			TotalWeight:    req.TotalWeight,
			LoadingCharges: req.LoadingCharges,
			TotalTileCost:  req.TotalTileCost,
			Rooms:          rooms,
			CreatedAt:      time.Now(),
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		saved, err := backend.CreateCustomer(ctx, customer)
		if err != nil {
			respondWithError(c, http.StatusInternalServerError, route, "Failed to save customer")
			return
		}

		c.JSON(http.StatusCreated, gin.H{
			"message":  "Customer saved successfully",
			"customer": saved,
		})
	}
}
