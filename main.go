package main

import (
	"context"
	"log"

	"github.com/gin-gonic/gin"

	"github.com/Amirrtadhanasekar/jaithindal-tiles/internal/config"
	"github.com/Amirrtadhanasekar/jaithindal-tiles/internal/handlers"
	"github.com/Amirrtadhanasekar/jaithindal-tiles/internal/middleware"
	"github.com/Amirrtadhanasekar/jaithindal-tiles/internal/storage"
)

// selectBackend decides the storage mode once: a MongoDB connection
// attempt bounded by the configured timeout, falling back to local JSON
// files when it fails. The choice never changes mid-session.
func selectBackend() storage.Backend {
	ctx, cancel := context.WithTimeout(context.Background(), config.AppEnv.ConnectTimeout)
	defer cancel()

	db, err := storage.Connect(ctx, config.AppEnv.MongoURI, config.AppEnv.DBName)
	if err == nil {
		log.Println("Connected to MongoDB")
		if err := db.EnsureIndexes(); err != nil {
			log.Printf("⚠️ index warning: %v", err)
		}
		return db
	}

	log.Println("MongoDB not available, switching to local file storage:", err)
	files, err := storage.NewFileBackend(config.AppEnv.DataDir)
	if err != nil {
		log.Fatal(err)
	}
	return files
}

func main() {
	config.Load()

	backend := selectBackend()

	r := gin.Default()
	r.Use(middleware.CORS())
	r.Use(middleware.BodyLimit(config.AppEnv.BodyLimitMB))

	api := r.Group("/api")
	{
		api.GET("/customers", handlers.GetCustomers(backend))
		api.POST("/customers", handlers.CreateCustomer(backend))

		api.GET("/products", handlers.GetProducts(backend))
		api.POST("/products", handlers.CreateProduct(backend))
		api.DELETE("/products/:id", handlers.DeleteProduct(backend))
	}

	log.Println("Server running on http://localhost:" + config.AppEnv.Port)
	r.Run(":" + config.AppEnv.Port)
}
