package main

import (
	"log"
	"os"
	"time"

	"ndiscare-backend/internal/config"
	"ndiscare-backend/internal/geo"
	"ndiscare-backend/internal/handlers"
	"ndiscare-backend/internal/routes"
	"ndiscare-backend/internal/search"
	"ndiscare-backend/internal/store"
	"ndiscare-backend/pkg/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/joho/godotenv"
)

func main() {
	// 1. Load env
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}

	// 2. Connect DB
	config.ConnectDB()

	// 3. Wire the search pipeline: gorm store + geocoder (redis-cached
	// when REDIS_ADDR is set, plain otherwise)
	var geocoder geo.Geocoder = geo.NewNominatimClient(envOr("GEOCODER_URL", "https://nominatim.openstreetmap.org"))
	if addr := os.Getenv("REDIS_ADDR"); addr != "" {
		rdb := redis.NewClient(&redis.Options{Addr: addr})
		geocoder = geo.NewCachedGeocoder(geocoder, rdb, 24*time.Hour)
		log.Println("Geocode cache enabled via redis at " + addr)
	}
	searchService := search.NewService(store.NewGormWorkerStore(config.DB), geocoder)
	searchHandler := handlers.NewSearchHandler(searchService)

	// 4. Router + routes
	r := gin.Default()
	routes.SetupRoutes(r, searchHandler)

	r.GET("/ping", func(c *gin.Context) {
		utils.APIResponse(c, 200, true, "Server OK!", nil)
	})

	// 5. Run
	port := envOr("PORT", "8080")
	log.Println("Server listening on port " + port)
	r.Run(":" + port)
}

func envOr(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}
