package main

import (
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/kenya-ni-yetu/api-go/config"
	"github.com/kenya-ni-yetu/api-go/middleware"
	"github.com/kenya-ni-yetu/api-go/routes"
)

func main() {
	// Set up logging to stdout
	log.SetOutput(os.Stdout)
	log.SetFlags(log.LstdFlags | log.Lshortfile)

	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment")
	}

	settings := config.Get()

	if !settings.Debug {
		gin.SetMode(gin.ReleaseMode)
	}

	// Initialize database
	db := config.InitDB()

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger())
	r.Use(middleware.CORS(settings.AllowedOriginsList()))

	// Initialize routes
	routes.SetupRoutes(r, db)

	log.Printf("Starting %s on port %s", settings.AppName, settings.Port)
	if err := r.Run(":" + settings.Port); err != nil {
		log.Fatal("Server failed:", err)
	}
}
