package main

import (
	"log"
	"os"

	"github.com/joho/godotenv"

	"todo-items-api/internal/database"
	"todo-items-api/internal/routes"
	"todo-items-api/internal/services"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found; using environment variables")
	}

	db := database.InitDB()
	defer db.Close()

	if err := database.Migrate(db); err != nil {
		log.Fatalf("Fatal: %v", err)
	}

	r := routes.SetupRouter(db, services.NewJWTService())

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	// サーバー起動
	log.Printf("Server listening on port %s...", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatal(err)
	}
}
