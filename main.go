package main

import (
	"fmt"
	"log"
	"net/http"
	"os"

	"github.com/joho/godotenv"

	"github.com/IIDOUY/AI-Study-Roadmap/internal/api"
	"github.com/IIDOUY/AI-Study-Roadmap/internal/client/openai"
	"github.com/IIDOUY/AI-Study-Roadmap/internal/repository"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using process environment")
	}

	apiKey := os.Getenv("OPENAI_API_KEY")
	if apiKey == "" {
		log.Fatal("OPENAI_API_KEY not configured")
	}
	model := os.Getenv("OPENAI_MODEL")

	dbPath := os.Getenv("DB_PATH")
	if dbPath == "" {
		dbPath = "./roadmaps.db"
	}

	db, err := repository.InitDB(dbPath)
	if err != nil {
		log.Fatal("Error initializing DB:", err)
	}
	defer db.Close()

	fmt.Println("✅ Database initialized!")

	generator := openai.NewOpenAIClient(apiKey, model)
	router := api.SetupRouter(db, generator)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	fmt.Println("🚀 Server running at http://localhost:" + port)
	fmt.Println("📝 Available endpoints:")
	fmt.Println("   POST /roadmaps - Generate a roadmap from study material")
	fmt.Println("   GET /roadmaps?user_id= - List roadmaps (owned + shared)")
	fmt.Println("   POST /roadmaps/:id/reschedule - Move a task and cascade the shift")
	fmt.Println("   GET /roadmaps/:id/duration - Recompute the total time estimate")

	if err := http.ListenAndServe(":"+port, router); err != nil {
		log.Fatal("Error starting server:", err)
	}
}
