package main

import (
	"log"
	"net/http"
	"os"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"github.com/rs/cors"

	"github.com/sql-tutor/backend/internal/analysis"
	"github.com/sql-tutor/backend/internal/auth"
	"github.com/sql-tutor/backend/internal/catalog"
	"github.com/sql-tutor/backend/internal/cheatsheet"
	"github.com/sql-tutor/backend/internal/database"
	"github.com/sql-tutor/backend/internal/evaluator"
	"github.com/sql-tutor/backend/internal/llm"
	"github.com/sql-tutor/backend/internal/middleware"
	"github.com/sql-tutor/backend/internal/practice"
)

func main() {
	// .env is optional; real deployments set env vars directly
	if err := godotenv.Load(); err == nil {
		log.Println("Loaded configuration from .env")
	}

	db, err := database.Connect()
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	if err := database.Migrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	cat := catalog.Default()
	if err := database.Seed(db, cat); err != nil {
		log.Fatalf("Failed to seed database: %v", err)
	}

	llmClient := llm.NewFromEnv()
	if llmClient == nil {
		log.Println("No LLM configured; evaluation uses local scoring only")
	}

	eval := evaluator.New(llmClient, cat)

	// Initialize handlers
	authHandler := auth.NewHandler(db)
	practiceHandler := practice.NewHandler(
		practice.NewService(practice.NewStore(db), cat, llmClient, eval))
	analysisHandler := analysis.NewHandler(analysis.NewService(analysis.NewStore(db)))
	cheatsheetHandler := cheatsheet.NewHandler(
		cheatsheet.NewService(cheatsheet.NewStore(db), llmClient))

	// Setup router
	r := mux.NewRouter()
	api := r.PathPrefix("/api").Subrouter()

	// Auth
	api.HandleFunc("/auth/register", authHandler.Register).Methods("POST")
	api.HandleFunc("/auth/login", authHandler.Login).Methods("POST")

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.AuthMiddleware)
	protected.HandleFunc("/auth/me", authHandler.GetCurrentUser).Methods("GET")

	// Modules and practice
	api.HandleFunc("/modules", practiceHandler.ListModules).Methods("GET")
	api.HandleFunc("/modules/{id:[0-9]+}", practiceHandler.GetModule).Methods("GET")
	api.HandleFunc("/modules/{id:[0-9]+}/business-question", practiceHandler.GetBusinessQuestion).Methods("GET")
	api.HandleFunc("/practice/question", practiceHandler.GenerateQuestion).Methods("POST")
	api.HandleFunc("/practice/evaluate-business-answer", practiceHandler.EvaluateAnswer).Methods("POST")
	api.HandleFunc("/practice/adapt-difficulty", practiceHandler.AdaptDifficulty).Methods("POST")
	api.HandleFunc("/practice/validate-sql", practiceHandler.ValidateSQL).Methods("POST")
	api.HandleFunc("/practice/progress", practiceHandler.GetUserProgress).Methods("GET")
	api.HandleFunc("/practice/progress/{user_id}", practiceHandler.GetUserProgress).Methods("GET")

	// Analytics
	api.HandleFunc("/analysis/{user_id}", analysisHandler.GetUserAnalytics).Methods("GET")
	api.HandleFunc("/analysis/{user_id}/detailed", analysisHandler.GetDetailedAnalytics).Methods("GET")
	api.HandleFunc("/analysis/{user_id}/learning-path", analysisHandler.GetLearningPath).Methods("GET")

	// Cheat sheet
	api.HandleFunc("/cheatsheet", cheatsheetHandler.List).Methods("GET")
	api.HandleFunc("/cheatsheet/category/{category}", cheatsheetHandler.ByCategory).Methods("GET")
	api.HandleFunc("/cheatsheet/search/{term}", cheatsheetHandler.Search).Methods("GET")
	api.HandleFunc("/cheatsheet/example", cheatsheetHandler.DynamicExample).Methods("POST")

	// Health check
	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	}).Methods("GET")

	// CORS
	c := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		AllowCredentials: true,
	})

	handler := c.Handler(r)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Printf("Server starting on :%s", port)
	if err := http.ListenAndServe(":"+port, handler); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}
