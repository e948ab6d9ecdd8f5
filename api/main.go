package main

import (
	"log"
	"net/http"

	"github.com/lucas-barreto/foodcheck/internal/auth"
	"github.com/lucas-barreto/foodcheck/internal/config"
	"github.com/lucas-barreto/foodcheck/internal/db"
	api "github.com/lucas-barreto/foodcheck/internal/http"
	"github.com/lucas-barreto/foodcheck/internal/http/handlers"
	"github.com/lucas-barreto/foodcheck/internal/repo"
)

// @title Food Check API
// @version 1.0
// @description REST API for companies, their products and per-product quality checks.
// @host localhost:8000
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("❌ Invalid configuration: ", err)
	}

	auth.Configure(cfg.JWTSecret, cfg.TokenTTL)

	database, err := db.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("❌ Could not connect to database: ", err)
	}
	defer database.Close()

	userRepo := repo.NewPostgresUserRepository(database)
	handlers.SetUserRepo(userRepo)
	handlers.SetCompanyRepo(repo.NewPostgresCompanyRepository(database))
	handlers.SetProductRepo(repo.NewPostgresProductRepository(database))
	handlers.SetCheckRepo(repo.NewPostgresProductCheckRepository(database))
	handlers.SetRefChecker(repo.NewPostgresRefChecker(database))
	api.SetUserRepo(userRepo)

	r := api.NewRouter()
	log.Println("✅ Server running on", cfg.Addr)
	if err := http.ListenAndServe(cfg.Addr, r); err != nil {
		log.Fatal(err)
	}
}
