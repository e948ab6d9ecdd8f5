package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"github.com/lucas-barreto/foodcheck/internal/http/handlers"
)

func NewRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	}))

	r.Post("/user/register", handlers.RegisterHandler)
	r.Post("/user/token", handlers.TokenHandler)

	r.Get("/companies", handlers.GetCompaniesHandler)
	r.Get("/companies/{id}", handlers.GetCompanyByIDHandler)
	r.Get("/products", handlers.GetProductsHandler)
	r.Get("/products/check", handlers.GetChecksHandler)
	r.Get("/products/check/{id}", handlers.GetCheckByIDHandler)
	r.Get("/products/{id}", handlers.GetProductByIDHandler)

	r.Group(func(r chi.Router) {
		r.Use(AuthMiddleware)

		r.Post("/user/me", handlers.MeHandler)

		r.Post("/companies", handlers.CreateCompanyHandler)
		r.Put("/companies/{id}", handlers.UpdateCompanyHandler)
		r.Delete("/companies/{id}", handlers.DeleteCompanyHandler)

		r.Post("/products", handlers.CreateProductHandler)
		r.Post("/products/check", handlers.CreateCheckHandler)
		r.Put("/products/check/{id}", handlers.UpdateCheckHandler)
		r.Delete("/products/check/{id}", handlers.DeleteCheckHandler)
		r.Put("/products/{id}", handlers.UpdateProductHandler)
		r.Delete("/products/{id}", handlers.DeleteProductHandler)
	})

	return r
}
