package main

import (
	"fmt"
	"log"
	"net/http"

	"assets-backend/config"
	"assets-backend/handlers"
	"assets-backend/services"
	"assets-backend/storage"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

func main() {
	cfg := config.Load()

	db, err := storage.NewDB(cfg.DBDSN)
	if err != nil {
		log.Fatalf("Falha fatal ao conectar ao banco de dados e aplicar migrações: %v", err)
	}
	defer db.Close()

	store := storage.NewAssetStore(db)
	assetService := services.NewLoggingService(services.NewAssetService(store))
	assetHandler := handlers.NewAssetHandler(assetService)

	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.URLFormat)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{cfg.CORSOrigin},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
	}))

	r.Route("/api/assets", func(r chi.Router) {
		r.Get("/", assetHandler.ListAssets)
		r.Post("/", assetHandler.CreateAsset)
		r.Get("/paginated", assetHandler.ListAssetsPaginated)
		r.Get("/{id}", assetHandler.GetAssetByID)
		r.Put("/{id}", assetHandler.UpdateAsset)
		r.Delete("/{id}", assetHandler.DeleteAsset)
	})

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	addr := fmt.Sprintf(":%s", cfg.ServerPort)
	fmt.Printf("Servidor backend rodando na porta %s...\n", addr)
	log.Fatal(http.ListenAndServe(addr, r))
}
