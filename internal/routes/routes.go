package routes

import (
	"articlehub/internal/config"
	"articlehub/internal/handlers"
	"articlehub/internal/middleware"

	"github.com/gorilla/mux"
)

func InitRoutes(
	router *mux.Router,
	cfg *config.Config,
	authHandler *handlers.AuthHandler,
	articleHandler *handlers.ArticleHandler,
) {
	router.Use(middleware.RequestID)
	router.Use(middleware.Logging)
	router.Use(middleware.Recoverer)

	api := router.PathPrefix("/api").Subrouter()

	// --- Публичные маршруты: выдача и обновление токенов ---
	api.HandleFunc("/register", authHandler.Register).Methods("POST")
	api.HandleFunc("/login", authHandler.Login).Methods("POST")
	api.HandleFunc("/refresh", authHandler.Refresh).Methods("POST")
	api.HandleFunc("/logout", authHandler.Logout).Methods("POST")

	// --- Защищённые JWT ---
	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.JWTAuth(cfg.JWTSecret))

	protected.HandleFunc("/articles", articleHandler.List).Methods("GET")
	protected.HandleFunc("/articles", articleHandler.Create).Methods("POST")
	protected.HandleFunc("/articles/{id}", articleHandler.GetByID).Methods("GET")
	protected.HandleFunc("/articles/{id}", articleHandler.UpdateFull).Methods("POST")
	protected.HandleFunc("/articles/{id}", articleHandler.UpdatePartial).Methods("PATCH")
	protected.HandleFunc("/articles/{id}", articleHandler.Delete).Methods("DELETE")
}
