package app

import (
	"articlehub/internal/config"
	"articlehub/internal/db"
	"articlehub/internal/handlers"
	"articlehub/internal/repository"
	"articlehub/internal/routes"
	"articlehub/internal/services"

	"github.com/gorilla/mux"
)

func InitApp(cfg *config.Config) (*mux.Router, error) {
	conn, err := db.NewPostgresConnection(cfg)
	if err != nil {
		return nil, err
	}

	// Репозитории
	userRepo := repository.NewUserRepository(conn)
	articleRepo := repository.NewArticleRepo(conn)

	// Сервисы
	authService := services.NewAuthService(userRepo)
	articleService := services.NewArticleService(articleRepo)

	// Хендлеры
	authHandler := handlers.NewAuthHandler(authService)
	articleHandler := handlers.NewArticleHandler(articleService)

	// Маршруты
	router := mux.NewRouter()
	routes.InitRoutes(router, cfg, authHandler, articleHandler)

	return router, nil
}
