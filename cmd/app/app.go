package app

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gorilla/mux"

	"microblog/internal/cache"
	"microblog/internal/config"
	"microblog/internal/database"
	handlers "microblog/internal/handler"
	"microblog/internal/middleware"
	"microblog/internal/repository"
	"microblog/internal/service"
)

// App connects the database and wires repositories, services and handlers.
// The caller owns the returned DB and must close it.
func App(ctx context.Context, cfg *config.Config) (*database.DB, *service.Service, *handlers.Handlers, error) {
	// connection DB
	db, err := database.ConnectDB(ctx, cfg)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("connect database: %w", err)
	}

	// enabling dependencies
	repo := repository.NewRepository(db)
	postCache := cache.NewPostCache(cfg.Cache.Size, cfg.Cache.TTL)

	services, err := service.NewService(repo, cfg, postCache)
	if err != nil {
		_ = db.CloseDB()
		return nil, nil, nil, fmt.Errorf("init services: %w", err)
	}

	return db, services, handlers.NewHandlers(services, cfg), nil
}

func NewRouter(h *handlers.Handlers) http.Handler {
	requireUser := middleware.RequireUser(h.AuthService)

	r := mux.NewRouter()

	r.HandleFunc("/", handlers.HomeHandler).Methods(http.MethodGet)
	r.HandleFunc("/health", h.Health).Methods(http.MethodGet)
	r.HandleFunc("/db_init", h.DBInit).Methods(http.MethodGet, http.MethodPost)

	r.HandleFunc("/signup", h.Signup).Methods(http.MethodPost)
	r.HandleFunc("/login", h.Login).Methods(http.MethodPost)

	r.Handle("/add-post", requireUser(h.AddPost)).Methods(http.MethodPost)
	r.Handle("/get-posts", requireUser(h.GetPosts)).Methods(http.MethodGet)
	r.Handle("/delete-post", requireUser(h.DeletePost)).Methods(http.MethodDelete)

	r.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		handlers.WriteError(w, "Not found", http.StatusNotFound)
	})
	r.MethodNotAllowedHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		handlers.WriteError(w, "Method not allowed", http.StatusMethodNotAllowed)
	})

	return middleware.Chain(
		r,
		middleware.RecoveryMiddleware,
		middleware.LoggingMiddleware,
		middleware.CORSMiddleware,
	)
}
