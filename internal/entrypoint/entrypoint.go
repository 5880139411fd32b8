// Package entrypoint wires configuration, storage and the HTTP layer
// together and runs the server.
package entrypoint

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/mlefebvre/bookcatalog/internal/auth"
	"github.com/mlefebvre/bookcatalog/internal/config"
	"github.com/mlefebvre/bookcatalog/internal/database"
	"github.com/mlefebvre/bookcatalog/internal/database/authors"
	"github.com/mlefebvre/bookcatalog/internal/database/books"
	"github.com/mlefebvre/bookcatalog/internal/database/comments"
	"github.com/mlefebvre/bookcatalog/internal/database/ratings"
	"github.com/mlefebvre/bookcatalog/internal/database/tags"
	http_controllers "github.com/mlefebvre/bookcatalog/internal/http"
)

func Serve(router *gin.Engine, cfg *config.Config) {
	timeout := time.Duration(cfg.Global.ShutdownTimeoutInSeconds) * time.Second

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%d", cfg.HTTP.Host, cfg.HTTP.Port),
		Handler: router,
	}

	go func() {
		fmt.Printf("Starting server at %s:%d\n", cfg.HTTP.Host, cfg.HTTP.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	// Graceful shutdown on SIGINT/SIGTERM
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Printf("Shutdown Server, waiting %v before killing\n", timeout)

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server Shutdown:", err)
	}

	log.Println("Server exiting")
}

func Run(cfg *config.Config, version string) {
	log.Printf("Starting Book Catalog v%s", version)

	db, err := database.NewDatabase(cfg.Database.Path)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	secret := cfg.Auth.JWTSecret
	if secret == "" {
		secret, err = auth.GenerateSecret()
		if err != nil {
			log.Fatalf("Failed to generate token secret: %v", err)
		}
		log.Printf("WARNING: JWT_SECRET is not set. Using a random secret; tokens will not survive a restart.")
	}

	tokens := auth.NewTokenManager(secret, cfg.Auth.TokenLifetime)
	authService := auth.NewService(db.DB, tokens, cfg.Auth)

	routerConfig := http_controllers.RouterConfig{
		AuthorStore:  authors.NewRepository(db.DB),
		BookStore:    books.NewRepository(db.DB),
		TagStore:     tags.NewRepository(db.DB),
		CommentStore: comments.NewRepository(db.DB),
		RatingStore:  ratings.NewRepository(db.DB),
		AuthService:  authService,
		Database:     db,
		AllowOrigins: cfg.CORS.AllowOrigins,
		Version:      version,
	}

	router := http_controllers.NewRouter(routerConfig)

	Serve(router, cfg)
}
