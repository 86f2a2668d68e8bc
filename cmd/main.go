package main

import (
	"context"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/joho/godotenv"
	"github.com/linkhoard/bookmark-service/config"
	"github.com/linkhoard/bookmark-service/db"
	authhandler "github.com/linkhoard/bookmark-service/internal/auth/handler"
	authrepo "github.com/linkhoard/bookmark-service/internal/auth/repository/postgres"
	authservice "github.com/linkhoard/bookmark-service/internal/auth/service"
	bookmarkhandler "github.com/linkhoard/bookmark-service/internal/bookmark/handler"
	bookmarkrepo "github.com/linkhoard/bookmark-service/internal/bookmark/repository/postgres"
	bookmarkservice "github.com/linkhoard/bookmark-service/internal/bookmark/service"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	ctx := context.Background()

	dbPool, err := db.NewPostgresPool(ctx, cfg.DBURL)
	if err != nil {
		log.Fatalf("db: %v", err)
	}
	defer dbPool.Close()

	if err := db.RunMigrations(ctx, cfg.DBURL); err != nil {
		log.Fatalf("migrations: %v", err)
	}

	userRepo := authrepo.NewPostgresRepository(dbPool)
	hasher := authservice.NewBcryptHasher(cfg.BcryptCost)
	tokenService := authservice.NewTokenService(cfg.JWTSecret)
	userService := authservice.NewUserService(userRepo, hasher, tokenService)
	authHandler := authhandler.NewAuthHandler(userService)

	bookmarkRepo := bookmarkrepo.NewPostgresRepository(dbPool)
	bookmarkService := bookmarkservice.NewBookmarkService(bookmarkRepo)
	bookmarkHandler := bookmarkhandler.NewBookmarkHandler(bookmarkService)

	app := fiber.New()
	authhandler.RegisterRoutes(app, authHandler)
	bookmarkhandler.RegisterRoutes(app, bookmarkHandler, authHandler.RequireAuth())

	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatalf("server: %v", err)
	}
}
