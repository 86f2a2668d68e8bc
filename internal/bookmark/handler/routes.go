package handler

import (
	"github.com/gofiber/fiber/v2"
)

// RegisterRoutes mounts the bookmark surface behind the auth gate; nothing
// here is reachable without a valid bearer token.
func RegisterRoutes(app *fiber.App, h *BookmarkHandler, gate fiber.Handler) {
	bookmarks := app.Group("/api/v1/bookmarks", gate)
	bookmarks.Post("/", h.Create)
	bookmarks.Get("/", h.List)
	bookmarks.Patch("/", h.SetFavorite)
	bookmarks.Get("/:id", h.Get)
	bookmarks.Delete("/:id", h.Delete)
}
