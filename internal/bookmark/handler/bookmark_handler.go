package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	authhandler "github.com/linkhoard/bookmark-service/internal/auth/handler"
	"github.com/linkhoard/bookmark-service/internal/bookmark/dto"
	"github.com/linkhoard/bookmark-service/internal/bookmark/service"
	apperror "github.com/linkhoard/bookmark-service/internal/errors"
)

type BookmarkHandler struct {
	bookmarkService *service.BookmarkService
}

func NewBookmarkHandler(bookmarkService *service.BookmarkService) *BookmarkHandler {
	return &BookmarkHandler{bookmarkService: bookmarkService}
}

func (h *BookmarkHandler) Create(c *fiber.Ctx) error {
	user, ok := authhandler.UserFromCtx(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "unauthorized"})
	}

	var input dto.CreateBookmarkInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid input"})
	}

	bookmark, err := h.bookmarkService.Create(c.Context(), user.ID, input)
	if err != nil {
		return writeBookmarkError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(dto.NewBookmarkOutput(bookmark))
}

func (h *BookmarkHandler) List(c *fiber.Ctx) error {
	user, ok := authhandler.UserFromCtx(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "unauthorized"})
	}

	bookmarks, err := h.bookmarkService.List(c.Context(), user.ID)
	if err != nil {
		return writeBookmarkError(c, err)
	}

	out := make([]dto.BookmarkOutput, 0, len(bookmarks))
	for i := range bookmarks {
		out = append(out, dto.NewBookmarkOutput(&bookmarks[i]))
	}

	return c.Status(fiber.StatusOK).JSON(out)
}

func (h *BookmarkHandler) Get(c *fiber.Ctx) error {
	user, ok := authhandler.UserFromCtx(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "unauthorized"})
	}

	bookmark, err := h.bookmarkService.Get(c.Context(), user.ID, c.Params("id"))
	if err != nil {
		return writeBookmarkError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(dto.NewBookmarkOutput(bookmark))
}

func (h *BookmarkHandler) Delete(c *fiber.Ctx) error {
	user, ok := authhandler.UserFromCtx(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "unauthorized"})
	}

	bookmark, err := h.bookmarkService.Delete(c.Context(), user.ID, c.Params("id"))
	if err != nil {
		return writeBookmarkError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(dto.NewBookmarkOutput(bookmark))
}

func (h *BookmarkHandler) SetFavorite(c *fiber.Ctx) error {
	user, ok := authhandler.UserFromCtx(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "unauthorized"})
	}

	var input dto.SetFavoriteInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid input"})
	}

	bookmark, err := h.bookmarkService.SetFavorite(c.Context(), user.ID, input)
	if err != nil {
		return writeBookmarkError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(dto.NewBookmarkOutput(bookmark))
}

func writeBookmarkError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, apperror.ErrTitleAndURLRequired):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, apperror.ErrBookmarkNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal server error"})
	}
}
