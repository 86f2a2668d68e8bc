package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/linkhoard/bookmark-service/internal/auth/dto"
	"github.com/linkhoard/bookmark-service/internal/auth/service"
	autherror "github.com/linkhoard/bookmark-service/internal/errors"
)

type AuthHandler struct {
	userService *service.UserService
}

func NewAuthHandler(userService *service.UserService) *AuthHandler {
	return &AuthHandler{userService: userService}
}

func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var input dto.RegisterInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid input",
		})
	}

	user, err := h.userService.Register(c.Context(), input)
	if err != nil {
		return writeAuthError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(dto.NewUserOutput(user))
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var input dto.LoginInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid input",
		})
	}

	token, user, err := h.userService.Login(c.Context(), input)
	if err != nil {
		return writeAuthError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(dto.LoginResponse{
		Token: token,
		User:  dto.NewUserOutput(user),
	})
}

// writeAuthError maps service sentinels onto the HTTP contract. Anything not
// in the taxonomy is a collaborator failure and goes out as a generic 500;
// internal detail is never serialized.
func writeAuthError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, autherror.ErrEmailAndPasswordRequired),
		errors.Is(err, autherror.ErrEmailAlreadyInUse):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, autherror.ErrUserNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, autherror.ErrInvalidCredentials):
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": err.Error()})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal server error"})
	}
}
