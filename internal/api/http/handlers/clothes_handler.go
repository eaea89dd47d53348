package handlers

import (
	"net/http"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/clothes-service/internal/api/dto"
	"github.com/spec-kit/clothes-service/internal/auth"
	"github.com/spec-kit/clothes-service/internal/service"
	apperrors "github.com/spec-kit/clothes-service/pkg/util"
)

// ClothesHandler exposes the catalog.
type ClothesHandler struct {
	clothes *service.ClothesService
}

// NewClothesHandler constructs handler.
func NewClothesHandler(clothesService *service.ClothesService) *ClothesHandler {
	return &ClothesHandler{clothes: clothesService}
}

// List handles GET /clothes.
func (h *ClothesHandler) List(c *fiber.Ctx) error {
	items, err := h.clothes.List(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(dto.ClothesListResponse{Data: items})
}

// Get handles GET /clothes/:id.
func (h *ClothesHandler) Get(c *fiber.Ctx) error {
	id, err := clothesID(c)
	if err != nil {
		return err
	}
	item, err := h.clothes.Get(c.UserContext(), id)
	if err != nil {
		return err
	}
	return c.JSON(item)
}

// Create handles POST /clothes.
func (h *ClothesHandler) Create(c *fiber.Ctx) error {
	in, err := parseClothes(c)
	if err != nil {
		return err
	}
	item, err := h.clothes.Create(c.UserContext(), actorID(c), in)
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(item)
}

// Update handles PUT /clothes/:id.
func (h *ClothesHandler) Update(c *fiber.Ctx) error {
	id, err := clothesID(c)
	if err != nil {
		return err
	}
	in, err := parseClothes(c)
	if err != nil {
		return err
	}
	item, err := h.clothes.Update(c.UserContext(), actorID(c), id, in)
	if err != nil {
		return err
	}
	return c.JSON(item)
}

// Delete handles DELETE /clothes/:id.
func (h *ClothesHandler) Delete(c *fiber.Ctx) error {
	id, err := clothesID(c)
	if err != nil {
		return err
	}
	if err := h.clothes.Delete(c.UserContext(), actorID(c), id); err != nil {
		return err
	}
	return c.SendStatus(http.StatusNoContent)
}

func parseClothes(c *fiber.Ctx) (service.ClothesInput, error) {
	var req dto.ClothesRequest
	if err := c.BodyParser(&req); err != nil {
		return service.ClothesInput{}, apperrors.NewValidationError("invalid payload", nil)
	}
	if err := dto.Validate(req); err != nil {
		return service.ClothesInput{}, err
	}
	return service.ClothesInput{
		Name:     req.Name,
		Color:    req.ColorValue(),
		Size:     req.SizeValue(),
		PhotoURL: req.PhotoURL,
	}, nil
}

func clothesID(c *fiber.Ctx) (int64, error) {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, apperrors.NewValidationError("invalid clothes id", map[string]any{"id": c.Params("id")})
	}
	return id, nil
}

func actorID(c *fiber.Ctx) int64 {
	if p, ok := auth.PrincipalFromContext(c.UserContext()); ok {
		return p.User.ID
	}
	return 0
}
