package http

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/andrelmbraga/pacoca-api/internal/application/dto"
	"github.com/andrelmbraga/pacoca-api/internal/application/usecase"
	"github.com/andrelmbraga/pacoca-api/internal/domain"
)

// ProdutoHandler maneja as requisições HTTP de produtos.
type ProdutoHandler struct {
	uc *usecase.ProdutoUseCase
}

// NewProdutoHandler constrói o handler.
func NewProdutoHandler(uc *usecase.ProdutoUseCase) *ProdutoHandler {
	return &ProdutoHandler{uc: uc}
}

// Create godoc
// @Summary      Criar produto
// @Tags         produtos
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateProdutoRequest  true  "Dados do produto"
// @Success      201  {object}  dto.ProdutoResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/produtos [post]
func (h *ProdutoHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateProdutoRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "Dados inválidos", Details: "corpo inválido"})
	}
	produto, err := h.uc.Create(in, time.Now())
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "Dados inválidos", Details: "nome é obrigatório e valores não podem ser negativos"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "erro interno"})
	}
	return c.Status(fiber.StatusCreated).JSON(produto)
}

// List GET /api/produtos?limit=20&offset=0. Somente produtos ativos.
func (h *ProdutoHandler) List(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", 20)
	offset := c.QueryInt("offset", 0)
	lista, err := h.uc.List(limit, offset)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "erro interno"})
	}
	return c.JSON(lista)
}

// GetByID GET /api/produtos/:id
func (h *ProdutoHandler) GetByID(c *fiber.Ctx) error {
	produto, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "erro interno"})
	}
	if produto == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: "produto não encontrado"})
	}
	return c.JSON(produto)
}

// Update PUT /api/produtos/:id
func (h *ProdutoHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateProdutoRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "Dados inválidos", Details: "corpo inválido"})
	}
	produto, err := h.uc.Update(c.Params("id"), in, time.Now())
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "Dados inválidos", Details: err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "erro interno"})
	}
	if produto == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: "produto não encontrado"})
	}
	return c.JSON(produto)
}

// Delete DELETE /api/produtos/:id. As vendas que o referenciam caem em cascata.
func (h *ProdutoHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: "produto não encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "erro interno"})
	}
	return c.SendStatus(fiber.StatusNoContent)
}
