package http

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/andrelmbraga/pacoca-api/internal/application/dto"
	"github.com/andrelmbraga/pacoca-api/internal/application/usecase"
	"github.com/andrelmbraga/pacoca-api/internal/domain"
)

// ServicoHandler maneja as requisições HTTP de serviços.
type ServicoHandler struct {
	uc *usecase.ServicoUseCase
}

// NewServicoHandler constrói o handler.
func NewServicoHandler(uc *usecase.ServicoUseCase) *ServicoHandler {
	return &ServicoHandler{uc: uc}
}

// Create POST /api/servicos
func (h *ServicoHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateServicoRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "Dados inválidos", Details: "corpo inválido"})
	}
	servico, err := h.uc.Create(in, time.Now())
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "Dados inválidos", Details: "servico é obrigatório e valor não pode ser negativo"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "erro interno"})
	}
	return c.Status(fiber.StatusCreated).JSON(servico)
}

// List GET /api/servicos
func (h *ServicoHandler) List(c *fiber.Ctx) error {
	lista, err := h.uc.List()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "erro interno"})
	}
	return c.JSON(lista)
}

// Estatisticas godoc
// @Summary      Participação de cada serviço no valor total
// @Tags         servicos
// @Produce      json
// @Success      200  {object}  dto.EstatisticasResponse
// @Router       /api/servicos/estatisticas [get]
func (h *ServicoHandler) Estatisticas(c *fiber.Ctx) error {
	relatorio, err := h.uc.Estatisticas()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "erro interno"})
	}
	return c.JSON(relatorio)
}

// GetByID GET /api/servicos/:id
func (h *ServicoHandler) GetByID(c *fiber.Ctx) error {
	servico, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "erro interno"})
	}
	if servico == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: "serviço não encontrado"})
	}
	return c.JSON(servico)
}

// Update PUT /api/servicos/:id
func (h *ServicoHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateServicoRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "Dados inválidos", Details: "corpo inválido"})
	}
	servico, err := h.uc.Update(c.Params("id"), in, time.Now())
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "Dados inválidos", Details: err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "erro interno"})
	}
	if servico == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: "serviço não encontrado"})
	}
	return c.JSON(servico)
}

// Delete DELETE /api/servicos/:id
func (h *ServicoHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: "serviço não encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "erro interno"})
	}
	return c.SendStatus(fiber.StatusNoContent)
}
