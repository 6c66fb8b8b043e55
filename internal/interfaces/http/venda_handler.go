package http

import (
	"bytes"
	"encoding/json"
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/andrelmbraga/pacoca-api/internal/application/dto"
	"github.com/andrelmbraga/pacoca-api/internal/application/vendas"
	"github.com/andrelmbraga/pacoca-api/internal/domain"
)

// VendaHandler maneja as requisições HTTP de vendas.
type VendaHandler struct {
	createUC *vendas.CreateVendaUseCase
	uc       *vendas.VendaUseCase
}

// NewVendaHandler constrói o handler.
func NewVendaHandler(createUC *vendas.CreateVendaUseCase, uc *vendas.VendaUseCase) *VendaHandler {
	return &VendaHandler{createUC: createUC, uc: uc}
}

// Create godoc
// @Summary      Criar venda(s)
// @Description  Aceita um objeto de venda ou uma lista (carrinho). O lote é todo-ou-nada.
// @Tags         vendas
// @Accept       json
// @Produce      json
// @Success      201  {object}  dto.VendaResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/vendas [post]
func (h *VendaHandler) Create(c *fiber.Ctx) error {
	body := bytes.TrimSpace(c.Body())
	now := time.Now()

	// Corpo começando com '[' é um carrinho; senão, venda unitária.
	if len(body) > 0 && body[0] == '[' {
		var itens []dto.CreateVendaRequest
		if err := json.Unmarshal(body, &itens); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "Dados inválidos", Details: "corpo inválido"})
		}
		criadas, err := h.createUC.CreateBatch(c.Context(), now, itens)
		if err != nil {
			return vendaError(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(criadas)
	}

	var in dto.CreateVendaRequest
	if err := json.Unmarshal(body, &in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "Dados inválidos", Details: "corpo inválido"})
	}
	venda, err := h.createUC.Create(c.Context(), now, in)
	if err != nil {
		return vendaError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(venda)
}

// vendaError mapeia os erros da criação de vendas para o corpo HTTP.
func vendaError(c *fiber.Ctx, err error) error {
	var lote *vendas.ErrosValidacao
	if errors.As(err, &lote) {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "Erros de validação", Details: lote.Detalhes})
	}
	var estoque *domain.EstoqueInsuficienteError
	if errors.As(err, &estoque) {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: estoque.Error()})
	}
	if errors.Is(err, domain.ErrInvalidInput) || errors.Is(err, domain.ErrClienteNotFound) || errors.Is(err, domain.ErrProdutoNotFound) {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "Dados inválidos", Details: err.Error()})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "erro interno"})
}

// List godoc
// @Summary      Listar vendas (mais recentes primeiro)
// @Tags         vendas
// @Produce      json
// @Param        limit   query  int  false  "Limite"  default(20)
// @Param        offset  query  int  false  "Offset"  default(0)
// @Success      200  {array}  dto.VendaResponse
// @Router       /api/vendas [get]
func (h *VendaHandler) List(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", 20)
	offset := c.QueryInt("offset", 0)
	lista, err := h.uc.List(limit, offset)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "erro interno"})
	}
	return c.JSON(lista)
}

// GetByID godoc
// @Summary      Obter venda por ID
// @Tags         vendas
// @Produce      json
// @Param        id  path  string  true  "ID da venda"
// @Success      200  {object}  dto.VendaResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/vendas/{id} [get]
func (h *VendaHandler) GetByID(c *fiber.Ctx) error {
	venda, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "erro interno"})
	}
	if venda == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: "venda não encontrada"})
	}
	return c.JSON(venda)
}

// Update godoc
// @Summary      Atualizar venda (quantidade, pagamento, observações)
// @Tags         vendas
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID da venda"
// @Param        body  body  dto.UpdateVendaRequest  true  "Campos a atualizar"
// @Success      200  {object}  dto.VendaResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/vendas/{id} [put]
func (h *VendaHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateVendaRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "Dados inválidos", Details: "corpo inválido"})
	}
	venda, err := h.uc.Update(c.Params("id"), in, time.Now())
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "Dados inválidos", Details: err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "erro interno"})
	}
	if venda == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: "venda não encontrada"})
	}
	return c.JSON(venda)
}

// Delete godoc
// @Summary      Excluir venda
// @Tags         vendas
// @Param        id  path  string  true  "ID da venda"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/vendas/{id} [delete]
func (h *VendaHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: "venda não encontrada"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "erro interno"})
	}
	return c.SendStatus(fiber.StatusNoContent)
}
