package http_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrelmbraga/pacoca-api/internal/application/usecase"
	"github.com/andrelmbraga/pacoca-api/internal/application/vendas"
	"github.com/andrelmbraga/pacoca-api/internal/domain/entity"
	"github.com/andrelmbraga/pacoca-api/internal/domain/repository"
	apphttp "github.com/andrelmbraga/pacoca-api/internal/interfaces/http"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes em memória e montagem da aplicação
// ──────────────────────────────────────────────────────────────────────────────

const (
	clienteID = "11111111-1111-1111-1111-111111111111"
	produtoID = "22222222-2222-2222-2222-222222222222"
)

type memClienteRepo struct{ clientes map[string]*entity.Cliente }

func (r *memClienteRepo) Create(c *entity.Cliente) error { r.clientes[c.ID] = c; return nil }
func (r *memClienteRepo) GetByID(id string) (*entity.Cliente, error) {
	c, ok := r.clientes[id]
	if !ok {
		return nil, nil
	}
	cp := *c
	return &cp, nil
}
func (r *memClienteRepo) List(limit, offset int) ([]*entity.Cliente, error) {
	out := make([]*entity.Cliente, 0, len(r.clientes))
	for _, c := range r.clientes {
		out = append(out, c)
	}
	return out, nil
}
func (r *memClienteRepo) Update(c *entity.Cliente) error { r.clientes[c.ID] = c; return nil }
func (r *memClienteRepo) Delete(id string) error         { delete(r.clientes, id); return nil }

type memProdutoRepo struct{ produtos map[string]*entity.Produto }

func (r *memProdutoRepo) Create(p *entity.Produto) error { r.produtos[p.ID] = p; return nil }
func (r *memProdutoRepo) GetByID(id string) (*entity.Produto, error) {
	p, ok := r.produtos[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}
func (r *memProdutoRepo) GetByIDForUpdate(id string) (*entity.Produto, error) { return r.GetByID(id) }
func (r *memProdutoRepo) ListAtivos(limit, offset int) ([]*entity.Produto, error) {
	out := make([]*entity.Produto, 0, len(r.produtos))
	for _, p := range r.produtos {
		if p.Ativo {
			out = append(out, p)
		}
	}
	return out, nil
}
func (r *memProdutoRepo) Update(p *entity.Produto) error { r.produtos[p.ID] = p; return nil }
func (r *memProdutoRepo) UpdateEstoque(id string, estoque int) error {
	if p, ok := r.produtos[id]; ok {
		p.Estoque = estoque
	}
	return nil
}
func (r *memProdutoRepo) Delete(id string) error { delete(r.produtos, id); return nil }

type memServicoRepo struct{ servicos []*entity.Servico }

func (r *memServicoRepo) Create(s *entity.Servico) error {
	r.servicos = append(r.servicos, s)
	return nil
}
func (r *memServicoRepo) GetByID(id string) (*entity.Servico, error) {
	for _, s := range r.servicos {
		if s.ID == id {
			cp := *s
			return &cp, nil
		}
	}
	return nil, nil
}
func (r *memServicoRepo) List() ([]*entity.Servico, error) { return r.servicos, nil }
func (r *memServicoRepo) Update(s *entity.Servico) error   { return nil }
func (r *memServicoRepo) Delete(id string) error           { return nil }

type memVendaRepo struct{ vendas []*entity.Venda }

func (r *memVendaRepo) Create(v *entity.Venda) error { r.vendas = append(r.vendas, v); return nil }
func (r *memVendaRepo) GetByID(id string) (*entity.Venda, error) {
	for _, v := range r.vendas {
		if v.ID == id {
			cp := *v
			return &cp, nil
		}
	}
	return nil, nil
}
func (r *memVendaRepo) List(limit, offset int) ([]*entity.Venda, error) { return r.vendas, nil }
func (r *memVendaRepo) Update(v *entity.Venda) error                    { return nil }
func (r *memVendaRepo) Delete(id string) error                          { return nil }

type memTxRunner struct {
	produtos *memProdutoRepo
	vendas   *memVendaRepo
}

func (tx *memTxRunner) Run(ctx context.Context, fn func(
	produtoRepo repository.ProdutoRepository,
	vendaRepo repository.VendaRepository,
) error) error {
	return fn(tx.produtos, tx.vendas)
}

// buildApp monta a aplicação Fiber completa sobre repositórios em memória,
// com um cliente e um produto (estoque 10) pré-carregados.
func buildApp(t *testing.T) (*fiber.App, *memProdutoRepo) {
	t.Helper()

	clienteRepo := &memClienteRepo{clientes: map[string]*entity.Cliente{
		clienteID: {ID: clienteID, Nome: "Maria Silva"},
	}}
	produtoRepo := &memProdutoRepo{produtos: map[string]*entity.Produto{
		produtoID: {
			ID:         produtoID,
			Nome:       "Paçoca Rolha",
			PrecoCusto: decimal.NewFromFloat(1.00),
			PrecoVenda: decimal.NewFromFloat(2.50),
			Estoque:    10,
			Categoria:  "Paçoca",
			Ativo:      true,
		},
	}}
	servicoRepo := &memServicoRepo{servicos: []*entity.Servico{
		{ID: "s1", Nome: "Entrega", Valor: decimal.NewFromInt(30)},
		{ID: "s2", Nome: "Encomenda", Valor: decimal.NewFromInt(70)},
	}}
	vendaRepo := &memVendaRepo{}
	tx := &memTxRunner{produtos: produtoRepo, vendas: vendaRepo}

	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		ClienteUC:   usecase.NewClienteUseCase(clienteRepo),
		ProdutoUC:   usecase.NewProdutoUseCase(produtoRepo),
		ServicoUC:   usecase.NewServicoUseCase(servicoRepo),
		CreateVenda: vendas.NewCreateVendaUseCase(tx, clienteRepo, produtoRepo),
		VendaUC:     vendas.NewVendaUseCase(vendaRepo, clienteRepo, produtoRepo),
	})
	return app, produtoRepo
}

func postJSON(t *testing.T, app *fiber.App, path, body string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decodeBody(t *testing.T, resp *http.Response, out any) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
}

// ──────────────────────────────────────────────────────────────────────────────
// POST /api/vendas: objeto único e carrinho
// ──────────────────────────────────────────────────────────────────────────────

func TestPostVenda_ObjetoUnico_Retorna201(t *testing.T) {
	app, produtos := buildApp(t)

	resp := postJSON(t, app, "/api/vendas",
		`{"cliente":"`+clienteID+`","produto":"`+produtoID+`","quantidade":2}`)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	var body map[string]any
	decodeBody(t, resp, &body)

	assert.Equal(t, float64(2), body["quantidade"])
	assert.Equal(t, "Dinheiro", body["forma_pagamento"],
		"forma de pagamento omitida deve assumir Dinheiro")

	cliente, ok := body["cliente"].(map[string]any)
	require.True(t, ok, "a resposta deve embutir o cliente como objeto")
	assert.Equal(t, "Maria Silva", cliente["nome"])

	produto, ok := body["produto"].(map[string]any)
	require.True(t, ok, "a resposta deve embutir o produto como objeto")
	assert.Equal(t, "Paçoca Rolha", produto["nome"])
	_, temPrecoCusto := produto["preco_custo"]
	assert.False(t, temPrecoCusto, "preco_custo não deve vazar na resposta")

	assert.Equal(t, 8, produtos.produtos[produtoID].Estoque)
}

func TestPostVenda_Carrinho_Retorna201ComLista(t *testing.T) {
	app, produtos := buildApp(t)

	resp := postJSON(t, app, "/api/vendas",
		`[{"cliente":"`+clienteID+`","produto":"`+produtoID+`","quantidade":2},
		  {"cliente":"`+clienteID+`","produto":"`+produtoID+`","quantidade":3}]`)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	var body []map[string]any
	decodeBody(t, resp, &body)
	require.Len(t, body, 2)

	assert.Equal(t, 5, produtos.produtos[produtoID].Estoque,
		"o carrinho inteiro deve descontar o estoque")
}

func TestPostVenda_CarrinhoComErros_Retorna400Agregado(t *testing.T) {
	app, produtos := buildApp(t)

	resp := postJSON(t, app, "/api/vendas",
		`[{"cliente":"`+clienteID+`","produto":"inexistente","quantidade":1},
		  {"cliente":"`+clienteID+`","produto":"`+produtoID+`","quantidade":99}]`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var body struct {
		Error   string   `json:"error"`
		Details []string `json:"details"`
	}
	decodeBody(t, resp, &body)

	assert.Equal(t, "Erros de validação", body.Error)
	require.Len(t, body.Details, 2)
	assert.Contains(t, body.Details[0], "Item 1:")
	assert.Contains(t, body.Details[1], "Item 2: Estoque insuficiente para Paçoca Rolha. Disponível: 10")

	assert.Equal(t, 10, produtos.produtos[produtoID].Estoque,
		"lote reprovado não pode mexer no estoque")
}

func TestPostVenda_EstoqueInsuficiente_Retorna400(t *testing.T) {
	app, _ := buildApp(t)

	resp := postJSON(t, app, "/api/vendas",
		`{"cliente":"`+clienteID+`","produto":"`+produtoID+`","quantidade":11}`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var body map[string]any
	decodeBody(t, resp, &body)
	assert.Equal(t, "Estoque insuficiente para Paçoca Rolha. Disponível: 10", body["error"])
}

func TestPostVenda_CorpoInvalido_Retorna400(t *testing.T) {
	app, _ := buildApp(t)

	resp := postJSON(t, app, "/api/vendas", `{invalido`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

// ──────────────────────────────────────────────────────────────────────────────
// GET /api/vendas e /api/servicos/estatisticas
// ──────────────────────────────────────────────────────────────────────────────

func TestGetVenda_NaoEncontrada_Retorna404(t *testing.T) {
	app, _ := buildApp(t)

	req := httptest.NewRequest(http.MethodGet, "/api/vendas/inexistente", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestGetEstatisticas_RetornaRelatorio(t *testing.T) {
	app, _ := buildApp(t)

	req := httptest.NewRequest(http.MethodGet, "/api/servicos/estatisticas", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, resp.StatusCode,
		"a rota de estatísticas não pode ser capturada pelo parâmetro :id")

	var body struct {
		Dados []struct {
			Servico     string          `json:"servico"`
			Porcentagem decimal.Decimal `json:"porcentagem"`
		} `json:"dados"`
		TotalServicos int             `json:"total_servicos"`
		ValorTotal    decimal.Decimal `json:"valor_total"`
	}
	decodeBody(t, resp, &body)

	assert.Equal(t, 2, body.TotalServicos)
	assert.True(t, body.ValorTotal.Equal(decimal.NewFromInt(100)))
	require.Len(t, body.Dados, 2)
	assert.True(t, body.Dados[0].Porcentagem.Equal(decimal.NewFromInt(30)))
	assert.True(t, body.Dados[1].Porcentagem.Equal(decimal.NewFromInt(70)))
}
