package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/andrelmbraga/pacoca-api/internal/application/usecase"
	"github.com/andrelmbraga/pacoca-api/internal/application/vendas"
)

// RouterDeps dependências para o router.
type RouterDeps struct {
	ClienteUC   *usecase.ClienteUseCase
	ProdutoUC   *usecase.ProdutoUseCase
	ServicoUC   *usecase.ServicoUseCase
	CreateVenda *vendas.CreateVendaUseCase
	VendaUC     *vendas.VendaUseCase
}

// Router registra as rotas da API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	clientes := api.Group("/clientes")
	clienteHandler := NewClienteHandler(deps.ClienteUC)
	clientes.Post("/", clienteHandler.Create)
	clientes.Get("/", clienteHandler.List)
	clientes.Get("/:id", clienteHandler.GetByID)
	clientes.Put("/:id", clienteHandler.Update)
	clientes.Delete("/:id", clienteHandler.Delete)

	produtos := api.Group("/produtos")
	produtoHandler := NewProdutoHandler(deps.ProdutoUC)
	produtos.Post("/", produtoHandler.Create)
	produtos.Get("/", produtoHandler.List)
	produtos.Get("/:id", produtoHandler.GetByID)
	produtos.Put("/:id", produtoHandler.Update)
	produtos.Delete("/:id", produtoHandler.Delete)

	servicos := api.Group("/servicos")
	servicoHandler := NewServicoHandler(deps.ServicoUC)
	servicos.Post("/", servicoHandler.Create)
	servicos.Get("/", servicoHandler.List)
	// registrada antes de :id para não ser capturada como parâmetro
	servicos.Get("/estatisticas", servicoHandler.Estatisticas)
	servicos.Get("/:id", servicoHandler.GetByID)
	servicos.Put("/:id", servicoHandler.Update)
	servicos.Delete("/:id", servicoHandler.Delete)

	vendasGroup := api.Group("/vendas")
	vendaHandler := NewVendaHandler(deps.CreateVenda, deps.VendaUC)
	vendasGroup.Post("/", vendaHandler.Create)
	vendasGroup.Get("/", vendaHandler.List)
	vendasGroup.Get("/:id", vendaHandler.GetByID)
	vendasGroup.Put("/:id", vendaHandler.Update)
	vendasGroup.Delete("/:id", vendaHandler.Delete)
}
