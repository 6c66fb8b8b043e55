package vendas

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/andrelmbraga/pacoca-api/internal/application/dto"
	"github.com/andrelmbraga/pacoca-api/internal/domain"
	"github.com/andrelmbraga/pacoca-api/internal/domain/entity"
	"github.com/andrelmbraga/pacoca-api/internal/domain/repository"
)

// ErrosValidacao agrega as mensagens de todos os itens reprovados de um lote.
// O lote inteiro é rejeitado sem nenhuma mutação.
type ErrosValidacao struct {
	Detalhes []string
}

func (e *ErrosValidacao) Error() string {
	return fmt.Sprintf("erros de validação em %d item(ns)", len(e.Detalhes))
}

// CreateVendaUseCase cria vendas (unitária ou carrinho) e decrementa o estoque
// do produto dentro de uma única transação.
type CreateVendaUseCase struct {
	txRunner    TxRunner
	clienteRepo repository.ClienteRepository
	produtoRepo repository.ProdutoRepository
}

// NewCreateVendaUseCase constrói o caso de uso.
func NewCreateVendaUseCase(
	txRunner TxRunner,
	clienteRepo repository.ClienteRepository,
	produtoRepo repository.ProdutoRepository,
) *CreateVendaUseCase {
	return &CreateVendaUseCase{
		txRunner:    txRunner,
		clienteRepo: clienteRepo,
		produtoRepo: produtoRepo,
	}
}

// linhaValidada item aprovado na validação, com as entidades já resolvidas.
type linhaValidada struct {
	in      dto.CreateVendaRequest
	cliente *entity.Cliente
	produto *entity.Produto
}

// normalizar aplica os defaults de um item: quantidade 1 e pagamento em dinheiro.
func normalizar(in dto.CreateVendaRequest) dto.CreateVendaRequest {
	if in.Quantidade == 0 {
		in.Quantidade = 1
	}
	if in.FormaPagamento == "" {
		in.FormaPagamento = entity.FormaPagamentoPadrao
	}
	return in
}

// validar checa um item contra o estado atual, sem efeitos colaterais:
// referências de cliente e produto resolvem, quantidade positiva, valores não negativos.
// A suficiência de estoque é checada pelo chamador, que conhece o saldo a considerar.
func (uc *CreateVendaUseCase) validar(in dto.CreateVendaRequest) (*linhaValidada, error) {
	if in.ClienteID == "" || in.ProdutoID == "" || in.Quantidade <= 0 {
		return nil, domain.ErrInvalidInput
	}
	if in.ValorUnitario.IsNegative() || in.ValorTotal.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	cliente, err := uc.clienteRepo.GetByID(in.ClienteID)
	if err != nil {
		return nil, err
	}
	if cliente == nil {
		return nil, domain.ErrClienteNotFound
	}
	produto, err := uc.produtoRepo.GetByID(in.ProdutoID)
	if err != nil {
		return nil, err
	}
	if produto == nil {
		return nil, domain.ErrProdutoNotFound
	}
	return &linhaValidada{in: in, cliente: cliente, produto: produto}, nil
}

// Create cria uma única venda. Valida antes de qualquer mutação; em caso de
// sucesso decrementa o estoque, calcula os valores e insere a venda na mesma
// transação. now é injetado pelo chamador para manter o processador determinístico.
func (uc *CreateVendaUseCase) Create(ctx context.Context, now time.Time, in dto.CreateVendaRequest) (*dto.VendaResponse, error) {
	in = normalizar(in)
	l, err := uc.validar(in)
	if err != nil {
		return nil, err
	}
	if l.produto.Estoque < l.in.Quantidade {
		return nil, &domain.EstoqueInsuficienteError{Produto: l.produto.Nome, Disponivel: l.produto.Estoque}
	}

	var resp *dto.VendaResponse
	err = uc.txRunner.Run(ctx, func(
		produtoRepo repository.ProdutoRepository,
		vendaRepo repository.VendaRepository,
	) error {
		r, err := uc.processar(produtoRepo, vendaRepo, l, now)
		if err != nil {
			return err
		}
		resp = r
		return nil
	})
	if err != nil {
		return nil, err
	}
	return resp, nil
}

// CreateBatch cria as vendas de um carrinho em duas fases:
//  1. valida todos os itens sem mutação, acumulando as falhas de todos eles.
//     O saldo considerado é um restante por produto que desconta os itens
//     anteriores do mesmo lote, então duas linhas do mesmo produto não podem
//     vender além do estoque somadas.
//  2. se todos passaram, processa cada item em uma única transação; qualquer
//     falha de persistência desfaz o lote inteiro.
func (uc *CreateVendaUseCase) CreateBatch(ctx context.Context, now time.Time, itens []dto.CreateVendaRequest) ([]*dto.VendaResponse, error) {
	if len(itens) == 0 {
		return nil, domain.ErrInvalidInput
	}

	linhas := make([]*linhaValidada, 0, len(itens))
	restante := make(map[string]int)
	var detalhes []string
	for i, in := range itens {
		in = normalizar(in)
		l, err := uc.validar(in)
		if err != nil {
			detalhes = append(detalhes, fmt.Sprintf("Item %d: %s", i+1, err.Error()))
			continue
		}
		disp, visto := restante[l.produto.ID]
		if !visto {
			disp = l.produto.Estoque
		}
		if disp < l.in.Quantidade {
			stockErr := &domain.EstoqueInsuficienteError{Produto: l.produto.Nome, Disponivel: disp}
			detalhes = append(detalhes, fmt.Sprintf("Item %d: %s", i+1, stockErr.Error()))
			continue
		}
		restante[l.produto.ID] = disp - l.in.Quantidade
		linhas = append(linhas, l)
	}
	if len(detalhes) > 0 {
		return nil, &ErrosValidacao{Detalhes: detalhes}
	}

	criadas := make([]*dto.VendaResponse, 0, len(linhas))
	err := uc.txRunner.Run(ctx, func(
		produtoRepo repository.ProdutoRepository,
		vendaRepo repository.VendaRepository,
	) error {
		for _, l := range linhas {
			r, err := uc.processar(produtoRepo, vendaRepo, l, now)
			if err != nil {
				return err
			}
			criadas = append(criadas, r)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return criadas, nil
}

// processar executa um item dentro da transação: bloqueia a linha do produto
// (SELECT FOR UPDATE), reconfere o estoque, decrementa, calcula valor unitário
// e total quando não informados e insere a venda.
func (uc *CreateVendaUseCase) processar(
	produtoRepo repository.ProdutoRepository,
	vendaRepo repository.VendaRepository,
	l *linhaValidada,
	now time.Time,
) (*dto.VendaResponse, error) {
	produto, err := produtoRepo.GetByIDForUpdate(l.in.ProdutoID)
	if err != nil {
		return nil, err
	}
	if produto == nil {
		return nil, domain.ErrProdutoNotFound
	}
	// Reconferência sob lock: um escritor concorrente pode ter consumido o
	// estoque entre a validação e o começo da transação.
	if produto.Estoque < l.in.Quantidade {
		return nil, &domain.EstoqueInsuficienteError{Produto: produto.Nome, Disponivel: produto.Estoque}
	}
	produto.Estoque -= l.in.Quantidade
	if err := produtoRepo.UpdateEstoque(produto.ID, produto.Estoque); err != nil {
		return nil, err
	}

	valorUnitario := l.in.ValorUnitario
	if valorUnitario.IsZero() {
		valorUnitario = produto.PrecoVenda
	}
	valorTotal := l.in.ValorTotal
	if valorTotal.IsZero() {
		valorTotal = valorUnitario.Mul(decimal.NewFromInt(int64(l.in.Quantidade)))
	}

	venda := &entity.Venda{
		ID:             uuid.New().String(),
		DataVenda:      now,
		ClienteID:      l.cliente.ID,
		ProdutoID:      produto.ID,
		Quantidade:     l.in.Quantidade,
		ValorUnitario:  valorUnitario,
		ValorTotal:     valorTotal,
		FormaPagamento: l.in.FormaPagamento,
		Observacoes:    l.in.Observacoes,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := vendaRepo.Create(venda); err != nil {
		return nil, err
	}
	return toVendaResponse(venda, l.cliente, produto), nil
}
