package vendas

import (
	"time"

	"github.com/andrelmbraga/pacoca-api/internal/application/dto"
	"github.com/andrelmbraga/pacoca-api/internal/domain"
	"github.com/andrelmbraga/pacoca-api/internal/domain/entity"
	"github.com/andrelmbraga/pacoca-api/internal/domain/repository"
)

// VendaUseCase consultas e manutenção de vendas já criadas
// (listar, buscar, atualizar campos editáveis e excluir).
type VendaUseCase struct {
	vendaRepo   repository.VendaRepository
	clienteRepo repository.ClienteRepository
	produtoRepo repository.ProdutoRepository
}

// NewVendaUseCase constrói o caso de uso.
func NewVendaUseCase(
	vendaRepo repository.VendaRepository,
	clienteRepo repository.ClienteRepository,
	produtoRepo repository.ProdutoRepository,
) *VendaUseCase {
	return &VendaUseCase{
		vendaRepo:   vendaRepo,
		clienteRepo: clienteRepo,
		produtoRepo: produtoRepo,
	}
}

// List lista vendas (mais recentes primeiro) com a projeção completa.
func (uc *VendaUseCase) List(limit, offset int) ([]*dto.VendaResponse, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	lista, err := uc.vendaRepo.List(limit, offset)
	if err != nil {
		return nil, err
	}

	// Cache de clientes e produtos para não repetir lookups no mesmo listado.
	clientes := make(map[string]*entity.Cliente)
	produtos := make(map[string]*entity.Produto)
	out := make([]*dto.VendaResponse, 0, len(lista))
	for _, v := range lista {
		cliente, ok := clientes[v.ClienteID]
		if !ok {
			cliente, err = uc.clienteRepo.GetByID(v.ClienteID)
			if err != nil {
				return nil, err
			}
			clientes[v.ClienteID] = cliente
		}
		produto, ok := produtos[v.ProdutoID]
		if !ok {
			produto, err = uc.produtoRepo.GetByID(v.ProdutoID)
			if err != nil {
				return nil, err
			}
			produtos[v.ProdutoID] = produto
		}
		if cliente == nil || produto == nil {
			// FK com cascade garante as referências; linha órfã indica corrupção.
			return nil, domain.ErrNotFound
		}
		out = append(out, toVendaResponse(v, cliente, produto))
	}
	return out, nil
}

// GetByID busca uma venda com a projeção completa. Retorna nil, nil quando não existe.
func (uc *VendaUseCase) GetByID(id string) (*dto.VendaResponse, error) {
	venda, err := uc.vendaRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if venda == nil {
		return nil, nil
	}
	return uc.projetar(venda)
}

// Update atualiza quantidade, forma de pagamento e observações de uma venda.
// Quando a quantidade muda, o valor total é recalculado a partir do valor
// unitário gravado; o estoque não é reajustado.
func (uc *VendaUseCase) Update(id string, in dto.UpdateVendaRequest, now time.Time) (*dto.VendaResponse, error) {
	venda, err := uc.vendaRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if venda == nil {
		return nil, nil
	}
	if in.Quantidade != nil {
		if *in.Quantidade <= 0 {
			return nil, domain.ErrInvalidInput
		}
		venda.Quantidade = *in.Quantidade
		venda.ValorTotal = venda.ValorUnitario.Mul(decimalFromInt(venda.Quantidade))
	}
	if in.FormaPagamento != nil {
		venda.FormaPagamento = *in.FormaPagamento
	}
	if in.Observacoes != nil {
		venda.Observacoes = *in.Observacoes
	}
	venda.UpdatedAt = now
	if err := uc.vendaRepo.Update(venda); err != nil {
		return nil, err
	}
	return uc.projetar(venda)
}

// Delete exclui uma venda. O estoque não é devolvido.
func (uc *VendaUseCase) Delete(id string) error {
	venda, err := uc.vendaRepo.GetByID(id)
	if err != nil {
		return err
	}
	if venda == nil {
		return domain.ErrNotFound
	}
	return uc.vendaRepo.Delete(id)
}

func (uc *VendaUseCase) projetar(venda *entity.Venda) (*dto.VendaResponse, error) {
	cliente, err := uc.clienteRepo.GetByID(venda.ClienteID)
	if err != nil {
		return nil, err
	}
	produto, err := uc.produtoRepo.GetByID(venda.ProdutoID)
	if err != nil {
		return nil, err
	}
	if cliente == nil || produto == nil {
		return nil, domain.ErrNotFound
	}
	return toVendaResponse(venda, cliente, produto), nil
}
