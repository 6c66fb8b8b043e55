package vendas

import (
	"github.com/shopspring/decimal"

	"github.com/andrelmbraga/pacoca-api/internal/application/dto"
	"github.com/andrelmbraga/pacoca-api/internal/domain/entity"
)

func decimalFromInt(n int) decimal.Decimal {
	return decimal.NewFromInt(int64(n))
}

// toClienteResponse projeta o cliente para resposta.
func toClienteResponse(c *entity.Cliente) dto.ClienteResponse {
	return dto.ClienteResponse{
		ID:           c.ID,
		Nome:         c.Nome,
		Telefone:     c.Telefone,
		Email:        c.Email,
		Endereco:     c.Endereco,
		DataCadastro: c.DataCadastro.Format("2006-01-02"),
	}
}

// toProdutoResponse projeta o produto para resposta (sem preco_custo).
func toProdutoResponse(p *entity.Produto) dto.ProdutoResponse {
	return dto.ProdutoResponse{
		ID:         p.ID,
		Nome:       p.Nome,
		Descricao:  p.Descricao,
		PrecoVenda: p.PrecoVenda,
		Estoque:    p.Estoque,
		Categoria:  p.Categoria,
		Ativo:      p.Ativo,
	}
}

// toVendaResponse monta a projeção de leitura da venda com cliente e produto
// embutidos. Transformação pura, usada em toda resposta que retorna vendas.
func toVendaResponse(v *entity.Venda, cliente *entity.Cliente, produto *entity.Produto) *dto.VendaResponse {
	return &dto.VendaResponse{
		ID:             v.ID,
		DataVenda:      v.DataVenda,
		Cliente:        toClienteResponse(cliente),
		Produto:        toProdutoResponse(produto),
		Quantidade:     v.Quantidade,
		ValorUnitario:  v.ValorUnitario,
		ValorTotal:     v.ValorTotal,
		FormaPagamento: v.FormaPagamento,
		Observacoes:    v.Observacoes,
	}
}
