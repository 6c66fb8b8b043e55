package vendas_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrelmbraga/pacoca-api/internal/application/dto"
	"github.com/andrelmbraga/pacoca-api/internal/domain"
)

// ──────────────────────────────────────────────────────────────────────────────
// Consulta e manutenção de vendas já criadas
// ──────────────────────────────────────────────────────────────────────────────

func TestVendaGetByID_ProjecaoIdempotente(t *testing.T) {
	c := novoCenario(t)

	criada, err := c.uc.Create(context.Background(), agora, dto.CreateVendaRequest{
		ClienteID:     clienteID,
		ProdutoID:     produtoID,
		Quantidade:    3,
		ValorUnitario: decimal.NewFromFloat(2.50),
	})
	require.NoError(t, err)

	primeira, err := c.consulta.GetByID(criada.ID)
	require.NoError(t, err)
	require.NotNil(t, primeira)
	segunda, err := c.consulta.GetByID(criada.ID)
	require.NoError(t, err)

	assert.Equal(t, primeira, segunda,
		"buscar a mesma venda duas vezes deve devolver projeções idênticas")
	assert.Equal(t, criada, primeira,
		"a projeção da busca deve ser a mesma devolvida na criação")
	assert.Equal(t, "Maria Silva", primeira.Cliente.Nome)
	assert.True(t, primeira.ValorTotal.Equal(decimal.NewFromFloat(7.50)))
}

func TestVendaGetByID_NaoEncontrada(t *testing.T) {
	c := novoCenario(t)

	venda, err := c.consulta.GetByID("inexistente")
	require.NoError(t, err)
	assert.Nil(t, venda)
}

func TestVendaList_ProjetaClienteEProduto(t *testing.T) {
	c := novoCenario(t)

	_, err := c.uc.CreateBatch(context.Background(), agora, []dto.CreateVendaRequest{
		{ClienteID: clienteID, ProdutoID: produtoID, Quantidade: 1},
		{ClienteID: clienteID, ProdutoID: produto2ID, Quantidade: 2},
	})
	require.NoError(t, err)

	lista, err := c.consulta.List(20, 0)
	require.NoError(t, err)
	require.Len(t, lista, 2)

	for _, v := range lista {
		assert.Equal(t, "Maria Silva", v.Cliente.Nome,
			"cada item listado deve embutir o cliente")
		assert.NotEmpty(t, v.Produto.Nome,
			"cada item listado deve embutir o produto")
	}
}

func TestVendaUpdate_RecalculaTotalComValorUnitarioGravado(t *testing.T) {
	c := novoCenario(t)

	criada, err := c.uc.Create(context.Background(), agora, dto.CreateVendaRequest{
		ClienteID:     clienteID,
		ProdutoID:     produtoID,
		Quantidade:    3,
		ValorUnitario: decimal.NewFromFloat(2.50),
	})
	require.NoError(t, err)
	require.True(t, criada.ValorTotal.Equal(decimal.NewFromFloat(7.50)))

	novaQuantidade := 5
	atualizada, err := c.consulta.Update(criada.ID, dto.UpdateVendaRequest{
		Quantidade: &novaQuantidade,
	}, agora)
	require.NoError(t, err)
	require.NotNil(t, atualizada)

	assert.Equal(t, 5, atualizada.Quantidade)
	assert.True(t, atualizada.ValorUnitario.Equal(decimal.NewFromFloat(2.50)),
		"o valor unitário gravado não muda")
	assert.True(t, atualizada.ValorTotal.Equal(decimal.NewFromFloat(12.50)),
		"o total deve ser recalculado a partir do valor unitário gravado")
	assert.Equal(t, 7, c.produtos.produtos[produtoID].Estoque,
		"atualizar a venda não reajusta o estoque")

	relida, err := c.consulta.GetByID(criada.ID)
	require.NoError(t, err)
	assert.Equal(t, atualizada, relida,
		"a releitura deve refletir exatamente a venda atualizada")
}

func TestVendaUpdate_QuantidadeInvalida(t *testing.T) {
	c := novoCenario(t)

	criada, err := c.uc.Create(context.Background(), agora, dto.CreateVendaRequest{
		ClienteID: clienteID,
		ProdutoID: produtoID,
	})
	require.NoError(t, err)

	zero := 0
	_, err = c.consulta.Update(criada.ID, dto.UpdateVendaRequest{Quantidade: &zero}, agora)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestVendaUpdate_NaoEncontrada(t *testing.T) {
	c := novoCenario(t)

	pagamento := "Pix"
	venda, err := c.consulta.Update("inexistente", dto.UpdateVendaRequest{
		FormaPagamento: &pagamento,
	}, agora)
	require.NoError(t, err)
	assert.Nil(t, venda)
}

func TestVendaDelete_RemoveSemDevolverEstoque(t *testing.T) {
	c := novoCenario(t)

	criada, err := c.uc.Create(context.Background(), agora, dto.CreateVendaRequest{
		ClienteID:  clienteID,
		ProdutoID:  produtoID,
		Quantidade: 4,
	})
	require.NoError(t, err)
	require.Equal(t, 6, c.produtos.produtos[produtoID].Estoque)

	require.NoError(t, c.consulta.Delete(criada.ID))

	venda, err := c.consulta.GetByID(criada.ID)
	require.NoError(t, err)
	assert.Nil(t, venda, "a venda excluída não deve mais ser encontrada")
	assert.Equal(t, 6, c.produtos.produtos[produtoID].Estoque,
		"excluir a venda não devolve o estoque")

	assert.ErrorIs(t, c.consulta.Delete(criada.ID), domain.ErrNotFound)
}
