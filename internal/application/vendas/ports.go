package vendas

import (
	"context"

	"github.com/andrelmbraga/pacoca-api/internal/domain/repository"
)

// TxRunner executa uma função dentro de uma transação de BD, passando repositórios
// atados a essa transação. Garante atomicidade para a criação de vendas:
// ou todos os decrementos de estoque e inserções acontecem, ou nenhum.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		produtoRepo repository.ProdutoRepository,
		vendaRepo repository.VendaRepository,
	) error) error
}
