package domain

import (
	"errors"
	"fmt"
)

// Erros de domínio (sem dependências externas).
var (
	ErrNotFound            = errors.New("recurso não encontrado")
	ErrInvalidInput        = errors.New("entrada inválida")
	ErrDuplicate           = errors.New("recurso duplicado")
	ErrClienteNotFound     = errors.New("cliente não encontrado")
	ErrProdutoNotFound     = errors.New("produto não encontrado")
	ErrEstoqueInsuficiente = errors.New("estoque insuficiente")
)

// EstoqueInsuficienteError carrega o nome do produto e a quantidade disponível
// para compor a mensagem retornada ao chamador.
type EstoqueInsuficienteError struct {
	Produto    string
	Disponivel int
}

func (e *EstoqueInsuficienteError) Error() string {
	return fmt.Sprintf("Estoque insuficiente para %s. Disponível: %d", e.Produto, e.Disponivel)
}

// Unwrap permite errors.Is(err, ErrEstoqueInsuficiente).
func (e *EstoqueInsuficienteError) Unwrap() error {
	return ErrEstoqueInsuficiente
}
