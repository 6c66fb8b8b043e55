package usecase_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrelmbraga/pacoca-api/internal/application/dto"
	"github.com/andrelmbraga/pacoca-api/internal/application/usecase"
	"github.com/andrelmbraga/pacoca-api/internal/domain"
	"github.com/andrelmbraga/pacoca-api/internal/domain/entity"
)

type fakeServicoRepo struct {
	servicos []*entity.Servico
}

func (r *fakeServicoRepo) Create(s *entity.Servico) error {
	r.servicos = append(r.servicos, s)
	return nil
}

func (r *fakeServicoRepo) GetByID(id string) (*entity.Servico, error) {
	for _, s := range r.servicos {
		if s.ID == id {
			cp := *s
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeServicoRepo) List() ([]*entity.Servico, error) { return r.servicos, nil }

func (r *fakeServicoRepo) Update(s *entity.Servico) error {
	for i, atual := range r.servicos {
		if atual.ID == s.ID {
			r.servicos[i] = s
		}
	}
	return nil
}

func (r *fakeServicoRepo) Delete(id string) error {
	for i, s := range r.servicos {
		if s.ID == id {
			r.servicos = append(r.servicos[:i], r.servicos[i+1:]...)
			return nil
		}
	}
	return nil
}

var instante = time.Date(2025, 6, 15, 10, 30, 0, 0, time.UTC)

func servico(id, nome string, valor float64) *entity.Servico {
	return &entity.Servico{ID: id, Nome: nome, Valor: decimal.NewFromFloat(valor)}
}

func TestEstatisticas_CalculaPorcentagens(t *testing.T) {
	repo := &fakeServicoRepo{servicos: []*entity.Servico{
		servico("s1", "Entrega", 30),
		servico("s2", "Encomenda", 50),
		servico("s3", "Degustação", 20),
	}}
	uc := usecase.NewServicoUseCase(repo)

	resp, err := uc.Estatisticas()
	require.NoError(t, err)

	assert.Equal(t, 3, resp.TotalServicos)
	assert.True(t, resp.ValorTotal.Equal(decimal.NewFromInt(100)))

	require.Len(t, resp.Dados, 3)
	assert.True(t, resp.Dados[0].Porcentagem.Equal(decimal.NewFromInt(30)))
	assert.True(t, resp.Dados[1].Porcentagem.Equal(decimal.NewFromInt(50)))
	assert.True(t, resp.Dados[2].Porcentagem.Equal(decimal.NewFromInt(20)))
}

func TestEstatisticas_ArredondaUmaCasaDecimal(t *testing.T) {
	// 1/3 do total: 33.333...% deve sair como 33.3
	repo := &fakeServicoRepo{servicos: []*entity.Servico{
		servico("s1", "Entrega", 10),
		servico("s2", "Encomenda", 10),
		servico("s3", "Degustação", 10),
	}}
	uc := usecase.NewServicoUseCase(repo)

	resp, err := uc.Estatisticas()
	require.NoError(t, err)

	for _, d := range resp.Dados {
		assert.True(t, d.Porcentagem.Equal(decimal.NewFromFloat(33.3)),
			"porcentagem deve ser arredondada a 1 casa decimal, veio %s", d.Porcentagem)
	}
}

func TestEstatisticas_SemServicos(t *testing.T) {
	uc := usecase.NewServicoUseCase(&fakeServicoRepo{})

	resp, err := uc.Estatisticas()
	require.NoError(t, err)

	assert.Equal(t, 0, resp.TotalServicos)
	assert.True(t, resp.ValorTotal.IsZero())
	assert.Empty(t, resp.Dados)
}

func TestEstatisticas_TotalZero_PorcentagemZero(t *testing.T) {
	repo := &fakeServicoRepo{servicos: []*entity.Servico{
		servico("s1", "Cortesia", 0),
	}}
	uc := usecase.NewServicoUseCase(repo)

	resp, err := uc.Estatisticas()
	require.NoError(t, err)

	require.Len(t, resp.Dados, 1)
	assert.True(t, resp.Dados[0].Porcentagem.IsZero(),
		"com valor total zero a porcentagem deve ser zero, não divisão por zero")
}

func TestServicoCreate_ValidaEntrada(t *testing.T) {
	uc := usecase.NewServicoUseCase(&fakeServicoRepo{})

	_, err := uc.Create(dto.CreateServicoRequest{Servico: ""}, instante)
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "nome vazio deve ser rejeitado")

	_, err = uc.Create(dto.CreateServicoRequest{
		Servico: "Entrega",
		Valor:   decimal.NewFromInt(-5),
	}, instante)
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "valor negativo deve ser rejeitado")
}

func TestServicoUpdate_AtualizaCampos(t *testing.T) {
	repo := &fakeServicoRepo{servicos: []*entity.Servico{
		servico("s1", "Entrega", 30),
	}}
	uc := usecase.NewServicoUseCase(repo)

	novoNome := "Entrega Expressa"
	novoValor := decimal.NewFromInt(45)
	resp, err := uc.Update("s1", dto.UpdateServicoRequest{
		Servico: &novoNome,
		Valor:   &novoValor,
	}, instante)
	require.NoError(t, err)
	require.NotNil(t, resp)

	assert.Equal(t, "Entrega Expressa", resp.Servico)
	assert.True(t, resp.Valor.Equal(novoValor))
}

func TestServicoDelete_NaoEncontrado(t *testing.T) {
	uc := usecase.NewServicoUseCase(&fakeServicoRepo{})
	err := uc.Delete("inexistente")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
