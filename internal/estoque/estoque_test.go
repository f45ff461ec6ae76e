package estoque

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAplicarBaixa_NuncaFicaNegativo(t *testing.T) {
	assert.Equal(t, 7.0, AplicarBaixa(10, 3))
	assert.Equal(t, 0.0, AplicarBaixa(10, 10))
	// Baixa maior que o saldo trava em zero, sem erro.
	assert.Equal(t, 0.0, AplicarBaixa(5, 8))
	assert.Equal(t, 0.0, AplicarBaixa(0, 1))
}

func TestAplicarBaixa_SequenciaDeBaixas(t *testing.T) {
	// Para qualquer sequência de baixas a partir de S, o saldo final é
	// max(0, S - soma das baixas).
	saldo := 20.0
	baixas := []float64{5, 5, 5, 5, 5, 5}
	for _, b := range baixas {
		saldo = AplicarBaixa(saldo, b)
	}
	assert.Equal(t, 0.0, saldo)

	saldo = 100.0
	for _, b := range []float64{10, 20, 30} {
		saldo = AplicarBaixa(saldo, b)
	}
	assert.Equal(t, 40.0, saldo)
}

func TestAbaixoDoMinimo(t *testing.T) {
	casos := []struct {
		nome     string
		material Material
		esperado bool
	}{
		{"igual ao mínimo alerta", Material{Ativo: true, Quantidade: 5, QuantidadeMinima: 5}, true},
		{"abaixo do mínimo alerta", Material{Ativo: true, Quantidade: 2, QuantidadeMinima: 5}, true},
		{"acima do mínimo não alerta", Material{Ativo: true, Quantidade: 10, QuantidadeMinima: 5}, false},
		{"inativo nunca alerta", Material{Ativo: false, Quantidade: 0, QuantidadeMinima: 5}, false},
	}
	for _, c := range casos {
		t.Run(c.nome, func(t *testing.T) {
			assert.Equal(t, c.esperado, c.material.AbaixoDoMinimo())
		})
	}
}
