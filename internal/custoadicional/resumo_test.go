package custoadicional

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResumoPorTipo_AgrupaESoma(t *testing.T) {
	custos := []CustoAdicional{
		{Tipo: TipoCombustivel, Valor: 50},
		{Tipo: TipoCombustivel, Valor: 30},
		{Tipo: TipoPedagio, Valor: 12.40},
	}

	resumo := ResumoPorTipo(custos)

	assert.InDelta(t, 80.0, resumo[TipoCombustivel], 1e-9)
	assert.InDelta(t, 12.40, resumo[TipoPedagio], 1e-9)
	assert.Len(t, resumo, 2)
}

func TestResumoPorTipo_OmiteTotalZero(t *testing.T) {
	// A omissão é pelo total somado, não pela contagem: um tipo cujas
	// linhas somam zero sai do resumo mesmo tendo linhas.
	custos := []CustoAdicional{
		{Tipo: TipoCombustivel, Valor: 80},
		{Tipo: TipoPedagio, Valor: 10},
		{Tipo: TipoPedagio, Valor: -10},
	}

	resumo := ResumoPorTipo(custos)

	_, temPedagio := resumo[TipoPedagio]
	assert.False(t, temPedagio)
	assert.InDelta(t, 80.0, resumo[TipoCombustivel], 1e-9)
}

func TestResumoPorTipo_Vazio(t *testing.T) {
	assert.Empty(t, ResumoPorTipo(nil))
}

func TestTipoValido(t *testing.T) {
	for _, tipo := range TiposValidos {
		assert.True(t, TipoValido(tipo), tipo)
	}
	assert.False(t, TipoValido("transporte"))
	assert.False(t, TipoValido(""))
}
