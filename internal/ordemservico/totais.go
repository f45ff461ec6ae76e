// internal/ordemservico/totais.go
package ordemservico

import (
	"github.com/CampoGestor/api-os/internal/custoadicional"
	"github.com/CampoGestor/api-os/internal/itemordem"
	"github.com/CampoGestor/api-os/internal/materialordem"
)

// Totais é a visão agregada de uma ordem. Derivada, nunca persistida: como
// é sempre recalculada a partir das linhas, não tem como divergir delas.
type Totais struct {
	TotalItens       float64 `json:"totalItens"`
	CustoMateriais   float64 `json:"custoMateriais"`
	VendaMateriais   float64 `json:"vendaMateriais"`
	CustosAdicionais float64 `json:"custosAdicionais"`
	ValorOrdem       float64 `json:"valorOrdem"`
	CustoOrdem       float64 `json:"custoOrdem"`
	Lucro            float64 `json:"lucro"`
}

// CalcularTotais soma as três coleções de uma ordem. Somas simples, o
// resultado independe da ordem de iteração das linhas.
func CalcularTotais(itens []itemordem.ItemOrdem, materiais []materialordem.MaterialOrdem, custos []custoadicional.CustoAdicional) Totais {
	var t Totais

	for _, item := range itens {
		t.TotalItens += item.PrecoTotal
	}
	for _, m := range materiais {
		t.CustoMateriais += m.CustoTotal
		t.VendaMateriais += m.PrecoVendaTotal
	}
	for _, c := range custos {
		t.CustosAdicionais += c.Valor
	}

	// Materiais entram no valor da ordem pelo preço de venda e no custo
	// pelo custo de aquisição.
	t.ValorOrdem = t.TotalItens + t.VendaMateriais
	t.CustoOrdem = t.CustoMateriais + t.CustosAdicionais
	t.Lucro = t.ValorOrdem - t.CustoOrdem
	return t
}
