// internal/precificacao/calculadora.go
package precificacao

import "errors"

// ErrItemSemPreco é retornado quando o item não referencia um serviço do
// catálogo e também não recebeu preço manual.
var ErrItemSemPreco = errors.New("selecione um serviço do catálogo ou informe um preço manual")

// Calculadora carrega o estado de um item em edição: preço base vindo do
// catálogo, nível de dificuldade, quantidade e os valores derivados.
type Calculadora struct {
	ServicoID       *uint
	PrecoBase       float64
	Nivel           int
	Quantidade      float64
	PrecoUnitario   float64
	PrecoTotal      float64
	DuracaoEstimada int
}

// NovaCalculadora retorna o estado inicial do formulário de item:
// quantidade 1, dificuldade fácil, sem serviço selecionado.
func NovaCalculadora() Calculadora {
	return Calculadora{Nivel: NivelFacil, Quantidade: 1}
}

// SelecionarServico preenche preço base e duração a partir do catálogo e
// deriva o preço unitário pelo nível de dificuldade atual.
func (c *Calculadora) SelecionarServico(id uint, precoBase float64, duracaoMinutos int) {
	c.ServicoID = &id
	c.PrecoBase = precoBase
	c.DuracaoEstimada = duracaoMinutos
	c.PrecoUnitario = PrecoAjustado(precoBase, c.Nivel)
	c.PrecoTotal = c.PrecoUnitario * c.Quantidade
}

// DefinirDificuldade recalcula o preço unitário sempre a partir do preço
// base. Uma edição manual anterior do preço unitário é descartada.
func (c *Calculadora) DefinirDificuldade(nivel int) {
	c.Nivel = nivel
	c.PrecoUnitario = PrecoAjustado(c.PrecoBase, nivel)
	c.PrecoTotal = c.PrecoUnitario * c.Quantidade
}

// DefinirQuantidade atualiza o total sem mexer no preço unitário.
func (c *Calculadora) DefinirQuantidade(quantidade float64) {
	c.Quantidade = quantidade
	c.PrecoTotal = c.PrecoUnitario * quantidade
}

// DefinirPrecoUnitario aplica um preço manual, ignorando a derivação por
// dificuldade, e recalcula o total.
func (c *Calculadora) DefinirPrecoUnitario(preco float64) {
	c.PrecoUnitario = preco
	c.PrecoTotal = preco * c.Quantidade
}

// Validar exige um serviço do catálogo selecionado ou preço manual positivo.
func (c *Calculadora) Validar() error {
	if c.ServicoID == nil && c.PrecoUnitario <= 0 {
		return ErrItemSemPreco
	}
	return nil
}
