package precificacao

import (
	"errors"
	"testing"
)

func TestCalculadora_SelecionarServicoDerivaDoNivelAtual(t *testing.T) {
	c := NovaCalculadora()
	c.DefinirDificuldade(NivelMedio)
	c.DefinirQuantidade(3)
	c.SelecionarServico(10, 100.00, 60)

	quaseIgual(t, "preço unitário", c.PrecoUnitario, 120.00)
	quaseIgual(t, "preço total", c.PrecoTotal, 360.00)
	if c.DuracaoEstimada != 60 {
		t.Fatalf("duração = %d, esperado 60", c.DuracaoEstimada)
	}
}

func TestCalculadora_DificuldadeSempreRederivaDoPrecoBase(t *testing.T) {
	c := NovaCalculadora()
	c.SelecionarServico(10, 100.00, 30)
	c.DefinirPrecoUnitario(75.00)

	// Mudar a dificuldade descarta a edição manual.
	c.DefinirDificuldade(NivelDificil)
	quaseIgual(t, "preço unitário", c.PrecoUnitario, 150.00)

	// Idempotência: repetir com os mesmos argumentos não muda nada.
	c.DefinirDificuldade(NivelDificil)
	quaseIgual(t, "preço unitário repetido", c.PrecoUnitario, 150.00)
	quaseIgual(t, "total repetido", c.PrecoTotal, 150.00)
}

func TestCalculadora_PrecoManualSobreviveAMudancaDeQuantidade(t *testing.T) {
	c := NovaCalculadora()
	c.DefinirPrecoUnitario(75.00)
	c.DefinirQuantidade(4)

	quaseIgual(t, "preço unitário", c.PrecoUnitario, 75.00)
	quaseIgual(t, "preço total", c.PrecoTotal, 300.00)
}

func TestCalculadora_QuantidadeNaoMexeNoPrecoUnitario(t *testing.T) {
	c := NovaCalculadora()
	c.SelecionarServico(5, 50.00, 15)
	c.DefinirQuantidade(2)
	quaseIgual(t, "preço unitário", c.PrecoUnitario, 50.00)
	quaseIgual(t, "preço total", c.PrecoTotal, 100.00)
}

func TestCalculadora_Validar(t *testing.T) {
	c := NovaCalculadora()
	if err := c.Validar(); !errors.Is(err, ErrItemSemPreco) {
		t.Fatalf("esperado ErrItemSemPreco, obtido %v", err)
	}

	c.DefinirPrecoUnitario(10.00)
	if err := c.Validar(); err != nil {
		t.Fatalf("preço manual deveria validar, obtido %v", err)
	}

	c2 := NovaCalculadora()
	c2.SelecionarServico(1, 0, 0)
	if err := c2.Validar(); err != nil {
		t.Fatalf("serviço selecionado deveria validar, obtido %v", err)
	}
}
