package precificacao

import (
	"math"
	"testing"
)

func quaseIgual(t *testing.T, nome string, obtido, esperado float64) {
	t.Helper()
	if math.Abs(obtido-esperado) > 1e-9 {
		t.Fatalf("%s = %v, esperado %v", nome, obtido, esperado)
	}
}

func TestMultiplicador_NiveisConhecidos(t *testing.T) {
	quaseIgual(t, "nivel 1", Multiplicador(NivelFacil), 1.00)
	quaseIgual(t, "nivel 2", Multiplicador(NivelMedio), 1.20)
	quaseIgual(t, "nivel 3", Multiplicador(NivelDificil), 1.50)
}

func TestMultiplicador_NivelDesconhecidoCaiNoFacil(t *testing.T) {
	for _, nivel := range []int{0, -1, 4, 99} {
		quaseIgual(t, "nivel desconhecido", Multiplicador(nivel), 1.00)
	}
}

func TestPrecoAjustado(t *testing.T) {
	quaseIgual(t, "base 100 nivel 2", PrecoAjustado(100.00, NivelMedio), 120.00)
	quaseIgual(t, "base 100 nivel 3", PrecoAjustado(100.00, NivelDificil), 150.00)
	quaseIgual(t, "base 0", PrecoAjustado(0, NivelDificil), 0)
	quaseIgual(t, "nivel invalido", PrecoAjustado(80.00, 7), 80.00)
}

func TestRotulo(t *testing.T) {
	casos := map[int]string{
		NivelFacil:   "Fácil (+0%)",
		NivelMedio:   "Médio (+20%)",
		NivelDificil: "Difícil (+50%)",
		0:            "Fácil (+0%)",
	}
	for nivel, esperado := range casos {
		if obtido := Rotulo(nivel); obtido != esperado {
			t.Fatalf("Rotulo(%d) = %q, esperado %q", nivel, obtido, esperado)
		}
	}
}

func TestArredondar2(t *testing.T) {
	quaseIgual(t, "para cima", Arredondar2(10.006), 10.01)
	quaseIgual(t, "para baixo", Arredondar2(10.004), 10.00)
	quaseIgual(t, "negativo", Arredondar2(-1.006), -1.01)
	quaseIgual(t, "exato", Arredondar2(360.00), 360.00)
}
