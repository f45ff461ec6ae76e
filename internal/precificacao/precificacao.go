// internal/precificacao/precificacao.go
package precificacao

import "math"

// Níveis de dificuldade aceitos para um item de ordem de serviço.
const (
	NivelFacil   = 1
	NivelMedio   = 2
	NivelDificil = 3
)

// Multiplicador retorna o fator aplicado ao preço base conforme o nível
// de dificuldade. Nível fora de {1,2,3} cai no multiplicador 1.00 sem erro
// (nível desconhecido é tratado como fácil).
func Multiplicador(nivel int) float64 {
	switch nivel {
	case NivelMedio:
		return 1.20
	case NivelDificil:
		return 1.50
	default:
		return 1.00
	}
}

// Rotulo retorna o texto exibido para cada nível de dificuldade.
func Rotulo(nivel int) string {
	switch nivel {
	case NivelMedio:
		return "Médio (+20%)"
	case NivelDificil:
		return "Difícil (+50%)"
	default:
		return "Fácil (+0%)"
	}
}

// PrecoAjustado aplica o multiplicador de dificuldade sobre o preço base.
func PrecoAjustado(precoBase float64, nivel int) float64 {
	return precoBase * Multiplicador(nivel)
}

// Arredondar2 arredonda para 2 casas decimais. Aplicado uma única vez, no
// momento de persistir um total, nunca nos cálculos intermediários.
func Arredondar2(v float64) float64 {
	return math.Round(v*100) / 100
}
