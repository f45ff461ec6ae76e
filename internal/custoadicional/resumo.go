// internal/custoadicional/resumo.go
package custoadicional

// ResumoPorTipo agrupa custos por tipo e soma os valores. Tipos cujo total
// somado é exatamente zero ficam de fora do resultado — a comparação é
// sobre o total, não sobre a contagem de linhas.
func ResumoPorTipo(custos []CustoAdicional) map[string]float64 {
	somas := make(map[string]float64)
	for _, c := range custos {
		somas[c.Tipo] += c.Valor
	}

	resumo := make(map[string]float64, len(somas))
	for tipo, total := range somas {
		if total == 0 {
			continue
		}
		resumo[tipo] = total
	}
	return resumo
}
