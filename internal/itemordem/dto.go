// internal/itemordem/dto.go
package itemordem

// CriarItemRequest é o payload de criação de um item de ordem.
// PrecoUnitario preenchido significa edição manual do preço, que prevalece
// sobre a derivação preço base × multiplicador de dificuldade.
type CriarItemRequest struct {
	ServicoID        *uint    `json:"servicoId"`
	Quantidade       float64  `json:"quantidade"`
	NivelDificuldade int      `json:"nivelDificuldade"`
	PrecoUnitario    *float64 `json:"precoUnitario"`
	Observacoes      string   `json:"observacoes"`
}
