// internal/materialordem/dto.go
package materialordem

// CriarMaterialRequest é o payload de inclusão de um material na ordem.
// DoEstoque indica material vindo do estoque (baixa o saldo); quando falso,
// SalvarNoEstoque pede a criação de um cadastro novo com quantidade zero.
type CriarMaterialRequest struct {
	MaterialID         *uint   `json:"materialId"`
	NomeMaterial       string  `json:"nomeMaterial"`
	SKU                string  `json:"sku"`
	Unidade            string  `json:"unidade"`
	Quantidade         float64 `json:"quantidade"`
	CustoUnitario      float64 `json:"custoUnitario"`
	PrecoVendaUnitario float64 `json:"precoVendaUnitario"`
	DoEstoque          bool    `json:"doEstoque"`
	SalvarNoEstoque    bool    `json:"salvarNoEstoque"`
}

// SelecaoEstoqueDTO é o preenchimento devolvido ao selecionar um material
// do estoque para inclusão em uma ordem.
type SelecaoEstoqueDTO struct {
	MaterialID          uint    `json:"materialId"`
	NomeMaterial        string  `json:"nomeMaterial"`
	SKU                 string  `json:"sku"`
	Unidade             string  `json:"unidade"`
	CustoUnitario       float64 `json:"custoUnitario"`
	PrecoVendaUnitario  float64 `json:"precoVendaUnitario"`
	QuantidadeEmEstoque float64 `json:"quantidadeEmEstoque"`
	DoEstoque           bool    `json:"doEstoque"`
	AbaixoDoMinimo      bool    `json:"abaixoDoMinimo"`
}
