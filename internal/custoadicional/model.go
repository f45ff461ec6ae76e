// internal/custoadicional/model.go
package custoadicional

import (
	"time"

	"gorm.io/gorm"
)

// Tipos de custo aceitos para um custo avulso de ordem de serviço.
const (
	TipoMaterial       = "material"
	TipoCombustivel    = "combustivel"
	TipoDeslocamento   = "deslocamento"
	TipoTerceirizado   = "terceirizado"
	TipoAlimentacao    = "alimentacao"
	TipoPedagio        = "pedagio"
	TipoEstacionamento = "estacionamento"
	TipoOutros         = "outros"
)

// TiposValidos lista os tipos aceitos, na ordem de exibição.
var TiposValidos = []string{
	TipoMaterial, TipoCombustivel, TipoDeslocamento, TipoTerceirizado,
	TipoAlimentacao, TipoPedagio, TipoEstacionamento, TipoOutros,
}

// CustoAdicional é uma despesa avulsa da ordem, sem vínculo com catálogo ou
// estoque. Linhas independentes: criar e remover, sem efeitos colaterais.
type CustoAdicional struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	OrdemID        uint      `gorm:"not null;index" json:"ordemId"`
	Tipo           string    `gorm:"size:50;not null;default:'outros'" json:"tipo"`
	Descricao      string    `gorm:"size:255;not null" json:"descricao"`
	Valor          float64   `gorm:"not null" json:"valor"`
	DataCusto      time.Time `json:"dataCusto"`
	Fornecedor     string    `json:"fornecedor,omitempty"`
	FormaPagamento string    `json:"formaPagamento,omitempty"`
	NumeroNota     string    `json:"numeroNota,omitempty"`
	Observacoes    string    `json:"observacoes,omitempty"`
	CreatedAt      time.Time `json:"createdAt"`
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&CustoAdicional{})
}

// TipoValido informa se o tipo está na lista aceita.
func TipoValido(tipo string) bool {
	for _, t := range TiposValidos {
		if t == tipo {
			return true
		}
	}
	return false
}
