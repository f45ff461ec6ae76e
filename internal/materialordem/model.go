// internal/materialordem/model.go
package materialordem

import (
	"time"

	"gorm.io/gorm"
)

// MaterialOrdem é um material consumido/vendido em uma ordem de serviço.
// CustoUnitario é um retrato do custo do estoque no momento da inclusão e
// não muda depois. DoEstoque=true significa que a inclusão baixou o saldo
// do material referenciado e a remoção o devolve.
type MaterialOrdem struct {
	ID                 uint      `gorm:"primaryKey" json:"id"`
	OrdemID            uint      `gorm:"not null;index" json:"ordemId"`
	MaterialID         *uint     `gorm:"index" json:"materialId,omitempty"`
	NomeMaterial       string    `gorm:"size:255;not null" json:"nomeMaterial"`
	SKU                string    `gorm:"size:100" json:"sku"`
	Unidade            string    `gorm:"size:50" json:"unidade"`
	Quantidade         float64   `gorm:"not null" json:"quantidade"`
	CustoUnitario      float64   `gorm:"not null;default:0" json:"custoUnitario"`
	PrecoVendaUnitario float64   `gorm:"not null;default:0" json:"precoVendaUnitario"`
	CustoTotal         float64   `gorm:"not null;default:0" json:"custoTotal"`
	PrecoVendaTotal    float64   `gorm:"not null;default:0" json:"precoVendaTotal"`
	DoEstoque          bool      `gorm:"not null;default:false" json:"doEstoque"`
	SalvarNoEstoque    bool      `gorm:"not null;default:false" json:"salvarNoEstoque"`
	CreatedAt          time.Time `json:"createdAt"`
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&MaterialOrdem{})
}
