// internal/estoque/model.go
package estoque

import (
	"time"

	"gorm.io/gorm"
)

// Material é um item do estoque. Ativo=false é exclusão lógica: o registro
// some das listagens e do monitor, mas o histórico das ordens continua
// apontando para ele.
type Material struct {
	ID               uint      `gorm:"primaryKey" json:"id"`
	Nome             string    `gorm:"size:255;not null" json:"nome"`
	SKU              string    `gorm:"size:100" json:"sku"`
	Quantidade       float64   `gorm:"not null;default:0" json:"quantidade"`
	QuantidadeMinima float64   `gorm:"not null;default:0" json:"quantidadeMinima"`
	Unidade          string    `gorm:"size:50" json:"unidade"`
	CustoUnitario    float64   `gorm:"not null;default:0" json:"custoUnitario"`
	PrecoVenda       float64   `gorm:"not null;default:0" json:"precoVenda"`
	Ativo            bool      `gorm:"not null;default:true" json:"ativo"`
	CreatedAt        time.Time `json:"createdAt"`
	UpdatedAt        time.Time `json:"updatedAt"`
}

// AbaixoDoMinimo indica se o material deve disparar alerta de estoque baixo.
func (m *Material) AbaixoDoMinimo() bool {
	return m.Ativo && m.Quantidade <= m.QuantidadeMinima
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&Material{})
}
