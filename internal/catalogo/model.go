// internal/catalogo/model.go
package catalogo

import (
	"time"

	"gorm.io/gorm"
)

// Servico é um serviço do catálogo: modelo a partir do qual itens de ordem
// são instanciados. Dados de referência, somente leitura para a precificação.
type Servico struct {
	ID              uint      `gorm:"primaryKey" json:"id"`
	Nome            string    `gorm:"size:255;not null" json:"nome"`
	PrecoBase       float64   `gorm:"not null;default:0" json:"precoBase"`
	DuracaoEstimada int       `gorm:"not null;default:0" json:"duracaoEstimada"` // minutos
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&Servico{})
}
