// internal/itemordem/model.go
package itemordem

import (
	"time"

	"gorm.io/gorm"
)

// ItemOrdem é uma linha de serviço precificada dentro de uma ordem.
// PrecoTotal é calculado e arredondado no momento da gravação
// (quantidade × preço unitário); não é re-derivado em leituras.
// O ciclo de vida é criar e deletar — não existe atualização parcial.
type ItemOrdem struct {
	ID               uint      `gorm:"primaryKey" json:"id"`
	OrdemID          uint      `gorm:"not null;index" json:"ordemId"`
	ServicoID        *uint     `gorm:"index" json:"servicoId,omitempty"`
	Quantidade       float64   `gorm:"not null;default:1" json:"quantidade"`
	PrecoBase        float64   `gorm:"not null;default:0" json:"precoBase"`
	NivelDificuldade int       `gorm:"not null;default:1" json:"nivelDificuldade"`
	Multiplicador    float64   `gorm:"not null;default:1" json:"multiplicador"`
	PrecoUnitario    float64   `gorm:"not null;default:0" json:"precoUnitario"`
	PrecoTotal       float64   `gorm:"not null;default:0" json:"precoTotal"`
	DuracaoEstimada  int       `json:"duracaoEstimada"` // minutos
	Observacoes      string    `json:"observacoes"`
	CreatedAt        time.Time `json:"createdAt"`
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&ItemOrdem{})
}
