// internal/ordemservico/model.go
package ordemservico

import (
	"time"

	"gorm.io/gorm"
)

// Status de ordem de serviço.
const (
	StatusAberta      = "aberta"
	StatusEmAndamento = "em_andamento"
	StatusConcluida   = "concluida"
	StatusCancelada   = "cancelada"
)

// OrdemServico é o registro ao qual itens, materiais e custos adicionais se
// penduram. Os totais nunca são gravados aqui: são recalculados a cada
// leitura a partir das três coleções.
type OrdemServico struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Numero       string    `gorm:"size:50;uniqueIndex;not null" json:"numero"`
	ClienteNome  string    `gorm:"size:255" json:"clienteNome"`
	Descricao    string    `json:"descricao"`
	Status       string    `gorm:"size:50;not null;default:'aberta'" json:"status"`
	DataAbertura time.Time `json:"dataAbertura"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&OrdemServico{})
}
