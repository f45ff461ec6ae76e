// internal/funcionario/model.go
package funcionario

import (
	"time"

	"gorm.io/gorm"
)

// Funcionario é um membro da equipe de campo. Ativo=false é exclusão
// lógica: o registro sai das listagens mas permanece para histórico.
type Funcionario struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Nome      string    `gorm:"size:255;not null" json:"nome"`
	Email     string    `gorm:"size:255;uniqueIndex;not null" json:"email"`
	Telefone  string    `gorm:"size:50" json:"telefone"`
	Cargo     string    `gorm:"size:100" json:"cargo"`
	Ativo     bool      `gorm:"not null;default:true" json:"ativo"`
	Senha     string    `json:"-"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&Funcionario{})
}
