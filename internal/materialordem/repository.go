// internal/materialordem/repository.go
package materialordem

import "gorm.io/gorm"

// Repository encapsula operações de banco para MaterialOrdem. Criação e
// remoção recebem a transação do chamador porque rodam junto com os ajustes
// de estoque.
type Repository struct {
	DB *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{DB: db}
}

func (r *Repository) Create(tx *gorm.DB, linha *MaterialOrdem) error {
	return tx.Create(linha).Error
}

func (r *Repository) FindByOrdem(ordemID uint) ([]MaterialOrdem, error) {
	var linhas []MaterialOrdem
	err := r.DB.Where("ordem_id = ?", ordemID).Order("id").Find(&linhas).Error
	return linhas, err
}

func (r *Repository) FindByID(id uint) (*MaterialOrdem, error) {
	var linha MaterialOrdem
	if err := r.DB.First(&linha, id).Error; err != nil {
		return nil, err
	}
	return &linha, nil
}

func (r *Repository) Delete(tx *gorm.DB, linha *MaterialOrdem) error {
	return tx.Delete(linha).Error
}
