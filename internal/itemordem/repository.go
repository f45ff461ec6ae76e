// internal/itemordem/repository.go
package itemordem

import "gorm.io/gorm"

// Repository encapsula operações de banco para ItemOrdem
type Repository struct {
	DB *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{DB: db}
}

func (r *Repository) Create(item *ItemOrdem) error {
	return r.DB.Create(item).Error
}

func (r *Repository) FindByOrdem(ordemID uint) ([]ItemOrdem, error) {
	var itens []ItemOrdem
	err := r.DB.Where("ordem_id = ?", ordemID).Order("id").Find(&itens).Error
	return itens, err
}

func (r *Repository) FindByID(id uint) (*ItemOrdem, error) {
	var item ItemOrdem
	if err := r.DB.First(&item, id).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *Repository) Delete(item *ItemOrdem) error {
	return r.DB.Delete(item).Error
}
