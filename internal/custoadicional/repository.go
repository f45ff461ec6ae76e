// internal/custoadicional/repository.go
package custoadicional

import "gorm.io/gorm"

// Repository encapsula operações de banco para CustoAdicional
type Repository struct {
	DB *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{DB: db}
}

func (r *Repository) Create(c *CustoAdicional) error {
	return r.DB.Create(c).Error
}

func (r *Repository) FindByOrdem(ordemID uint) ([]CustoAdicional, error) {
	var custos []CustoAdicional
	err := r.DB.Where("ordem_id = ?", ordemID).Order("id").Find(&custos).Error
	return custos, err
}

func (r *Repository) FindByID(id uint) (*CustoAdicional, error) {
	var c CustoAdicional
	if err := r.DB.First(&c, id).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *Repository) Delete(c *CustoAdicional) error {
	return r.DB.Delete(c).Error
}
