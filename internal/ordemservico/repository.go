// internal/ordemservico/repository.go
package ordemservico

import "gorm.io/gorm"

// Repository encapsula operações de banco para OrdemServico
type Repository struct {
	DB *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{DB: db}
}

func (r *Repository) Create(o *OrdemServico) error {
	return r.DB.Create(o).Error
}

func (r *Repository) ListAll() ([]OrdemServico, error) {
	var ordens []OrdemServico
	err := r.DB.Order("id desc").Find(&ordens).Error
	return ordens, err
}

func (r *Repository) FindByID(id uint) (*OrdemServico, error) {
	var o OrdemServico
	if err := r.DB.First(&o, id).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *Repository) FindByNumero(numero string) (*OrdemServico, error) {
	var o OrdemServico
	if err := r.DB.Where("numero = ?", numero).First(&o).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *Repository) Update(o *OrdemServico) error {
	return r.DB.Save(o).Error
}

func (r *Repository) Delete(o *OrdemServico) error {
	return r.DB.Delete(o).Error
}

// ContarAbertas conta ordens ainda em aberto ou em andamento.
func (r *Repository) ContarAbertas() (int64, error) {
	var total int64
	err := r.DB.Model(&OrdemServico{}).
		Where("status IN ?", []string{StatusAberta, StatusEmAndamento}).
		Count(&total).Error
	return total, err
}
