// internal/funcionario/repository.go
package funcionario

import "gorm.io/gorm"

// Repository encapsula operações de banco para Funcionario
type Repository struct {
	DB *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{DB: db}
}

func (r *Repository) Create(f *Funcionario) error {
	return r.DB.Create(f).Error
}

// ListarAtivos retorna os funcionários não arquivados.
func (r *Repository) ListarAtivos() ([]Funcionario, error) {
	var funcionarios []Funcionario
	err := r.DB.Where("ativo = ?", true).Order("nome").Find(&funcionarios).Error
	return funcionarios, err
}

func (r *Repository) FindByID(id uint) (*Funcionario, error) {
	var f Funcionario
	if err := r.DB.First(&f, id).Error; err != nil {
		return nil, err
	}
	return &f, nil
}

func (r *Repository) Update(f *Funcionario) error {
	return r.DB.Save(f).Error
}

// Arquivar marca o funcionário como inativo (exclusão lógica).
func (r *Repository) Arquivar(id uint) error {
	return r.DB.Model(&Funcionario{}).Where("id = ?", id).Update("ativo", false).Error
}

// ContarAtivos conta os funcionários não arquivados.
func (r *Repository) ContarAtivos() (int64, error) {
	var total int64
	err := r.DB.Model(&Funcionario{}).Where("ativo = ?", true).Count(&total).Error
	return total, err
}
