// internal/estoque/repository.go
package estoque

import "gorm.io/gorm"

// Repository encapsula operações de banco para Material. As operações de
// baixa e reposição recebem a transação do chamador para rodarem junto com
// a escrita da linha de material da ordem.
type Repository struct {
	DB *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{DB: db}
}

func (r *Repository) Create(m *Material) error {
	return r.DB.Create(m).Error
}

// CriarNaTransacao insere um material dentro da transação do chamador.
func (r *Repository) CriarNaTransacao(tx *gorm.DB, m *Material) error {
	return tx.Create(m).Error
}

// ListarAtivos retorna os materiais não arquivados.
func (r *Repository) ListarAtivos() ([]Material, error) {
	var materiais []Material
	err := r.DB.Where("ativo = ?", true).Order("nome").Find(&materiais).Error
	return materiais, err
}

func (r *Repository) FindByID(id uint) (*Material, error) {
	var m Material
	if err := r.DB.First(&m, id).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *Repository) Update(m *Material) error {
	return r.DB.Save(m).Error
}

// Arquivar marca o material como inativo (exclusão lógica).
func (r *Repository) Arquivar(id uint) error {
	return r.DB.Model(&Material{}).Where("id = ?", id).Update("ativo", false).Error
}

// AplicarBaixa calcula a quantidade resultante de uma baixa, com piso em
// zero: o estoque nunca fica negativo e a falta não gera erro.
func AplicarBaixa(atual, baixa float64) float64 {
	resultado := atual - baixa
	if resultado < 0 {
		return 0
	}
	return resultado
}

// BaixarQuantidade desconta quantidade do material dentro da transação do
// chamador, com piso em zero.
func (r *Repository) BaixarQuantidade(tx *gorm.DB, id uint, quantidade float64) error {
	var m Material
	if err := tx.First(&m, id).Error; err != nil {
		return err
	}
	return tx.Model(&m).Update("quantidade", AplicarBaixa(m.Quantidade, quantidade)).Error
}

// ReporQuantidade devolve quantidade ao material dentro da transação do
// chamador. A reposição é estritamente aditiva: pode passar do valor que o
// material tinha antes das baixas.
func (r *Repository) ReporQuantidade(tx *gorm.DB, id uint, quantidade float64) error {
	return tx.Model(&Material{}).Where("id = ?", id).
		Update("quantidade", gorm.Expr("quantidade + ?", quantidade)).Error
}

// ListarAbaixoDoMinimo retorna os materiais ativos com quantidade igual ou
// abaixo do mínimo configurado.
func (r *Repository) ListarAbaixoDoMinimo() ([]Material, error) {
	var materiais []Material
	err := r.DB.Where("ativo = ? AND quantidade <= quantidade_minima", true).
		Order("nome").Find(&materiais).Error
	return materiais, err
}
