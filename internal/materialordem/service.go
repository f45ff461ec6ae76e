// internal/materialordem/service.go
package materialordem

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/CampoGestor/api-os/internal/estoque"
	"github.com/CampoGestor/api-os/internal/precificacao"
	"gorm.io/gorm"
)

var (
	ErrNomeObrigatorio       = errors.New("informe o nome do material")
	ErrQuantidadeInvalida    = errors.New("informe uma quantidade maior que zero")
	ErrMaterialNaoEncontrado = errors.New("material do estoque não encontrado")
	ErrLinhaNaoEncontrada    = errors.New("material não encontrado para essa ordem")
)

// Linhas são as operações de banco usadas pelo serviço sobre MaterialOrdem.
type Linhas interface {
	Create(tx *gorm.DB, linha *MaterialOrdem) error
	FindByID(id uint) (*MaterialOrdem, error)
	Delete(tx *gorm.DB, linha *MaterialOrdem) error
}

// Estoque são as operações de banco usadas pelo serviço sobre o estoque.
type Estoque interface {
	FindByID(id uint) (*estoque.Material, error)
	CriarNaTransacao(tx *gorm.DB, m *estoque.Material) error
	BaixarQuantidade(tx *gorm.DB, id uint, quantidade float64) error
	ReporQuantidade(tx *gorm.DB, id uint, quantidade float64) error
}

// Transacionador abre a transação que amarra a escrita da linha ao ajuste
// de estoque. *gorm.DB satisfaz a interface.
type Transacionador interface {
	Transaction(fc func(tx *gorm.DB) error, opts ...*sql.TxOptions) error
}

// Service coordena o livro de materiais da ordem: a linha e o ajuste de
// estoque são gravados na mesma transação, então uma falha no segundo passo
// desfaz o primeiro em vez de deixar os dois fora de sincronia.
type Service struct {
	tx      Transacionador
	linhas  Linhas
	estoque Estoque
}

func NewService(tx Transacionador, linhas Linhas, est Estoque) *Service {
	return &Service{tx: tx, linhas: linhas, estoque: est}
}

// MontarLinha valida o payload e calcula os totais da linha. Os totais são
// arredondados aqui porque este é o momento da gravação.
func MontarLinha(ordemID uint, req CriarMaterialRequest) (MaterialOrdem, error) {
	if strings.TrimSpace(req.NomeMaterial) == "" {
		return MaterialOrdem{}, ErrNomeObrigatorio
	}
	if req.Quantidade <= 0 {
		return MaterialOrdem{}, ErrQuantidadeInvalida
	}

	return MaterialOrdem{
		OrdemID:            ordemID,
		MaterialID:         req.MaterialID,
		NomeMaterial:       req.NomeMaterial,
		SKU:                req.SKU,
		Unidade:            req.Unidade,
		Quantidade:         req.Quantidade,
		CustoUnitario:      req.CustoUnitario,
		PrecoVendaUnitario: req.PrecoVendaUnitario,
		CustoTotal:         precificacao.Arredondar2(req.Quantidade * req.CustoUnitario),
		PrecoVendaTotal:    precificacao.Arredondar2(req.Quantidade * req.PrecoVendaUnitario),
		DoEstoque:          req.DoEstoque,
		SalvarNoEstoque:    req.SalvarNoEstoque,
	}, nil
}

// Adicionar inclui um material na ordem. Quando o material vem do estoque,
// o custo unitário gravado é o retrato do cadastro nesse momento e o saldo
// é baixado (com piso em zero) na mesma transação. Quando não vem do
// estoque e SalvarNoEstoque está marcado, um cadastro novo é criado com
// quantidade zero (apenas catálogo, sem saldo).
func (s *Service) Adicionar(ordemID uint, req CriarMaterialRequest) (*MaterialOrdem, error) {
	if req.DoEstoque {
		if req.MaterialID == nil {
			return nil, ErrMaterialNaoEncontrado
		}
		m, err := s.estoque.FindByID(*req.MaterialID)
		if err != nil {
			return nil, ErrMaterialNaoEncontrado
		}
		req.CustoUnitario = m.CustoUnitario
		if strings.TrimSpace(req.NomeMaterial) == "" {
			req.NomeMaterial = m.Nome
		}
		if req.SKU == "" {
			req.SKU = m.SKU
		}
		if req.Unidade == "" {
			req.Unidade = m.Unidade
		}
		if req.PrecoVendaUnitario == 0 {
			req.PrecoVendaUnitario = m.PrecoVenda
		}
	}

	linha, err := MontarLinha(ordemID, req)
	if err != nil {
		return nil, err
	}

	err = s.tx.Transaction(func(tx *gorm.DB) error {
		if err := s.linhas.Create(tx, &linha); err != nil {
			return fmt.Errorf("gravação da linha: %w", err)
		}
		if linha.DoEstoque && linha.MaterialID != nil {
			if err := s.estoque.BaixarQuantidade(tx, *linha.MaterialID, linha.Quantidade); err != nil {
				return fmt.Errorf("baixa de estoque: %w", err)
			}
			return nil
		}
		if linha.SalvarNoEstoque {
			novo := estoque.Material{
				Nome:          linha.NomeMaterial,
				SKU:           linha.SKU,
				Unidade:       linha.Unidade,
				Quantidade:    0,
				CustoUnitario: linha.CustoUnitario,
				PrecoVenda:    linha.PrecoVendaUnitario,
				Ativo:         true,
			}
			if err := s.estoque.CriarNaTransacao(tx, &novo); err != nil {
				return fmt.Errorf("cadastro no estoque: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &linha, nil
}

// Remover apaga a linha e, se ela veio do estoque, devolve a quantidade ao
// saldo na mesma transação. A devolução é aditiva: não há teto no valor
// original, já que várias linhas podem referenciar o mesmo material.
func (s *Service) Remover(ordemID, linhaID uint) error {
	linha, err := s.linhas.FindByID(linhaID)
	if err != nil || linha.OrdemID != ordemID {
		return ErrLinhaNaoEncontrada
	}

	return s.tx.Transaction(func(tx *gorm.DB) error {
		if err := s.linhas.Delete(tx, linha); err != nil {
			return fmt.Errorf("remoção da linha: %w", err)
		}
		if linha.DoEstoque && linha.MaterialID != nil {
			if err := s.estoque.ReporQuantidade(tx, *linha.MaterialID, linha.Quantidade); err != nil {
				return fmt.Errorf("reposição de estoque: %w", err)
			}
		}
		return nil
	})
}

// SelecionarDoEstoque devolve o preenchimento de uma linha a partir de um
// material do estoque e sinaliza quando ele já está no mínimo ou abaixo,
// para o chamador disparar o alerta antes mesmo da inclusão.
func (s *Service) SelecionarDoEstoque(materialID uint) (*SelecaoEstoqueDTO, error) {
	m, err := s.estoque.FindByID(materialID)
	if err != nil {
		return nil, ErrMaterialNaoEncontrado
	}

	return &SelecaoEstoqueDTO{
		MaterialID:          m.ID,
		NomeMaterial:        m.Nome,
		SKU:                 m.SKU,
		Unidade:             m.Unidade,
		CustoUnitario:       m.CustoUnitario,
		PrecoVendaUnitario:  m.PrecoVenda,
		QuantidadeEmEstoque: m.Quantidade,
		DoEstoque:           true,
		AbaixoDoMinimo:      m.AbaixoDoMinimo(),
	}, nil
}
