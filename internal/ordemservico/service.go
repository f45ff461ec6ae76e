// internal/ordemservico/service.go
package ordemservico

import (
	"fmt"

	"github.com/CampoGestor/api-os/internal/custoadicional"
	"github.com/CampoGestor/api-os/internal/itemordem"
	"github.com/CampoGestor/api-os/internal/materialordem"
	"golang.org/x/sync/errgroup"
)

// ItensOrdem lista os itens de serviço de uma ordem.
type ItensOrdem interface {
	FindByOrdem(ordemID uint) ([]itemordem.ItemOrdem, error)
}

// MateriaisOrdem lista os materiais de uma ordem.
type MateriaisOrdem interface {
	FindByOrdem(ordemID uint) ([]materialordem.MaterialOrdem, error)
}

// CustosOrdem lista os custos adicionais de uma ordem.
type CustosOrdem interface {
	FindByOrdem(ordemID uint) ([]custoadicional.CustoAdicional, error)
}

// TotaisService recalcula a visão agregada de uma ordem a partir das três
// coleções de origem, buscadas em paralelo.
type TotaisService struct {
	itens     ItensOrdem
	materiais MateriaisOrdem
	custos    CustosOrdem
}

func NewTotaisService(itens ItensOrdem, materiais MateriaisOrdem, custos CustosOrdem) *TotaisService {
	return &TotaisService{itens: itens, materiais: materiais, custos: custos}
}

// TotaisDaOrdem busca itens, materiais e custos da ordem e devolve a soma.
func (s *TotaisService) TotaisDaOrdem(ordemID uint) (Totais, error) {
	const op = "ordemservico.TotaisDaOrdem"

	var (
		itens     []itemordem.ItemOrdem
		materiais []materialordem.MaterialOrdem
		custos    []custoadicional.CustoAdicional
	)

	var g errgroup.Group
	g.Go(func() error {
		var err error
		itens, err = s.itens.FindByOrdem(ordemID)
		if err != nil {
			return fmt.Errorf("itens: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		materiais, err = s.materiais.FindByOrdem(ordemID)
		if err != nil {
			return fmt.Errorf("materiais: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		custos, err = s.custos.FindByOrdem(ordemID)
		if err != nil {
			return fmt.Errorf("custos: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return Totais{}, fmt.Errorf("%s: %w", op, err)
	}
	return CalcularTotais(itens, materiais, custos), nil
}
