// internal/assistente/dados.go
package assistente

import (
	"github.com/CampoGestor/api-os/internal/estoque"
	"github.com/CampoGestor/api-os/internal/funcionario"
	"github.com/CampoGestor/api-os/internal/ordemservico"
)

// Consultas implementa Dados sobre os repositórios e serviços reais.
type Consultas struct {
	Estoque      *estoque.Repository
	Ordens       *ordemservico.Repository
	Totais       *ordemservico.TotaisService
	Funcionarios *funcionario.Repository
}

func NewConsultas(est *estoque.Repository, ordens *ordemservico.Repository, totais *ordemservico.TotaisService, funcionarios *funcionario.Repository) *Consultas {
	return &Consultas{Estoque: est, Ordens: ordens, Totais: totais, Funcionarios: funcionarios}
}

func (c *Consultas) MateriaisAbaixoDoMinimo() ([]estoque.Material, error) {
	return c.Estoque.ListarAbaixoDoMinimo()
}

func (c *Consultas) OrdemPorNumero(numero string) (*ordemservico.OrdemServico, error) {
	return c.Ordens.FindByNumero(numero)
}

func (c *Consultas) TotaisDaOrdem(ordemID uint) (ordemservico.Totais, error) {
	return c.Totais.TotaisDaOrdem(ordemID)
}

func (c *Consultas) ContarOrdensAbertas() (int64, error) {
	return c.Ordens.ContarAbertas()
}

func (c *Consultas) ContarFuncionariosAtivos() (int64, error) {
	return c.Funcionarios.ContarAtivos()
}
