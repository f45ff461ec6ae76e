// internal/assistente/servico.go
package assistente

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/CampoGestor/api-os/internal/cache"
	"github.com/CampoGestor/api-os/internal/estoque"
	"github.com/CampoGestor/api-os/internal/ordemservico"
	"github.com/google/uuid"
)

var ErrConsultaVazia = errors.New("informe o texto da consulta")

// Dados são as consultas prontas que o assistente sabe responder.
type Dados interface {
	MateriaisAbaixoDoMinimo() ([]estoque.Material, error)
	OrdemPorNumero(numero string) (*ordemservico.OrdemServico, error)
	TotaisDaOrdem(ordemID uint) (ordemservico.Totais, error)
	ContarOrdensAbertas() (int64, error)
	ContarFuncionariosAtivos() (int64, error)
}

// Intenções reconhecidas.
const (
	IntencaoEstoqueBaixo  = "estoque_baixo"
	IntencaoTotaisOrdem   = "totais_ordem"
	IntencaoOrdensAbertas = "ordens_abertas"
	IntencaoFuncionarios  = "funcionarios_ativos"
	IntencaoAjuda         = "ajuda"
)

// O despacho é uma cadeia de expressões regulares avaliadas em ordem; a
// primeira que casar decide a intenção, e nada casando cai na ajuda.
var (
	reRepetir       = regexp.MustCompile(`(?i)^\s*(de novo|novamente|repete|repetir)\b`)
	reTotaisOrdem   = regexp.MustCompile(`(?i)(total|valor|custo|lucro).*\bordem\s+([A-Za-z0-9-]+)`)
	reEstoqueBaixo  = regexp.MustCompile(`(?i)estoque\s+baixo|materia(l|is)\b.*(acabando|baixo|m[íi]nimo)|\bestoque\b`)
	reOrdensAbertas = regexp.MustCompile(`(?i)ordens?\s+(abertas?|em\s+aberto|em\s+andamento)`)
	reFuncionarios  = regexp.MustCompile(`(?i)funcion[áa]rios?\b`)
)

// Resposta é a devolutiva do assistente para uma consulta.
type Resposta struct {
	Sessao   string `json:"sessao"`
	Intencao string `json:"intencao"`
	Texto    string `json:"texto"`
}

// Servico é o assistente "Thomaz": casa a consulta livre com uma intenção e
// executa a rotina de dados correspondente. O contexto de sessão (última
// intenção) fica no cache injetado, com expiração própria.
type Servico struct {
	dados   Dados
	sessoes *cache.Store
}

func NewServico(dados Dados, sessoes *cache.Store) *Servico {
	return &Servico{dados: dados, sessoes: sessoes}
}

// Responder processa uma consulta. Sessão vazia ganha um token novo; a
// intenção atendida é guardada para o pedido de repetição.
func (s *Servico) Responder(sessao, texto string) (Resposta, error) {
	if strings.TrimSpace(texto) == "" {
		return Resposta{}, ErrConsultaVazia
	}
	if sessao == "" {
		sessao = uuid.NewString()
	}

	intencao, resposta, err := s.despachar(sessao, texto)
	if err != nil {
		return Resposta{}, err
	}

	if intencao != IntencaoAjuda {
		s.sessoes.Definir(chaveSessao(sessao), intencao)
	}
	return Resposta{Sessao: sessao, Intencao: intencao, Texto: resposta}, nil
}

func (s *Servico) despachar(sessao, texto string) (string, string, error) {
	if reRepetir.MatchString(texto) {
		return s.repetir(sessao)
	}
	if m := reTotaisOrdem.FindStringSubmatch(texto); m != nil {
		return s.totaisOrdem(m[2])
	}
	if reOrdensAbertas.MatchString(texto) {
		return s.ordensAbertas()
	}
	if reEstoqueBaixo.MatchString(texto) {
		return s.estoqueBaixo()
	}
	if reFuncionarios.MatchString(texto) {
		return s.funcionariosAtivos()
	}
	return IntencaoAjuda, "Posso consultar estoque baixo, totais de uma ordem (ex.: \"valor da ordem OS-123\"), ordens abertas e funcionários ativos.", nil
}

func (s *Servico) repetir(sessao string) (string, string, error) {
	ultima, ok := s.sessoes.Obter(chaveSessao(sessao))
	if !ok {
		return IntencaoAjuda, "Não há consulta anterior nesta sessão para repetir.", nil
	}

	switch ultima {
	case IntencaoEstoqueBaixo:
		return s.estoqueBaixo()
	case IntencaoOrdensAbertas:
		return s.ordensAbertas()
	case IntencaoFuncionarios:
		return s.funcionariosAtivos()
	default:
		return IntencaoAjuda, "Não consigo repetir essa consulta; faça-a de novo por completo.", nil
	}
}

func (s *Servico) estoqueBaixo() (string, string, error) {
	materiais, err := s.dados.MateriaisAbaixoDoMinimo()
	if err != nil {
		return "", "", fmt.Errorf("estoque baixo: %w", err)
	}
	if len(materiais) == 0 {
		return IntencaoEstoqueBaixo, "Nenhum material está no mínimo ou abaixo. Estoque em dia.", nil
	}

	nomes := make([]string, 0, len(materiais))
	for _, m := range materiais {
		nomes = append(nomes, fmt.Sprintf("%s (%.0f %s)", m.Nome, m.Quantidade, m.Unidade))
	}
	return IntencaoEstoqueBaixo,
		fmt.Sprintf("%d material(is) precisando de reposição: %s.", len(materiais), strings.Join(nomes, ", ")), nil
}

func (s *Servico) totaisOrdem(numero string) (string, string, error) {
	ordem, err := s.dados.OrdemPorNumero(numero)
	if err != nil {
		return IntencaoTotaisOrdem, fmt.Sprintf("Não encontrei a ordem %s.", numero), nil
	}

	totais, err := s.dados.TotaisDaOrdem(ordem.ID)
	if err != nil {
		return "", "", fmt.Errorf("totais da ordem %s: %w", numero, err)
	}
	return IntencaoTotaisOrdem,
		fmt.Sprintf("Ordem %s: valor R$ %.2f, custo R$ %.2f, lucro R$ %.2f.",
			ordem.Numero, totais.ValorOrdem, totais.CustoOrdem, totais.Lucro), nil
}

func (s *Servico) ordensAbertas() (string, string, error) {
	total, err := s.dados.ContarOrdensAbertas()
	if err != nil {
		return "", "", fmt.Errorf("ordens abertas: %w", err)
	}
	return IntencaoOrdensAbertas, fmt.Sprintf("Há %d ordem(ns) em aberto ou em andamento.", total), nil
}

func (s *Servico) funcionariosAtivos() (string, string, error) {
	total, err := s.dados.ContarFuncionariosAtivos()
	if err != nil {
		return "", "", fmt.Errorf("funcionários ativos: %w", err)
	}
	return IntencaoFuncionarios, fmt.Sprintf("A equipe tem %d funcionário(s) ativo(s).", total), nil
}

func chaveSessao(sessao string) string {
	return "assistente:" + sessao
}
