package monitorestoque

import (
	"sync"
	"testing"
	"time"

	"github.com/CampoGestor/api-os/internal/estoque"
	"github.com/stretchr/testify/assert"
)

type listaFixa struct {
	mu        sync.Mutex
	materiais []estoque.Material
	err       error
	chamadas  int
}

func (l *listaFixa) ListarAbaixoDoMinimo() ([]estoque.Material, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.chamadas++
	return l.materiais, l.err
}

func (l *listaFixa) definir(materiais []estoque.Material) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.materiais = materiais
}

type notificadorEspiao struct {
	mu       sync.Mutex
	chamadas [][]estoque.Material
}

func (n *notificadorEspiao) NotificarEstoqueBaixo(materiais []estoque.Material) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.chamadas = append(n.chamadas, materiais)
}

func (n *notificadorEspiao) total() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return len(n.chamadas)
}

func TestVerificar_TransicaoNormalParaAlertaEVolta(t *testing.T) {
	lista := &listaFixa{}
	espiao := &notificadorEspiao{}
	m := New(lista, espiao, time.Minute)

	// Quantidade igual ao mínimo entra em alerta.
	lista.definir([]estoque.Material{{ID: 1, Nome: "Cabo", Quantidade: 5, QuantidadeMinima: 5, Ativo: true}})
	m.Verificar()

	estado, materiais := m.Estado()
	assert.Equal(t, EstadoAlerta, estado)
	assert.Len(t, materiais, 1)
	assert.Equal(t, 1, espiao.total())

	// Reposto acima do mínimo, a varredura seguinte volta ao normal.
	lista.definir(nil)
	m.Verificar()

	estado, materiais = m.Estado()
	assert.Equal(t, EstadoNormal, estado)
	assert.Empty(t, materiais)
	assert.Equal(t, 1, espiao.total())
}

func TestVerificar_RenotificaEnquantoCondicaoPersiste(t *testing.T) {
	lista := &listaFixa{}
	espiao := &notificadorEspiao{}
	m := New(lista, espiao, time.Minute)

	lista.definir([]estoque.Material{{ID: 1, Nome: "Cabo", Quantidade: 0, QuantidadeMinima: 5, Ativo: true}})
	m.Verificar()
	m.Verificar()
	m.Verificar()

	// Cada varredura com ocorrência notifica de novo; não há supressão.
	assert.Equal(t, 3, espiao.total())
	estado, _ := m.Estado()
	assert.Equal(t, EstadoAlerta, estado)
}

func TestVerificar_CarregaListaCompletaACadaVarredura(t *testing.T) {
	lista := &listaFixa{}
	espiao := &notificadorEspiao{}
	m := New(lista, espiao, time.Minute)

	lista.definir([]estoque.Material{
		{ID: 1, Nome: "Cabo", Quantidade: 0, QuantidadeMinima: 5, Ativo: true},
		{ID: 2, Nome: "Fita", Quantidade: 1, QuantidadeMinima: 3, Ativo: true},
	})
	m.Verificar()

	_, materiais := m.Estado()
	assert.Len(t, materiais, 2)
}

func TestVerificar_ErroNaVarreduraMantemEstado(t *testing.T) {
	lista := &listaFixa{}
	espiao := &notificadorEspiao{}
	m := New(lista, espiao, time.Minute)

	lista.definir([]estoque.Material{{ID: 1, Nome: "Cabo", Quantidade: 0, QuantidadeMinima: 5, Ativo: true}})
	m.Verificar()

	lista.mu.Lock()
	lista.err = assert.AnError
	lista.mu.Unlock()
	m.Verificar()

	estado, _ := m.Estado()
	assert.Equal(t, EstadoAlerta, estado)
	assert.Equal(t, 1, espiao.total())
}

func TestIniciarParar_VarreNaPartida(t *testing.T) {
	lista := &listaFixa{}
	m := New(lista, nil, time.Hour)

	m.Iniciar()
	defer m.Parar()

	assert.Eventually(t, func() bool {
		lista.mu.Lock()
		defer lista.mu.Unlock()
		return lista.chamadas >= 1
	}, time.Second, 10*time.Millisecond)
}
