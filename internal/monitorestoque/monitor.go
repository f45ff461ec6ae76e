// internal/monitorestoque/monitor.go
package monitorestoque

import (
	"log"
	"sync"
	"sync/atomic"
	"time"

	"github.com/CampoGestor/api-os/internal/estoque"
)

// Estado do monitor de estoque.
type Estado string

const (
	EstadoNormal Estado = "normal"
	EstadoAlerta Estado = "alerta"
)

// ListaEstoque devolve os materiais ativos no mínimo ou abaixo dele.
type ListaEstoque interface {
	ListarAbaixoDoMinimo() ([]estoque.Material, error)
}

// Notificador recebe o aviso de estoque baixo. Melhor esforço: uma falha é
// logada pelo próprio notificador e nunca altera o estado do monitor.
type Notificador interface {
	NotificarEstoqueBaixo(materiais []estoque.Material)
}

// Monitor varre o estoque na partida, a cada tick e sob demanda. Encontrou
// qualquer material no mínimo ou abaixo, entra em alerta carregando a lista
// completa (não um diff) e notifica — inclusive de novo a cada varredura
// enquanto a condição persistir. Varredura sem ocorrência volta ao normal.
type Monitor struct {
	lista       ListaEstoque
	notificador Notificador
	intervalo   time.Duration

	mu        sync.Mutex
	estado    Estado
	materiais []estoque.Material

	varrendo atomic.Bool
	parar    chan struct{}
	parado   sync.Once
}

func New(lista ListaEstoque, notificador Notificador, intervalo time.Duration) *Monitor {
	return &Monitor{
		lista:       lista,
		notificador: notificador,
		intervalo:   intervalo,
		estado:      EstadoNormal,
		parar:       make(chan struct{}),
	}
}

// Iniciar varre imediatamente e depois a cada intervalo, até Parar.
func (m *Monitor) Iniciar() {
	go func() {
		m.Verificar()

		ticker := time.NewTicker(m.intervalo)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				m.Verificar()
			case <-m.parar:
				return
			}
		}
	}()
}

// Parar encerra o laço de varredura.
func (m *Monitor) Parar() {
	m.parado.Do(func() { close(m.parar) })
}

// Verificar executa uma varredura. Se outra varredura ainda está em voo, o
// tick é pulado em vez de sobrepor consultas.
func (m *Monitor) Verificar() {
	if !m.varrendo.CompareAndSwap(false, true) {
		return
	}
	defer m.varrendo.Store(false)

	materiais, err := m.lista.ListarAbaixoDoMinimo()
	if err != nil {
		log.Printf("monitor de estoque: erro na varredura: %v", err)
		return
	}

	m.mu.Lock()
	if len(materiais) > 0 {
		m.estado = EstadoAlerta
		m.materiais = materiais
	} else {
		m.estado = EstadoNormal
		m.materiais = nil
	}
	m.mu.Unlock()

	if len(materiais) > 0 && m.notificador != nil {
		m.notificador.NotificarEstoqueBaixo(materiais)
	}
}

// Estado devolve o estado atual e a lista de materiais em alerta.
func (m *Monitor) Estado() (Estado, []estoque.Material) {
	m.mu.Lock()
	defer m.mu.Unlock()
	copia := make([]estoque.Material, len(m.materiais))
	copy(copia, m.materiais)
	return m.estado, copia
}
