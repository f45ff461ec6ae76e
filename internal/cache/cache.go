// internal/cache/cache.go
package cache

import (
	"sync"
	"time"
)

type entrada struct {
	valor    any
	expiraEm time.Time
}

// Store é um mapa chave→valor com expiração: cada entrada vive pelo TTL e
// uma rotina de varredura remove as vencidas. O dono constrói, injeta e
// encerra a instância — não existe estado global de módulo.
type Store struct {
	mu     sync.RWMutex
	ttl    time.Duration
	itens  map[string]entrada
	parar  chan struct{}
	parado sync.Once
}

// New cria o store e inicia a varredura periódica de entradas vencidas.
func New(ttl, intervaloVarredura time.Duration) *Store {
	s := &Store{
		ttl:   ttl,
		itens: make(map[string]entrada),
		parar: make(chan struct{}),
	}
	go s.varrer(intervaloVarredura)
	return s
}

// Definir grava o valor e renova a expiração da chave.
func (s *Store) Definir(chave string, valor any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.itens[chave] = entrada{valor: valor, expiraEm: time.Now().Add(s.ttl)}
}

// Obter devolve o valor da chave. Entrada vencida conta como ausente mesmo
// antes da varredura passar por ela.
func (s *Store) Obter(chave string) (any, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	e, ok := s.itens[chave]
	if !ok || time.Now().After(e.expiraEm) {
		return nil, false
	}
	return e.valor, true
}

// Remover apaga a chave.
func (s *Store) Remover(chave string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.itens, chave)
}

// Tamanho conta as entradas ainda armazenadas, vencidas ou não.
func (s *Store) Tamanho() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.itens)
}

// Parar encerra a rotina de varredura.
func (s *Store) Parar() {
	s.parado.Do(func() { close(s.parar) })
}

func (s *Store) varrer(intervalo time.Duration) {
	ticker := time.NewTicker(intervalo)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			agora := time.Now()
			s.mu.Lock()
			for chave, e := range s.itens {
				if agora.After(e.expiraEm) {
					delete(s.itens, chave)
				}
			}
			s.mu.Unlock()
		case <-s.parar:
			return
		}
	}
}
