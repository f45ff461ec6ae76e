// internal/materialordem/handler.go
package materialordem

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
)

// VerificadorEstoque dispara uma varredura imediata do monitor de estoque.
type VerificadorEstoque interface {
	Verificar()
}

// Handler gerencia rotas de materiais de ordem de serviço
type Handler struct {
	Service *Service
	Repo    *Repository
	Monitor VerificadorEstoque
}

func NewHandler(service *Service, repo *Repository, monitor VerificadorEstoque) *Handler {
	return &Handler{Service: service, Repo: repo, Monitor: monitor}
}

// POST /ordens/{id}/materiais
func (h *Handler) Criar(w http.ResponseWriter, r *http.Request) {
	ordemID, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID de ordem inválido", http.StatusBadRequest)
		return
	}

	var req CriarMaterialRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "JSON mal formado", http.StatusBadRequest)
		return
	}

	linha, err := h.Service.Adicionar(uint(ordemID), req)
	if err != nil {
		switch {
		case errors.Is(err, ErrNomeObrigatorio), errors.Is(err, ErrQuantidadeInvalida):
			http.Error(w, err.Error(), http.StatusBadRequest)
		case errors.Is(err, ErrMaterialNaoEncontrado):
			http.Error(w, err.Error(), http.StatusNotFound)
		default:
			http.Error(w, "erro ao incluir material na ordem", http.StatusInternalServerError)
		}
		return
	}

	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(linha)
}

// GET /ordens/{id}/materiais
func (h *Handler) Listar(w http.ResponseWriter, r *http.Request) {
	ordemID, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID de ordem inválido", http.StatusBadRequest)
		return
	}

	linhas, err := h.Repo.FindByOrdem(uint(ordemID))
	if err != nil {
		http.Error(w, "erro ao buscar materiais da ordem", http.StatusInternalServerError)
		return
	}
	json.NewEncoder(w).Encode(linhas)
}

// DELETE /ordens/{id}/materiais/{mid}
func (h *Handler) Deletar(w http.ResponseWriter, r *http.Request) {
	ordemID, err1 := strconv.Atoi(mux.Vars(r)["id"])
	linhaID, err2 := strconv.Atoi(mux.Vars(r)["mid"])
	if err1 != nil || err2 != nil {
		http.Error(w, "IDs inválidos", http.StatusBadRequest)
		return
	}

	if err := h.Service.Remover(uint(ordemID), uint(linhaID)); err != nil {
		if errors.Is(err, ErrLinhaNaoEncontrada) {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}
		http.Error(w, "erro ao remover material da ordem", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// GET /materiais/{id}/selecao — preenche a linha a partir do estoque.
// Material já no mínimo dispara a varredura do monitor na hora, antes da
// inclusão ser confirmada.
func (h *Handler) SelecionarDoEstoque(w http.ResponseWriter, r *http.Request) {
	materialID, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}

	selecao, err := h.Service.SelecionarDoEstoque(uint(materialID))
	if err != nil {
		http.Error(w, "material não encontrado", http.StatusNotFound)
		return
	}

	if selecao.AbaixoDoMinimo && h.Monitor != nil {
		h.Monitor.Verificar()
	}

	json.NewEncoder(w).Encode(selecao)
}
