// internal/catalogo/handler.go
package catalogo

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/gorilla/mux"
)

// Handler gerencia rotas do catálogo de serviços
type Handler struct {
	Repo *Repository
}

func NewHandler(repo *Repository) *Handler {
	return &Handler{Repo: repo}
}

// POST /servicos
func (h *Handler) Criar(w http.ResponseWriter, r *http.Request) {
	var s Servico
	if err := json.NewDecoder(r.Body).Decode(&s); err != nil {
		http.Error(w, "JSON mal formado", http.StatusBadRequest)
		return
	}

	if strings.TrimSpace(s.Nome) == "" {
		http.Error(w, "informe o nome do serviço", http.StatusBadRequest)
		return
	}
	if s.PrecoBase < 0 || s.DuracaoEstimada < 0 {
		http.Error(w, "preço base e duração não podem ser negativos", http.StatusBadRequest)
		return
	}

	if err := h.Repo.Create(&s); err != nil {
		http.Error(w, "erro ao salvar serviço", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(s)
}

// GET /servicos
func (h *Handler) Listar(w http.ResponseWriter, r *http.Request) {
	servicos, err := h.Repo.ListAll()
	if err != nil {
		http.Error(w, "erro ao listar serviços", http.StatusInternalServerError)
		return
	}
	json.NewEncoder(w).Encode(servicos)
}

// GET /servicos/{id}
func (h *Handler) BuscarPorID(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}

	s, err := h.Repo.FindByID(uint(id))
	if err != nil {
		http.Error(w, "serviço não encontrado", http.StatusNotFound)
		return
	}
	json.NewEncoder(w).Encode(s)
}

// PUT /servicos/{id}
func (h *Handler) Atualizar(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}

	existente, err := h.Repo.FindByID(uint(id))
	if err != nil {
		http.Error(w, "serviço não encontrado", http.StatusNotFound)
		return
	}

	var body Servico
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "JSON mal formado", http.StatusBadRequest)
		return
	}
	if strings.TrimSpace(body.Nome) == "" {
		http.Error(w, "informe o nome do serviço", http.StatusBadRequest)
		return
	}

	existente.Nome = body.Nome
	existente.PrecoBase = body.PrecoBase
	existente.DuracaoEstimada = body.DuracaoEstimada

	if err := h.Repo.Update(existente); err != nil {
		http.Error(w, "erro ao atualizar serviço", http.StatusInternalServerError)
		return
	}
	json.NewEncoder(w).Encode(existente)
}

// DELETE /servicos/{id}
func (h *Handler) Deletar(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}

	existente, err := h.Repo.FindByID(uint(id))
	if err != nil {
		http.Error(w, "serviço não encontrado", http.StatusNotFound)
		return
	}

	if err := h.Repo.Delete(existente); err != nil {
		http.Error(w, "erro ao deletar serviço", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
