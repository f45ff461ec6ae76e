// internal/estoque/handler.go
package estoque

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/gorilla/mux"
)

// Handler gerencia rotas de materiais do estoque
type Handler struct {
	Repo *Repository
}

func NewHandler(repo *Repository) *Handler {
	return &Handler{Repo: repo}
}

// POST /materiais
func (h *Handler) Criar(w http.ResponseWriter, r *http.Request) {
	var m Material
	if err := json.NewDecoder(r.Body).Decode(&m); err != nil {
		http.Error(w, "JSON mal formado", http.StatusBadRequest)
		return
	}

	if strings.TrimSpace(m.Nome) == "" {
		http.Error(w, "informe o nome do material", http.StatusBadRequest)
		return
	}
	if m.Quantidade < 0 || m.QuantidadeMinima < 0 {
		http.Error(w, "quantidades não podem ser negativas", http.StatusBadRequest)
		return
	}

	m.Ativo = true
	if err := h.Repo.Create(&m); err != nil {
		http.Error(w, "erro ao salvar material", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(m)
}

// GET /materiais
func (h *Handler) Listar(w http.ResponseWriter, r *http.Request) {
	materiais, err := h.Repo.ListarAtivos()
	if err != nil {
		http.Error(w, "erro ao listar materiais", http.StatusInternalServerError)
		return
	}
	json.NewEncoder(w).Encode(materiais)
}

// GET /materiais/{id}
func (h *Handler) BuscarPorID(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}

	m, err := h.Repo.FindByID(uint(id))
	if err != nil {
		http.Error(w, "material não encontrado", http.StatusNotFound)
		return
	}
	json.NewEncoder(w).Encode(m)
}

// PUT /materiais/{id}
func (h *Handler) Atualizar(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}

	existente, err := h.Repo.FindByID(uint(id))
	if err != nil {
		http.Error(w, "material não encontrado", http.StatusNotFound)
		return
	}

	var body Material
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "JSON mal formado", http.StatusBadRequest)
		return
	}
	if strings.TrimSpace(body.Nome) == "" {
		http.Error(w, "informe o nome do material", http.StatusBadRequest)
		return
	}
	if body.Quantidade < 0 || body.QuantidadeMinima < 0 {
		http.Error(w, "quantidades não podem ser negativas", http.StatusBadRequest)
		return
	}

	existente.Nome = body.Nome
	existente.SKU = body.SKU
	existente.Quantidade = body.Quantidade
	existente.QuantidadeMinima = body.QuantidadeMinima
	existente.Unidade = body.Unidade
	existente.CustoUnitario = body.CustoUnitario
	existente.PrecoVenda = body.PrecoVenda

	if err := h.Repo.Update(existente); err != nil {
		http.Error(w, "erro ao atualizar material", http.StatusInternalServerError)
		return
	}
	json.NewEncoder(w).Encode(existente)
}

// DELETE /materiais/{id} — exclusão lógica
func (h *Handler) Arquivar(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}

	if _, err := h.Repo.FindByID(uint(id)); err != nil {
		http.Error(w, "material não encontrado", http.StatusNotFound)
		return
	}

	if err := h.Repo.Arquivar(uint(id)); err != nil {
		http.Error(w, "erro ao arquivar material", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
