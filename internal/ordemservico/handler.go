// internal/ordemservico/handler.go
package ordemservico

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gorilla/mux"
)

// Handler gerencia rotas de ordens de serviço
type Handler struct {
	Repo   *Repository
	Totais *TotaisService
}

func NewHandler(repo *Repository, totais *TotaisService) *Handler {
	return &Handler{Repo: repo, Totais: totais}
}

// POST /ordens
func (h *Handler) Criar(w http.ResponseWriter, r *http.Request) {
	var o OrdemServico
	if err := json.NewDecoder(r.Body).Decode(&o); err != nil {
		http.Error(w, "JSON mal formado", http.StatusBadRequest)
		return
	}

	if strings.TrimSpace(o.Numero) == "" {
		http.Error(w, "informe o número da ordem", http.StatusBadRequest)
		return
	}
	if o.Status == "" {
		o.Status = StatusAberta
	}
	if o.DataAbertura.IsZero() {
		o.DataAbertura = time.Now()
	}

	if err := h.Repo.Create(&o); err != nil {
		http.Error(w, "erro ao salvar ordem", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(o)
}

// GET /ordens
func (h *Handler) Listar(w http.ResponseWriter, r *http.Request) {
	ordens, err := h.Repo.ListAll()
	if err != nil {
		http.Error(w, "erro ao listar ordens", http.StatusInternalServerError)
		return
	}
	json.NewEncoder(w).Encode(ordens)
}

// GET /ordens/{id}
func (h *Handler) BuscarPorID(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}

	o, err := h.Repo.FindByID(uint(id))
	if err != nil {
		http.Error(w, "ordem não encontrada", http.StatusNotFound)
		return
	}
	json.NewEncoder(w).Encode(o)
}

// PUT /ordens/{id}
func (h *Handler) Atualizar(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}

	existente, err := h.Repo.FindByID(uint(id))
	if err != nil {
		http.Error(w, "ordem não encontrada", http.StatusNotFound)
		return
	}

	var body OrdemServico
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "JSON mal formado", http.StatusBadRequest)
		return
	}

	existente.ClienteNome = body.ClienteNome
	existente.Descricao = body.Descricao
	if body.Status != "" {
		existente.Status = body.Status
	}

	if err := h.Repo.Update(existente); err != nil {
		http.Error(w, "erro ao atualizar ordem", http.StatusInternalServerError)
		return
	}
	json.NewEncoder(w).Encode(existente)
}

// DELETE /ordens/{id}
func (h *Handler) Deletar(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}

	existente, err := h.Repo.FindByID(uint(id))
	if err != nil {
		http.Error(w, "ordem não encontrada", http.StatusNotFound)
		return
	}

	if err := h.Repo.Delete(existente); err != nil {
		http.Error(w, "erro ao deletar ordem", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// GET /ordens/{id}/totais — sempre recalculado, nunca lido de cache
func (h *Handler) BuscarTotais(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}

	if _, err := h.Repo.FindByID(uint(id)); err != nil {
		http.Error(w, "ordem não encontrada", http.StatusNotFound)
		return
	}

	totais, err := h.Totais.TotaisDaOrdem(uint(id))
	if err != nil {
		http.Error(w, "erro ao calcular totais da ordem", http.StatusInternalServerError)
		return
	}
	json.NewEncoder(w).Encode(totais)
}
