// internal/custoadicional/handler.go
package custoadicional

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gorilla/mux"
)

// Handler gerencia rotas de custos adicionais de ordem de serviço
type Handler struct {
	Repo *Repository
}

func NewHandler(repo *Repository) *Handler {
	return &Handler{Repo: repo}
}

// POST /ordens/{id}/custos
func (h *Handler) Criar(w http.ResponseWriter, r *http.Request) {
	ordemID, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID de ordem inválido", http.StatusBadRequest)
		return
	}

	var c CustoAdicional
	if err := json.NewDecoder(r.Body).Decode(&c); err != nil {
		http.Error(w, "JSON mal formado", http.StatusBadRequest)
		return
	}

	if strings.TrimSpace(c.Descricao) == "" {
		http.Error(w, "informe a descrição do custo", http.StatusBadRequest)
		return
	}
	// Valor precisa ser estritamente positivo: zero e negativo são
	// rejeitados pela mesma checagem.
	if c.Valor <= 0 {
		http.Error(w, "informe um valor maior que zero", http.StatusBadRequest)
		return
	}
	if c.Tipo == "" {
		c.Tipo = TipoOutros
	}
	if !TipoValido(c.Tipo) {
		http.Error(w, "tipo de custo inválido", http.StatusBadRequest)
		return
	}
	if c.DataCusto.IsZero() {
		c.DataCusto = time.Now()
	}

	c.OrdemID = uint(ordemID)
	if err := h.Repo.Create(&c); err != nil {
		http.Error(w, "erro ao salvar custo", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(c)
}

// GET /ordens/{id}/custos
func (h *Handler) Listar(w http.ResponseWriter, r *http.Request) {
	ordemID, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID de ordem inválido", http.StatusBadRequest)
		return
	}

	custos, err := h.Repo.FindByOrdem(uint(ordemID))
	if err != nil {
		http.Error(w, "erro ao buscar custos", http.StatusInternalServerError)
		return
	}
	json.NewEncoder(w).Encode(custos)
}

// GET /ordens/{id}/custos/resumo
func (h *Handler) Resumo(w http.ResponseWriter, r *http.Request) {
	ordemID, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID de ordem inválido", http.StatusBadRequest)
		return
	}

	custos, err := h.Repo.FindByOrdem(uint(ordemID))
	if err != nil {
		http.Error(w, "erro ao buscar custos", http.StatusInternalServerError)
		return
	}
	json.NewEncoder(w).Encode(ResumoPorTipo(custos))
}

// DELETE /ordens/{id}/custos/{cid} — remoção sem compensações
func (h *Handler) Deletar(w http.ResponseWriter, r *http.Request) {
	ordemID, err1 := strconv.Atoi(mux.Vars(r)["id"])
	custoID, err2 := strconv.Atoi(mux.Vars(r)["cid"])
	if err1 != nil || err2 != nil {
		http.Error(w, "IDs inválidos", http.StatusBadRequest)
		return
	}

	existente, err := h.Repo.FindByID(uint(custoID))
	if err != nil || existente.OrdemID != uint(ordemID) {
		http.Error(w, "custo não encontrado para essa ordem", http.StatusNotFound)
		return
	}

	if err := h.Repo.Delete(existente); err != nil {
		http.Error(w, "erro ao deletar custo", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
