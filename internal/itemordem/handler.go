// internal/itemordem/handler.go
package itemordem

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/CampoGestor/api-os/internal/catalogo"
	"github.com/CampoGestor/api-os/internal/precificacao"
	"github.com/gorilla/mux"
)

// Itens são as operações de banco usadas pelo handler sobre ItemOrdem.
type Itens interface {
	Create(item *ItemOrdem) error
	FindByOrdem(ordemID uint) ([]ItemOrdem, error)
	FindByID(id uint) (*ItemOrdem, error)
	Delete(item *ItemOrdem) error
}

// CatalogoServicos é a consulta ao catálogo feita na criação de itens.
type CatalogoServicos interface {
	FindByID(id uint) (*catalogo.Servico, error)
}

// Handler gerencia rotas de itens de ordem de serviço
type Handler struct {
	Repo     Itens
	Catalogo CatalogoServicos
}

func NewHandler(repo Itens, cat CatalogoServicos) *Handler {
	return &Handler{Repo: repo, Catalogo: cat}
}

// POST /ordens/{id}/itens
func (h *Handler) Criar(w http.ResponseWriter, r *http.Request) {
	ordemID, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID de ordem inválido", http.StatusBadRequest)
		return
	}

	var req CriarItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "JSON mal formado", http.StatusBadRequest)
		return
	}

	if req.Quantidade <= 0 {
		http.Error(w, "informe uma quantidade maior que zero", http.StatusBadRequest)
		return
	}

	calc := precificacao.NovaCalculadora()
	calc.DefinirDificuldade(req.NivelDificuldade)
	calc.DefinirQuantidade(req.Quantidade)

	if req.ServicoID != nil {
		servico, err := h.Catalogo.FindByID(*req.ServicoID)
		if err != nil {
			http.Error(w, "serviço do catálogo não encontrado", http.StatusNotFound)
			return
		}
		calc.SelecionarServico(servico.ID, servico.PrecoBase, servico.DuracaoEstimada)
	}

	// Preço manual prevalece sobre o derivado do catálogo.
	if req.PrecoUnitario != nil {
		calc.DefinirPrecoUnitario(*req.PrecoUnitario)
	}

	if err := calc.Validar(); err != nil {
		if errors.Is(err, precificacao.ErrItemSemPreco) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		http.Error(w, "item inválido", http.StatusBadRequest)
		return
	}

	item := ItemOrdem{
		OrdemID:          uint(ordemID),
		ServicoID:        calc.ServicoID,
		Quantidade:       calc.Quantidade,
		PrecoBase:        calc.PrecoBase,
		NivelDificuldade: calc.Nivel,
		Multiplicador:    precificacao.Multiplicador(calc.Nivel),
		PrecoUnitario:    calc.PrecoUnitario,
		PrecoTotal:       precificacao.Arredondar2(calc.PrecoTotal),
		DuracaoEstimada:  calc.DuracaoEstimada,
		Observacoes:      req.Observacoes,
	}

	if err := h.Repo.Create(&item); err != nil {
		http.Error(w, "erro ao salvar item", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(item)
}

// GET /ordens/{id}/itens
func (h *Handler) Listar(w http.ResponseWriter, r *http.Request) {
	ordemID, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID de ordem inválido", http.StatusBadRequest)
		return
	}

	itens, err := h.Repo.FindByOrdem(uint(ordemID))
	if err != nil {
		http.Error(w, "erro ao buscar itens", http.StatusInternalServerError)
		return
	}
	json.NewEncoder(w).Encode(itens)
}

// DELETE /ordens/{id}/itens/{iid} — remoção incondicional, sem compensações
func (h *Handler) Deletar(w http.ResponseWriter, r *http.Request) {
	ordemID, err1 := strconv.Atoi(mux.Vars(r)["id"])
	itemID, err2 := strconv.Atoi(mux.Vars(r)["iid"])
	if err1 != nil || err2 != nil {
		http.Error(w, "IDs inválidos", http.StatusBadRequest)
		return
	}

	existente, err := h.Repo.FindByID(uint(itemID))
	if err != nil || existente.OrdemID != uint(ordemID) {
		http.Error(w, "item não encontrado para essa ordem", http.StatusNotFound)
		return
	}

	if err := h.Repo.Delete(existente); err != nil {
		http.Error(w, "erro ao deletar item", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
