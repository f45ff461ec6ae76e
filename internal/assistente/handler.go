// internal/assistente/handler.go
package assistente

import (
	"encoding/json"
	"errors"
	"net/http"
)

type consultaRequest struct {
	Sessao string `json:"sessao"`
	Texto  string `json:"texto"`
}

// Handler gerencia a rota do assistente
type Handler struct {
	Servico *Servico
}

func NewHandler(servico *Servico) *Handler {
	return &Handler{Servico: servico}
}

// POST /assistente/consulta
func (h *Handler) Consultar(w http.ResponseWriter, r *http.Request) {
	var req consultaRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "JSON mal formado", http.StatusBadRequest)
		return
	}

	resposta, err := h.Servico.Responder(req.Sessao, req.Texto)
	if err != nil {
		if errors.Is(err, ErrConsultaVazia) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		http.Error(w, "erro ao processar a consulta", http.StatusInternalServerError)
		return
	}
	json.NewEncoder(w).Encode(resposta)
}
