// internal/monitorestoque/handler.go
package monitorestoque

import (
	"encoding/json"
	"net/http"

	"github.com/CampoGestor/api-os/internal/estoque"
)

// Handler expõe o estado atual do monitor
type Handler struct {
	Monitor *Monitor
}

func NewHandler(monitor *Monitor) *Handler {
	return &Handler{Monitor: monitor}
}

type alertaResponse struct {
	Estado    Estado             `json:"estado"`
	Materiais []estoque.Material `json:"materiais"`
}

// GET /estoque/alerta
func (h *Handler) BuscarAlerta(w http.ResponseWriter, r *http.Request) {
	estado, materiais := h.Monitor.Estado()
	json.NewEncoder(w).Encode(alertaResponse{Estado: estado, Materiais: materiais})
}
