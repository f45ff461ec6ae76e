// internal/monitorestoque/webhook.go
package monitorestoque

import (
	"bytes"
	"encoding/json"
	"log"
	"net/http"

	"github.com/CampoGestor/api-os/internal/estoque"
)

// WebhookNotificador envia o alerta de estoque baixo para uma URL externa.
type WebhookNotificador struct {
	URL string
}

func (n *WebhookNotificador) NotificarEstoqueBaixo(materiais []estoque.Material) {
	nomes := make([]string, 0, len(materiais))
	for _, m := range materiais {
		nomes = append(nomes, m.Nome)
	}

	payload := map[string]any{
		"mensagem":  "Alerta: materiais com estoque no mínimo ou abaixo",
		"materiais": nomes,
	}
	body, _ := json.Marshal(payload)

	resp, err := http.Post(n.URL, "application/json", bytes.NewBuffer(body))
	if err != nil {
		log.Printf("Erro ao enviar webhook de estoque: %v", err)
		return
	}
	defer resp.Body.Close()
}

// LogNotificador registra o alerta no log. Usado quando não há webhook
// configurado.
type LogNotificador struct{}

func (LogNotificador) NotificarEstoqueBaixo(materiais []estoque.Material) {
	log.Printf("Alerta de estoque: %d material(is) no mínimo ou abaixo", len(materiais))
}
