package custoadicional

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
)

func requisicaoCriarCusto(t *testing.T, c CustoAdicional) *http.Request {
	t.Helper()
	corpo, err := json.Marshal(c)
	assert.NoError(t, err)
	r := httptest.NewRequest(http.MethodPost, "/ordens/1/custos", bytes.NewReader(corpo))
	return mux.SetURLVars(r, map[string]string{"id": "1"})
}

func TestCriar_RejeitaValorNaoPositivo(t *testing.T) {
	h := NewHandler(nil)

	// Zero e negativo caem na mesma checagem.
	for _, valor := range []float64{0, -5} {
		rec := httptest.NewRecorder()
		h.Criar(rec, requisicaoCriarCusto(t, CustoAdicional{Descricao: "Pedágio", Valor: valor}))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	}
}

func TestCriar_RejeitaDescricaoVazia(t *testing.T) {
	h := NewHandler(nil)

	rec := httptest.NewRecorder()
	h.Criar(rec, requisicaoCriarCusto(t, CustoAdicional{Descricao: "   ", Valor: 10}))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "descrição")
}

func TestCriar_RejeitaTipoDesconhecido(t *testing.T) {
	h := NewHandler(nil)

	rec := httptest.NewRecorder()
	h.Criar(rec, requisicaoCriarCusto(t, CustoAdicional{Tipo: "transporte", Descricao: "Frete", Valor: 10}))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "tipo")
}
