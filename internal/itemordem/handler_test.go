package itemordem

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/CampoGestor/api-os/internal/catalogo"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockItens struct {
	mock.Mock
}

func (m *MockItens) Create(item *ItemOrdem) error {
	args := m.Called(item)
	return args.Error(0)
}

func (m *MockItens) FindByOrdem(ordemID uint) ([]ItemOrdem, error) {
	args := m.Called(ordemID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]ItemOrdem), args.Error(1)
}

func (m *MockItens) FindByID(id uint) (*ItemOrdem, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ItemOrdem), args.Error(1)
}

func (m *MockItens) Delete(item *ItemOrdem) error {
	args := m.Called(item)
	return args.Error(0)
}

type MockCatalogo struct {
	mock.Mock
}

func (m *MockCatalogo) FindByID(id uint) (*catalogo.Servico, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalogo.Servico), args.Error(1)
}

func requisicaoCriarItem(t *testing.T, req CriarItemRequest) *http.Request {
	t.Helper()
	corpo, err := json.Marshal(req)
	assert.NoError(t, err)
	r := httptest.NewRequest(http.MethodPost, "/ordens/1/itens", bytes.NewReader(corpo))
	return mux.SetURLVars(r, map[string]string{"id": "1"})
}

func TestCriar_RejeitaQuantidadeNaoPositiva(t *testing.T) {
	repo := new(MockItens)
	h := NewHandler(repo, new(MockCatalogo))

	for _, quantidade := range []float64{0, -2} {
		rec := httptest.NewRecorder()
		h.Criar(rec, requisicaoCriarItem(t, CriarItemRequest{Quantidade: quantidade}))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	}
	repo.AssertNotCalled(t, "Create", mock.Anything)
}

func TestCriar_RejeitaSemCatalogoESemPreco(t *testing.T) {
	repo := new(MockItens)
	h := NewHandler(repo, new(MockCatalogo))

	rec := httptest.NewRecorder()
	h.Criar(rec, requisicaoCriarItem(t, CriarItemRequest{Quantidade: 1}))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "catálogo")
	repo.AssertNotCalled(t, "Create", mock.Anything)
}

func TestCriar_PersisteTotalArredondado(t *testing.T) {
	repo := new(MockItens)
	var salvo *ItemOrdem
	repo.On("Create", mock.Anything).Run(func(args mock.Arguments) {
		salvo = args.Get(0).(*ItemOrdem)
	}).Return(nil)

	h := NewHandler(repo, new(MockCatalogo))
	preco := 10.004
	rec := httptest.NewRecorder()
	h.Criar(rec, requisicaoCriarItem(t, CriarItemRequest{Quantidade: 1, PrecoUnitario: &preco}))

	assert.Equal(t, http.StatusCreated, rec.Code)
	if assert.NotNil(t, salvo) {
		// O preço unitário fica como informado; só o total gravado é
		// arredondado.
		assert.InDelta(t, 10.004, salvo.PrecoUnitario, 1e-9)
		assert.InDelta(t, 10.00, salvo.PrecoTotal, 1e-9)
	}
}

func TestCriar_DerivaDoCatalogoComDificuldade(t *testing.T) {
	repo := new(MockItens)
	var salvo *ItemOrdem
	repo.On("Create", mock.Anything).Run(func(args mock.Arguments) {
		salvo = args.Get(0).(*ItemOrdem)
	}).Return(nil)

	cat := new(MockCatalogo)
	cat.On("FindByID", uint(10)).Return(&catalogo.Servico{
		ID: 10, Nome: "Instalação elétrica", PrecoBase: 100.00, DuracaoEstimada: 60,
	}, nil)

	h := NewHandler(repo, cat)
	servicoID := uint(10)
	rec := httptest.NewRecorder()
	h.Criar(rec, requisicaoCriarItem(t, CriarItemRequest{
		ServicoID:        &servicoID,
		Quantidade:       3,
		NivelDificuldade: 2,
	}))

	assert.Equal(t, http.StatusCreated, rec.Code)
	if assert.NotNil(t, salvo) {
		assert.InDelta(t, 1.20, salvo.Multiplicador, 1e-9)
		assert.InDelta(t, 120.00, salvo.PrecoUnitario, 1e-9)
		assert.InDelta(t, 360.00, salvo.PrecoTotal, 1e-9)
		assert.Equal(t, 60, salvo.DuracaoEstimada)
	}
}

func TestCriar_ServicoInexistenteRetorna404(t *testing.T) {
	repo := new(MockItens)
	cat := new(MockCatalogo)
	cat.On("FindByID", uint(99)).Return(nil, assert.AnError)

	h := NewHandler(repo, cat)
	servicoID := uint(99)
	rec := httptest.NewRecorder()
	h.Criar(rec, requisicaoCriarItem(t, CriarItemRequest{ServicoID: &servicoID, Quantidade: 1}))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	repo.AssertNotCalled(t, "Create", mock.Anything)
}
